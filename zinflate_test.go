package zinflate

import (
	"bytes"
	"compress/zlib"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zlibRef wraps data in an RFC 1950 container with the stdlib writer, used
// only to generate fixtures for the decoder under test.
func zlibRef(t *testing.T, data []byte, level int) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// Minimal valid zlib stream: 78 DA header, one empty stored block marked
// final, Adler-32 of the empty payload (1).
var minimalZlib = []byte{0x78, 0xDA, 0x01, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x01}

func TestDecompressMinimalStream(t *testing.T) {
	out, err := Decompress(minimalZlib, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecompressRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("hello, world"),
		bytes.Repeat([]byte("zlib container round trip "), 1000),
		bytes.Repeat([]byte{0}, 5000),
	}
	levels := []int{zlib.NoCompression, zlib.BestSpeed, zlib.DefaultCompression, zlib.BestCompression}

	for _, data := range payloads {
		for _, level := range levels {
			src := zlibRef(t, data, level)

			out, err := Decompress(src, len(data), nil)
			require.NoError(t, err, "level %d", level)
			assert.Equal(t, data, out, "level %d", level)
		}
	}
}

func TestDecompressVerifiesTrailer(t *testing.T) {
	data := []byte("trailer must match the produced output")
	src := zlibRef(t, data, zlib.BestCompression)
	src[len(src)-1] ^= 0xFF

	_, err := Decompress(src, len(data), nil)
	require.ErrorIs(t, err, ErrChecksumMismatch)

	// Lenient mode consumes the trailer without comparing it.
	out, err := Decompress(src, len(data), LenientOptions())
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompressTruncatedEveryPrefix(t *testing.T) {
	data := []byte("truncation must fail cleanly at every prefix length")
	src := zlibRef(t, data, zlib.BestCompression)

	for cut := 0; cut < len(src); cut++ {
		_, err := Decompress(src[:cut], len(data), nil)
		require.Error(t, err, "prefix of %d bytes", cut)

		kind := errors.Is(err, ErrBoundsViolation) ||
			errors.Is(err, ErrCorruptData) ||
			errors.Is(err, ErrChecksumMismatch)
		assert.True(t, kind, "prefix of %d bytes: %v", cut, err)
	}
}

func TestDecompressUnsupportedMethod(t *testing.T) {
	src := append([]byte{}, minimalZlib...)
	src[0] = 0x77 // method 7

	_, err := Decompress(src, 0, nil)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDecompressWindowTooLarge(t *testing.T) {
	src := append([]byte{}, minimalZlib...)
	src[0] = 0x88 // method 8, info 8 -> 65536

	_, err := Decompress(src, 0, nil)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDecompressHeaderTooShort(t *testing.T) {
	_, err := Decompress([]byte{0x78}, 0, nil)
	assert.ErrorIs(t, err, ErrBoundsViolation)

	_, err = Decompress(nil, 0, nil)
	assert.ErrorIs(t, err, ErrBoundsViolation)
}

func TestDecompressPresetDictionaryID(t *testing.T) {
	// FDICT set: the 4-byte dictionary id is consumed but not applied.
	src := []byte{
		0x78, 0x20, 0xDE, 0xAD, 0xBE, 0xEF,
		0x01, 0x00, 0x00, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x01,
	}

	out, err := Decompress(src, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	// ...and its absence past the header is a bounds violation.
	_, err = Decompress(src[:5], 0, nil)
	assert.ErrorIs(t, err, ErrBoundsViolation)
}

func TestDecompressConsumedConcatenated(t *testing.T) {
	first := []byte("first stream")
	second := []byte("second stream")
	src := append(zlibRef(t, first, zlib.BestCompression), zlibRef(t, second, zlib.BestCompression)...)

	out, consumed, err := DecompressConsumed(src, len(first), nil)
	require.NoError(t, err)
	assert.Equal(t, first, out)

	out, _, err = DecompressConsumed(src[consumed:], len(second), nil)
	require.NoError(t, err)
	assert.Equal(t, second, out)
}

func TestDecompressNegativeOutLen(t *testing.T) {
	_, err := Decompress(minimalZlib, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecompressFromReader(t *testing.T) {
	data := []byte("reader entry point")
	src := zlibRef(t, data, zlib.BestCompression)

	out, read, err := DecompressFromReader(bytes.NewReader(src), len(data), nil)
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, int64(len(src)), read)

	_, _, err = DecompressFromReader(nil, 0, nil)
	assert.ErrorIs(t, err, ErrNilReader)
}

func TestDecompressRawFromReader(t *testing.T) {
	data := []byte("raw reader entry point")
	src := deflateRef(t, data, 9)

	out, read, err := DecompressRawFromReader(bytes.NewReader(src), len(data))
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, int64(len(src)), read)

	_, _, err = DecompressRawFromReader(nil, 0)
	assert.ErrorIs(t, err, ErrNilReader)
}

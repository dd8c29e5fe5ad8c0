package zinflate

import (
	"encoding/binary"
	"fmt"
)

// Decompress decodes a zlib-wrapped (RFC 1950) DEFLATE stream from src into a
// new buffer of capacity outLen and returns the produced bytes, which may be
// fewer than outLen. Options nil means DefaultOptions (verify the Adler-32
// trailer).
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	out, _, err := DecompressConsumed(src, outLen, opts)
	return out, err
}

// DecompressConsumed is Decompress plus the number of input bytes consumed
// through the trailer, for callers that concatenate zlib streams.
func DecompressConsumed(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if outLen < 0 {
		return nil, 0, fmt.Errorf("%w: output length %d is negative", ErrInvalidArgument, outLen)
	}
	if len(src) < zlibHeaderSize {
		return nil, 0, fmt.Errorf("%w: zlib header needs %d bytes, input has %d",
			ErrBoundsViolation, zlibHeaderSize, len(src))
	}

	method := src[0] & 0x0F
	if method != zlibMethodDeflate {
		return nil, 0, fmt.Errorf("%w: compression method %d, only %d (deflate) is supported",
			ErrUnsupportedValue, method, zlibMethodDeflate)
	}

	info := src[0] >> 4
	windowSize := 1 << (info + 8)
	if windowSize > MaxWindowSize {
		return nil, 0, fmt.Errorf("%w: window size %d exceeds %d",
			ErrUnsupportedValue, windowSize, MaxWindowSize)
	}

	// FLG: top 2 bits are the compression level, informational only. A preset
	// dictionary id is consumed but not applied (partial FDICT support).
	start := zlibHeaderSize
	if src[1]&flagPresetDictionary != 0 {
		if len(src) < start+zlibDictionaryIDSize {
			return nil, 0, fmt.Errorf("%w: preset dictionary id needs %d bytes, %d left",
				ErrBoundsViolation, zlibDictionaryIDSize, len(src)-start)
		}
		start += zlibDictionaryIDSize
	}

	bits, err := newBitStream(src, start)
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, outLen)
	produced, err := inflate(bits, out)
	if err != nil {
		return nil, bits.offset(), err
	}

	bits.alignToByte()
	if bits.remaining() < zlibTrailerSize {
		return nil, bits.offset(), fmt.Errorf("%w: Adler-32 trailer needs %d bytes, %d left at byte offset %d",
			ErrBoundsViolation, zlibTrailerSize, bits.remaining(), bits.offset())
	}

	stored := binary.BigEndian.Uint32(src[bits.offset():])
	bits.skip(zlibTrailerSize)

	if opts.VerifyChecksum {
		computed := Adler32(out[:produced], 1)
		if computed != stored {
			return nil, bits.offset(), fmt.Errorf("%w: computed Adler-32 0x%08x, trailer holds 0x%08x",
				ErrChecksumMismatch, computed, stored)
		}
	}

	return out[:produced], bits.offset(), nil
}

// DecompressRaw decodes a containerless RFC 1951 DEFLATE block stream. There
// is no trailer, so Options carry no meaning here and nil is fine.
func DecompressRaw(src []byte, outLen int, _ *Options) ([]byte, error) {
	out, _, err := DecompressRawConsumed(src, outLen)
	return out, err
}

// DecompressRawConsumed is DecompressRaw plus the number of input bytes
// consumed through the final block, rounded up to the next byte boundary.
func DecompressRawConsumed(src []byte, outLen int) ([]byte, int, error) {
	if outLen < 0 {
		return nil, 0, fmt.Errorf("%w: output length %d is negative", ErrInvalidArgument, outLen)
	}
	if len(src) == 0 {
		return nil, 0, fmt.Errorf("%w: input is empty", ErrInvalidArgument)
	}

	bits, err := newBitStream(src, 0)
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, outLen)
	produced, err := inflate(bits, out)
	if err != nil {
		return nil, bits.offset(), err
	}

	bits.alignToByte()

	return out[:produced], bits.offset(), nil
}

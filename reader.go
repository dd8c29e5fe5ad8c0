package zinflate

import "io"

// DecompressFromReader buffers r fully and decodes it as a zlib stream into a
// buffer of capacity outLen. The engine works on whole buffers, so this is a
// convenience wrapper, not a streaming decoder; it returns the produced bytes
// and the total number of bytes read from r.
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, int64(len(src)), err
	}

	out, err := Decompress(src, outLen, opts)

	return out, int64(len(src)), err
}

// DecompressRawFromReader buffers r fully and decodes it as a raw DEFLATE
// block stream into a buffer of capacity outLen.
func DecompressRawFromReader(r io.Reader, outLen int) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, int64(len(src)), err
	}

	out, err := DecompressRaw(src, outLen, nil)

	return out, int64(len(src)), err
}

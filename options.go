package zinflate

// Options configures Decompress behavior.
type Options struct {
	// VerifyChecksum: if true, Decompress returns ErrChecksumMismatch when the
	// zlib Adler-32 trailer does not match the produced output.
	// If false, the trailer is still consumed but not compared (lenient mode
	// for truncated archives and formats with often-bad trailers).
	VerifyChecksum bool
}

// DefaultOptions returns options for default behavior: strict trailer verification.
func DefaultOptions() *Options {
	return &Options{
		VerifyChecksum: true,
	}
}

// LenientOptions returns options that skip Adler-32 trailer verification.
func LenientOptions() *Options {
	return &Options{
		VerifyChecksum: false,
	}
}

/*
Package zinflate implements DEFLATE (RFC 1951) and zlib (RFC 1950) decompression.

The decoder is a whole-buffer engine: the caller supplies the complete
compressed input and the output capacity, and one synchronous call either
produces the decompressed bytes or fails fast on the first violation. All
three DEFLATE block types are supported (stored, fixed Huffman, dynamic
Huffman), dynamic blocks rebuild their canonical Huffman trees per block, and
the zlib form verifies the trailing big-endian Adler-32 over the produced
output. A DEFLATE compressor is not provided.

Errors wrap one of five sentinels (ErrInvalidArgument, ErrBoundsViolation,
ErrUnsupportedValue, ErrCorruptData, ErrChecksumMismatch), so the kind can be
matched with errors.Is while the message carries the offending offset and
values. Truncated or corrupt input never reads or writes out of bounds; a
failed call leaves the would-be output discarded.

Use Decompress(src, outLen, opts) for a zlib stream, nil opts for default
(verify the Adler-32 trailer).
Use DecompressRaw(src, outLen, nil) for a containerless DEFLATE block stream.
Use DecompressConsumed / DecompressRawConsumed to also get consumed bytes
when streams are concatenated.
Use DecompressFromReader / DecompressRawFromReader to buffer an io.Reader
first.
Use LenientOptions() to consume but not verify the trailer.
Use Adler32(data, 1) for the bare checksum.

# Examples

Decompress a zlib stream with default options (trailer verified):

	out, err := zinflate.Decompress(encoded, expectedLen, nil)
	if err != nil {
		return err
	}

Decompress a raw DEFLATE stream:

	out, err := zinflate.DecompressRaw(encoded, expectedLen, nil)
	if err != nil {
		return err
	}

Decode the first of several concatenated zlib streams:

	out, consumed, err := zinflate.DecompressConsumed(encoded, expectedLen, nil)
	if err != nil {
		return err
	}
	rest := encoded[consumed:]
	_ = rest

Match an error kind:

	_, err := zinflate.Decompress(encoded, expectedLen, nil)
	if errors.Is(err, zinflate.ErrChecksumMismatch) {
		// trailer did not match; retry with zinflate.LenientOptions() if
		// the payload is still wanted
	}

Checksum a buffer, extending across chunks:

	sum := zinflate.Adler32(chunkA, 1)
	sum = zinflate.Adler32(chunkB, sum)
*/
package zinflate

package zinflate

// Adler32 computes the RFC 1950 checksum of data, continuing from initial.
// Pass 1 to start a fresh checksum; pass a previous result to extend it over
// concatenated buffers.
//
// The two 16-bit running sums are kept in uint32 and reduced modulo 65521
// every 5552 bytes, the largest block for which the sum-of-sums cannot
// overflow 32 bits even on all-0xFF input.
func Adler32(data []byte, initial uint32) uint32 {
	lower := initial & 0xFFFF
	upper := initial >> 16 & 0xFFFF

	for len(data) > 0 {
		block := data
		if len(block) > adlerBlockSize {
			block = block[:adlerBlockSize]
		}
		data = data[len(block):]

		for _, b := range block {
			lower += uint32(b)
			upper += lower
		}

		lower %= adlerModulus
		upper %= adlerModulus
	}

	// Normalize an out-of-range initial value even for empty input.
	lower %= adlerModulus
	upper %= adlerModulus

	return upper<<16 | lower
}

package zinflate

import "fmt"

// bitStream pulls bits out of a byte slice least-significant-bit first per
// byte, the order DEFLATE uses. It never allocates and never reads past the
// slice: a request that cannot be satisfied fails with ErrBoundsViolation
// instead of zero-filling.
//
// At rest the accumulator holds at most 7 bits (the remainder of the last
// consumed byte); it only grows past that transiently inside getValue, which
// is why it is a uint64 even though a caller can request at most 32 bits.
type bitStream struct {
	data []byte // Compressed input, read-only.
	off  int    // Index of the next byte to pull into the accumulator.
	acc  uint64 // Consumed-but-unread bits, lowest bit is the next one out.
	n    uint   // Valid bits in acc.
}

// newBitStream starts a stream at byte start of data.
func newBitStream(data []byte, start int) (*bitStream, error) {
	if start < 0 || start > len(data) {
		return nil, fmt.Errorf("%w: start offset %d outside buffer of %d bytes",
			ErrInvalidArgument, start, len(data))
	}

	return &bitStream{data: data, off: start}, nil
}

// getValue returns the next count bits as an unsigned integer, 0 <= count <= 32.
// count 0 returns 0 without consuming anything.
func (bs *bitStream) getValue(count uint) (uint32, error) {
	if count > 32 {
		return 0, fmt.Errorf("%w: bit count %d exceeds 32", ErrInvalidArgument, count)
	}
	if count == 0 {
		return 0, nil
	}

	for bs.n < count {
		if bs.off >= len(bs.data) {
			return 0, fmt.Errorf("%w: need %d bits at byte offset %d, input exhausted",
				ErrBoundsViolation, count-bs.n, bs.off)
		}

		bs.acc |= uint64(bs.data[bs.off]) << bs.n
		bs.off++
		bs.n += 8
	}

	value := uint32(bs.acc & (1<<count - 1))
	bs.acc >>= count
	bs.n -= count

	return value, nil
}

// alignToByte discards the partial-byte remainder so the next read starts on
// a byte boundary. Stored blocks and the zlib trailer are byte-aligned.
func (bs *bitStream) alignToByte() {
	bs.acc = 0
	bs.n = 0
}

// offset returns the index of the next unconsumed byte. Only meaningful after
// alignToByte; with bits still buffered it points past them.
func (bs *bitStream) offset() int {
	return bs.off
}

// skip advances the byte offset without touching the accumulator. Used for
// stored-block payloads, which bypass bit accumulation entirely.
func (bs *bitStream) skip(count int) {
	bs.off += count
}

// remaining returns the number of unconsumed whole bytes.
func (bs *bitStream) remaining() int {
	return len(bs.data) - bs.off
}

// msbBitStream is the most-significant-bit-first variant used by sibling
// codecs (LZX, LZXPRESS); DEFLATE never touches it. It is a separate type so
// each bit order has exactly one decode path, picked when the stream is
// opened rather than branched on per read.
type msbBitStream struct {
	data []byte
	off  int
	acc  uint64
	n    uint
}

func newMSBBitStream(data []byte, start int) (*msbBitStream, error) {
	if start < 0 || start > len(data) {
		return nil, fmt.Errorf("%w: start offset %d outside buffer of %d bytes",
			ErrInvalidArgument, start, len(data))
	}

	return &msbBitStream{data: data, off: start}, nil
}

// getValue returns the next count bits, taken from the top of each byte first.
func (bs *msbBitStream) getValue(count uint) (uint32, error) {
	if count > 32 {
		return 0, fmt.Errorf("%w: bit count %d exceeds 32", ErrInvalidArgument, count)
	}
	if count == 0 {
		return 0, nil
	}

	for bs.n < count {
		if bs.off >= len(bs.data) {
			return 0, fmt.Errorf("%w: need %d bits at byte offset %d, input exhausted",
				ErrBoundsViolation, count-bs.n, bs.off)
		}

		bs.acc = bs.acc<<8 | uint64(bs.data[bs.off])
		bs.off++
		bs.n += 8
	}

	bs.n -= count
	value := uint32(bs.acc >> bs.n)
	bs.acc &= 1<<bs.n - 1

	return value, nil
}

package zinflate

import (
	"fmt"
	"sync"
)

// deflateState carries one decode call: the bit stream over the compressed
// input and the caller-sized output buffer with its write cursor. Nothing in
// it survives the call.
type deflateState struct {
	bits *bitStream
	out  []byte // Fixed capacity, caller-owned.
	pos  int    // Write cursor; produced output is out[:pos].
}

// Fixed-Huffman trees are the same for every stream; build them on first use
// and never touch them again (they are shared across concurrent calls).
var (
	fixedOnce      sync.Once
	fixedLiterals  *huffmanTree
	fixedDistances *huffmanTree
)

// fixedTrees returns the RFC 1951 section 3.2.6 static trees. The literal
// alphabet is the full 288-symbol code space (sizes 8/9/7/8 by range); the
// distance alphabet is all 32 five-bit codes, of which 30 and 31 never occur
// in valid data and fail later as out-of-range distance symbols.
func fixedTrees() (*huffmanTree, *huffmanTree) {
	fixedOnce.Do(func() {
		var literalSizes [MaxLiteralCodes]uint8
		for symbol := range literalSizes {
			switch {
			case symbol < 144:
				literalSizes[symbol] = 8
			case symbol < 256:
				literalSizes[symbol] = 9
			case symbol < 280:
				literalSizes[symbol] = 7
			default:
				literalSizes[symbol] = 8
			}
		}

		var distanceSizes [MaxDistanceCodes]uint8
		for symbol := range distanceSizes {
			distanceSizes[symbol] = 5
		}

		// Both tables are complete by construction; an error here is a bug.
		var err error
		if fixedLiterals, err = buildHuffmanTree(literalSizes[:], maxLiteralCodeSize); err != nil {
			panic("zinflate: fixed literal tree: " + err.Error())
		}
		if fixedDistances, err = buildHuffmanTree(distanceSizes[:], maxLiteralCodeSize); err != nil {
			panic("zinflate: fixed distance tree: " + err.Error())
		}
	})

	return fixedLiterals, fixedDistances
}

// decodeBlock decodes one DEFLATE block and reports whether it carried the
// final-block flag.
func (d *deflateState) decodeBlock() (last bool, err error) {
	lastBit, err := d.bits.getValue(1)
	if err != nil {
		return false, err
	}

	blockType, err := d.bits.getValue(2)
	if err != nil {
		return false, err
	}

	switch blockType {
	case blockTypeStored:
		err = d.decodeStored()
	case blockTypeFixed:
		literals, distances := fixedTrees()
		err = d.decodeCompressed(literals, distances)
	case blockTypeDynamic:
		var literals, distances *huffmanTree
		if literals, distances, err = d.readDynamicTrees(); err == nil {
			err = d.decodeCompressed(literals, distances)
		}
	case blockTypeInvalid:
		err = fmt.Errorf("%w: reserved block type 3 at byte offset %d",
			ErrUnsupportedValue, d.bits.offset())
	}

	return lastBit == 1, err
}

// decodeStored copies a raw block: byte-align, LEN and its one's complement
// NLEN, then LEN bytes straight from the input bypassing the bit accumulator.
func (d *deflateState) decodeStored() error {
	d.bits.alignToByte()

	if d.bits.remaining() < 4 {
		return fmt.Errorf("%w: stored block header needs 4 bytes, %d left at byte offset %d",
			ErrBoundsViolation, d.bits.remaining(), d.bits.offset())
	}

	data := d.bits.data
	off := d.bits.offset()
	size := int(data[off]) | int(data[off+1])<<8
	check := int(data[off+2]) | int(data[off+3])<<8
	d.bits.skip(4)

	if size^0xFFFF != check {
		return fmt.Errorf("%w: stored block length 0x%04x does not complement 0x%04x",
			ErrCorruptData, size, check)
	}
	if d.bits.remaining() < size {
		return fmt.Errorf("%w: stored block of %d bytes, %d left at byte offset %d",
			ErrBoundsViolation, size, d.bits.remaining(), d.bits.offset())
	}
	if d.pos+size > len(d.out) {
		return fmt.Errorf("%w: stored block of %d bytes exceeds output capacity %d at position %d",
			ErrBoundsViolation, size, len(d.out), d.pos)
	}

	copy(d.out[d.pos:], data[d.bits.offset():d.bits.offset()+size])
	d.bits.skip(size)
	d.pos += size

	return nil
}

// readDynamicTrees parses the dynamic block header: the HLIT/HDIST/HCLEN
// counts, the permuted pre-tree code sizes, then the run-length-encoded code
// sizes for both alphabets decoded with the pre-tree.
func (d *deflateState) readDynamicTrees() (literals, distances *huffmanTree, err error) {
	hlit, err := d.bits.getValue(5)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := d.bits.getValue(5)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := d.bits.getValue(4)
	if err != nil {
		return nil, nil, err
	}

	literalCount := int(hlit) + 257
	distanceCount := int(hdist) + 1
	preCount := int(hclen) + 4

	if literalCount > maxDefinedLiterals {
		return nil, nil, fmt.Errorf("%w: %d literal/length codes, maximum is %d",
			ErrCorruptData, literalCount, maxDefinedLiterals)
	}
	if distanceCount > maxDefinedDistances {
		return nil, nil, fmt.Errorf("%w: %d distance codes, maximum is %d",
			ErrCorruptData, distanceCount, maxDefinedDistances)
	}

	var preSizes [MaxPreCodes]uint8
	for i := 0; i < preCount; i++ {
		size, err := d.bits.getValue(3)
		if err != nil {
			return nil, nil, err
		}
		preSizes[preCodeOrder[i]] = uint8(size)
	}

	preTree, err := buildHuffmanTree(preSizes[:], maxPreCodeSize)
	if err != nil {
		return nil, nil, err
	}

	// Both alphabets share one run-length-encoded size sequence; repeats may
	// cross the literal/distance boundary, so decode into a single array.
	var codeSizes [maxCodeSizesCount]uint8
	total := literalCount + distanceCount

	for filled := 0; filled < total; {
		symbol, err := preTree.readSymbol(d.bits)
		if err != nil {
			return nil, nil, err
		}

		var repeat int
		var value uint8
		switch {
		case symbol < 16:
			codeSizes[filled] = uint8(symbol)
			filled++
			continue
		case symbol == 16:
			if filled == 0 {
				return nil, nil, fmt.Errorf("%w: repeat code 16 with no previous code size",
					ErrCorruptData)
			}
			extra, err := d.bits.getValue(2)
			if err != nil {
				return nil, nil, err
			}
			repeat = 3 + int(extra)
			value = codeSizes[filled-1]
		case symbol == 17:
			extra, err := d.bits.getValue(3)
			if err != nil {
				return nil, nil, err
			}
			repeat = 3 + int(extra)
		default: // 18
			extra, err := d.bits.getValue(7)
			if err != nil {
				return nil, nil, err
			}
			repeat = 11 + int(extra)
		}

		if filled+repeat > total {
			return nil, nil, fmt.Errorf("%w: repeat of %d code sizes overruns the %d-entry table at %d",
				ErrCorruptData, repeat, total, filled)
		}
		for ; repeat > 0; repeat-- {
			codeSizes[filled] = value
			filled++
		}
	}

	if codeSizes[endOfBlockSymbol] == 0 {
		return nil, nil, fmt.Errorf("%w: end-of-block symbol has no code", ErrCorruptData)
	}

	if literals, err = buildHuffmanTree(codeSizes[:literalCount], maxLiteralCodeSize); err != nil {
		return nil, nil, fmt.Errorf("literal/length tree: %w", err)
	}

	// A block with no back-references may carry an all-zero distance table.
	// Keep the tree nil; a length symbol in such a block is then corrupt.
	used := false
	for _, size := range codeSizes[literalCount:total] {
		if size != 0 {
			used = true
			break
		}
	}
	if used {
		if distances, err = buildHuffmanTree(codeSizes[literalCount:total], maxLiteralCodeSize); err != nil {
			return nil, nil, fmt.Errorf("distance tree: %w", err)
		}
	}

	return literals, distances, nil
}

// decodeCompressed runs the symbol loop shared by fixed and dynamic blocks:
// literals below 256 are emitted as bytes, 256 ends the block, 257..285 start
// a back-reference whose length and distance come from the base/extra tables.
func (d *deflateState) decodeCompressed(literals, distances *huffmanTree) error {
	for {
		symbol, err := literals.readSymbol(d.bits)
		if err != nil {
			return err
		}

		if symbol < endOfBlockSymbol {
			if d.pos >= len(d.out) {
				return fmt.Errorf("%w: literal exceeds output capacity %d",
					ErrBoundsViolation, len(d.out))
			}
			d.out[d.pos] = byte(symbol)
			d.pos++
			continue
		}
		if symbol == endOfBlockSymbol {
			return nil
		}
		if symbol > lastLengthSymbol {
			return fmt.Errorf("%w: literal/length symbol %d out of range",
				ErrCorruptData, symbol)
		}

		if distances == nil {
			return fmt.Errorf("%w: back-reference in a block with no distance codes",
				ErrCorruptData)
		}

		lengthIndex := symbol - firstLengthSymbol
		extra, err := d.bits.getValue(uint(lengthExtraBits[lengthIndex]))
		if err != nil {
			return err
		}
		length := int(lengthBase[lengthIndex]) + int(extra)

		distanceSymbol, err := distances.readSymbol(d.bits)
		if err != nil {
			return err
		}
		if distanceSymbol >= maxDefinedDistances {
			return fmt.Errorf("%w: distance symbol %d out of range",
				ErrCorruptData, distanceSymbol)
		}

		extra, err = d.bits.getValue(uint(distanceExtraBits[distanceSymbol]))
		if err != nil {
			return err
		}
		distance := int(distanceBase[distanceSymbol]) + int(extra)

		if distance > d.pos {
			return fmt.Errorf("%w: back-reference distance %d exceeds %d bytes of history",
				ErrBoundsViolation, distance, d.pos)
		}
		if d.pos+length > len(d.out) {
			return fmt.Errorf("%w: back-reference of %d bytes exceeds output capacity %d at position %d",
				ErrBoundsViolation, length, len(d.out), d.pos)
		}

		// Overlapping back-reference (distance < length): the copy source
		// aliases into bytes written by this same copy, so each byte must be
		// visible to the next read. copy(dst, src) does not handle overlap.
		from := d.pos - distance
		for i := 0; i < length; i++ {
			d.out[d.pos+i] = d.out[from+i]
		}
		d.pos += length
	}
}

// inflate decodes a raw DEFLATE block stream from bits into out and returns
// the produced length.
func inflate(bits *bitStream, out []byte) (int, error) {
	d := &deflateState{bits: bits, out: out}

	for {
		last, err := d.decodeBlock()
		if err != nil {
			return d.pos, err
		}
		if last {
			return d.pos, nil
		}
	}
}

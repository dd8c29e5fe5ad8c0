package zinflate

import "fmt"

// huffmanTree is a canonical Huffman decode table built from per-symbol code
// sizes alone. Canonical assignment (RFC 1951 section 3.2.2) gives codes of
// equal size consecutive values in ascending symbol order, so the whole code
// can be reconstructed from three small per-size arrays:
//
//	counts[s]      number of codes of size s
//	firstCodes[s]  code value assigned to the first symbol of size s
//	firstIndex[s]  position of that symbol in the canonical symbol table
//
// readSymbol walks those boundaries one bit at a time; no full lookup table
// is materialized.
type huffmanTree struct {
	maxCodeSize int
	counts      [maxLiteralCodeSize + 1]uint16
	firstCodes  [maxLiteralCodeSize + 1]uint32
	firstIndex  [maxLiteralCodeSize + 1]uint16
	symbols     [MaxLiteralCodes]uint16 // Symbols in canonical (size, index) order.
	degenerate  bool                    // Single length-1 code; its unassigned sibling is invalid.
}

// buildHuffmanTree derives the decode table from codeSizes, where
// codeSizes[i] is the size in bits of symbol i's code and 0 means the symbol
// is absent. The size histogram must describe a complete prefix code: an
// over-subscribed set is always rejected, an under-subscribed one is rejected
// unless it is the degenerate single-code case (exactly one symbol, size 1)
// that encoders emit for an alphabet with one used symbol.
func buildHuffmanTree(codeSizes []uint8, maxCodeSize int) (*huffmanTree, error) {
	if len(codeSizes) == 0 || len(codeSizes) > MaxLiteralCodes {
		return nil, fmt.Errorf("%w: symbol count %d outside 1..%d",
			ErrInvalidArgument, len(codeSizes), MaxLiteralCodes)
	}
	if maxCodeSize < 1 || maxCodeSize > maxLiteralCodeSize {
		return nil, fmt.Errorf("%w: maximum code size %d outside 1..%d",
			ErrInvalidArgument, maxCodeSize, maxLiteralCodeSize)
	}

	tree := &huffmanTree{maxCodeSize: maxCodeSize}

	assigned := 0
	for symbol, size := range codeSizes {
		if int(size) > maxCodeSize {
			return nil, fmt.Errorf("%w: symbol %d has code size %d, maximum is %d",
				ErrCorruptData, symbol, size, maxCodeSize)
		}
		if size > 0 {
			tree.counts[size]++
			assigned++
		}
	}

	if assigned == 0 {
		return nil, fmt.Errorf("%w: code size table is empty", ErrCorruptData)
	}

	// Kraft check: starting from one slot of size zero, each extra bit doubles
	// the available slots and each code of that size takes one. Negative means
	// over-subscribed; leftovers at the end mean the tree is incomplete.
	available := 1
	for size := 1; size <= maxCodeSize; size++ {
		available <<= 1
		available -= int(tree.counts[size])
		if available < 0 {
			return nil, fmt.Errorf("%w: over-subscribed code sizes at size %d",
				ErrCorruptData, size)
		}
	}
	if available > 0 {
		if assigned != 1 || tree.counts[1] != 1 {
			return nil, fmt.Errorf("%w: incomplete code sizes, %d of %d slots unfilled",
				ErrCorruptData, available, 1<<maxCodeSize)
		}
		tree.degenerate = true
	}

	// Canonical assignment: codes of size s start where the size s-1 codes
	// left off, shifted one bit left.
	code := uint32(0)
	index := uint16(0)
	for size := 1; size <= maxCodeSize; size++ {
		tree.firstCodes[size] = code
		tree.firstIndex[size] = index
		code = (code + uint32(tree.counts[size])) << 1
		index += tree.counts[size]
	}

	next := tree.firstIndex
	for symbol, size := range codeSizes {
		if size == 0 {
			continue
		}
		tree.symbols[next[size]] = uint16(symbol)
		next[size]++
	}

	return tree, nil
}

// readSymbol decodes one symbol from the stream. DEFLATE packs each code most
// significant bit first, so bits are pulled one at a time and appended at the
// bottom of the running code value; after each bit the value is either below
// the first code of the next size (a hit at the current size) or decoding
// continues. More than maxCodeSize bits without a hit is corrupt input.
func (t *huffmanTree) readSymbol(bs *bitStream) (int, error) {
	code := uint32(0)
	for size := 1; size <= t.maxCodeSize; size++ {
		bit, err := bs.getValue(1)
		if err != nil {
			return 0, err
		}
		code = code<<1 | bit

		count := uint32(t.counts[size])
		first := t.firstCodes[size]
		if code < first+count {
			return int(t.symbols[uint32(t.firstIndex[size])+(code-first)]), nil
		}
	}

	return 0, fmt.Errorf("%w: no code of size <= %d matches at byte offset %d",
		ErrCorruptData, t.maxCodeSize, bs.off)
}

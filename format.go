package zinflate

// RFC 1951 DEFLATE and RFC 1950 zlib format constants.
const (
	MaxWindowSize = 32768 // Largest zlib window (2^(info+8), info <= 7) and largest back-reference distance.

	MaxLiteralCodes  = 288 // Literal/length alphabet capacity (286 defined + 2 reserved in the fixed code space).
	MaxDistanceCodes = 32  // Distance alphabet capacity (30 defined + 2 reserved in the fixed code space).
	MaxPreCodes      = 19  // Code-length (pre-tree) alphabet size.

	maxLiteralCodeSize  = 15 // Longest literal/length or distance code.
	maxPreCodeSize      = 7  // Longest code-length code.
	endOfBlockSymbol    = 256
	firstLengthSymbol   = 257
	lastLengthSymbol    = 285
	maxDefinedLiterals  = 286 // HLIT upper bound.
	maxDefinedDistances = 30  // HDIST upper bound.

	// Dynamic-header scratch: one shared array holds both alphabets' code sizes.
	maxCodeSizesCount = maxDefinedLiterals + maxDefinedDistances // 316
)

// Block types (2-bit field after the final-block flag).
const (
	blockTypeStored  = 0
	blockTypeFixed   = 1
	blockTypeDynamic = 2
	blockTypeInvalid = 3 // Reserved by the RFC.
)

// zlib container fields.
const (
	zlibMethodDeflate    = 8
	zlibHeaderSize       = 2
	zlibDictionaryIDSize = 4
	zlibTrailerSize      = 4
	flagPresetDictionary = 0x20 // FLG bit 5 (FDICT).
)

// Adler-32 parameters: largest prime below 65536, and the largest run of
// 0xFF bytes the 32-bit sums can absorb before a reduction is required.
const (
	adlerModulus   = 65521
	adlerBlockSize = 5552
)

// Order in which the pre-tree code sizes appear in a dynamic block header.
var preCodeOrder = [MaxPreCodes]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Match length decoding tables for symbols 257..285 (RFC 1951 section 3.2.5).
var (
	lengthBase = [29]uint16{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
		35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
	lengthExtraBits = [29]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
)

// Match distance decoding tables for symbols 0..29.
var (
	distanceBase = [30]uint16{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
		257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
		8193, 12289, 16385, 24577,
	}
	distanceExtraBits = [30]uint8{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
		7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
)

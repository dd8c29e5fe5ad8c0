package zinflate

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func benchZlib(b *testing.B, level int) []byte {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := w.Write(benchInput); err != nil {
		b.Fatal(err)
	}
	if err := w.Close(); err != nil {
		b.Fatal(err)
	}

	return buf.Bytes()
}

func BenchmarkDecompress(b *testing.B) {
	src := benchZlib(b, zlib.BestCompression)
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(src, len(benchInput), nil)
	}
}

func BenchmarkDecompressLevels(b *testing.B) {
	levels := []int{zlib.NoCompression, zlib.BestSpeed, zlib.DefaultCompression, zlib.BestCompression}
	for _, level := range levels {
		src := benchZlib(b, level)
		b.Run(fmt.Sprintf("Level=%d", level), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(benchInput)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Decompress(src, len(benchInput), nil)
			}
		})
	}
}

func BenchmarkDecompressRaw(b *testing.B) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := w.Write(benchInput); err != nil {
		b.Fatal(err)
	}
	if err := w.Close(); err != nil {
		b.Fatal(err)
	}
	src := buf.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecompressRaw(src, len(benchInput), nil)
	}
}

func BenchmarkAdler32(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Adler32(benchInput, 1)
	}
}

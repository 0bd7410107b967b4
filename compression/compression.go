package compression

import "strings"

// UnknownSize is passed to Decompress when the decompressed length is not
// known and the backend has to estimate it.
const UnknownSize = -1

// Compressor is a byte-level compression backend. Instances keep reusable
// encoder state and must not be shared between goroutines.
type Compressor interface {
	GetAlgorithm() Algorithm
	// Compress appends the compressed form of src to dst and returns the
	// extended buffer. On error dst is returned at its original length.
	Compress(dst, src []byte) ([]byte, error)
	Close()
}

// Decompressor is a byte-level decompression backend. Instances keep
// reusable decoder state and must not be shared between goroutines.
type Decompressor interface {
	GetAlgorithm() Algorithm
	// Decompress appends the decompressed form of src to dst and returns
	// the extended buffer. size is the expected decompressed length in
	// bytes, or UnknownSize. On error dst is returned at its original length.
	Decompress(dst, src []byte, size int) ([]byte, error)
	Close()
}

// Algorithm selects a compression codec. Values up to LZ4Raw match the
// parquet-format CompressionCodec numbering.
type Algorithm int

const (
	Uncompressed Algorithm = 0
	Snappy       Algorithm = 1
	Gzip         Algorithm = 2
	LZO          Algorithm = 3
	Brotli       Algorithm = 4
	// LZ4 is the deprecated Hadoop-framed LZ4.
	LZ4      Algorithm = 5
	Zstd     Algorithm = 6
	LZ4Raw   Algorithm = 7
	LZ4Frame Algorithm = 8
	Numeric  Algorithm = 9
)

var algorithmNames = map[Algorithm]string{
	Uncompressed: "UNCOMPRESSED",
	Snappy:       "SNAPPY",
	Gzip:         "GZIP",
	LZO:          "LZO",
	Brotli:       "BROTLI",
	LZ4:          "LZ4",
	Zstd:         "ZSTD",
	LZ4Raw:       "LZ4_RAW",
	LZ4Frame:     "LZ4_FRAME",
	Numeric:      "NUMERIC",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseAlgorithm returns the Algorithm with the given name, ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, unsupportedAlgorithm(s)
}

// SupportedAlgorithms returns the algorithms NewCodec can construct.
func SupportedAlgorithms() []Algorithm {
	return []Algorithm{Snappy, Gzip, Brotli, LZ4, Zstd, LZ4Raw, LZ4Frame, Numeric}
}

package main

import (
	"fmt"
	"slices"

	"github.com/hstreamdb/hstream-codec/column"
	"github.com/hstreamdb/hstream-codec/compression"
	"github.com/hstreamdb/hstream-codec/util"
	"go.uber.org/zap"
)

func main() {
	defer util.Sync()
	// util.SetLogLevel(util.DEBUG)

	timestamps := make([]int64, 4096)
	for i := range timestamps {
		timestamps[i] = 1_700_000_000_000 + int64(i)*250
	}
	in := column.NewSlice(timestamps...)
	size := column.EncodedLen(in)

	for _, alg := range compression.SupportedAlgorithms() {
		codec, err := compression.NewCodec(alg)
		if err != nil {
			panic(err)
		}

		compressed, err := codec.Compress(nil, in)
		if err != nil {
			util.Logger().Error("compress failed", zap.String("algorithm", alg.String()), zap.Error(err))
			codec.Close()
			continue
		}

		out := column.NewSlice[int64]()
		if _, err = codec.Decompress(compressed, out, size); err != nil {
			util.Logger().Error("decompress failed", zap.String("algorithm", alg.String()), zap.Error(err))
			codec.Close()
			continue
		}
		codec.Close()

		fmt.Printf("%-10s %7d -> %6d bytes, intact: %v\n", alg, size, len(compressed), slices.Equal(in.Data, out.Data))
	}
}


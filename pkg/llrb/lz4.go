package llrb

import (
	"encoding/binary"

	"github.com/pierrec/lz4/v4"
)

const wordSize = 4

// compressWords LZ4-compresses a slice of uint32 words. A nil result
// means the input could not be compressed; callers must keep the
// original in that case.
func compressWords(words []uint32) []byte {
	raw := make([]byte, len(words)*wordSize)
	for i, w := range words {
		binary.LittleEndian.PutUint32(raw[i*wordSize:], w)
	}

	dst := make([]byte, lz4.CompressBlockBound(len(raw)))

	written, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil || written == 0 {
		return nil
	}

	return dst[:written]
}

// decompressWords reverses compressWords into the preallocated result
// slice, whose length must equal the original word count.
func decompressWords(data []byte, result []uint32) error {
	raw := make([]byte, len(result)*wordSize)

	if _, err := lz4.UncompressBlock(data, raw); err != nil {
		return err
	}

	for i := range result {
		result[i] = binary.LittleEndian.Uint32(raw[i*wordSize:])
	}

	return nil
}

package flat

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// The vector artifact layout: uint32 row count, uint32 dimension, then
// count*dim float32 values, all little-endian.
const vectorsHeaderSize = 8

// encodeVectors serialises the embedding matrix.
func encodeVectors(vectors [][]float32, dim int) []byte {
	buf := make([]byte, vectorsHeaderSize+len(vectors)*dim*4)
	binary.LittleEndian.PutUint32(buf[0:], uint32(len(vectors)))
	binary.LittleEndian.PutUint32(buf[4:], uint32(dim))

	offset := vectorsHeaderSize
	for _, vec := range vectors {
		for _, f := range vec {
			binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(f))
			offset += 4
		}
	}
	return buf
}

// decodeVectors reads the embedding matrix from the artifact file.
func decodeVectors(path string) ([][]float32, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(data) < vectorsHeaderSize {
		return nil, 0, fmt.Errorf("truncated header (%d bytes)", len(data))
	}

	count := int(binary.LittleEndian.Uint32(data[0:]))
	dim := int(binary.LittleEndian.Uint32(data[4:]))
	if len(data) != vectorsHeaderSize+count*dim*4 {
		return nil, 0, fmt.Errorf("expected %d bytes for %d x %d vectors, got %d",
			vectorsHeaderSize+count*dim*4, count, dim, len(data))
	}

	vectors := make([][]float32, count)
	offset := vectorsHeaderSize
	for i := range vectors {
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
			offset += 4
		}
		vectors[i] = vec
	}
	return vectors, dim, nil
}

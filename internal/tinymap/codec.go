package tinymap

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("creating zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("creating zstd decoder: %v", err))
	}
}

// EncodeSubmap serializes a submap to a zstd-compressed JSON blob for
// storage.
func EncodeSubmap(sm *Submap) ([]byte, error) {
	raw, err := json.Marshal(sm)
	if err != nil {
		return nil, fmt.Errorf("marshaling submap: %w", err)
	}
	return encoder.EncodeAll(raw, nil), nil
}

// DecodeSubmap deserializes a blob produced by EncodeSubmap.
func DecodeSubmap(blob []byte) (*Submap, error) {
	raw, err := decoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing submap blob: %w", err)
	}
	var sm Submap
	if err := json.Unmarshal(raw, &sm); err != nil {
		return nil, fmt.Errorf("unmarshaling submap: %w", err)
	}
	return &sm, nil
}

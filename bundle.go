package blockstate

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
	"github.com/oomph-ac/blockstate/oerror"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// The two data bundles are gzip-compressed big-endian NBT, regenerated by
// an external data step. Their layout is private to this package.

type bundleStates struct {
	States []stateRow `nbt:"states"`
}

type stateRow struct {
	ID         int32     `nbt:"id"`
	Name       string    `nbt:"name"`
	Properties []pairRow `nbt:"properties"`
	Default    uint8     `nbt:"default"`
}

type pairRow struct {
	Name  string `nbt:"name"`
	Value string `nbt:"value"`
}

type bundleBlocks struct {
	Blocks []kindRow `nbt:"blocks"`
}

type kindRow struct {
	Name       string        `nbt:"name"`
	Properties []propertyRow `nbt:"properties"`
}

type propertyRow struct {
	Name   string   `nbt:"name"`
	Type   string   `nbt:"type"`
	Values []string `nbt:"values"`
}

func decodeStateBundle(data []byte) ([]stateRow, error) {
	var b bundleStates
	if err := decodeBundle(data, &b); err != nil {
		return nil, oerror.New("state bundle: %v", err)
	}
	return b.States, nil
}

func decodePropertyBundle(data []byte) ([]kindRow, error) {
	var b bundleBlocks
	if err := decodeBundle(data, &b); err != nil {
		return nil, oerror.New("property bundle: %v", err)
	}
	return b.Blocks, nil
}

func decodeBundle(data []byte, v any) error {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer r.Close()
	return nbt.NewDecoderWithEncoding(r, nbt.BigEndian).Decode(v)
}

func (r propertyRow) propertyType() (PropertyType, bool) {
	switch r.Type {
	case "bool":
		return PropertyBool, true
	case "int":
		return PropertyInt, true
	case "enum":
		return PropertyEnum, true
	}
	return 0, false
}

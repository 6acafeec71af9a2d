package blockstate

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/oomph-ac/blockstate/internal"
	"github.com/zeebo/xxh3"
)

// StateProperty is one (name, value) pair of a state's untyped string
// representation, e.g. ("facing", "north").
type StateProperty struct {
	Name  string
	Value string
}

// RawProperties is the canonical key of a block state: the owning kind
// plus the normalized value of every property that distinguishes states of
// that kind. Values are bool, int32 or string depending on the property
// type. Entries are kept sorted by property name.
type RawProperties struct {
	kind    BlockKind
	entries []propertyEntry
}

type propertyEntry struct {
	name  string
	value any
}

// Kind returns the block kind the properties belong to.
func (p *RawProperties) Kind() BlockKind {
	return p.kind
}

// Value returns the normalized value of the named property.
func (p *RawProperties) Value(name string) (any, bool) {
	for _, e := range p.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return nil, false
}

// Set overwrites the named property's value. Setting a property the kind
// does not have inserts it, producing a key that matches no state.
func (p *RawProperties) Set(name string, value any) {
	for i, e := range p.entries {
		if e.name == name {
			p.entries[i].value = value
			return
		}
	}
	p.entries = append(p.entries, propertyEntry{name: name, value: value})
	sort.Slice(p.entries, func(i, j int) bool {
		return p.entries[i].name < p.entries[j].name
	})
}

func (p *RawProperties) clone() RawProperties {
	c := RawProperties{kind: p.kind}
	c.entries = append(make([]propertyEntry, 0, len(p.entries)), p.entries...)
	return c
}

func (p *RawProperties) equal(o *RawProperties) bool {
	if p.kind != o.kind || len(p.entries) != len(o.entries) {
		return false
	}
	for i, e := range p.entries {
		if o.entries[i] != e {
			return false
		}
	}
	return true
}

// key hashes a type-tagged canonical encoding of the properties. Keys are
// only used as map indices; every hit is verified against the stored row,
// so a colliding key can never produce a wrong lookup result.
func (p *RawProperties) key() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	var kind [2]byte
	binary.LittleEndian.PutUint16(kind[:], uint16(p.kind))
	buf.Write(kind[:])
	for _, e := range p.entries {
		buf.WriteString(e.name)
		buf.WriteByte(0)
		switch v := e.value.(type) {
		case bool:
			if v {
				buf.WriteString("b1")
			} else {
				buf.WriteString("b0")
			}
		case int32:
			var n [4]byte
			binary.LittleEndian.PutUint32(n[:], uint32(v))
			buf.WriteByte('i')
			buf.Write(n[:])
		case string:
			buf.WriteByte('s')
			buf.WriteString(v)
		default:
			// Normalize only ever produces the three types above.
			panic("invalid property value type")
		}
		buf.WriteByte(0)
	}
	return xxh3.Hash(buf.Bytes())
}

// untypedKey hashes the stable representation of a state: its namespaced
// id plus the ordered (name, value) string pairs. The pair order is part
// of the key.
func untypedKey(namespacedID string, properties []StateProperty) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	buf.WriteString(namespacedID)
	buf.WriteByte(0)
	for _, p := range properties {
		buf.WriteString(p.Name)
		buf.WriteByte('=')
		buf.WriteString(p.Value)
		buf.WriteByte(0)
	}
	return xxh3.Hash(buf.Bytes())
}

func untypedEqual(a, b []StateProperty) bool {
	if len(a) != len(b) {
		return false
	}
	for i, p := range a {
		if b[i] != p {
			return false
		}
	}
	return true
}

// RawBlockState is one row of the state table. Rows are immutable once the
// registry is built; callers always reach them through a state id rather
// than holding references.
type RawBlockState struct {
	// ID equals the row's index in the state table.
	ID uint16
	// Kind is the block kind the state belongs to.
	Kind BlockKind
	// Properties is the normalized, typed encoding of the state's
	// property values.
	Properties RawProperties
	// UntypedProperties is the (name, value) string form of Properties in
	// canonical order, used for persistence and diagnostics.
	UntypedProperties []StateProperty
	// Default reports whether this is the kind's default state.
	Default bool
}

package blockstate

import (
	"strings"

	"github.com/oomph-ac/blockstate/assert"
	"github.com/oomph-ac/blockstate/oerror"
)

// BlockState is a handle to one block state: a specific combination of a
// block kind and property values, such as a single chest facing north. It
// wraps nothing but the state's numeric id, so it is cheap to copy, store
// per voxel and compare; equality and hashing follow the id alone. All
// other data is reached through the global registry.
//
// Numeric ids are only stable within one process run. To persist a state,
// store NamespacedID and PropertyValues instead and restore it with
// StateByNamespacedID.
type BlockState struct {
	id uint16
}

// New returns the default state of the kind, e.g. an unlit furnace facing
// north for KindFurnace. It panics if the kind has no registered default,
// which cannot happen for any kind present in the bundled data.
func New(kind BlockKind) BlockState {
	s, ok := Global().defaultState(kind)
	if !ok {
		panic(oerror.New("blockstate: no default state for kind %d", kind))
	}
	return s
}

// StateByID returns the state with the given numeric id. It is the
// constructor to use for externally sourced ids: the second return is
// false if the id indexes no state.
func StateByID(id uint16) (BlockState, bool) {
	if Global().rawState(id) == nil {
		return BlockState{}, false
	}
	return BlockState{id: id}, true
}

// StateByNamespacedID returns the state with the given namespaced kind id
// and property pairs, matching the exact pairs and order produced by
// PropertyValues. The second return is false if no state matches.
func StateByNamespacedID(namespacedID string, properties []StateProperty) (BlockState, bool) {
	id, ok := Global().idForUntyped(namespacedID, properties)
	if !ok {
		return BlockState{}, false
	}
	return BlockState{id: id}, true
}

// ID returns the state's numeric id. Ids are dense, 0-based and stable
// only within the current process run.
func (s BlockState) ID() uint16 {
	return s.id
}

// IsValid reports whether the state's id indexes a row of the loaded
// state table. Ids persisted or received from an incompatible registry
// build may be invalid; every other accessor requires a valid state.
func (s BlockState) IsValid() bool {
	return Global().rawState(s.id) != nil
}

// Kind returns the state's block kind.
func (s BlockState) Kind() BlockKind {
	return s.raw().Kind
}

// SimplifiedKind returns the coarse classification of the state's kind.
func (s BlockState) SimplifiedKind() SimplifiedKind {
	return s.Kind().SimplifiedKind()
}

// IsDefault reports whether this is the default state of its kind.
func (s BlockState) IsDefault() bool {
	return s.raw().Default
}

// NamespacedID returns the stable namespaced id of the state's kind.
// Together with PropertyValues it forms the persistent identity of the
// state.
func (s BlockState) NamespacedID() string {
	return s.Kind().NamespacedID()
}

// PropertyValues returns the (name, value) string pairs of this exact
// state in canonical order, the serialization counterpart of
// StateByNamespacedID. The returned slice is shared and must not be
// modified.
func (s BlockState) PropertyValues() []StateProperty {
	return s.raw().UntypedProperties
}

// ValidProperties returns the property domain of the state's kind, used
// by typed views to interpret property values.
func (s BlockState) ValidProperties() *ValidProperties {
	return Global().validPropertiesFor(s.raw().Kind)
}

// String renders the state for diagnostics, e.g.
// "chest[facing=north, type=single, waterlogged=false]".
func (s BlockState) String() string {
	raw := Global().rawState(s.id)
	if raw == nil {
		return "invalid"
	}
	return formatState(raw)
}

func formatState(raw *RawBlockState) string {
	if len(raw.UntypedProperties) == 0 {
		return raw.Kind.String()
	}
	var b strings.Builder
	b.WriteString(raw.Kind.String())
	b.WriteByte('[')
	for i, p := range raw.UntypedProperties {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// raw returns the state's table row. Calling it with an id that indexes
// no row is a programming error, typically an id held across an
// incompatible registry rebuild, and panics.
func (s BlockState) raw() *RawBlockState {
	raw := Global().rawState(s.id)
	assert.IsTrue(raw != nil, "use of invalid block state id %d", s.id)
	return raw
}

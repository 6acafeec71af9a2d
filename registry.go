package blockstate

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/oomph-ac/blockstate/oerror"
	"github.com/sirupsen/logrus"
)

//go:embed asset/block_states.nbt.gz
var stateData []byte

//go:embed asset/block_properties.nbt.gz
var propertyData []byte

// Registry is an immutable index over every legal block state. It assigns
// each (kind, property values) combination a dense numeric id and converts
// between that id, typed property views and the untyped string
// representation. After construction it is never mutated, so any number of
// goroutines may use it concurrently without locking.
type Registry struct {
	states          []RawBlockState
	idByProperties  map[uint64]uint16
	idByUntyped     map[uint64]uint16
	validProperties map[BlockKind]*ValidProperties
	defaultStates   map[BlockKind]BlockState
}

var (
	global     *Registry
	globalOnce sync.Once
)

// Global returns the process-wide registry, built from the embedded data
// bundles on first use. Construction runs exactly once even under
// concurrent first access; a malformed embedded bundle panics, as it is a
// packaging defect that nothing at runtime can recover from.
func Global() *Registry {
	globalOnce.Do(func() {
		r, err := NewRegistry(stateData, propertyData, nil)
		if err != nil {
			panic(oerror.New("blockstate: %v", err))
		}
		global = r
	})
	return global
}

// NewRegistry builds a registry from a state bundle and a property bundle.
// It exists separately from Global so that tests can load alternate data.
// The returned registry is fully built and read-only. If log is nil, the
// standard logrus logger is used.
func NewRegistry(stateBundle, propertyBundle []byte, log *logrus.Logger) (*Registry, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	kinds, err := decodePropertyBundle(propertyBundle)
	if err != nil {
		return nil, err
	}
	rows, err := decodeStateBundle(stateBundle)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		states:          make([]RawBlockState, 0, len(rows)),
		idByProperties:  make(map[uint64]uint16, len(rows)),
		idByUntyped:     make(map[uint64]uint16, len(rows)),
		validProperties: make(map[BlockKind]*ValidProperties, len(kinds)),
		defaultStates:   make(map[BlockKind]BlockState, len(kinds)),
	}

	for _, row := range kinds {
		kind, ok := KindByNamespacedID(row.Name)
		if !ok {
			return nil, oerror.New("property bundle: unknown block kind %q", row.Name)
		}
		if _, ok := r.validProperties[kind]; ok {
			return nil, oerror.New("property bundle: duplicate entry for %q", row.Name)
		}
		valid := newValidProperties()
		for _, prop := range row.Properties {
			typ, ok := prop.propertyType()
			if !ok {
				return nil, oerror.New("property bundle: %q: property %q has unknown type %q", row.Name, prop.Name, prop.Type)
			}
			if len(prop.Values) == 0 {
				return nil, oerror.New("property bundle: %q: property %q has no values", row.Name, prop.Name)
			}
			if !valid.add(PropertyDef{Name: prop.Name, Type: typ, Values: prop.Values}) {
				return nil, oerror.New("property bundle: %q: duplicate property %q", row.Name, prop.Name)
			}
		}
		r.validProperties[kind] = valid
	}

	for i, row := range rows {
		if int(row.ID) != i {
			return nil, oerror.New("state bundle: row %d of %q carries id %d", i, row.Name, row.ID)
		}
		kind, ok := KindByNamespacedID(row.Name)
		if !ok {
			return nil, oerror.New("state bundle: row %d: unknown block kind %q", i, row.Name)
		}
		valid, ok := r.validProperties[kind]
		if !ok {
			return nil, oerror.New("state bundle: row %d: no property domain for %q", i, row.Name)
		}
		if len(row.Properties) != valid.Len() {
			return nil, oerror.New("state bundle: row %d: %q has %d properties, domain lists %d", i, row.Name, len(row.Properties), valid.Len())
		}

		state := RawBlockState{
			ID:                uint16(i),
			Kind:              kind,
			Properties:        RawProperties{kind: kind},
			UntypedProperties: make([]StateProperty, 0, len(row.Properties)),
			Default:           row.Default != 0,
		}
		for _, pair := range row.Properties {
			def, ok := valid.Property(pair.Name)
			if !ok {
				return nil, oerror.New("state bundle: row %d: %q has no property %q", i, row.Name, pair.Name)
			}
			value, ok := def.Normalize(pair.Value)
			if !ok {
				return nil, oerror.New("state bundle: row %d: %q is not a legal value of %q.%s", i, pair.Value, row.Name, pair.Name)
			}
			state.Properties.Set(pair.Name, value)
			state.UntypedProperties = append(state.UntypedProperties, StateProperty{Name: pair.Name, Value: pair.Value})
		}
		r.states = append(r.states, state)
	}

	for i := range r.states {
		state := &r.states[i]
		key := state.Properties.key()
		if prev, ok := r.idByProperties[key]; ok {
			return nil, oerror.New("state bundle: rows %d and %d share one property key", prev, state.ID)
		}
		r.idByProperties[key] = state.ID

		ukey := untypedKey(state.Kind.NamespacedID(), state.UntypedProperties)
		if prev, ok := r.idByUntyped[ukey]; ok {
			return nil, oerror.New("state bundle: rows %d and %d share one untyped key", prev, state.ID)
		}
		r.idByUntyped[ukey] = state.ID

		if state.Default {
			if prev, ok := r.defaultStates[state.Kind]; ok {
				return nil, oerror.New("state bundle: %q has two default states, %d and %d", state.Kind.NamespacedID(), prev.id, state.ID)
			}
			r.defaultStates[state.Kind] = BlockState{id: state.ID}
		}
	}

	// Every kind that appears in the table must have a default state.
	seen := make(map[BlockKind]struct{}, len(r.defaultStates))
	for i := range r.states {
		kind := r.states[i].Kind
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		if _, ok := r.defaultStates[kind]; !ok {
			return nil, oerror.New("state bundle: %q has no default state", kind.NamespacedID())
		}
	}

	log.Debugf("blockstate: loaded %d states across %d kinds", len(r.states), len(seen))
	return r, nil
}

// StateCount returns the number of states in the table. State ids are the
// contiguous range [0, StateCount).
func (r *Registry) StateCount() int {
	return len(r.states)
}

// Dump writes every state to w, one per line, in id order.
func (r *Registry) Dump(w io.Writer) error {
	for i := range r.states {
		state := &r.states[i]
		if _, err := fmt.Fprintf(w, "%5d %s\n", state.ID, formatState(state)); err != nil {
			return err
		}
	}
	return nil
}

// rawState returns the row the id indexes, or nil if the id is out of
// range.
func (r *Registry) rawState(id uint16) *RawBlockState {
	if int(id) >= len(r.states) {
		return nil
	}
	return &r.states[id]
}

// defaultState returns the default state of the kind.
func (r *Registry) defaultState(kind BlockKind) (BlockState, bool) {
	s, ok := r.defaultStates[kind]
	return s, ok
}

// idForProperties resolves normalized properties to a state id. The hash
// hit is verified against the stored row, keeping the lookup exact-match.
func (r *Registry) idForProperties(p *RawProperties) (uint16, bool) {
	id, ok := r.idByProperties[p.key()]
	if !ok {
		return 0, false
	}
	if !r.states[id].Properties.equal(p) {
		return 0, false
	}
	return id, true
}

// idForUntyped resolves a namespaced id plus ordered property pairs to a
// state id. The pairs must appear in the exact order stored for the state.
func (r *Registry) idForUntyped(namespacedID string, properties []StateProperty) (uint16, bool) {
	id, ok := r.idByUntyped[untypedKey(namespacedID, properties)]
	if !ok {
		return 0, false
	}
	state := &r.states[id]
	if state.Kind.NamespacedID() != namespacedID || !untypedEqual(state.UntypedProperties, properties) {
		return 0, false
	}
	return id, true
}

// validPropertiesFor returns the kind's property domain. Kinds without
// properties share one empty domain.
func (r *Registry) validPropertiesFor(kind BlockKind) *ValidProperties {
	if v, ok := r.validProperties[kind]; ok {
		return v
	}
	return noProperties
}

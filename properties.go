package blockstate

import (
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
)

// PropertyType is the value type of a block property.
type PropertyType uint8

const (
	// PropertyBool properties take the values "true" and "false".
	PropertyBool PropertyType = iota
	// PropertyInt properties take a contiguous range of integer values.
	PropertyInt
	// PropertyEnum properties take one of a fixed set of identifiers.
	PropertyEnum
)

// PropertyDef describes one property of a block kind: its name, value type
// and the string values it accepts, in canonical order.
type PropertyDef struct {
	Name   string
	Type   PropertyType
	Values []string
}

// Normalize converts the string form of a property value into its typed
// form: bool for PropertyBool, int32 for PropertyInt and the identifier
// itself for PropertyEnum. The second return is false if the value is not
// part of the property's domain.
func (d PropertyDef) Normalize(value string) (any, bool) {
	if !d.accepts(value) {
		return nil, false
	}
	switch d.Type {
	case PropertyBool:
		return value == "true", true
	case PropertyInt:
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, false
		}
		return int32(n), true
	default:
		return value, true
	}
}

func (d PropertyDef) accepts(value string) bool {
	for _, v := range d.Values {
		if v == value {
			return true
		}
	}
	return false
}

// ValidProperties describes which properties exist for a block kind and
// which values each may take. Iteration order is the canonical property
// order used by the untyped string representation of the kind's states.
type ValidProperties struct {
	defs *orderedmap.OrderedMap[string, PropertyDef]
}

func newValidProperties() *ValidProperties {
	return &ValidProperties{defs: orderedmap.NewOrderedMap[string, PropertyDef]()}
}

func (v *ValidProperties) add(def PropertyDef) bool {
	if _, ok := v.defs.Get(def.Name); ok {
		return false
	}
	v.defs.Set(def.Name, def)
	return true
}

// Property returns the definition of the property with the given name.
func (v *ValidProperties) Property(name string) (PropertyDef, bool) {
	return v.defs.Get(name)
}

// Contains reports whether every named property exists for the kind.
func (v *ValidProperties) Contains(names ...string) bool {
	for _, name := range names {
		if _, ok := v.defs.Get(name); !ok {
			return false
		}
	}
	return true
}

// Names returns the property names in canonical order.
func (v *ValidProperties) Names() []string {
	return v.defs.Keys()
}

// Len returns the number of properties the kind has.
func (v *ValidProperties) Len() int {
	return v.defs.Len()
}

// noProperties is returned for kinds without any properties, so callers
// never observe a nil domain.
var noProperties = newValidProperties()

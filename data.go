package blockstate

// Data is the capability implemented by typed property views. A view
// covers one property shape, such as the facing/type/waterlogged triple of
// chests, and converts between its struct form and normalized raw
// properties. Views are selected by the type the caller requests, not by
// inspecting the state, and packages outside this one may implement their
// own.
type Data interface {
	// DecodeProperties fills the view from raw properties, using the
	// kind's property domain to decide applicability. It reports false if
	// the kind does not carry the view's properties.
	DecodeProperties(props *RawProperties, valid *ValidProperties) bool
	// ApplyProperties writes the view's values over the raw properties,
	// touching only the properties the view is responsible for.
	ApplyProperties(props *RawProperties)
}

// dataPointer constrains P to a pointer to a view type, so DataAs and
// SetData can be called with the view type alone.
type dataPointer[T any] interface {
	*T
	Data
}

// DataAs decodes the state's properties into the typed view T, e.g.
// DataAs[Chest](s). The second return is false if the state's kind does
// not support T; a stone state has no chest data.
func DataAs[T any, P dataPointer[T]](s BlockState) (T, bool) {
	var v T
	raw := s.raw()
	if !P(&v).DecodeProperties(&raw.Properties, Global().validPropertiesFor(raw.Kind)) {
		var zero T
		return zero, false
	}
	return v, true
}

// SetData applies the view's property values to the state and replaces the
// handle's id with the id of the resulting state. If the resulting
// property combination matches no state in the table, the handle is left
// unchanged and SetData returns false; it never produces an invalid state.
func SetData[T any, P dataPointer[T]](s *BlockState, data T) bool {
	props := s.raw().Properties.clone()
	P(&data).ApplyProperties(&props)
	id, ok := Global().idForProperties(&props)
	if !ok {
		return false
	}
	s.id = id
	return true
}

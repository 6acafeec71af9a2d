package blockstate

// The views below cover every property shape in the bundled data. A view
// decodes for any kind that carries its full property set: Chest decodes
// for chests and trapped chests alike, Fluid for water and lava.

func propBool(p *RawProperties, name string) (bool, bool) {
	v, ok := p.Value(name)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func propInt(p *RawProperties, name string) (int32, bool) {
	v, ok := p.Value(name)
	if !ok {
		return 0, false
	}
	n, ok := v.(int32)
	return n, ok
}

func propString(p *RawProperties, name string) (string, bool) {
	v, ok := p.Value(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Chest is the typed view of chest-like blocks.
type Chest struct {
	Facing      Direction
	Type        ChestType
	Waterlogged bool
}

func (c *Chest) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing", "type", "waterlogged") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if c.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	typ, ok := propString(p, "type")
	if !ok {
		return false
	}
	if c.Type, ok = ChestTypeFromString(typ); !ok {
		return false
	}
	c.Waterlogged, ok = propBool(p, "waterlogged")
	return ok
}

func (c *Chest) ApplyProperties(p *RawProperties) {
	p.Set("facing", c.Facing.String())
	p.Set("type", c.Type.String())
	p.Set("waterlogged", c.Waterlogged)
}

// Furnace is the typed view of furnace-like blocks.
type Furnace struct {
	Facing Direction
	Lit    bool
}

func (f *Furnace) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing", "lit") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if f.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	f.Lit, ok = propBool(p, "lit")
	return ok
}

func (f *Furnace) ApplyProperties(p *RawProperties) {
	p.Set("facing", f.Facing.String())
	p.Set("lit", f.Lit)
}

// Slab is the typed view of slabs.
type Slab struct {
	Type        SlabType
	Waterlogged bool
}

func (s *Slab) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("type", "waterlogged") {
		return false
	}
	typ, ok := propString(p, "type")
	if !ok {
		return false
	}
	if s.Type, ok = SlabTypeFromString(typ); !ok {
		return false
	}
	s.Waterlogged, ok = propBool(p, "waterlogged")
	return ok
}

func (s *Slab) ApplyProperties(p *RawProperties) {
	p.Set("type", s.Type.String())
	p.Set("waterlogged", s.Waterlogged)
}

// Stairs is the typed view of stair blocks.
type Stairs struct {
	Facing      Direction
	Half        Half
	Shape       StairShape
	Waterlogged bool
}

func (s *Stairs) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing", "half", "shape", "waterlogged") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if s.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	half, ok := propString(p, "half")
	if !ok {
		return false
	}
	if s.Half, ok = HalfFromString(half); !ok {
		return false
	}
	shape, ok := propString(p, "shape")
	if !ok {
		return false
	}
	if s.Shape, ok = StairShapeFromString(shape); !ok {
		return false
	}
	s.Waterlogged, ok = propBool(p, "waterlogged")
	return ok
}

func (s *Stairs) ApplyProperties(p *RawProperties) {
	p.Set("facing", s.Facing.String())
	p.Set("half", s.Half.String())
	p.Set("shape", s.Shape.String())
	p.Set("waterlogged", s.Waterlogged)
}

// Door is the typed view of two-block-tall doors.
type Door struct {
	Facing  Direction
	Half    DoorHalf
	Hinge   Hinge
	Open    bool
	Powered bool
}

func (d *Door) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing", "half", "hinge", "open", "powered") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if d.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	half, ok := propString(p, "half")
	if !ok {
		return false
	}
	if d.Half, ok = DoorHalfFromString(half); !ok {
		return false
	}
	hinge, ok := propString(p, "hinge")
	if !ok {
		return false
	}
	if d.Hinge, ok = HingeFromString(hinge); !ok {
		return false
	}
	if d.Open, ok = propBool(p, "open"); !ok {
		return false
	}
	d.Powered, ok = propBool(p, "powered")
	return ok
}

func (d *Door) ApplyProperties(p *RawProperties) {
	p.Set("facing", d.Facing.String())
	p.Set("half", d.Half.String())
	p.Set("hinge", d.Hinge.String())
	p.Set("open", d.Open)
	p.Set("powered", d.Powered)
}

// Snowy is the typed view of blocks with a snowy variant, such as grass
// blocks, podzol and mycelium.
type Snowy struct {
	Snowy bool
}

func (s *Snowy) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("snowy") {
		return false
	}
	var ok bool
	s.Snowy, ok = propBool(p, "snowy")
	return ok
}

func (s *Snowy) ApplyProperties(p *RawProperties) {
	p.Set("snowy", s.Snowy)
}

// Log is the typed view of pillar blocks oriented along an axis.
type Log struct {
	Axis Axis
}

func (l *Log) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("axis") {
		return false
	}
	axis, ok := propString(p, "axis")
	if !ok {
		return false
	}
	l.Axis, ok = AxisFromString(axis)
	return ok
}

func (l *Log) ApplyProperties(p *RawProperties) {
	p.Set("axis", l.Axis.String())
}

// Leaves is the typed view of leaf blocks.
type Leaves struct {
	// Distance is the distance to the nearest log, capped at 7.
	Distance int32
	// Persistent leaves were placed by a player and never decay.
	Persistent bool
}

func (l *Leaves) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("distance", "persistent") {
		return false
	}
	var ok bool
	if l.Distance, ok = propInt(p, "distance"); !ok {
		return false
	}
	l.Persistent, ok = propBool(p, "persistent")
	return ok
}

func (l *Leaves) ApplyProperties(p *RawProperties) {
	p.Set("distance", l.Distance)
	p.Set("persistent", l.Persistent)
}

// Fluid is the typed view of water and lava.
type Fluid struct {
	// Level 0 is a source block; higher levels are flowing fluid.
	Level int32
}

func (f *Fluid) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("level") {
		return false
	}
	var ok bool
	f.Level, ok = propInt(p, "level")
	return ok
}

func (f *Fluid) ApplyProperties(p *RawProperties) {
	p.Set("level", f.Level)
}

// SnowLayer is the typed view of layered snow.
type SnowLayer struct {
	Layers int32
}

func (s *SnowLayer) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("layers") {
		return false
	}
	var ok bool
	s.Layers, ok = propInt(p, "layers")
	return ok
}

func (s *SnowLayer) ApplyProperties(p *RawProperties) {
	p.Set("layers", s.Layers)
}

// Crop is the typed view of growing blocks with an age property.
type Crop struct {
	Age int32
}

func (c *Crop) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("age") {
		return false
	}
	var ok bool
	c.Age, ok = propInt(p, "age")
	return ok
}

func (c *Crop) ApplyProperties(p *RawProperties) {
	p.Set("age", c.Age)
}

// Lever is the typed view of attachable switches; it decodes for levers
// and buttons, which share the same property shape.
type Lever struct {
	Face    AttachFace
	Facing  Direction
	Powered bool
}

func (l *Lever) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("face", "facing", "powered") {
		return false
	}
	face, ok := propString(p, "face")
	if !ok {
		return false
	}
	if l.Face, ok = AttachFaceFromString(face); !ok {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if l.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	l.Powered, ok = propBool(p, "powered")
	return ok
}

func (l *Lever) ApplyProperties(p *RawProperties) {
	p.Set("face", l.Face.String())
	p.Set("facing", l.Facing.String())
	p.Set("powered", l.Powered)
}

// Lit is the typed view of blocks whose only property is a lit flag, such
// as redstone lamps.
type Lit struct {
	Lit bool
}

func (l *Lit) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("lit") {
		return false
	}
	var ok bool
	l.Lit, ok = propBool(p, "lit")
	return ok
}

func (l *Lit) ApplyProperties(p *RawProperties) {
	p.Set("lit", l.Lit)
}

// WallTorch is the typed view of blocks whose only property is a
// horizontal facing.
type WallTorch struct {
	Facing Direction
}

func (w *WallTorch) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	w.Facing, ok = DirectionFromString(facing)
	return ok
}

func (w *WallTorch) ApplyProperties(p *RawProperties) {
	p.Set("facing", w.Facing.String())
}

// Ladder is the typed view of facing, waterloggable blocks such as
// ladders and ender chests.
type Ladder struct {
	Facing      Direction
	Waterlogged bool
}

func (l *Ladder) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("facing", "waterlogged") {
		return false
	}
	facing, ok := propString(p, "facing")
	if !ok {
		return false
	}
	if l.Facing, ok = DirectionFromString(facing); !ok {
		return false
	}
	l.Waterlogged, ok = propBool(p, "waterlogged")
	return ok
}

func (l *Ladder) ApplyProperties(p *RawProperties) {
	p.Set("facing", l.Facing.String())
	p.Set("waterlogged", l.Waterlogged)
}

// Farmland is the typed view of farmland.
type Farmland struct {
	Moisture int32
}

func (f *Farmland) DecodeProperties(p *RawProperties, valid *ValidProperties) bool {
	if !valid.Contains("moisture") {
		return false
	}
	var ok bool
	f.Moisture, ok = propInt(p, "moisture")
	return ok
}

func (f *Farmland) ApplyProperties(p *RawProperties) {
	p.Set("moisture", f.Moisture)
}

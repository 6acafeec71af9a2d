package blockstate

// The enumerations below mirror the enum property value sets of the
// bundled data. Each parses from and formats to the exact strings the
// untyped representation uses.

// Direction is a horizontal facing.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "east"
}

// DirectionFromString parses a horizontal facing value.
func DirectionFromString(s string) (Direction, bool) {
	switch s {
	case "north":
		return North, true
	case "south":
		return South, true
	case "west":
		return West, true
	case "east":
		return East, true
	}
	return 0, false
}

// Axis is the orientation of pillar-like blocks such as logs.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return "z"
}

// AxisFromString parses an axis value.
func AxisFromString(s string) (Axis, bool) {
	switch s {
	case "x":
		return X, true
	case "y":
		return Y, true
	case "z":
		return Z, true
	}
	return 0, false
}

// ChestType distinguishes a single chest from the two halves of a double
// chest.
type ChestType uint8

const (
	SingleChest ChestType = iota
	LeftChest
	RightChest
)

func (t ChestType) String() string {
	switch t {
	case SingleChest:
		return "single"
	case LeftChest:
		return "left"
	}
	return "right"
}

// ChestTypeFromString parses a chest type value.
func ChestTypeFromString(s string) (ChestType, bool) {
	switch s {
	case "single":
		return SingleChest, true
	case "left":
		return LeftChest, true
	case "right":
		return RightChest, true
	}
	return 0, false
}

// Half is the vertical half a stair-like block occupies.
type Half uint8

const (
	TopHalf Half = iota
	BottomHalf
)

func (h Half) String() string {
	if h == TopHalf {
		return "top"
	}
	return "bottom"
}

// HalfFromString parses a half value.
func HalfFromString(s string) (Half, bool) {
	switch s {
	case "top":
		return TopHalf, true
	case "bottom":
		return BottomHalf, true
	}
	return 0, false
}

// DoorHalf is the half of a two-block-tall door.
type DoorHalf uint8

const (
	UpperDoorHalf DoorHalf = iota
	LowerDoorHalf
)

func (h DoorHalf) String() string {
	if h == UpperDoorHalf {
		return "upper"
	}
	return "lower"
}

// DoorHalfFromString parses a door half value.
func DoorHalfFromString(s string) (DoorHalf, bool) {
	switch s {
	case "upper":
		return UpperDoorHalf, true
	case "lower":
		return LowerDoorHalf, true
	}
	return 0, false
}

// Hinge is the side a door's hinge sits on.
type Hinge uint8

const (
	LeftHinge Hinge = iota
	RightHinge
)

func (h Hinge) String() string {
	if h == LeftHinge {
		return "left"
	}
	return "right"
}

// HingeFromString parses a hinge value.
func HingeFromString(s string) (Hinge, bool) {
	switch s {
	case "left":
		return LeftHinge, true
	case "right":
		return RightHinge, true
	}
	return 0, false
}

// StairShape is the corner shape of a stair block.
type StairShape uint8

const (
	StraightStair StairShape = iota
	InnerLeftStair
	InnerRightStair
	OuterLeftStair
	OuterRightStair
)

func (s StairShape) String() string {
	switch s {
	case StraightStair:
		return "straight"
	case InnerLeftStair:
		return "inner_left"
	case InnerRightStair:
		return "inner_right"
	case OuterLeftStair:
		return "outer_left"
	}
	return "outer_right"
}

// StairShapeFromString parses a stair shape value.
func StairShapeFromString(s string) (StairShape, bool) {
	switch s {
	case "straight":
		return StraightStair, true
	case "inner_left":
		return InnerLeftStair, true
	case "inner_right":
		return InnerRightStair, true
	case "outer_left":
		return OuterLeftStair, true
	case "outer_right":
		return OuterRightStair, true
	}
	return 0, false
}

// SlabType is the part of the block space a slab fills.
type SlabType uint8

const (
	TopSlab SlabType = iota
	BottomSlab
	DoubleSlab
)

func (t SlabType) String() string {
	switch t {
	case TopSlab:
		return "top"
	case BottomSlab:
		return "bottom"
	}
	return "double"
}

// SlabTypeFromString parses a slab type value.
func SlabTypeFromString(s string) (SlabType, bool) {
	switch s {
	case "top":
		return TopSlab, true
	case "bottom":
		return BottomSlab, true
	case "double":
		return DoubleSlab, true
	}
	return 0, false
}

// AttachFace is the surface a lever or button is attached to.
type AttachFace uint8

const (
	FloorAttach AttachFace = iota
	WallAttach
	CeilingAttach
)

func (f AttachFace) String() string {
	switch f {
	case FloorAttach:
		return "floor"
	case WallAttach:
		return "wall"
	}
	return "ceiling"
}

// AttachFaceFromString parses an attach face value.
func AttachFaceFromString(s string) (AttachFace, bool) {
	switch s {
	case "floor":
		return FloorAttach, true
	case "wall":
		return WallAttach, true
	case "ceiling":
		return CeilingAttach, true
	}
	return 0, false
}

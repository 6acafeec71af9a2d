package blockstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataAs(t *testing.T) {
	chest, ok := DataAs[Chest](New(KindChest))
	require.True(t, ok)
	require.Equal(t, Chest{Facing: North, Type: SingleChest, Waterlogged: false}, chest)

	door, ok := DataAs[Door](New(KindOakDoor))
	require.True(t, ok)
	require.Equal(t, Door{Facing: North, Half: LowerDoorHalf, Hinge: LeftHinge}, door)

	_, ok = DataAs[Chest](New(KindStone))
	require.False(t, ok, "stone carries no chest data")
}

func TestDataAsSelectsByRequestedType(t *testing.T) {
	furnace := New(KindFurnace)

	_, ok := DataAs[Furnace](furnace)
	require.True(t, ok)
	_, ok = DataAs[Chest](furnace)
	require.False(t, ok)
	_, ok = DataAs[Door](furnace)
	require.False(t, ok)
}

func TestSetData(t *testing.T) {
	state := New(KindChest)
	require.True(t, SetData(&state, Chest{Facing: East, Type: LeftChest, Waterlogged: true}))

	chest, ok := DataAs[Chest](state)
	require.True(t, ok)
	require.Equal(t, Chest{Facing: East, Type: LeftChest, Waterlogged: true}, chest)
	require.Equal(t, KindChest, state.Kind())
	require.False(t, state.IsDefault())

	// SetData rewrote the handle, not the registry; a fresh handle still
	// holds the default.
	require.True(t, New(KindChest).IsDefault())
}

func TestSetDataMissLeavesStateUnchanged(t *testing.T) {
	state := New(KindWater)
	before := state

	require.False(t, SetData(&state, Fluid{Level: 20}), "level 20 is outside the domain")
	require.Equal(t, before, state)
}

// roundTrip checks that decoding a view and applying it back lands on the
// same state.
func roundTrip[T any, P dataPointer[T]](t *testing.T, s BlockState) {
	v, ok := DataAs[T, P](s)
	if !ok {
		return
	}
	got := s
	require.True(t, SetData[T, P](&got, v), "state %v, view %T", s, v)
	require.Equal(t, s, got, "view %T", v)
}

func TestDataRoundTripAllStates(t *testing.T) {
	views := []func(*testing.T, BlockState){
		roundTrip[Chest],
		roundTrip[Furnace],
		roundTrip[Slab],
		roundTrip[Stairs],
		roundTrip[Door],
		roundTrip[Snowy],
		roundTrip[Log],
		roundTrip[Leaves],
		roundTrip[Fluid],
		roundTrip[SnowLayer],
		roundTrip[Crop],
		roundTrip[Lever],
		roundTrip[Lit],
		roundTrip[WallTorch],
		roundTrip[Ladder],
		roundTrip[Farmland],
	}

	for id := 0; id < Global().StateCount(); id++ {
		state, _ := StateByID(uint16(id))
		for _, view := range views {
			view(t, state)
		}
	}
}

package blockstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReturnsDefaultState(t *testing.T) {
	chest := New(KindChest)
	require.True(t, chest.IsDefault())
	require.Equal(t, KindChest, chest.Kind())
	require.Equal(t, "minecraft:chest", chest.NamespacedID())
}

func TestStateByNamespacedID(t *testing.T) {
	properties := []StateProperty{
		{Name: "facing", Value: "north"},
		{Name: "type", Value: "single"},
		{Name: "waterlogged", Value: "false"},
	}

	state, ok := StateByNamespacedID("minecraft:chest", properties)
	require.True(t, ok)
	require.Equal(t, New(KindChest), state)

	// The default-then-SetData path must resolve to the same state.
	viaData := New(KindChest)
	require.True(t, SetData(&viaData, Chest{Facing: North, Type: SingleChest}))
	require.Equal(t, state, viaData)
}

func TestStateByNamespacedIDMisses(t *testing.T) {
	_, ok := StateByNamespacedID("minecraft:not_a_block", nil)
	require.False(t, ok)

	_, ok = StateByNamespacedID("minecraft:chest", nil)
	require.False(t, ok, "missing properties must not match")

	_, ok = StateByNamespacedID("minecraft:chest", []StateProperty{
		{Name: "facing", Value: "north"},
		{Name: "type", Value: "double"},
		{Name: "waterlogged", Value: "false"},
	})
	require.False(t, ok, "a value outside the domain must not match")
}

func TestStateByNamespacedIDIsOrderSensitive(t *testing.T) {
	// Pairs must be given in the stored canonical order; StateByNamespacedID
	// performs no reordering.
	_, ok := StateByNamespacedID("minecraft:chest", []StateProperty{
		{Name: "waterlogged", Value: "false"},
		{Name: "type", Value: "single"},
		{Name: "facing", Value: "north"},
	})
	require.False(t, ok)
}

func TestEqualityFollowsID(t *testing.T) {
	a, ok := StateByID(New(KindChest).ID())
	require.True(t, ok)
	b := New(KindChest)

	require.Equal(t, a, b)
	require.Equal(t, a.Kind(), b.Kind())
	require.Equal(t, a.NamespacedID(), b.NamespacedID())
	require.Equal(t, a.PropertyValues(), b.PropertyValues())

	require.NotEqual(t, New(KindChest), New(KindTrappedChest))
}

func TestPropertyValuesOrder(t *testing.T) {
	require.Equal(t, []StateProperty{
		{Name: "facing", Value: "north"},
		{Name: "type", Value: "single"},
		{Name: "waterlogged", Value: "false"},
	}, New(KindChest).PropertyValues())

	require.Empty(t, New(KindStone).PropertyValues())
}

func TestSimplifiedKind(t *testing.T) {
	require.Equal(t, SimplifiedChest, New(KindTrappedChest).SimplifiedKind())
	require.Equal(t, SimplifiedWool, New(KindLimeWool).SimplifiedKind())
	require.Equal(t, SimplifiedStone, New(KindStone).SimplifiedKind())
}

func TestString(t *testing.T) {
	require.Equal(t, "chest[facing=north, type=single, waterlogged=false]", New(KindChest).String())
	require.Equal(t, "stone", New(KindStone).String())
}

func TestInvalidStateAccessorsPanic(t *testing.T) {
	invalid := BlockState{id: ^uint16(0)}
	require.False(t, invalid.IsValid())
	require.Equal(t, "invalid", invalid.String())
	require.Panics(t, func() { invalid.Kind() })
	require.Panics(t, func() { invalid.PropertyValues() })
}

func TestValidProperties(t *testing.T) {
	valid := New(KindChest).ValidProperties()
	require.Equal(t, []string{"facing", "type", "waterlogged"}, valid.Names())

	facing, ok := valid.Property("facing")
	require.True(t, ok)
	require.Equal(t, PropertyEnum, facing.Type)
	require.Equal(t, []string{"north", "south", "west", "east"}, facing.Values)

	require.Zero(t, New(KindStone).ValidProperties().Len())
}

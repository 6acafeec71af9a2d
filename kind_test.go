package blockstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindNamespacedIDRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		id := kind.NamespacedID()
		require.True(t, strings.HasPrefix(id, "minecraft:"), "kind %d has id %q", kind, id)

		resolved, ok := KindByNamespacedID(id)
		require.True(t, ok)
		require.Equal(t, kind, resolved)
	}
}

func TestKindByNamespacedIDUnknown(t *testing.T) {
	_, ok := KindByNamespacedID("minecraft:not_a_block")
	require.False(t, ok)
	_, ok = KindByNamespacedID("chest")
	require.False(t, ok, "ids must carry their namespace")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "chest", KindChest.String())
	require.Equal(t, "minecraft:chest", KindChest.NamespacedID())
	require.Equal(t, "grass_block", KindGrassBlock.String())
}

func TestSimplifiedKindCollapsesVariants(t *testing.T) {
	wools := []BlockKind{KindWhiteWool, KindOrangeWool, KindLimeWool, KindBlackWool}
	for _, kind := range wools {
		require.Equal(t, SimplifiedWool, kind.SimplifiedKind(), "kind %v", kind)
	}
	require.Equal(t, "wool", SimplifiedWool.String())

	require.Equal(t, SimplifiedChest, KindChest.SimplifiedKind())
	require.Equal(t, SimplifiedChest, KindTrappedChest.SimplifiedKind())
	require.NotEqual(t, KindChest.SimplifiedKind(), KindStone.SimplifiedKind())
}

func TestUnknownKindPanics(t *testing.T) {
	unknown := BlockKind(^uint16(0))
	require.Panics(t, func() { unknown.NamespacedID() })
	require.Panics(t, func() { unknown.SimplifiedKind() })
}

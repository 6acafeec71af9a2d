package blockstate

import (
	"bytes"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/stretchr/testify/require"
)

// encodeBundle builds a gzip-compressed NBT bundle the way the external
// data step does, so tests can feed NewRegistry alternate data.
func encodeBundle(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	require.NoError(t, nbt.NewEncoderWithEncoding(w, nbt.BigEndian).Encode(v))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// testBundles returns a minimal pair of bundles: stone without properties
// and a grass block with a snowy property.
func testBundles(t *testing.T) (states, properties []byte) {
	t.Helper()
	states = encodeBundle(t, bundleStates{States: []stateRow{
		{ID: 0, Name: "minecraft:stone", Default: 1},
		{ID: 1, Name: "minecraft:grass_block", Properties: []pairRow{{Name: "snowy", Value: "true"}}},
		{ID: 2, Name: "minecraft:grass_block", Properties: []pairRow{{Name: "snowy", Value: "false"}}, Default: 1},
	}})
	properties = encodeBundle(t, bundleBlocks{Blocks: []kindRow{
		{Name: "minecraft:stone"},
		{Name: "minecraft:grass_block", Properties: []propertyRow{
			{Name: "snowy", Type: "bool", Values: []string{"true", "false"}},
		}},
	}})
	return states, properties
}

func TestNewRegistry(t *testing.T) {
	states, properties := testBundles(t)
	r, err := NewRegistry(states, properties, nil)
	require.NoError(t, err)
	require.Equal(t, 3, r.StateCount())

	id, ok := r.idForUntyped("minecraft:grass_block", []StateProperty{{Name: "snowy", Value: "true"}})
	require.True(t, ok)
	require.Equal(t, uint16(1), id)

	def, ok := r.defaultState(KindGrassBlock)
	require.True(t, ok)
	require.Equal(t, uint16(2), def.ID())
}

func TestNewRegistryRejectsMalformedBundles(t *testing.T) {
	states, properties := testBundles(t)

	for name, tc := range map[string]struct {
		states     []byte
		properties []byte
	}{
		"garbage state bundle":    {states: []byte("not a bundle"), properties: properties},
		"garbage property bundle": {states: states, properties: []byte("not a bundle")},
		"truncated state bundle":  {states: states[:len(states)/2], properties: properties},
		"id mismatch": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 7, Name: "minecraft:stone", Default: 1},
			}}),
			properties: properties,
		},
		"unknown kind": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:not_a_block", Default: 1},
			}}),
			properties: properties,
		},
		"no default state": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:stone"},
			}}),
			properties: properties,
		},
		"duplicate default state": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:grass_block", Properties: []pairRow{{Name: "snowy", Value: "true"}}, Default: 1},
				{ID: 1, Name: "minecraft:grass_block", Properties: []pairRow{{Name: "snowy", Value: "false"}}, Default: 1},
			}}),
			properties: properties,
		},
		"duplicate state row": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:stone", Default: 1},
				{ID: 1, Name: "minecraft:stone"},
			}}),
			properties: properties,
		},
		"value outside domain": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:grass_block", Properties: []pairRow{{Name: "snowy", Value: "maybe"}}, Default: 1},
			}}),
			properties: properties,
		},
		"unknown property": {
			states: encodeBundle(t, bundleStates{States: []stateRow{
				{ID: 0, Name: "minecraft:stone", Properties: []pairRow{{Name: "snowy", Value: "true"}}, Default: 1},
			}}),
			properties: properties,
		},
		"unknown property type": {
			states: states,
			properties: encodeBundle(t, bundleBlocks{Blocks: []kindRow{
				{Name: "minecraft:stone"},
				{Name: "minecraft:grass_block", Properties: []propertyRow{
					{Name: "snowy", Type: "maybe", Values: []string{"true", "false"}},
				}},
			}}),
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistry(tc.states, tc.properties, nil)
			require.Error(t, err)
		})
	}
}

func TestGlobalStateTableIsDense(t *testing.T) {
	registry := Global()
	count := registry.StateCount()
	require.Greater(t, count, 0)

	for id := 0; id < count; id++ {
		state, ok := StateByID(uint16(id))
		require.True(t, ok, "id %d", id)
		require.Equal(t, uint16(id), state.ID())
		require.True(t, state.IsValid())
	}

	_, ok := StateByID(uint16(count))
	require.False(t, ok)
	_, ok = StateByID(^uint16(0))
	require.False(t, ok)
}

func TestGlobalOneDefaultPerKind(t *testing.T) {
	registry := Global()

	defaults := make(map[BlockKind]BlockState)
	for id := 0; id < registry.StateCount(); id++ {
		state, _ := StateByID(uint16(id))
		if !state.IsDefault() {
			continue
		}
		_, seen := defaults[state.Kind()]
		require.False(t, seen, "kind %v has two default states", state.Kind())
		defaults[state.Kind()] = state
	}

	for _, kind := range Kinds() {
		def, ok := defaults[kind]
		require.True(t, ok, "kind %v has no default state", kind)
		require.Equal(t, def, New(kind))
	}
}

func TestGlobalUntypedRoundTrip(t *testing.T) {
	registry := Global()

	for id := 0; id < registry.StateCount(); id++ {
		state, _ := StateByID(uint16(id))
		restored, ok := StateByNamespacedID(state.NamespacedID(), state.PropertyValues())
		require.True(t, ok, "state %v", state)
		require.Equal(t, state, restored)
	}
}

func TestGlobalBuildsOnce(t *testing.T) {
	const goroutines = 16

	registries := make([]*Registry, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registries[i] = Global()
			// Exercise reads while other goroutines are doing the same.
			for id := 0; id < 64; id++ {
				state, ok := StateByID(uint16(id))
				if ok {
					_ = state.PropertyValues()
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, registries[0], registries[i])
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Global().Dump(&buf))

	lines := bytes.Count(buf.Bytes(), []byte{'\n'})
	require.Equal(t, Global().StateCount(), lines)
	require.Contains(t, buf.String(), "chest[facing=north, type=single, waterlogged=false]")
}

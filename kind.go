package blockstate

import (
	"strings"

	"github.com/oomph-ac/blockstate/assert"
)

// BlockKind identifies a block type independent of any property variation,
// e.g. "chest" regardless of which way it faces. Kinds are defined by the
// bundled data and cannot be created at runtime.
type BlockKind uint16

// NamespacedID returns the stable namespaced identifier of the kind, e.g.
// "minecraft:chest". Unlike numeric state ids, namespaced ids do not change
// between registry builds and are safe to persist.
func (k BlockKind) NamespacedID() string {
	assert.IsTrue(int(k) < len(kindNames), "namespaced id of unknown block kind %d", k)
	return kindNames[k]
}

// SimplifiedKind returns the coarser classification of the kind, collapsing
// variants such as wood types and wool colours.
func (k BlockKind) SimplifiedKind() SimplifiedKind {
	assert.IsTrue(int(k) < len(simplifiedKinds), "simplified kind of unknown block kind %d", k)
	return simplifiedKinds[k]
}

// String returns the namespaced id without its namespace prefix.
func (k BlockKind) String() string {
	id := k.NamespacedID()
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// KindByNamespacedID resolves a namespaced identifier such as
// "minecraft:chest" to its block kind.
func KindByNamespacedID(id string) (BlockKind, bool) {
	k, ok := kindsByName[id]
	return k, ok
}

// Kinds returns every registered block kind.
func Kinds() []BlockKind {
	kinds := make([]BlockKind, kindCount)
	for i := range kinds {
		kinds[i] = BlockKind(i)
	}
	return kinds
}

// SimplifiedKind is a coarse block classification shared by related kinds:
// every wool colour maps to SimplifiedWool, every door to SimplifiedDoor.
type SimplifiedKind uint16

func (s SimplifiedKind) String() string {
	assert.IsTrue(int(s) < len(simplifiedNames), "name of unknown simplified kind %d", s)
	return simplifiedNames[s]
}

var kindsByName = make(map[string]BlockKind, kindCount)

func init() {
	for k, name := range kindNames {
		kindsByName[name] = BlockKind(k)
	}
}

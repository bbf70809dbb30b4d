package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it,
// and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers the dependency ID from the package of T in Dep[T], so every
	// ports.* dependency is read as a node named "ports" and afero.Fs as "afero".
	t.Skip("graft static analysis cannot map interface types from a shared ports package to node IDs")
	graft.AssertDepsValid(t, "../../internal")
}

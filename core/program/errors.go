package program

import (
	"fmt"

	"github.com/nodegraph/ssvm/core/graph"
)

// SchemaError reports a malformed program definition discovered at load
// time (error kind 3 in SPEC_FULL §7): out-of-range prototype index,
// duplicate class declaration, or similar.
type SchemaError struct {
	What string
}

func (e *SchemaError) Error() string {
	return "program: schema error: " + e.What
}

func errPrototypeIndexOutOfRange(class graph.ModulePath, idx int) error {
	return &SchemaError{What: fmt.Sprintf("class %s: prototype index %d out of range", class, idx)}
}

func errDuplicateClassDeclaration(name string) error {
	return &SchemaError{What: fmt.Sprintf("duplicate class declaration %q in program", name)}
}

func errUnknownClass(path graph.ModulePath) error {
	return &graph.ResolutionError{Path: path, What: "unknown class"}
}

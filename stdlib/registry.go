package stdlib

import "github.com/nodegraph/ssvm/core/graph"

// byName builds the flat name -> Class table on demand rather than as a
// package-level var: each entry here references a var that another file's
// init() populates, and Go does not order init() functions across files by
// their cross-references, only by declaration order. Computing the table
// lazily (after all init()s have run) avoids depending on that order.
func byName() map[string]graph.Class {
	return map[string]graph.Class{
		"any":             anyClass,
		"nop":             nopClass,
		"bool":            boolClass,
		"number":          numberClass,
		"string":          stringClass,
		"array":           arrayClass,
		"dict":            dictClass,
		"if":              ifClass,
		"print":           printClass,
		"start":           startClass,
		"end":             endClass,
		"subroutine":      subroutineClass,
		"subroutine_call": subroutineCallClass,
		"subroutine_io":   suppliedIOClass,
		"variable_get":    variableGetClass,
		"variable_set":    variableSetClass,
	}
}

// ClassByName resolves a standard-library class by its bare name (the
// leaf used in socket-schema fragments and in Object text forms, not its
// "std."-prefixed module path).
func ClassByName(name string) (graph.Class, bool) {
	c, ok := byName()[name]
	return c, ok
}

// Classes returns every standard-library class keyed by its path under the
// "std" module, for program.Data.LoadPlugin.
func Classes() map[graph.ModulePath]graph.Class {
	names := byName()
	out := make(map[graph.ModulePath]graph.Class, len(names))
	for name, c := range names {
		out[graph.NewModulePath(name, "std")] = c
	}
	return out
}

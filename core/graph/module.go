package graph

import "fmt"

// ModuleItemKind discriminates what a Module's leaf slot holds.
type ModuleItemKind int

const (
	ItemClass ModuleItemKind = iota
	ItemConstant
	ItemModule
)

// ModuleItem is one entry in a Module: either a Class, a constant Object, or
// a nested Module.
type ModuleItem struct {
	Kind     ModuleItemKind
	Class    Class
	Constant Object
	Module   *Module
}

// Module is a tree node in the Class Registry, keyed by path segment.
type Module struct {
	items map[string]*ModuleItem
}

// NewModule builds an empty module tree node.
func NewModule() *Module {
	return &Module{items: make(map[string]*ModuleItem)}
}

// InsertClass walks/creates module nodes along path.Segments, then places
// class at path.Leaf. A non-module segment encountered along the way is a
// fatal structural error, per 4.C.
func (m *Module) InsertClass(path ModulePath, class Class) error {
	parent, err := m.walkCreate(path.Segments)
	if err != nil {
		return err
	}
	if existing, ok := parent.items[path.Leaf]; ok && existing.Kind == ItemModule {
		return fmt.Errorf("graph: cannot insert class %q: %q is already a module", path, path.Leaf)
	}
	parent.items[path.Leaf] = &ModuleItem{Kind: ItemClass, Class: class}
	return nil
}

// InsertConstant places a constant object at path, same walk rules as
// InsertClass.
func (m *Module) InsertConstant(path ModulePath, value Object) error {
	parent, err := m.walkCreate(path.Segments)
	if err != nil {
		return err
	}
	if existing, ok := parent.items[path.Leaf]; ok && existing.Kind == ItemModule {
		return fmt.Errorf("graph: cannot insert constant %q: %q is already a module", path, path.Leaf)
	}
	parent.items[path.Leaf] = &ModuleItem{Kind: ItemConstant, Constant: value}
	return nil
}

// walkCreate walks segments from m, creating intermediate Module items as
// needed, and returns the Module at the end of the walk. A segment that
// already names a non-module item is a fatal structural error.
func (m *Module) walkCreate(segments []string) (*Module, error) {
	cur := m
	for _, seg := range segments {
		item, ok := cur.items[seg]
		if !ok {
			sub := NewModule()
			cur.items[seg] = &ModuleItem{Kind: ItemModule, Module: sub}
			cur = sub
			continue
		}
		if item.Kind != ItemModule {
			return nil, fmt.Errorf("graph: module path segment %q is not a module", seg)
		}
		cur = item.Module
	}
	return cur, nil
}

// walk walks segments without creating anything; returns not-found if any
// segment is missing or not a module.
func (m *Module) walk(segments []string) (*Module, bool) {
	cur := m
	for _, seg := range segments {
		item, ok := cur.items[seg]
		if !ok || item.Kind != ItemModule {
			return nil, false
		}
		cur = item.Module
	}
	return cur, true
}

// GetClass resolves path to a Class, or reports not-found.
func (m *Module) GetClass(path ModulePath) (Class, bool) {
	parent, ok := m.walk(path.Segments)
	if !ok {
		return Class{}, false
	}
	item, ok := parent.items[path.Leaf]
	if !ok || item.Kind != ItemClass {
		return Class{}, false
	}
	return item.Class, true
}

// GetClassRef resolves path to a mutable handle on the stored Class, used by
// the loader to patch a program-defined class's method table in place
// (4.E step 4). Because Class.Nodes is itself a pointer, obtaining the Class
// value by GetClass and calling SetNodeList on it is equally sufficient;
// GetClassRef additionally allows replacing the FromText parser, which
// GetClass's returned copy cannot do in place.
func (m *Module) GetClassRef(path ModulePath) (*Class, bool) {
	parent, ok := m.walk(path.Segments)
	if !ok {
		return nil, false
	}
	item, ok := parent.items[path.Leaf]
	if !ok || item.Kind != ItemClass {
		return nil, false
	}
	return &item.Class, true
}

// GetConstant resolves path to a constant Object, or reports not-found.
func (m *Module) GetConstant(path ModulePath) (Object, bool) {
	parent, ok := m.walk(path.Segments)
	if !ok {
		return nil, false
	}
	item, ok := parent.items[path.Leaf]
	if !ok || item.Kind != ItemConstant {
		return nil, false
	}
	return item.Constant, true
}

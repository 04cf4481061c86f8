package program

import (
	"github.com/nodegraph/ssvm/core/graph"
)

// LoadPlugin registers a fixed set of classes (e.g. the standard library)
// directly into the Module Tree, bypassing the per-program synthesis steps
// below since a plugin's classes already carry a complete prototype node
// list and (where applicable) a from-text parser.
func (d *Data) LoadPlugin(classes map[graph.ModulePath]graph.Class) error {
	for path, class := range classes {
		if err := d.Modules.InsertClass(path, class); err != nil {
			return err
		}
	}
	return nil
}

// LoadProgram materializes one serialized program definition into the
// runtime, per SPEC_FULL 4.E steps 1-4.
func (d *Data) LoadProgram(path graph.ModulePath, def *Def) error {
	// Step 1: synthesize an empty Class per declared class definition and
	// insert it into the registry at program_path.className.
	seen := make(map[string]bool, len(def.Classes))
	for _, cd := range def.Classes {
		if seen[cd.Name] {
			return errDuplicateClassDeclaration(cd.Name)
		}
		seen[cd.Name] = true
		if err := d.Modules.InsertClass(path.Join(cd.Name), graph.NewEmptyClass(cd.Name)); err != nil {
			return err
		}
	}

	// Step 2: allocate the in-memory program; copy branch edges and
	// constant-input tables verbatim; create empty slots for every
	// connection.
	lp := newLoadedProgram()
	for k, v := range def.BranchEdges {
		lp.BranchEdges[k] = v
	}
	for k, v := range def.ConstInputs {
		lp.ConstInputs[k] = v
	}
	for _, conn := range def.Connections {
		lp.Connections[conn] = nil
	}

	// Step 3: for each serialized node entry, resolve the class, clone the
	// prototype, set its variant, and insert at the serialized id.
	for id, nd := range def.Nodes {
		class, ok := d.Modules.GetClass(nd.Class)
		if !ok {
			return errUnknownClass(nd.Class)
		}
		proto, err := class.Prototype(nd.Idx)
		if err != nil {
			return errPrototypeIndexOutOfRange(nd.Class, nd.Idx)
		}
		inst := proto.Clone()
		if err := inst.SetVariant(nd.Variant); err != nil {
			return err
		}
		lp.Nodes.InsertAt(id, inst)
	}

	d.programs[path.String()] = lp
	d.paths[path.String()] = path

	// Step 4: fill each program-defined class's method table by collecting,
	// in declared order, the now-instantiated node instances whose ids
	// appear in the class's definition list.
	for _, cd := range def.Classes {
		ref, ok := d.Modules.GetClassRef(path.Join(cd.Name))
		if !ok {
			return errUnknownClass(path.Join(cd.Name))
		}
		nodes := make([]graph.Node, 0, len(cd.Nodes))
		for _, nid := range cd.Nodes {
			n, ok := lp.Nodes.Get(nid)
			if !ok {
				return errUnknownClass(path.Join(cd.Name))
			}
			nodes = append(nodes, n)
		}
		ref.SetNodeList(nodes)
	}

	return nil
}

// LoadCollection iterates single loads over every member program;
// cross-program references resolve because the registry is shared.
func (d *Data) LoadCollection(coll *Collection) error {
	for key, def := range coll.Programs {
		path := coll.paths[key]
		if err := d.LoadProgram(path, def); err != nil {
			return err
		}
	}
	return nil
}

// Command ssvm runs a single node-graph program to completion: it loads the
// named program file and every import it declares, wires the standard
// library in, and drives the Executor in auto-run mode from the "main"
// entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"github.com/nodegraph/ssvm/core/executor"
	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/core/program"
	"github.com/nodegraph/ssvm/providers/observability/slogobs"
	"github.com/nodegraph/ssvm/serialize"
	"github.com/nodegraph/ssvm/stdlib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ssvm:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		formatFlag = flag.String("format", "", "override envelope detection (ron, json, or bin)")
		libRoot    = flag.String("lib", ".", "root directory imports are resolved under")
		entry      = flag.String("entry", "main", "entry name to start from")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one program file argument")
	}
	path := flag.Arg(0)

	override := serialize.FormatUnknown
	if *formatFlag != "" {
		var err error
		override, err = serialize.ParseFormat(*formatFlag)
		if err != nil {
			return err
		}
	}

	obs := slogobs.New()

	def, err := serialize.LoadFile(path, override)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	data := program.NewData()
	if err := data.LoadPlugin(stdlib.Classes()); err != nil {
		return fmt.Errorf("load standard library: %w", err)
	}

	mainPath := graph.NewModulePath("__main__")
	if err := data.LoadProgram(mainPath, def); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	seen := map[string]bool{mainPath.String(): true}
	if err := loadImports(data, *libRoot, def.Imports, seen); err != nil {
		return fmt.Errorf("load imports of %s: %w", path, err)
	}

	ctx := context.Background()
	ex := executor.New(data, obs)
	if err := ex.StartExecution(ctx, *entry, true); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// loadImports resolves each declared import by joining its module path's
// segments as directories under root and globbing "<leaf>.*.ssc", per the
// front-end's responsibility described in SPEC_FULL §6. Transitively
// imported programs are loaded in turn so nested references resolve.
func loadImports(data *program.Data, root string, imports []string, seen map[string]bool) error {
	for _, imp := range imports {
		if seen[imp] {
			continue
		}
		seen[imp] = true

		modPath, err := graph.ParseModulePath(imp)
		if err != nil {
			return &graph.ParseError{Input: imp, Cause: err}
		}

		dir := filepath.Join(append([]string{root}, modPath.Segments...)...)
		matches, err := filepath.Glob(filepath.Join(dir, modPath.Leaf+".*.ssc"))
		if err != nil {
			return fmt.Errorf("glob %s: %w", imp, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("import %q: no file matching %s.*.ssc under %s", imp, modPath.Leaf, dir)
		}

		def, err := serialize.LoadFile(matches[0], serialize.FormatUnknown)
		if err != nil {
			return fmt.Errorf("import %q: %w", imp, err)
		}
		if err := data.LoadProgram(modPath, def); err != nil {
			return fmt.Errorf("import %q: %w", imp, err)
		}
		if err := loadImports(data, root, def.Imports, seen); err != nil {
			return err
		}
	}
	return nil
}

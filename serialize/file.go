package serialize

import (
	"fmt"
	"os"

	"github.com/nodegraph/ssvm/core/program"
)

// LoadFile reads path, determines its envelope (honoring override if it's
// not FormatUnknown), decodes it, and converts the result into a
// program.Def ready for program.Data.LoadProgram.
func LoadFile(path string, override Format) (*program.Def, error) {
	format := override
	if format == FormatUnknown {
		var err error
		format, err = DetectFormat(path)
		if err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("serialize: read %s: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("serialize: load %s: %w", path, err)
	}
	return doc.ToDef()
}

// SaveFile encodes def and writes it to path in the given format.
func SaveFile(path string, def *program.Def, format Format) error {
	data, err := Encode(FromDef(def), format)
	if err != nil {
		return fmt.Errorf("serialize: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("serialize: write %s: %w", path, err)
	}
	return nil
}

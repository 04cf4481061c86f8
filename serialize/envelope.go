package serialize

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names one of the three serialization envelopes in SPEC_FULL §6.
type Format int

const (
	// FormatUnknown is the zero value; DetectFormat never returns it
	// without an error alongside.
	FormatUnknown Format = iota
	// FormatRon is the "<leaf>.ron.ssc" text-structural envelope.
	FormatRon
	// FormatJSON is the "<leaf>.json.ssc" envelope.
	FormatJSON
	// FormatBin is the "<leaf>.bin.ssc" compact binary envelope.
	FormatBin
)

func (f Format) String() string {
	switch f {
	case FormatRon:
		return "ron"
	case FormatJSON:
		return "json"
	case FormatBin:
		return "bin"
	default:
		return "unknown"
	}
}

// DetectFormat determines a program file's envelope from its suffix, per
// SPEC_FULL §6 ("which one is in use is determined by file suffix...
// with the outer tool free to override").
func DetectFormat(filename string) (Format, error) {
	switch {
	case strings.HasSuffix(filename, ".ron.ssc"):
		return FormatRon, nil
	case strings.HasSuffix(filename, ".json.ssc"):
		return FormatJSON, nil
	case strings.HasSuffix(filename, ".bin.ssc"):
		return FormatBin, nil
	default:
		return FormatUnknown, fmt.Errorf("serialize: cannot detect format of %q: unrecognized suffix (want .ron.ssc, .json.ssc, or .bin.ssc)", filename)
	}
}

// ParseFormat resolves a "--format" override flag value (SPEC_FULL §6's
// command surface) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ron":
		return FormatRon, nil
	case "json":
		return FormatJSON, nil
	case "bin":
		return FormatBin, nil
	default:
		return FormatUnknown, fmt.Errorf("serialize: unknown format %q (want ron, json, or bin)", s)
	}
}

// Decode parses data in the given envelope into a wire Document.
func Decode(data []byte, format Format) (*Document, error) {
	doc := NewDocument()
	var err error
	switch format {
	case FormatRon:
		err = yaml.Unmarshal(data, doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	case FormatBin:
		err = gob.NewDecoder(bytes.NewReader(data)).Decode(doc)
	default:
		return nil, fmt.Errorf("serialize: cannot decode: unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("serialize: decode (%s): %w", format, err)
	}
	return doc, nil
}

// Encode renders a wire Document into the given envelope.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatRon:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatBin:
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("serialize: encode (bin): %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("serialize: cannot encode: unknown format %v", format)
	}
}

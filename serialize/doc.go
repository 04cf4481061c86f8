// Package serialize implements the three external serialization envelopes
// named in SPEC_FULL §6/§10/§11 for the program file format: the
// "<leaf>.ron.ssc" text-structural envelope (gopkg.in/yaml.v3, the closest
// Go-idiomatic analog of a human-readable structural format), the
// "<leaf>.json.ssc" envelope (encoding/json), and the "<leaf>.bin.ssc"
// compact binary envelope (encoding/gob). All three decode to, and encode
// from, the same wire [Document] shape; [Document.ToDef] and [FromDef]
// convert between that wire shape and the in-package program.Def the core
// Loader consumes. This package is an external collaborator per SPEC_FULL
// §1 ("out of scope: on-disk serialization formats... specified only via
// the external data schema in §6") — core/program never imports it.
package serialize

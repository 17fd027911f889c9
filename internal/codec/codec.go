// Package codec holds the two serialization collaborators of the
// persistence layer: the structural YAML form used by app and screen
// documents, and the JSON form used by editor-state documents.
package codec

import (
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Codec turns archive documents into entry payloads and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Structural serializes *.fx.yaml entries.
var Structural Codec = yamlCodec{}

// EditorState serializes Controls/*.json entries.
var EditorState Codec = jsonCodec{}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return oj.Marshal(v, 2) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return oj.Unmarshal(data, v) }

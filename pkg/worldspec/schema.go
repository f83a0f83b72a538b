package worldspec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the JSON Schema the parsed world spec must satisfy
// before the field-level checks run. It catches wrong types and out-of-range
// values close to the file, with paths the user can act on.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "spec_version": {"type": "string"},
    "year": {"type": "integer", "minimum": 0, "maximum": 3000},
    "grid": {
      "type": "object",
      "properties": {
        "mode": {"enum": ["", "population", "fixed"]},
        "size": {"type": "integer", "minimum": 0, "maximum": 10000}
      }
    },
    "terrain": {
      "type": "object",
      "properties": {
        "seed": {"type": "number"},
        "block_clustering": {"type": "boolean"}
      }
    },
    "water": {
      "type": "object",
      "properties": {
        "fraction": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "catalog": {"type": "string"}
  }
}`

var compiledSchema = jsonschema.MustCompileString("world.schema.json", documentSchema)

// CheckDocument validates the spec against the embedded JSON Schema.
func CheckDocument(s *WorldSpec) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding spec: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decoding spec: %w", err)
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}

package indicator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// snapshotSchema validates the recorded-snapshot wire shape before any key
// is interpreted. Catalog membership is checked separately by NewSnapshot.
const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["symbol", "interval", "values"],
  "properties": {
    "symbol": {"type": "string", "minLength": 1},
    "interval": {"type": "string", "minLength": 1},
    "values": {
      "type": "object",
      "additionalProperties": {
        "oneOf": [
          {"type": "number"},
          {"type": "object", "additionalProperties": {"type": "number"}}
        ]
      }
    }
  }
}`

var compiledSnapshotSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("snapshot.json", strings.NewReader(snapshotSchema)); err != nil {
		panic(err)
	}
	return c.MustCompile("snapshot.json")
}

// ParseSnapshot decodes a recorded snapshot JSON document. Recorded
// snapshots let an analysis be replayed without market access.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing snapshot: invalid JSON")
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if err := compiledSnapshotSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("snapshot failed schema validation: %w", err)
	}

	root := gjson.ParseBytes(data)
	values := make(map[string]Value)
	root.Get("values").ForEach(func(key, val gjson.Result) bool {
		if val.IsObject() {
			parts := make(map[string]float64)
			val.ForEach(func(pk, pv gjson.Result) bool {
				parts[pk.String()] = pv.Float()
				return true
			})
			values[key.String()] = Tuple(parts)
			return true
		}
		values[key.String()] = Scalar(val.Float())
		return true
	})
	return NewSnapshot(root.Get("symbol").String(), root.Get("interval").String(), values)
}

package pattern

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled payload schemas by pattern type.
var schemaCache sync.Map // map[Type]*jsonschema.Schema

// ValidatePayload checks a payload against its pattern type's JSON schema.
// Called at the engine boundary before any pattern is persisted.
func ValidatePayload(p Payload) error {
	raw, err := EncodePayload(p)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s payload: %w", p.Kind(), err)
	}

	compiled, err := compiledSchema(p.Kind())
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s payload schema: %w", p.Kind(), err)
	}
	return nil
}

func compiledSchema(t Type) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := payloadSchemas[t]
	if !ok {
		return nil, fmt.Errorf("no schema defined for pattern type %q", t)
	}

	// The compiler expects a parsed JSON value, not Go maps with typed
	// values. Round-trip through JSON to normalize.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", t, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", t, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://pattern/%s.json", t)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add %s schema resource: %w", t, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", t, err)
	}

	schemaCache.Store(t, compiled)
	return compiled, nil
}

package prefabs

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/*.json
var SchemaFS embed.FS

const sandboxSchemaFile = "schema/sandbox.schema.json"

var (
	schemaOnce    sync.Once
	sandboxSchema *jsonschema.Schema
	schemaErr     error
)

func compiledSandboxSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := SchemaFS.ReadFile(sandboxSchemaFile)
		if err != nil {
			schemaErr = fmt.Errorf("prefabs: read schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("sandbox.schema.json", bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("prefabs: add schema: %w", err)
			return
		}
		sandboxSchema, schemaErr = c.Compile("sandbox.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("prefabs: compile schema: %w", schemaErr)
		}
	})
	return sandboxSchema, schemaErr
}

// ValidateSandbox checks a YAML document against the embedded sandbox schema.
func ValidateSandbox(data []byte) error {
	sch, err := compiledSandboxSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator expects encoding/json shapes, so round-trip through JSON.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}

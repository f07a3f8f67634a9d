package provider

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schema/skills.schema.json
	skillsSchemaJSON []byte

	//go:embed schema/categories.schema.json
	categoriesSchemaJSON []byte
)

type schemaFunc func() (*jsonschema.Schema, error)

var (
	skillsSchema     schemaFunc = sync.OnceValues(func() (*jsonschema.Schema, error) { return compileSchema("inline://skills", skillsSchemaJSON) })
	categoriesSchema schemaFunc = sync.OnceValues(func() (*jsonschema.Schema, error) { return compileSchema("inline://categories", categoriesSchemaJSON) })
)

func compileSchema(url string, schema []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// validateDocument checks raw bytes against a compiled schema before they are
// decoded into domain types.
func validateDocument(data []byte, schema schemaFunc) error {
	compiled, err := schema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Package jsonschema derives tool input schemas from Go argument types.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/fwojciec/context7"
)

// Generate returns the JSON schema of T with every definition inlined, no
// $schema or $id, and additional properties disallowed. Fields without omitempty are required.
func Generate[T any]() (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// LookupTool returns the definition of the context7 tool, with its input
// schema derived from context7.LookupArgs.
func LookupTool() (context7.Tool, error) {
	params, err := Generate[context7.LookupArgs]()
	if err != nil {
		return context7.Tool{}, err
	}
	return context7.Tool{
		Name:        context7.ToolName,
		Description: context7.ToolDescription,
		Parameters:  params,
	}, nil
}

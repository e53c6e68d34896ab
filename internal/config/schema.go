package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&pkgconfig.Config{})
	schema.Title = "ChainCache configuration"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config schema: %w", err)
	}

	return out, nil
}

package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a recipe document.
type Format int

const (
	// FormatAuto tries TOML, then JSON, then YAML.
	FormatAuto Format = iota
	FormatTOML
	FormatJSON
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

const schemaURL = "https://github.com/opd-ai/purecipher/recipe.schema.json"

//go:embed recipe.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func recipeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// document is the decoded shape of a file holding one recipe or a list.
type document struct {
	Recipe
	Recipes []Recipe `json:"recipes"`
}

// Decode parses data in the given format, validates it against the recipe
// schema and returns the recipes it holds.
func Decode(data []byte, format Format) ([]Recipe, error) {
	raw, err := parseGeneric(data, format)
	if err != nil {
		return nil, err
	}

	canonical, instance, err := canonicalize(raw)
	if err != nil {
		return nil, err
	}

	schema, err := recipeSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}

	var doc document
	if err := json.Unmarshal(canonical, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	if len(doc.Recipes) > 0 {
		return doc.Recipes, nil
	}
	return []Recipe{doc.Recipe}, nil
}

// parseGeneric decodes data into plain maps, slices and scalars.
func parseGeneric(data []byte, format Format) (interface{}, error) {
	switch format {
	case FormatTOML:
		var v map[string]interface{}
		if _, err := toml.Decode(string(data), &v); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		return v, nil
	case FormatJSON:
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return v, nil
	case FormatYAML:
		var v interface{}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		return v, nil
	default:
		for _, f := range []Format{FormatTOML, FormatJSON, FormatYAML} {
			if v, err := parseGeneric(data, f); err == nil {
				return v, nil
			}
		}
		return nil, fmt.Errorf("%w: unable to parse as TOML, JSON, or YAML", ErrInvalidRecipe)
	}
}

// canonicalize re-encodes a generic value as JSON so that every format is
// validated and decoded identically. It returns the JSON text and the value
// decoded from it with exact numbers.
func canonicalize(raw interface{}) ([]byte, interface{}, error) {
	canonical, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}

	dec := json.NewDecoder(bytes.NewReader(canonical))
	dec.UseNumber()
	var instance interface{}
	if err := dec.Decode(&instance); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	return canonical, instance, nil
}

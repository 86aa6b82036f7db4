package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/srinugalla/the-slice-x/internal/contracts/schemas"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry хранит скомпилированные схемы запросов по ключу вида "RevealContactRequest/1.0.0".
type Registry struct {
	compiled map[string]*jsonschema.Schema
}

// NewRegistry компилирует все схемы из SchemasFS.
func NewRegistry() (*Registry, error) {
	return newRegistryFromFS(schemas.SchemasFS, "requests")
}

func newRegistryFromFS(fsys fs.FS, root string) (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	r := &Registry{compiled: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(root, path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path layout: %s", path)
		}
		r.compiled[key] = schema
	}
	return r, nil
}

// generateKeyFromPath переводит "requests/reveal-contact/v1.json" в "RevealContactRequest/1.0.0".
func generateKeyFromPath(root, path string) string {
	trimmed := strings.TrimPrefix(path, root+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Request")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// Validate проверяет уже разобранный JSON (json.Number допустим) по схеме.
func (r *Registry) Validate(name, version string, v interface{}) error {
	key := fmt.Sprintf("%s/%s", name, version)
	schema, ok := r.compiled[key]
	if !ok {
		return fmt.Errorf("schema for request '%s' version '%s' not found", name, version)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// DecodeAndValidate разбирает тело запроса с UseNumber и проверяет по схеме.
// Пустое тело считается пустым объектом.
func (r *Registry) DecodeAndValidate(name, version string, body []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("request body is not a valid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("request body contains trailing data")
	}

	if err := r.Validate(name, version, v); err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("request body must be a JSON object")
	}
	return obj, nil
}

// Where: cli-rt/internal/domain/template/catalog.go
// What: Embedded template catalog and label resolution.
// Why: Map human-readable labels and aliases to on-disk template ids.
package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const catalogSchemaURL = "mem://cli-rt/catalog.schema.json"

// ErrUnknownTemplate is returned when a label matches no template alias.
var ErrUnknownTemplate = errors.New("unknown template")

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// Definition describes one selectable template.
type Definition struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Aliases []string `json:"aliases,omitempty"`
}

type catalogFile struct {
	Templates []Definition `json:"templates"`
}

// Catalog is an ordered, validated set of template definitions.
type Catalog struct {
	templates []Definition
	byAlias   map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseCatalog(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// ParseCatalog decodes and validates a YAML catalog document.
// Every label is registered as an alias of its own template, and an alias
// may only belong to one template.
func ParseCatalog(content []byte) (*Catalog, error) {
	if err := validateCatalog(content); err != nil {
		return nil, fmt.Errorf("validate template catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("decode template catalog: %w", err)
	}

	catalog := &Catalog{byAlias: map[string]int{}}
	seenIDs := map[string]struct{}{}
	for i, def := range file.Templates {
		if _, ok := seenIDs[def.ID]; ok {
			return nil, fmt.Errorf("duplicate template id %q", def.ID)
		}
		seenIDs[def.ID] = struct{}{}

		for _, alias := range append([]string{def.Label}, def.Aliases...) {
			key := normalizeLabel(alias)
			if owner, ok := catalog.byAlias[key]; ok && owner != i {
				return nil, fmt.Errorf(
					"alias %q of %q already belongs to %q",
					alias, def.ID, file.Templates[owner].ID,
				)
			}
			catalog.byAlias[key] = i
		}
		catalog.templates = append(catalog.templates, def)
	}
	return catalog, nil
}

func validateCatalog(content []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(catalogSchemaURL, bytes.NewReader(catalogSchema)); err != nil {
		return fmt.Errorf("load catalog schema: %w", err)
	}
	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return schema.Validate(document)
}

// Templates returns the definitions in catalog order.
func (c *Catalog) Templates() []Definition {
	out := make([]Definition, len(c.templates))
	copy(out, c.templates)
	return out
}

// Labels returns the display labels in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.templates))
	for _, def := range c.templates {
		labels = append(labels, def.Label)
	}
	return labels
}

// Resolve maps a label or alias, compared case-insensitively after trimming,
// to its template definition.
func (c *Catalog) Resolve(label string) (Definition, error) {
	if idx, ok := c.byAlias[normalizeLabel(label)]; ok {
		return c.templates[idx], nil
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, strings.TrimSpace(label))
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

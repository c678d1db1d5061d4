package fields

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the YAML shape of an alias overlay:
//
//	aliases:
//	  accountName: [author, Author]
//	  engagements: [likes]
type overlayFile struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// LoadOverlay reads an alias overlay from path
func LoadOverlay(path string) (AliasTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fields: read overlay: %w", err)
	}
	return ParseOverlay(bytes.NewReader(b))
}

// ParseOverlay decodes an overlay document. Unknown field names and unknown
// top level keys are rejected; an empty document is an empty overlay
func ParseOverlay(r io.Reader) (AliasTable, error) {
	var f overlayFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("fields: parse overlay: %w", err)
	}
	out := make(AliasTable, len(f.Aliases))
	for name, aliases := range f.Aliases {
		field, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		out[field] = aliases
	}
	return out, nil
}

package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a single entity descriptor from r in YAML form.
// Decoding is strict: unknown keys are an error, so typos in descriptor
// files fail fast instead of silently dropping a mapping.
func Decode(r io.Reader) (*Entity, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	e := &Entity{}
	if err := dec.Decode(e); err != nil {
		return nil, fmt.Errorf("schema: decoding entity descriptor: %w", err)
	}
	return e, nil
}

// DecodeFile reads a single entity descriptor from a YAML file.
func DecodeFile(path string) (*Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: opening descriptor file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the entity descriptor to w in YAML form.
func Encode(w io.Writer, e *Entity) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("schema: encoding entity descriptor: %w", err)
	}
	return enc.Close()
}

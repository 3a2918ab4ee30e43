package texgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a document manifest in YAML format. Unknown fields are
// rejected so typos in manifests surface as errors instead of silently
// dropped content.
func DecodeYAML(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	manifest := &Manifest{}
	if err := decoder.Decode(manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}

// DecodeTOML reads a document manifest in TOML format.
func DecodeTOML(r io.Reader) (*Manifest, error) {
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()

	manifest := &Manifest{}
	if err := decoder.Decode(manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}

// DecodeFile reads a document manifest from a file, picking the format by
// extension: .yaml and .yml are decoded as YAML, .toml as TOML.
func DecodeFile(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(file)
	case ".toml":
		return DecodeTOML(file)
	default:
		return nil, fmt.Errorf("unsupported manifest format %#v", filepath.Ext(path))
	}
}

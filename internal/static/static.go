// Package static embeds the reference data shipped with the binary: the
// location catalog, the nature tracks and the translation catalogs
package static

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed files/*.yaml files/i18n/*.yaml
var Files embed.FS

const filesDir = "files"

// Decode unmarshals the embedded YAML file at name into v.
func Decode(name string, v any) error {
	b, err := fs.ReadFile(Files, filesDir+"/"+name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}

	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode embedded %s: %w", name, err)
	}

	return nil
}

// Glob returns the embedded file names matching pattern, relative to the files
// directory.
func Glob(pattern string) ([]string, error) {
	sub, err := fs.Sub(Files, filesDir)
	if err != nil {
		return nil, err
	}

	return fs.Glob(sub, pattern)
}

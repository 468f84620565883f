// Package schemaio reads and writes the structured-data form of a HED
// schema (YAML, or JSON which is read as YAML) and applies JSON patches
// to it before it is loaded.
package schemaio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/schema"
)

var ErrNotFound = errors.New("schema not found")

// Read decodes one schema document. Unknown fields are errors.
func Read(r io.Reader) (*schema.Raw, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(d)
}

func Decode(d []byte) (*schema.Raw, error) {
	raw := &schema.Raw{}
	if err := yaml.UnmarshalWithOptions(d, raw, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrLoad, err)
	}
	return raw, nil
}

func ReadFile(path string) (*schema.Raw, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if debug.Schema() {
		debug.Logf("read schema %s from %s\n", raw.Version, path)
	}
	return raw, nil
}

// LoadFile reads and loads a schema.
func LoadFile(path string) (*schema.Schema, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return schema.Load(raw)
}

// Write encodes raw as YAML.
func Write(w io.Writer, raw *schema.Raw) error {
	d, err := yaml.MarshalWithOptions(raw, yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Patch applies an RFC 6902 patch to raw and returns the result. The patch
// may be written in JSON or YAML; paths address the JSON form, for example
// /tags/3/attributes/extensionAllowed.
func Patch(raw *schema.Raw, patch []byte) (*schema.Raw, error) {
	patch = bytes.TrimSpace(patch)
	if len(patch) != 0 && patch[0] != '[' {
		j, err := yaml.YAMLToJSON(patch)
		if err != nil {
			return nil, fmt.Errorf("patch: %w", err)
		}
		patch = j
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	res := &schema.Raw{}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.DisallowUnknownFields()
	if err := dec.Decode(res); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return res, nil
}

var exts = []string{".yaml", ".yml", ".json"}

// Locate finds the file for spec in dir, named after VersionSpec.FileName
// with a .yaml, .yml or .json extension.
func Locate(dir string, spec schema.VersionSpec) (string, error) {
	base := spec.FileName()
	for _, ext := range exts {
		p := filepath.Join(dir, base+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, base, dir)
}

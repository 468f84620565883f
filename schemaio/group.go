package schemaio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/schema"
)

// Source names one schema to load: a file path or a version spec looked
// up in a schema directory, bound to a namespace prefix.
type Source struct {
	Prefix string
	Path   string
	Spec   *schema.VersionSpec
}

// ParseSource parses "[prefix:]path" or "[prefix:][library_]X.Y.Z".
// Anything with a path separator or a schema file extension is a path.
func ParseSource(s string) (Source, error) {
	src := Source{}
	rest := s
	if p, r, ok := strings.Cut(s, ":"); ok && p != "" && !strings.ContainsAny(p, `/\.`) {
		src.Prefix, rest = p, r
	}
	if isPath(rest) {
		src.Path = rest
		return src, nil
	}
	spec, err := schema.ParseVersionSpec(rest)
	if err != nil {
		return Source{}, err
	}
	spec.Prefix = src.Prefix
	src.Spec = &spec
	return src, nil
}

func isPath(s string) bool {
	if strings.ContainsRune(s, filepath.Separator) || strings.ContainsRune(s, '/') {
		return true
	}
	ext := filepath.Ext(s)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func (s Source) String() string {
	if s.Spec != nil {
		return s.Spec.String()
	}
	if s.Prefix != "" {
		return s.Prefix + ":" + s.Path
	}
	return s.Path
}

type groupOpts struct {
	dir     string
	patches [][]byte
}

type GroupOption func(*groupOpts)

// Dir sets the directory version specs are looked up in. It defaults to
// $HED_SCHEMA_DIR, then the working directory.
func Dir(dir string) GroupOption {
	return func(o *groupOpts) { o.dir = dir }
}

// WithPatch applies patch to the first unprefixed schema before it is
// loaded. Patches apply in order.
func WithPatch(patch []byte) GroupOption {
	return func(o *groupOpts) { o.patches = append(o.patches, patch) }
}

// LoadGroup loads sources into a schema group. Schemas sharing a prefix
// are combined: a standard schema and a library partnered with it are
// merged into one. The unprefixed schemas form the primary schema.
func LoadGroup(sources []string, opts ...GroupOption) (*schema.Group, error) {
	gOpts := &groupOpts{dir: os.Getenv("HED_SCHEMA_DIR")}
	for _, f := range opts {
		f(gOpts)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no schema given", ErrNotFound)
	}
	byPrefix := map[string][]*schema.Schema{}
	var prefixes []string
	patched := false
	for _, s := range sources {
		src, err := ParseSource(s)
		if err != nil {
			return nil, err
		}
		raw, err := gOpts.read(src)
		if err != nil {
			return nil, err
		}
		if src.Prefix == "" && !patched {
			patched = true
			for _, p := range gOpts.patches {
				if raw, err = Patch(raw, p); err != nil {
					return nil, fmt.Errorf("%s: %w", src, err)
				}
			}
		}
		sch, err := schema.Load(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		if _, ok := byPrefix[src.Prefix]; !ok {
			prefixes = append(prefixes, src.Prefix)
		}
		byPrefix[src.Prefix] = append(byPrefix[src.Prefix], sch)
	}
	partners := map[string]*schema.Schema{}
	var primary *schema.Schema
	for _, p := range prefixes {
		sch, err := combine(byPrefix[p])
		if err != nil {
			return nil, fmt.Errorf("prefix %q: %w", p, err)
		}
		if p == "" {
			primary = sch
			continue
		}
		partners[p] = sch
	}
	if primary == nil {
		return nil, fmt.Errorf("%w: no unprefixed schema among %s", ErrNotFound, strings.Join(sources, ", "))
	}
	return schema.NewGroup(primary, partners)
}

func (o *groupOpts) read(src Source) (*schema.Raw, error) {
	path := src.Path
	if src.Spec != nil {
		p, err := Locate(o.dir, *src.Spec)
		if err != nil {
			return nil, err
		}
		path = p
	}
	return ReadFile(path)
}

// combine merges a library into its standard schema. A lone schema,
// library or not, is returned as is.
func combine(schemas []*schema.Schema) (*schema.Schema, error) {
	if len(schemas) == 1 {
		return schemas[0], nil
	}
	if len(schemas) > 2 {
		return nil, fmt.Errorf("%w: at most a standard schema and one library share a prefix", schema.ErrConflict)
	}
	base, lib := schemas[0], schemas[1]
	if base.Library != "" {
		base, lib = lib, base
	}
	if base.Library != "" || lib.Library == "" {
		return nil, fmt.Errorf("%w: %s and %s are not a standard schema and a library", schema.ErrConflict, base.ID(), lib.ID())
	}
	if lib.WithStandard != "" && lib.WithStandard != base.Version {
		return nil, fmt.Errorf("%w: %s is partnered with standard %s, not %s", schema.ErrConflict, lib.ID(), lib.WithStandard, base.Version)
	}
	merged, err := base.MergeLibrary(lib, nil)
	if err != nil {
		return nil, err
	}
	if debug.Schema() {
		debug.Logf("merged %s into %s\n", lib.ID(), base.ID())
	}
	return merged, nil
}

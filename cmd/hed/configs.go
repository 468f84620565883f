package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/schemaio"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='color output'"`
	Dir   string `cli:"name=d aliases=dir desc='directory of schema files (default $HED_SCHEMA_DIR)'"`

	Schemas []string
	Patches [][]byte

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) schemaOpt(_ *cli.Context, a string) (any, error) {
	cfg.Schemas = append(cfg.Schemas, a)
	return a, nil
}

func (cfg *MainConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	cfg.Patches = append(cfg.Patches, d)
	return a, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// schemas loads the schema group named by -s, or by $HED_SCHEMA when no
// -s is given.
func (cfg *MainConfig) schemas() (*schema.Group, error) {
	srcs := cfg.Schemas
	if len(srcs) == 0 {
		if env := os.Getenv("HED_SCHEMA"); env != "" {
			srcs = []string{env}
		}
	}
	if len(srcs) == 0 {
		return nil, fmt.Errorf("%w: no schema, use -s or set HED_SCHEMA", cli.ErrUsage)
	}
	var opts []schemaio.GroupOption
	if cfg.Dir != "" {
		opts = append(opts, schemaio.Dir(cfg.Dir))
	}
	for _, p := range cfg.Patches {
		opts = append(opts, schemaio.WithPatch(p))
	}
	return schemaio.LoadGroup(srcs, opts...)
}

// colors returns the output colors for w: those requested by -color, or,
// when -color is not given, colors for terminals only.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return NoColors()
		}
		break
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return NoColors()
}

type ValidateConfig struct {
	*MainConfig

	Workers      int    `cli:"name=j desc='number of parallel workers (default one per string)'"`
	Where        string `cli:"name=where desc='only report issues for which this expr expression holds'"`
	Placeholders bool   `cli:"name=placeholders desc='accept # values as in sidecar templates'"`
	Recommended  bool   `cli:"name=recommended desc='warn about missing recommended tags'"`
	NoRequired   bool   `cli:"name=norequired desc='do not check for required tags'"`
	NoExpand     bool   `cli:"name=noexpand desc='validate Def references without expanding them'"`
	Quiet        bool   `cli:"name=q desc='only report errors'"`

	DefFiles []string

	Validate *cli.Command
}

func (cfg *ValidateConfig) defsOpt(_ *cli.Context, a string) (any, error) {
	cfg.DefFiles = append(cfg.DefFiles, a)
	return a, nil
}

type ConvertConfig struct {
	*MainConfig

	Diff bool `cli:"name=diff desc='show each change instead of the result'"`

	Form ir.Kind

	Convert *cli.Command
}

func (cfg *ConvertConfig) formOpt(_ *cli.Context, a string) (any, error) {
	k, err := ir.ParseKind(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Form = k
	return k, nil
}

type DefsConfig struct {
	*MainConfig

	Long bool `cli:"name=l aliases=long desc='show templates in long form'"`

	Defs *cli.Command
}

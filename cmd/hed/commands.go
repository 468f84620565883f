package main

import (
	"github.com/hedtools/go-hed/ir"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"schema"},
			Description: "schema file or version spec [prefix:][library_]X.Y.Z, repeatable",
			Type:        cli.NamedFuncOpt(cfg.schemaOpt, "(schema)"),
		},
		&cli.Opt{
			Name:        "patch",
			Description: "JSON patch applied to the primary schema, repeatable",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hed").
		WithSynopsis("hed [opts] command [opts]").
		WithDescription("hed validates and converts HED annotation strings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hedMain(cfg, cc, args)
		}).
		WithSubs(
			ValidateCommand(cfg),
			ConvertCommand(cfg),
			DefsCommand(cfg),
			SchemaCommand(cfg))
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "defs",
		Description: "file of definitions used by the validated strings, repeatable",
		Type:        cli.NamedFuncOpt(cfg.defsOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v", "val").
		WithSynopsis("validate [opts] [files]").
		WithDescription("validate annotation strings, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateMain(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, Form: ir.Short}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"form"},
		Description: "target form: short, long or original",
		Type:        cli.NamedFuncOpt(cfg.formOpt, "(form)"),
	})
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-f form] [-diff] [files]").
		WithDescription("rewrite annotation strings in short or long form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertMain(cfg, cc, args)
		})
}

func DefsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DefsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Defs, "defs").
		WithAliases("d").
		WithSynopsis("defs [opts] [files]").
		WithDescription("list the definitions declared in files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return defsMain(cfg, cc, args)
		})
}

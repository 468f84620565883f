package main

import (
	"fmt"

	"github.com/hedtools/go-hed/schemaio"
	"github.com/scott-cotton/cli"
)

type SchemaConfig struct {
	*MainConfig
	Schema *cli.Command
}

type SchemaCheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type SchemaDumpConfig struct {
	*MainConfig
	Prefix string `cli:"name=p aliases=prefix desc='dump the schema bound to this prefix'"`
	Dump   *cli.Command
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithSynopsis("schema <subcommand>").
		WithDescription("schema commands").
		WithSubs(
			SchemaCheckCommand(cfg.MainConfig),
			SchemaDumpCommand(cfg.MainConfig))
}

func SchemaCheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaCheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [schemas...]").
		WithDescription("load schemas, given as arguments or with -s, and report their contents").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaCheck(cfg, cc, args)
		})
}

func SchemaDumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaDumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-p prefix]").
		WithDescription("write a loaded schema, merged and patched, as YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaDump(cfg, cc, args)
		})
}

func schemaCheck(cfg *SchemaCheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.Schemas = append(cfg.Schemas, args...)
	sg, err := cfg.schemas()
	if err != nil {
		return err
	}
	for _, p := range append([]string{""}, sg.Prefixes()...) {
		s := sg.Schema(p)
		name := s.ID()
		if p != "" {
			name = p + ":" + name
		}
		if s.Merged {
			name += " (merged with " + s.WithStandard + ")"
		}
		fmt.Fprintf(cc.Out, "%s: %d tags, %d unit classes, %d value classes, %d attributes\n",
			name, s.Len(), len(s.UnitClasses()), len(s.ValueClasses()), len(s.AttributeNames()))
	}
	return nil
}

func schemaDump(cfg *SchemaDumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dump takes no arguments", cli.ErrUsage)
	}
	sg, err := cfg.schemas()
	if err != nil {
		return err
	}
	s := sg.Schema(cfg.Prefix)
	if s == nil {
		return fmt.Errorf("%w: no schema bound to prefix %q", cli.ErrUsage, cfg.Prefix)
	}
	return schemaio.Write(cc.Out, s.Raw())
}

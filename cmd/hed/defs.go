package main

import (
	"fmt"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/ir"
	"github.com/scott-cotton/cli"
)

func defsMain(cfg *DefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Defs.Parse(cc, args)
	if err != nil {
		return err
	}
	sg, err := cfg.schemas()
	if err != nil {
		return err
	}
	texts, err := readTexts(cc.In, args)
	if err != nil {
		return err
	}
	m, issues := hed.Definitions(sg, texts...)
	colors := cfg.colors(cc.Out)
	printIssues(cc, colors, issues)
	form := ir.Short
	if cfg.Long {
		form = ir.Long
	}
	for _, name := range m.Names() {
		e := m.Get(name)
		label := name
		if e.TakesValue {
			label += "/#"
		}
		body, err := e.Template.Form(form)
		if err != nil {
			body = e.Template.String()
		}
		fmt.Fprintf(cc.Out, "%s %s\n", colors.Code(label), body)
	}
	if issues.HasErrors() {
		return fmt.Errorf("%d issues in definitions", len(issues.Errors()))
	}
	return nil
}

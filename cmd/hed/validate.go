package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"unicode/utf8"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/validate"
	"github.com/scott-cotton/cli"
)

func validateMain(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: -j must not be negative", cli.ErrUsage)
	}
	f, err := newFilter(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	sg, err := cfg.schemas()
	if err != nil {
		return err
	}
	c := hed.NewChecker(sg,
		hed.Expand(!cfg.NoExpand),
		hed.WithValidateOptions(
			validate.CheckRequired(!cfg.NoRequired),
			validate.CheckRecommended(cfg.Recommended)))
	if cfg.Placeholders {
		c.Options = append(c.Options, validate.AllowPlaceholders())
	}
	colors := cfg.colors(cc.Out)

	if len(cfg.DefFiles) != 0 {
		texts, err := readTexts(nil, cfg.DefFiles)
		if err != nil {
			return err
		}
		m, issues := hed.Definitions(sg, texts...)
		if len(issues) != 0 {
			printIssues(cc, colors, issues)
			return fmt.Errorf("definitions: %d issues", len(issues))
		}
		c.Defs = m
	}

	items, err := readItems(cc.In, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	reports, err := hed.CheckBatch(ctx, c, items, cfg.Workers)
	if err != nil {
		return err
	}
	nErr := 0
	for _, r := range reports {
		issues, err := f.apply(withColumns(r.Text, r.Issues))
		if err != nil {
			return fmt.Errorf("-where: %w", err)
		}
		if cfg.Quiet {
			issues = issues.Errors()
		}
		printIssues(cc, colors, issues)
		nErr += len(issues.Errors())
	}
	if nErr != 0 {
		return fmt.Errorf("%d errors in %d strings", nErr, len(items))
	}
	return nil
}

// withColumns sets the column of issues without one to the character
// position of their span in text.
func withColumns(text string, l issue.List) issue.List {
	for i := range l {
		is := &l[i]
		if is.Column != 0 || !is.Pos.Valid(len(text)) {
			continue
		}
		is.Column = utf8.RuneCountInString(text[:is.Pos.Start]) + 1
	}
	return l
}

func printIssues(cc *cli.Context, colors *Colors, l issue.List) {
	for i := range l {
		fmt.Fprintln(cc.Out, colors.Issue(&l[i]))
	}
}

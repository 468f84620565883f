package main

import (
	"fmt"
	"io"
	"strings"

	hed "github.com/hedtools/go-hed"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func convertMain(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	sg, err := cfg.schemas()
	if err != nil {
		return err
	}
	items, err := readItems(cc.In, args)
	if err != nil {
		return err
	}
	c := hed.NewChecker(sg)
	colors := cfg.colors(cc.Out)
	nErr := 0
	for _, it := range items {
		out, issues := c.Convert(it.Text, cfg.Form)
		if len(issues) != 0 {
			printIssues(cc, colors, withColumns(it.Text, issues.WithContext(it.File, it.Row, 0)))
			nErr++
			continue
		}
		if !cfg.Diff {
			fmt.Fprintln(cc.Out, out)
			continue
		}
		writeDiff(cc.Out, colors, fmt.Sprintf("%s:%d", it.File, it.Row), it.Text, out)
	}
	if nErr != 0 {
		return fmt.Errorf("%d of %d strings could not be converted", nErr, len(items))
	}
	return nil
}

// writeDiff prints the changes from a to b on one line, deletions and
// insertions marked. Nothing is printed when a and b are equal.
func writeDiff(w io.Writer, colors *Colors, loc, a, b string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString(colors.Insert("{+" + d.Text + "+}"))
		case diffpatch.DiffDelete:
			sb.WriteString(colors.Delete("[-" + d.Text + "-]"))
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	fmt.Fprintf(w, "%s %s\n", colors.Location(loc+":"), sb.String())
}

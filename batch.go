package hed

import (
	"context"

	"github.com/hedtools/go-hed/issue"
	"golang.org/x/sync/errgroup"
)

// Item is one annotation string with the place it came from.
type Item struct {
	Text   string
	File   string
	Row    int
	Column int
}

type Report struct {
	Item
	Result
}

// CheckBatch checks items with at most workers goroutines, or one per
// item when workers <= 0. Reports are in input order and their issues
// carry the item context. When ctx is canceled no further item is started
// and the error of ctx is returned along with the reports done so far;
// items never started have a nil Tree and no issues.
func CheckBatch(ctx context.Context, c *Checker, items []Item, workers int) ([]Report, error) {
	reports := make([]Report, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, it := range items {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res := c.Check(it.Text)
			res.Issues = res.Issues.WithContext(it.File, it.Row, it.Column)
			reports[i] = Report{Item: it, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return reports, err
	}
	return reports, ctx.Err()
}

// Issues concatenates the issues of reports.
func Issues(reports []Report) issue.List {
	var res issue.List
	for _, r := range reports {
		res = append(res, r.Issues...)
	}
	return res
}

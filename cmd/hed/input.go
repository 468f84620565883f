package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	hed "github.com/hedtools/go-hed"
)

// readItems reads the annotation strings of files, one per non blank
// line, or of stdin when there are no files.
func readItems(in io.Reader, files []string) ([]hed.Item, error) {
	if len(files) == 0 {
		return scanItems(in, "-")
	}
	var items []hed.Item
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		fItems, err := scanItems(f, file)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		items = append(items, fItems...)
	}
	return items, nil
}

func scanItems(r io.Reader, name string) ([]hed.Item, error) {
	var items []hed.Item
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	row := 0
	for sc.Scan() {
		row++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, hed.Item{Text: line, File: name, Row: row})
	}
	return items, sc.Err()
}

func readTexts(in io.Reader, files []string) ([]string, error) {
	items, err := readItems(in, files)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(items))
	for i := range items {
		res[i] = items[i].Text
	}
	return res, nil
}

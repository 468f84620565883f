package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hedtools/go-hed/issue"
)

// Colors holds the print functions of the output elements.
type Colors struct {
	Error    func(a ...any) string
	Warning  func(a ...any) string
	Location func(a ...any) string
	Code     func(a ...any) string
	Insert   func(a ...any) string
	Delete   func(a ...any) string
}

func NewColors() *Colors {
	fn := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return &Colors{
		Error:    fn(color.FgRed, color.Bold),
		Warning:  fn(color.FgYellow),
		Location: fn(color.Faint),
		Code:     fn(color.FgCyan),
		Insert:   fn(color.FgGreen),
		Delete:   fn(color.FgRed, color.CrossedOut),
	}
}

func NoColors() *Colors {
	return &Colors{
		Error:    fmt.Sprint,
		Warning:  fmt.Sprint,
		Location: fmt.Sprint,
		Code:     fmt.Sprint,
		Insert:   fmt.Sprint,
		Delete:   fmt.Sprint,
	}
}

// Issue renders i on one line, in the format of issue.Issue.Error.
func (c *Colors) Issue(i *issue.Issue) string {
	loc := ""
	if i.File != "" {
		loc = i.File
		if i.Row > 0 {
			loc += fmt.Sprintf(":%d", i.Row)
			if i.Column > 0 {
				loc += fmt.Sprintf(":%d", i.Column)
			}
		}
		loc = c.Location(loc+":") + " "
	}
	sev := c.Error(i.Severity)
	if i.Severity == issue.Warning {
		sev = c.Warning(i.Severity)
	}
	s := fmt.Sprintf("%s%s %s %s", loc, sev, c.Code("["+string(i.Code)+"]"), i.Message)
	if i.Tag != "" {
		s += fmt.Sprintf(" (tag: %s)", i.Tag)
	}
	return s
}

package schema

import (
	"fmt"
	"math"
	"strings"
)

type UnitClass struct {
	Name        string
	DefaultUnit string
	Description string
	Units       []*Unit

	modifiers []*UnitModifier
}

type Unit struct {
	Name   string
	Factor float64
	SI     bool
	Symbol bool
	// Prefix units are written before the number, as in "$20".
	Prefix bool
	Class  *UnitClass
}

type UnitModifier struct {
	Name        string
	Factor      float64
	Symbol      bool
	Description string
}

// Unit finds a unit of c by the text written after (or before) a number.
// Symbols match exactly. Names match case-insensitively and may be plural.
func (c *UnitClass) Unit(text string) *Unit {
	for _, u := range c.Units {
		if u.matches(text) {
			return u
		}
	}
	return nil
}

// Modifiers returns the unit modifiers of the schema c belongs to.
func (c *UnitClass) Modifiers() []*UnitModifier {
	return c.modifiers
}

// Default returns the unit assumed when a value carries none, or nil.
func (c *UnitClass) Default() *Unit {
	if c.DefaultUnit == "" {
		return nil
	}
	return c.Unit(c.DefaultUnit)
}

func (u *Unit) matches(text string) bool {
	if u.Symbol {
		return u.Name == text
	}
	if strings.EqualFold(u.Name, text) {
		return true
	}
	return strings.EqualFold(u.Name+"s", text)
}

// Applies reports whether m may prefix u.
func (m *UnitModifier) Applies(u *Unit) bool {
	return u.SI && m.Symbol == u.Symbol
}

func checkFactor(what string, f *float64) (float64, error) {
	if f == nil {
		return 1, nil
	}
	v := *f
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%s: conversion factor %v is not a positive finite number", what, v)
	}
	return v, nil
}

func buildUnitClass(r RawUnitClass) (*UnitClass, []error) {
	var errs []error
	c := &UnitClass{Name: r.Name, DefaultUnit: r.DefaultUnits, Description: r.Description}
	seen := map[string]bool{}
	for _, ru := range r.Units {
		if ru.Name == "" {
			errs = append(errs, fmt.Errorf("unit class %s: unit with empty name", r.Name))
			continue
		}
		if seen[ru.Name] {
			errs = append(errs, fmt.Errorf("unit class %s: duplicate unit %q", r.Name, ru.Name))
			continue
		}
		seen[ru.Name] = true
		f, err := checkFactor("unit "+ru.Name, ru.ConversionFactor)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.Units = append(c.Units, &Unit{
			Name:   ru.Name,
			Factor: f,
			SI:     ru.SIUnit,
			Symbol: ru.UnitSymbol,
			Prefix: ru.UnitPrefix,
			Class:  c,
		})
	}
	if c.DefaultUnit != "" && c.Default() == nil {
		errs = append(errs, fmt.Errorf("unit class %s: default unit %q is not one of its units", r.Name, c.DefaultUnit))
	}
	return c, errs
}

func (c *UnitClass) raw() RawUnitClass {
	r := RawUnitClass{Name: c.Name, DefaultUnits: c.DefaultUnit, Description: c.Description}
	for _, u := range c.Units {
		ru := RawUnit{Name: u.Name, SIUnit: u.SI, UnitSymbol: u.Symbol, UnitPrefix: u.Prefix}
		if u.Factor != 1 {
			f := u.Factor
			ru.ConversionFactor = &f
		}
		r.Units = append(r.Units, ru)
	}
	return r
}

func (m *UnitModifier) raw() RawUnitModifier {
	r := RawUnitModifier{Name: m.Name, Symbol: m.Symbol, Description: m.Description}
	if m.Factor != 1 {
		f := m.Factor
		r.ConversionFactor = &f
	}
	return r
}

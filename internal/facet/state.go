// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package facet holds the shopper's current filter selection and the rules for
editing it.

A [State] is a plain value. Every transition returns a new State, and the
vehicle selectors cascade: picking a make clears the model and year, picking a
model clears the year. No selection value is ever invalid; values that match
nothing simply filter the catalogue down to an empty list.
*/
package facet

import (
	"fmt"
	"strings"
)

// State is the active selection. An empty field means "no filter".
type State struct {
	Search     string `json:"search"`
	CategoryID string `json:"category"`
	Origin     string `json:"origin"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       string `json:"year"`
}

// # Transitions

// WithSearch returns s with the free-text search replaced.
func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

// WithCategory returns s with the category replaced.
func (s State) WithCategory(id string) State {
	s.CategoryID = id
	return s
}

// WithOrigin returns s with the origin replaced.
func (s State) WithOrigin(origin string) State {
	s.Origin = origin
	return s
}

// WithMake returns s with the make replaced and model and year cleared,
// even when the make is unchanged.
func (s State) WithMake(makeName string) State {
	s.Make = makeName
	s.Model = ""
	s.Year = ""
	return s
}

// WithModel returns s with the model replaced and the year cleared.
func (s State) WithModel(model string) State {
	s.Model = model
	s.Year = ""
	return s
}

// WithYear returns s with the year replaced.
func (s State) WithYear(year string) State {
	s.Year = year
	return s
}

// Cleared returns the empty State.
func (s State) Cleared() State {
	return State{}
}

// IsEmpty reports whether no filter is set. Whitespace-only search counts as
// empty because the engine trims it.
func (s State) IsEmpty() bool {
	return strings.TrimSpace(s.Search) == "" &&
		s.CategoryID == "" &&
		s.Origin == "" &&
		s.Make == "" &&
		s.Model == "" &&
		s.Year == ""
}

// # Named Transitions

// Field names accepted by [State.Apply].
const (
	FieldSearch   = "search"
	FieldCategory = "category"
	FieldOrigin   = "origin"
	FieldMake     = "make"
	FieldModel    = "model"
	FieldYear     = "year"
	FieldClear    = "clear"
)

// ErrUnknownField is returned by [State.Apply] for an unrecognised field.
type ErrUnknownField struct {
	Field string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("facet: unknown field %q", e.Field)
}

// Transition is a single named edit, as sent by a transport.
type Transition struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

/*
Apply dispatches a named edit to the matching With* transition.

Parameters:
  - transition: Field name and new value. Value is ignored for "clear".

Returns:
  - State: The new selection; s itself is left untouched
  - error: *ErrUnknownField when the field is not recognised
*/
func (s State) Apply(transition Transition) (State, error) {
	switch transition.Field {
	case FieldSearch:
		return s.WithSearch(transition.Value), nil
	case FieldCategory:
		return s.WithCategory(transition.Value), nil
	case FieldOrigin:
		return s.WithOrigin(transition.Value), nil
	case FieldMake:
		return s.WithMake(transition.Value), nil
	case FieldModel:
		return s.WithModel(transition.Value), nil
	case FieldYear:
		return s.WithYear(transition.Value), nil
	case FieldClear:
		return s.Cleared(), nil
	default:
		return s, &ErrUnknownField{Field: transition.Field}
	}
}

// ApplyAll applies transitions in order and stops at the first error.
func (s State) ApplyAll(transitions []Transition) (State, error) {
	for _, transition := range transitions {
		next, err := s.Apply(transition)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}

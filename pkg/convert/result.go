// Package convert migrates legacy per-file v1 profiles into a unified config
// document.
package convert

import (
	"github.com/vanecli/vane/pkg/config"
)

// Result aggregates the outcome of a legacy-profile conversion.
type Result struct {
	// Config is the document assembled from successfully converted profiles.
	Config *config.Document

	// Converted maps each profile type to the names converted for it.
	Converted map[string][]string

	// Failures lists per-profile and per-type errors, in encounter order.
	// Conversion continues past each one.
	Failures []Failure
}

// Failure records one failed profile or meta-file read. Name is empty for
// meta-file failures.
type Failure struct {
	Name string
	Type string
	Err  error
}

// NewResult creates an empty conversion result.
func NewResult() *Result {
	return &Result{
		Config:    config.NewDocument(),
		Converted: make(map[string][]string),
	}
}

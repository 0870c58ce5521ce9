// Package corpus loads newline-delimited JSON datasets into memory and
// audits field-name consistency across the loaded records.
package corpus

import (
	"errors"
	"sort"
)

// Ext is the file extension recognized by the loader.
const Ext = ".jsonl"

// Sentinel errors for the loader's failure conditions.
var (
	// ErrNotFound indicates a missing data directory or file.
	ErrNotFound = errors.New("not found")
	// ErrConfig indicates a malformed loading configuration.
	ErrConfig = errors.New("invalid configuration")
)

// Record is one parsed JSON object from a single line of an input file.
// The dataset declares no schema, so fields stay untyped.
type Record map[string]any

// Corpus maps language directory -> filename -> ordered records.
// It is built once per run and never mutated after loading.
type Corpus map[string]map[string][]Record

// Files returns the total number of loaded files across all languages.
func (c Corpus) Files() int {
	n := 0
	for _, files := range c {
		n += len(files)
	}
	return n
}

// Records returns the total number of loaded records across all files.
func (c Corpus) Records() int {
	n := 0
	for _, files := range c {
		for _, recs := range files {
			n += len(recs)
		}
	}
	return n
}

// SortedKeys returns the keys of a string set in sorted order, for display.
func SortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

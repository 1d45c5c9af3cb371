// Package ingest parses uploaded trial balance files into rows the
// pipeline can classify. Malformed rows are collected as rejects
// with reasons; only file-level problems (unreadable file, missing
// required columns) are errors.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grapmap-dev/grapmap/internal/model"
)

// ParseResult is the outcome of parsing one trial balance file.
type ParseResult struct {
	Rows     []model.TrialBalanceRow
	Rejects  []model.RowReject
	Warnings []string
}

// Parser converts a trial balance file into a ParseResult.
type Parser interface {
	Parse(r io.Reader) (ParseResult, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for a format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForFile returns the parser matching a file's extension, or nil.
func (r *Registry) ForFile(path string) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&XLSXParser{})
	return r
}

// ParseFile opens a file and parses it with the matching parser.
func (r *Registry) ParseFile(path string) (ParseResult, error) {
	p := r.ForFile(path)
	if p == nil {
		return ParseResult{}, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening trial balance: %w", err)
	}
	defer f.Close()

	result, err := p.Parse(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return result, nil
}

// Scan returns trial balance files (.csv, .xlsx) in a directory.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

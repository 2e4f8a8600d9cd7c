// Package importer parses batch transaction files and replays them through
// the ledger engine, so imported rows face the same admission rules as
// interactive entry.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/request"
)

// Row is one parsed transaction request plus its source line number.
type Row struct {
	Line int
	Req  request.Transaction
}

// Parser converts a transaction file into rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
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

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(SimpleParser{})
	return reg
}

// RowError reports one rejected row.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result summarizes a batch import.
type Result struct {
	Posted int
	Errors []RowError
}

// Run posts every row through the engine in order, collecting per-row
// failures without aborting the batch.
func Run(svc *bank.Service, rows []Row) Result {
	var result Result
	for _, row := range rows {
		if _, err := svc.PostTransaction(row.Req); err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Err: err})
			continue
		}
		result.Posted++
	}
	return result
}

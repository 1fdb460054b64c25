package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/model"
	"github.com/saveup-dev/saveup/internal/statement"
)

var (
	// ErrNoTransactions is returned when a statement yields nothing importable.
	ErrNoTransactions = errors.New("no valid transactions found in the CSV file")
	// ErrUnknownFormat is returned for a parser name with no registration.
	ErrUnknownFormat = errors.New("unknown statement format")
)

// Parser converts a bank CSV file into ParsedTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.ParsedTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
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

// Lookup is Get with an error for unknown formats.
func (r *Registry) Lookup(format string) (Parser, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return p, nil
}

// autoParser adapts the layout-guessing statement parser to Parser.
type autoParser struct {
	p *statement.Parser
}

func (a autoParser) Format() string { return a.p.Format() }

func (a autoParser) Parse(r io.Reader) ([]model.ParsedTransaction, error) {
	return a.p.ParseReader(r)
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry()
	r.Register(autoParser{p: statement.New(statement.WithLogger(logger))})
	r.Register(&ChaseParser{})
	return r
}

// Scan returns the CSV files directly inside dir. A missing dir has none.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !isCSV(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func isCSV(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// MarkProcessed moves the file at path into processedDir.
func MarkProcessed(path, processedDir string) error {
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	name := filepath.Base(path)
	dst := filepath.Join(processedDir, name)
	if err := os.Rename(path, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", name, err)
	}
	return nil
}

// Package input loads the daily puzzle inputs kept next to the programs as
// <dir>/day_<n>.txt.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the directory Load reads from unless WithDir is given.
const DefaultDir = "inputs"

// Option configures Load and Lines.
type Option func(*options)

type options struct {
	dir string
}

// WithDir reads inputs from dir instead of DefaultDir. Empty dir has no effect.
func WithDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dir = dir
		}
	}
}

// Path returns the file that holds the input of day.
func Path(day int, opts ...Option) string {
	o := options{dir: DefaultDir}
	for _, fn := range opts {
		fn(&o)
	}

	return filepath.Join(o.dir, fmt.Sprintf("day_%d.txt", day))
}

// Load returns the input of day with surrounding whitespace removed.
// A missing file yields an error matching fs.ErrNotExist.
func Load(day int, opts ...Option) (string, error) {
	path := Path(day, opts...)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: day %d: %w", day, err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// Lines returns the input of day split into lines, each trimmed.
func Lines(day int, opts ...Option) ([]string, error) {
	text, err := Load(day, opts...)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return lines, nil
}

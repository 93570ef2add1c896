// Package obj reads and writes models in a line-oriented text format
// derived from Wavefront OBJ:
//
//	# description
//	g name
//	v x y z
//	l i j
//	f i j k
//
// Vertex indices in l and f records are 1-based positions in the v block.
package obj

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Ext is the file extension handled by the importer and exporter.
const Ext = "obj"

var (
	// ErrFileNotSupported is returned for file names without the expected
	// extension. No I/O happens in that case.
	ErrFileNotSupported = errors.New("file not supported")
	// ErrFileNotAvailable is returned when a file cannot be opened or created.
	ErrFileNotAvailable = errors.New("file not available")
	// ErrFileNotClosed is returned when a written file fails to close, which
	// means its content may not have reached the disk.
	ErrFileNotClosed = errors.New("file not closed")
	// ErrMalformed is returned for input that does not follow the format.
	ErrMalformed = errors.New("malformed model file")
	// ErrMultilineText is returned when a name or description cannot be
	// written on a single line.
	ErrMultilineText = errors.New("text spans several lines")
	// ErrNonFinite is returned when a point coordinate is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Porter is the file gate shared by Importer and Exporter: it checks file
// names against one registered extension and probes file availability.
type Porter struct {
	ext string
}

// NewPorter creates a gate for files ending in "."+ext.
func NewPorter(ext string) Porter {
	return Porter{ext: strings.TrimPrefix(ext, ".")}
}

// Extension returns the registered extension without the dot.
func (p Porter) Extension() string {
	return p.ext
}

// FileExtension returns the text after the last dot of the file name.
func FileExtension(name string) (string, error) {
	base := filepath.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return "", fmt.Errorf("%w: %s has no extension", ErrFileNotSupported, name)
	}
	return base[i+1:], nil
}

// Validate fails with ErrFileNotSupported unless name carries the
// registered extension. The comparison ignores case.
func (p Porter) Validate(name string) error {
	ext, err := FileExtension(name)
	if err != nil {
		return err
	}
	if !strings.EqualFold(ext, p.ext) {
		return fmt.Errorf("%w: %s (want .%s)", ErrFileNotSupported, name, p.ext)
	}
	return nil
}

// Available reports whether name can be opened for reading.
func (p Porter) Available(name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// EnsureFile creates name if it does not exist yet.
func (p Porter) EnsureFile(name string) error {
	if err := p.Validate(name); err != nil {
		return err
	}
	if p.Available(name) {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotAvailable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotClosed, err)
	}
	return nil
}

// Option configures an Importer or Exporter.
type Option func(*settings)

type settings struct {
	logger    *zap.Logger
	precision int
}

func newSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop(), precision: -1}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger sets the logger for decode and encode summaries. A nil logger
// disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l == nil {
			l = zap.NewNop()
		}
		s.logger = l
	}
}

// WithPrecision sets the number of significant digits written for vertex
// coordinates. -1, the default, writes the shortest text that reads back to
// the exact same value.
func WithPrecision(p int) Option {
	return func(s *settings) {
		s.precision = p
	}
}

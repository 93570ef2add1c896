package obj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/philipparndt/gomodel/pkg/collection"
	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
)

// Exporter writes models to text files.
type Exporter struct {
	Porter
	settings
}

// NewExporter creates an exporter for .obj files.
func NewExporter(opts ...Option) *Exporter {
	return &Exporter{Porter: NewPorter(Ext), settings: newSettings(opts)}
}

// PointTable returns every distinct point of m in first-seen order, lines
// scanned before faces. Positions in the table are the vertex numbers of
// the written file, minus one.
func PointTable(m *model.Model) *collection.Set[geometry.Point] {
	table := &collection.Set[geometry.Point]{}
	for _, l := range m.Lines() {
		for _, p := range l.Points() {
			table.TryAdd(p)
		}
	}
	for _, f := range m.Faces() {
		for _, p := range f.Points() {
			table.TryAdd(p)
		}
	}
	return table
}

// validate checks that m can be written at all. Export runs it before the
// target file is truncated.
func validate(m *model.Model) error {
	if strings.ContainsAny(m.Name, "\r\n") {
		return fmt.Errorf("%w: name %q", ErrMultilineText, m.Name)
	}
	if strings.ContainsAny(m.Description, "\r\n") {
		return fmt.Errorf("%w: description %q", ErrMultilineText, m.Description)
	}
	for _, p := range PointTable(m).All() {
		if !finite(p) {
			return fmt.Errorf("%w: point %v", ErrNonFinite, p)
		}
	}
	return nil
}

func finite(p geometry.Point) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Export writes m to the named file, replacing its content. An existing
// file is left alone when m cannot be written.
func (e *Exporter) Export(name string, m *model.Model) (err error) {
	if err := e.Validate(name); err != nil {
		return err
	}
	if err := validate(m); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotAvailable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrFileNotClosed, cerr)
		}
	}()

	if err := e.Encode(f, m); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	e.logger.Debug("exported model", zap.String("file", name), zap.String("name", m.Name))
	return nil
}

// Encode writes m to w. Nothing is written when m fails validation.
func (e *Exporter) Encode(w io.Writer, m *model.Model) error {
	if err := validate(m); err != nil {
		return err
	}

	table := PointTable(m)
	// Point equality is ==, so a map gives the same answer as table.Search
	// without the linear scan.
	positions := make(map[geometry.Point]int, table.Len())
	for i, p := range table.All() {
		positions[p] = i + 1
	}
	index := func(pts ...geometry.Point) ([]int, error) {
		refs := make([]int, len(pts))
		for i, p := range pts {
			n, ok := positions[p]
			if !ok {
				return nil, fmt.Errorf("%w: point %v", ErrNonFinite, p)
			}
			refs[i] = n
		}
		return refs, nil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", m.Description)
	fmt.Fprintf(bw, "g %s\n", m.Name)
	for _, p := range table.All() {
		fmt.Fprintf(bw, "v %s %s %s\n", e.formatFloat(p.X), e.formatFloat(p.Y), e.formatFloat(p.Z))
	}
	for _, l := range m.Lines() {
		v := l.Vertices()
		refs, err := index(v[:]...)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "l %d %d\n", refs[0], refs[1])
	}
	for _, f := range m.Faces() {
		v := f.Vertices()
		refs, err := index(v[:]...)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "f %d %d %d\n", refs[0], refs[1], refs[2])
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	e.logger.Debug("encoded model",
		zap.Int("vertices", table.Len()),
		zap.Int("lines", m.LineCount()),
		zap.Int("faces", m.FaceCount()))
	return nil
}

func (e *Exporter) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', e.precision, 64)
}

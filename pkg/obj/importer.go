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

	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
)

const maxLineSize = 1024 * 1024

// Importer reads models from text files.
type Importer struct {
	Porter
	settings
}

// NewImporter creates an importer for .obj files.
func NewImporter(opts ...Option) *Importer {
	return &Importer{Porter: NewPorter(Ext), settings: newSettings(opts)}
}

// decoded is the content of one stream before it is merged into a model.
type decoded struct {
	name, description *string
	vertices          []geometry.Point
	faces             []geometry.Face
	lines             []geometry.Line
	ignored           int
}

func formatError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, fmt.Sprintf(format, args...))
}

// restOf returns what follows the one-character tag of line, without the
// single separating space.
func restOf(line string) string {
	rest := line[1:]
	return strings.TrimPrefix(rest, " ")
}

func (d *decoded) addVertex(fields []string, line int) error {
	if len(fields) < 4 {
		return formatError(line, "vertex needs 3 coordinates, got %d", len(fields)-1)
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return formatError(line, "bad coordinate %q", fields[i+1])
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %w", formatError(line, "coordinate %q", fields[i+1]), ErrNonFinite)
		}
		c[i] = v
	}
	d.vertices = append(d.vertices, geometry.NewPoint(c[0], c[1], c[2]))
	return nil
}

// resolve turns 1-based vertex references into points. A reference may
// carry OBJ texture and normal parts (1/2/3), which are ignored.
func (d *decoded) resolve(refs []string, line int) ([]geometry.Point, error) {
	pts := make([]geometry.Point, len(refs))
	for i, ref := range refs {
		if slash := strings.IndexByte(ref, '/'); slash >= 0 {
			ref = ref[:slash]
		}
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, formatError(line, "bad vertex index %q", ref)
		}
		if n < 1 || n > len(d.vertices) {
			return nil, formatError(line, "vertex index %d out of range [1, %d]", n, len(d.vertices))
		}
		pts[i] = d.vertices[n-1]
	}
	return pts, nil
}

func (d *decoded) addFace(fields []string, line int) error {
	if len(fields) != geometry.FacePoints+1 {
		return formatError(line, "face needs %d vertex indices, got %d", geometry.FacePoints, len(fields)-1)
	}
	pts, err := d.resolve(fields[1:], line)
	if err != nil {
		return err
	}
	f, err := geometry.NewFaceFrom(pts)
	if err != nil {
		return fmt.Errorf("%w: %w", formatError(line, "invalid face"), err)
	}
	d.faces = append(d.faces, f)
	return nil
}

func (d *decoded) addLine(fields []string, line int) error {
	if len(fields) != geometry.LinePoints+1 {
		return formatError(line, "line needs %d vertex indices, got %d", geometry.LinePoints, len(fields)-1)
	}
	pts, err := d.resolve(fields[1:], line)
	if err != nil {
		return err
	}
	l, err := geometry.NewLineFrom(pts)
	if err != nil {
		return fmt.Errorf("%w: %w", formatError(line, "invalid line"), err)
	}
	d.lines = append(d.lines, l)
	return nil
}

func (im *Importer) decode(r io.Reader) (*decoded, error) {
	d := &decoded{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), "\r")
		text := strings.TrimLeft(raw, " \t")
		if text == "" {
			continue
		}

		if text[0] == '#' {
			desc := restOf(text)
			d.description = &desc
			continue
		}

		fields := strings.Fields(text)
		var err error
		switch fields[0] {
		case "g":
			name := restOf(text)
			d.name = &name
		case "v":
			err = d.addVertex(fields, lineNo)
		case "f":
			err = d.addFace(fields, lineNo)
		case "l":
			err = d.addLine(fields, lineNo)
		default:
			d.ignored++
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading model: %w", err)
	}
	return d, nil
}

// DecodeInto reads a stream and merges its faces and lines into m, skipping
// those m already holds. Name and description are taken from the stream
// when it has them. On error m is left unchanged.
func (im *Importer) DecodeInto(r io.Reader, m *model.Model) error {
	d, err := im.decode(r)
	if err != nil {
		return err
	}

	before := m.ElementCount()
	if d.name != nil {
		m.Name = *d.name
	}
	if d.description != nil {
		m.Description = *d.description
	}
	m.AddLines(d.lines...)
	m.AddFaces(d.faces...)

	im.logger.Debug("decoded model",
		zap.String("name", m.Name),
		zap.Int("vertices", len(d.vertices)),
		zap.Int("faces", len(d.faces)),
		zap.Int("lines", len(d.lines)),
		zap.Int("merged", m.ElementCount()-before),
		zap.Int("ignored_records", d.ignored))
	return nil
}

// Decode reads a stream into a new model.
func (im *Importer) Decode(r io.Reader) (*model.Model, error) {
	m := model.New()
	if err := im.DecodeInto(r, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Import merges the named file into m.
func (im *Importer) Import(name string, m *model.Model) error {
	if err := im.Validate(name); err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotAvailable, err)
	}
	defer f.Close()

	if err := im.DecodeInto(f, m); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

// ImportFile reads the named file into a new model.
func (im *Importer) ImportFile(name string) (*model.Model, error) {
	m := model.New()
	if err := im.Import(name, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ImportFileInto replaces the content of m with the named file.
func (im *Importer) ImportFileInto(name string, m *model.Model) error {
	fresh, err := im.ImportFile(name)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

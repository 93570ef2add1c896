// Package store keeps an ordered list of models with a current selection
// and reports the outcome of every operation as a Result.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/philipparndt/gomodel/pkg/analysis"
	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/obj"
)

// CurrentModel selects the current model wherever an index is expected.
const CurrentModel = -1

var (
	// ErrModelNotFound is returned for an index or ID outside the store.
	ErrModelNotFound = errors.New("model not found")
	// ErrModelExists reports a file that is already open in the store.
	ErrModelExists = errors.New("model already exists")
)

type entry struct {
	id    uuid.UUID
	path  string
	model *model.Model
}

// Store is a list of models owned by the caller. It is not safe for
// concurrent use.
type Store struct {
	entries  []entry
	current  int
	name     string
	desc     string
	importer *obj.Importer
	exporter *obj.Exporter
	log      *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for registry changes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithImporter replaces the default importer.
func WithImporter(im *obj.Importer) Option {
	return func(s *Store) { s.importer = im }
}

// WithExporter replaces the default exporter.
func WithExporter(ex *obj.Exporter) Option {
	return func(s *Store) { s.exporter = ex }
}

// WithDefaults sets the name and description given to created models.
func WithDefaults(name, description string) Option {
	return func(s *Store) {
		s.name = name
		s.desc = description
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		current: -1,
		name:    model.DefaultName,
		desc:    model.DefaultName,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.importer == nil {
		s.importer = obj.NewImporter(obj.WithLogger(s.log))
	}
	if s.exporter == nil {
		s.exporter = obj.NewExporter(obj.WithLogger(s.log))
	}
	return s
}

// Len returns the number of models.
func (s *Store) Len() int {
	return len(s.entries)
}

// Current returns the index of the current model, or -1 when the store is
// empty.
func (s *Store) Current() int {
	return s.current
}

func (s *Store) resolve(i int) (int, error) {
	if i == CurrentModel {
		i = s.current
	}
	if i < 0 || i >= len(s.entries) {
		return -1, fmt.Errorf("%w: index %d", ErrModelNotFound, i)
	}
	return i, nil
}

func (s *Store) find(id uuid.UUID) int {
	for i, e := range s.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

func (s *Store) insert(i int, e entry) Result {
	if s.find(e.id) >= 0 {
		return ModelAlreadyExists
	}
	if i < 0 || i >= len(s.entries) {
		i = len(s.entries)
		s.entries = append(s.entries, e)
	} else {
		s.entries = slices.Insert(s.entries, i, e)
		if i <= s.current {
			s.current++
		}
	}
	if s.current < 0 {
		s.current = 0
	}
	s.log.Debug("model added",
		zap.String("id", e.id.String()),
		zap.Int("index", i),
		zap.String("name", e.model.Name))
	return OK
}

// Create appends an empty model and makes it current.
func (s *Store) Create() Result {
	m := model.New()
	m.Name = s.name
	m.Description = s.desc
	s.insert(len(s.entries), entry{id: uuid.New(), model: m})
	s.current = len(s.entries) - 1
	return OK
}

// Add appends a copy of m.
func (s *Store) Add(m *model.Model) Result {
	return s.Insert(len(s.entries), m)
}

// Insert places a copy of m at index i, or appends it when i is past the
// end. The current index keeps naming the same model.
func (s *Store) Insert(i int, m *model.Model) Result {
	if m == nil {
		return UnknownType
	}
	return s.insert(i, entry{id: uuid.New(), model: m.Clone()})
}

// Open imports file into a new model and makes it current. The model ID is
// derived from the absolute path, so opening a file twice reports
// ModelAlreadyExists.
func (s *Store) Open(file string) Result {
	abs, err := filepath.Abs(file)
	if err != nil {
		return FileNotAvailable
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs))
	if s.find(id) >= 0 {
		return ModelAlreadyExists
	}
	m, err := s.importer.ImportFile(file)
	if err != nil {
		s.log.Debug("open failed", zap.String("file", file), zap.Error(err))
		return ResultOf(err)
	}
	s.insert(len(s.entries), entry{id: id, path: abs, model: m})
	s.current = len(s.entries) - 1
	return OK
}

// Remove deletes the model at index i.
func (s *Store) Remove(i int) Result {
	i, err := s.resolve(i)
	if err != nil {
		return ResultOf(err)
	}
	id := s.entries[i].id
	s.entries = slices.Delete(s.entries, i, i+1)
	if i < s.current || s.current >= len(s.entries) {
		s.current--
	}
	s.log.Debug("model removed", zap.String("id", id.String()), zap.Int("index", i))
	return OK
}

// SetCurrent selects the model at index i.
func (s *Store) SetCurrent(i int) Result {
	i, err := s.resolve(i)
	if err != nil {
		return ResultOf(err)
	}
	s.current = i
	return OK
}

// Get returns a copy of the model at index i.
func (s *Store) Get(i int) (*model.Model, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return nil, ResultOf(err)
	}
	return s.entries[i].model.Clone(), OK
}

// ID returns the identifier of the model at index i.
func (s *Store) ID(i int) (uuid.UUID, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return uuid.Nil, ResultOf(err)
	}
	return s.entries[i].id, OK
}

// Index returns the position of the model with the given ID.
func (s *Store) Index(id uuid.UUID) (int, Result) {
	if i := s.find(id); i >= 0 {
		return i, OK
	}
	return -1, ModelNotFound
}

// Path returns the absolute path a model was opened from, or "" for models
// that were created or added.
func (s *Store) Path(i int) (string, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return "", ResultOf(err)
	}
	return s.entries[i].path, OK
}

// Load replaces the content of the model at index i with file.
func (s *Store) Load(file string, i int) Result {
	return s.update(i, func(m *model.Model) error {
		return s.importer.ImportFileInto(file, m)
	})
}

// Save writes the model at index i to file.
func (s *Store) Save(file string, i int) Result {
	i, err := s.resolve(i)
	if err != nil {
		return ResultOf(err)
	}
	if err := s.exporter.EnsureFile(file); err != nil {
		return ResultOf(err)
	}
	if err := s.exporter.Export(file, s.entries[i].model); err != nil {
		s.log.Debug("save failed", zap.String("file", file), zap.Error(err))
		return ResultOf(err)
	}
	return OK
}

// update runs edit on a copy of the model at index i and keeps the copy
// only if edit succeeds.
func (s *Store) update(i int, edit func(m *model.Model) error) Result {
	i, err := s.resolve(i)
	if err != nil {
		return ResultOf(err)
	}
	m := s.entries[i].model.Clone()
	if err := edit(m); err != nil {
		return ResultOf(err)
	}
	s.entries[i].model = m
	return OK
}

func distinct(pts ...geometry.Point) bool {
	for a := range pts {
		for b := a + 1; b < len(pts); b++ {
			if pts[a].Equal(pts[b]) {
				return false
			}
		}
	}
	return true
}

// AddFace adds the face with corners a, b and c to the model at index i.
func (s *Store) AddFace(i int, a, b, c geometry.Point) Result {
	if !distinct(a, b, c) {
		return PointDuplicated
	}
	return s.update(i, func(m *model.Model) error {
		return m.AddFacePoints(a, b, c)
	})
}

// AddLine adds the line from a to b to the model at index i.
func (s *Store) AddLine(i int, a, b geometry.Point) Result {
	if !distinct(a, b) {
		return PointDuplicated
	}
	return s.update(i, func(m *model.Model) error {
		return m.AddLinePoints(a, b)
	})
}

// RemoveFace removes face number face of the model at index i.
func (s *Store) RemoveFace(i, face int) Result {
	return s.update(i, func(m *model.Model) error {
		return m.RemoveFaceAt(face)
	})
}

// RemoveLine removes line number line of the model at index i.
func (s *Store) RemoveLine(i, line int) Result {
	return s.update(i, func(m *model.Model) error {
		return m.RemoveLineAt(line)
	})
}

// ChangeFacePoint moves corner point of face number face to p. The change
// is rejected when the edited face equals a face already in the model.
func (s *Store) ChangeFacePoint(i, face, point int, p geometry.Point) Result {
	return s.update(i, func(m *model.Model) error {
		orig := m.Clone()
		if err := m.ChangeFaceAtPointAt(face, point, p); err != nil {
			return err
		}
		changed, err := m.Face(face)
		if err != nil {
			return err
		}
		if orig.ContainFace(changed) {
			return fmt.Errorf("%w: %v", model.ErrFaceExists, changed)
		}
		return nil
	})
}

// ChangeLinePoint moves end point of line number line to p. The change is
// rejected when the edited line equals a line already in the model.
func (s *Store) ChangeLinePoint(i, line, point int, p geometry.Point) Result {
	return s.update(i, func(m *model.Model) error {
		orig := m.Clone()
		if err := m.ChangeLineAtPointAt(line, point, p); err != nil {
			return err
		}
		changed, err := m.Line(line)
		if err != nil {
			return err
		}
		if orig.ContainLine(changed) {
			return fmt.Errorf("%w: %v", model.ErrLineExists, changed)
		}
		return nil
	})
}

// ClearFaces removes every face of the model at index i.
func (s *Store) ClearFaces(i int) Result {
	return s.update(i, func(m *model.Model) error {
		m.ClearFaces()
		return nil
	})
}

// ClearLines removes every line of the model at index i.
func (s *Store) ClearLines(i int) Result {
	return s.update(i, func(m *model.Model) error {
		m.ClearLines()
		return nil
	})
}

// Clear removes every element of the model at index i.
func (s *Store) Clear(i int) Result {
	return s.update(i, func(m *model.Model) error {
		m.Clear()
		return nil
	})
}

// Rename sets the name of the model at index i.
func (s *Store) Rename(i int, name string) Result {
	return s.update(i, func(m *model.Model) error {
		m.Name = name
		return nil
	})
}

// Describe sets the description of the model at index i.
func (s *Store) Describe(i int, description string) Result {
	return s.update(i, func(m *model.Model) error {
		m.Description = description
		return nil
	})
}

// Info summarizes the model at index i.
func (s *Store) Info(i int) (analysis.Summary, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return analysis.Summary{}, ResultOf(err)
	}
	return analysis.Summarize(s.entries[i].model), OK
}

// Infos summarizes every model in order.
func (s *Store) Infos() []analysis.Summary {
	infos := make([]analysis.Summary, len(s.entries))
	for i, e := range s.entries {
		infos[i] = analysis.Summarize(e.model)
	}
	return infos
}

// FaceInfo describes the faces of the model at index i in model order.
func (s *Store) FaceInfo(i int) ([]analysis.FaceInfo, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return nil, ResultOf(err)
	}
	return analysis.DescribeFaces(s.entries[i].model, analysis.ModelOrder, -1), OK
}

// LineInfo describes the lines of the model at index i in model order.
func (s *Store) LineInfo(i int) ([]analysis.LineInfo, Result) {
	i, err := s.resolve(i)
	if err != nil {
		return nil, ResultOf(err)
	}
	return analysis.DescribeLines(s.entries[i].model, analysis.ModelOrder, -1), OK
}

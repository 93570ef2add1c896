package store

import (
	"errors"

	"github.com/philipparndt/gomodel/pkg/geometry"
	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/obj"
)

// Result is the outcome of a store operation.
type Result int

const (
	OK Result = iota
	FileNotSupported
	FileNotAvailable
	FileNotClosed
	PointDuplicated
	PointNotFound
	FaceAlreadyExists
	FaceNotFound
	LineAlreadyExists
	LineNotFound
	ModelAlreadyExists
	ModelNotFound
	UnknownType
)

var resultNames = [...]string{
	OK:                 "OK",
	FileNotSupported:   "FILE_NOT_SUPPORTED",
	FileNotAvailable:   "FILE_NOT_AVAILABLE",
	FileNotClosed:      "FILE_NOT_CLOSED",
	PointDuplicated:    "POINT_DUPLICATED",
	PointNotFound:      "POINT_NOT_FOUND",
	FaceAlreadyExists:  "FACE_ALREADY_EXISTS",
	FaceNotFound:       "FACE_NOT_FOUND",
	LineAlreadyExists:  "LINE_ALREADY_EXISTS",
	LineNotFound:       "LINE_NOT_FOUND",
	ModelAlreadyExists: "MODEL_ALREADY_EXISTS",
	ModelNotFound:      "MODEL_NOT_FOUND",
	UnknownType:        "UNKNOWN_TYPE",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return resultNames[UnknownType]
	}
	return resultNames[r]
}

// Err returns nil for OK and an error carrying the result name otherwise.
func (r Result) Err() error {
	if r == OK {
		return nil
	}
	return ResultError(r)
}

// ResultError is a non-OK Result used as an error.
type ResultError Result

func (e ResultError) Error() string {
	return Result(e).String()
}

// resultTable maps error kinds to results. File errors come first: a
// malformed file may also carry the element error that made it malformed.
var resultTable = []struct {
	err    error
	result Result
}{
	{obj.ErrFileNotSupported, FileNotSupported},
	{obj.ErrMalformed, FileNotSupported},
	{obj.ErrFileNotAvailable, FileNotAvailable},
	{obj.ErrFileNotClosed, FileNotClosed},
	{ErrModelExists, ModelAlreadyExists},
	{ErrModelNotFound, ModelNotFound},
	{model.ErrFaceExists, FaceAlreadyExists},
	{model.ErrFaceNotFound, FaceNotFound},
	{model.ErrLineExists, LineAlreadyExists},
	{model.ErrLineNotFound, LineNotFound},
	{geometry.ErrPointDuplicated, PointDuplicated},
	{geometry.ErrPointNotFound, PointNotFound},
}

// ResultOf translates an error from the model, geometry or obj packages
// into a Result. Unknown errors become UnknownType.
func ResultOf(err error) Result {
	if err == nil {
		return OK
	}
	var re ResultError
	if errors.As(err, &re) {
		return Result(re)
	}
	for _, row := range resultTable {
		if errors.Is(err, row.err) {
			return row.result
		}
	}
	return UnknownType
}

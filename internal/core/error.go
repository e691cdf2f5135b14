package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

var (
	ErrMissingFile      = errors.New("missing file")
	ErrMalformedData    = errors.New("malformed data")
	ErrTemplateNotFound = errors.New("template not found")
	ErrRender           = errors.New("render error")
	ErrPageNotFound     = errors.New("page not found")
	ErrInvalidPageName  = errors.New("invalid page name")
	ErrPageExists       = errors.New("page already exists")
)

// MalformedDataError reports a content.json that could not be decoded.
// Line and Column are 1-based and zero when the decoder gave no offset.
type MalformedDataError struct {
	Path   string
	Offset int64
	Line   int
	Column int
	Err    error
}

func NewMalformedDataError(path string, data []byte, err error) *MalformedDataError {
	e := &MalformedDataError{Path: path, Err: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		e.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		e.Offset = typeErr.Offset
	}

	if e.Offset > 0 {
		e.Line, e.Column = LineColumn(data, e.Offset)
	}
	return e
}

func (e *MalformedDataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid JSON in %s at line %d, column %d (offset %d): %v", e.Path, e.Line, e.Column, e.Offset, e.Err)
	}
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

// LineColumn converts a decoder byte offset into a 1-based line and column.
// encoding/json reports the offset just past the offending byte. Columns
// count runes.
func LineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line, col := 1, 0
	for len(head) > 0 {
		if head[0] == '\n' {
			line++
			col = 0
			head = head[1:]
			continue
		}
		_, size := utf8.DecodeRune(head)
		head = head[size:]
		col++
	}
	if col == 0 {
		col = 1
	}
	return line, col
}

func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrPageNotFound), errors.Is(err, ErrInvalidPageName):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

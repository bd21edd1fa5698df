// Package document loads the text body to be searched.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrInvalidText = errors.New("file is not valid UTF-8 text")

// IOError reports a file that could not be read or decoded.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, cause)
}

func (e *IOError) Unwrap() error { return e.Err }

// Read loads the whole file at path as UTF-8 text, dropping a leading byte order mark.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Op: "read", Err: err}
	}
	text, err := Decode(b)
	if err != nil {
		return "", &IOError{Path: path, Op: "decode", Err: err}
	}
	return text, nil
}

// Decode validates b as UTF-8 and strips a leading BOM.
func Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

package helpers

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/unicourse/internal/pkg/apperrors"
)

// LineReader hands out input lines one at a time
type LineReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineReader wraps r. Lines may end in "\n" or "\r\n" and have no length limit.
func NewLineReader(r io.Reader) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	return &LineReader{scanner: scanner}
}

// Next returns the next line, or io.EOF once the input is exhausted
func (r *LineReader) Next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.line++
	return r.scanner.Text(), nil
}

// Operand returns the next line as a command operand.
// Running out of input in the middle of a command is an input error.
func (r *LineReader) Operand(name string) (string, error) {
	s, err := r.Next()
	if err == io.EOF {
		return "", apperrors.NewInvalidInputError("missing %s operand at line %d", name, r.line+1)
	}
	if err != nil {
		return "", apperrors.WrapInvalidInput(err, "reading "+name)
	}
	return s, nil
}

// Line returns the number of lines consumed so far
func (r *LineReader) Line() int {
	return r.line
}

// ParseID parses a decimal 32-bit integer with an optional sign
func ParseID(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, apperrors.WrapInvalidInput(err, "malformed id")
	}
	return int(v), nil
}

// FoldName lowercases a name operand
func FoldName(s string) string {
	return strings.ToLower(s)
}

// FoldLevel uppercases a course level operand
func FoldLevel(s string) string {
	return strings.ToUpper(s)
}

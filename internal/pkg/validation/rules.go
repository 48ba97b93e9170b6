package validation

import (
	"regexp"

	"github.com/yigit/unicourse/internal/app/models/dto/enums"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// MemberNamePattern - letters only
	MemberNamePattern = `^[a-zA-Z]+$`

	// CourseNamePattern - letter runs joined by single underscores
	CourseNamePattern = `^[a-zA-Z]+(_[a-zA-Z]+)*$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	MemberName *regexp.Regexp
	CourseName *regexp.Regexp
}{
	MemberName: regexp.MustCompile(MemberNamePattern),
	CourseName: regexp.MustCompile(CourseNamePattern),
}

// ReservedNames can never be used as a member name
var ReservedNames = reservedWords()

// ReservedCourseNames can never be used as a course name
var ReservedCourseNames = reservedWords("master", "bachelor")

func reservedWords(extra ...string) map[string]struct{} {
	words := make(map[string]struct{}, len(enums.Commands)+len(extra))
	for _, c := range enums.Commands {
		words[c.String()] = struct{}{}
	}
	for _, w := range extra {
		words[w] = struct{}{}
	}
	return words
}

// CheckName validates a student or professor name.
// The name is expected to be lowercased already.
func CheckName(name string) error {
	ok := NewStringValidation(name).
		WithPattern(CompiledPatterns.MemberName).
		WithReserved(ReservedNames).
		Validate()
	if !ok {
		return apperrors.NewInvalidInputError("invalid member name %q", name)
	}
	return nil
}

// CheckCourseName validates a course name. Duplicates are reported before
// anything else, so an existing name wins over a reserved or malformed one.
func CheckCourseName(name string, exists func(string) bool) error {
	if exists != nil && exists(name) {
		return apperrors.ErrCourseExists
	}
	ok := NewStringValidation(name).
		WithPattern(CompiledPatterns.CourseName).
		WithReserved(ReservedCourseNames).
		Validate()
	if !ok {
		return apperrors.NewInvalidInputError("invalid course name %q", name)
	}
	return nil
}

// StringValidation checks one string value
type StringValidation struct {
	Value    string
	Pattern  *regexp.Regexp
	Reserved map[string]struct{}
}

// NewStringValidation creates a new string validation. Empty values never pass.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithReserved rejects values found in words
func (v *StringValidation) WithReserved(words map[string]struct{}) *StringValidation {
	v.Reserved = words
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}

	if _, reserved := v.Reserved[v.Value]; reserved {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// NumericValidation checks one integer value
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate reports whether Min <= Value <= Max
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

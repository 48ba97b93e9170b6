package helpers

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unicourse/internal/pkg/apperrors"
)

func TestLineReader_Next(t *testing.T) {
	r := NewLineReader(strings.NewReader("enroll\r\n1\n\n4"))

	for _, want := range []string{"enroll", "1", "", "4"} {
		got, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 4, r.Line())
}

func TestLineReader_NextLongLine(t *testing.T) {
	name := strings.Repeat("a", 70000)
	r := NewLineReader(strings.NewReader("student\n" + name + "\n"))

	_, err := r.Next()
	require.NoError(t, err)
	got, err := r.Operand("student name")

	require.NoError(t, err)
	assert.Equal(t, name, got)
}

func TestLineReader_OperandAtEOF(t *testing.T) {
	r := NewLineReader(strings.NewReader("student\n"))
	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Operand("student name")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "student name")
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"+7", 7, false},
		{"-3", -3, false},
		{"007", 7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{" 1", 0, true},
		{"1 ", 0, true},
		{"2147483648", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseID(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFolding(t *testing.T) {
	assert.Equal(t, "computer_vision", FoldName("Computer_VISION"))
	assert.Equal(t, "MASTER", FoldLevel("master"))
	assert.Equal(t, "BACHELOR", FoldLevel("BaChElOr"))
}

package isbn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		digits Digits
		want   string
	}{
		{"0306406152", "0-306-40615-2"},
		{"080442957x", "0-804-42957-X"},
		{"0000000000", "0-000-00000-0"},
		{"9780306406157", "978-0-30640-615-7"},
		{"9790000000001", "979-0-00000-000-1"},
	}
	for _, tt := range tests {
		got, err := Format(tt.digits)
		require.NoError(t, err, string(tt.digits))
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatGroups(t *testing.T) {
	tests := []struct {
		digits Digits
		groups []int
	}{
		{"0306406152", []int{1, 3, 5, 1}},
		{"9780306406157", []int{3, 1, 5, 3, 1}},
	}
	for _, tt := range tests {
		got, err := Format(tt.digits)
		require.NoError(t, err)

		parts := strings.Split(got, "-")
		lens := make([]int, len(parts))
		for i, p := range parts {
			lens[i] = len(p)
		}
		assert.Equal(t, tt.groups, lens, got)
	}
}

func TestFormatDoesNotVerify(t *testing.T) {
	got, err := Format("0306406153")
	require.NoError(t, err)
	assert.Equal(t, "0-306-40615-3", got)
}

func TestFormatRejectsPartial(t *testing.T) {
	_, err := Format("030640615")
	assert.True(t, errs.Is(err, errs.ErrCodeLengthMismatch))

	_, err = Format("03064")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidLength))
}

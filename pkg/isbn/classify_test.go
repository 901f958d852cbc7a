package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		digits   Digits
		want     Variant
		family   Family
		complete bool
	}{
		{"030640615", Isbn10Partial, ISBN10, false},
		{"0306406152", Isbn10Full, ISBN10, true},
		{"080442957X", Isbn10Full, ISBN10, true},
		{"080442957x", Isbn10Full, ISBN10, true},
		{"978030640615", Isbn13Partial, ISBN13, false},
		{"9780306406157", Isbn13Full, ISBN13, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.digits), func(t *testing.T) {
			v, err := Classify(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.family, v.Family())
			assert.Equal(t, tt.complete, v.Complete())
			assert.Equal(t, len(tt.digits), v.Len())
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name   string
		digits Digits
		code   errs.Code
	}{
		{"empty", "", errs.ErrCodeInvalidLength},
		{"eight", "03064061", errs.ErrCodeInvalidLength},
		{"eleven", "03064061521", errs.ErrCodeInvalidLength},
		{"fourteen", "97803064061570", errs.ErrCodeInvalidLength},
		{"X inside ISBN-10", "03064061X2", errs.ErrCodeInvalidCheckSymbol},
		{"X in partial ISBN-10", "03064061X", errs.ErrCodeInvalidCheckSymbol},
		{"X at end of ISBN-13", "978030640615X", errs.ErrCodeInvalidCheckSymbol},
		{"X in partial ISBN-13", "97803064061X", errs.ErrCodeInvalidCheckSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.digits)
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.GetCode(err))
		})
	}
}

func TestExpect(t *testing.T) {
	assert.NoError(t, Expect(Isbn10Partial, false))
	assert.NoError(t, Expect(Isbn13Partial, false))
	assert.NoError(t, Expect(Isbn10Full, true))
	assert.NoError(t, Expect(Isbn13Full, true))

	for _, tc := range []struct {
		v        Variant
		complete bool
	}{
		{Isbn10Full, false},
		{Isbn13Full, false},
		{Isbn10Partial, true},
		{Isbn13Partial, true},
	} {
		err := Expect(tc.v, tc.complete)
		require.Error(t, err, "%s complete=%v", tc.v, tc.complete)
		assert.True(t, errs.Is(err, errs.ErrCodeLengthMismatch))
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in   string
		want Family
	}{
		{"", AnyFamily},
		{"auto", AnyFamily},
		{"ANY", AnyFamily},
		{"10", ISBN10},
		{"isbn10", ISBN10},
		{"ISBN-10", ISBN10},
		{"13", ISBN13},
		{"isbn-13", ISBN13},
	}
	for _, tt := range tests {
		got, err := ParseFamily(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFamily("11")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "isbn10", Isbn10Full.String())
	assert.Equal(t, "isbn13-partial", Isbn13Partial.String())
	assert.Equal(t, "unknown", Variant(0).String())
	assert.Equal(t, "ISBN-13", ISBN13.String())
	assert.Equal(t, "any", AnyFamily.String())
}

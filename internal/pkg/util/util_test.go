package util

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tech", "tech"},
		{"Hello, World! 2026", "hello-world-2026"},
		{"  Go   is -- fun  ", "go-is-fun"},
		{"Привіт Світ", "privit-svit"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	assert.Equal(t, Slugify("Новини та події"), Slugify("Новини та події"))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	id, ok = ParseID("9223372036854775807")
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxInt64), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5", "9223372036854775808", "18446744073709551615"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestStorableID(t *testing.T) {
	assert.True(t, StorableID(1))
	assert.True(t, StorableID(math.MaxInt64))
	assert.False(t, StorableID(0))
	assert.False(t, StorableID(math.MaxUint64))
}

type sampleDTO struct {
	Title   string  `json:"title" validate:"required,max=5"`
	Excerpt *string `json:"excerpt,omitempty" validate:"omitempty,max=3"`
}

func TestValidateDTO(t *testing.T) {
	vErr, err := ValidateDTO(&sampleDTO{Title: "ok"})
	require.NoError(t, err)
	assert.NoError(t, vErr.OrNil())

	vErr, err = ValidateDTO(&sampleDTO{Excerpt: PtrString("long")})
	require.NoError(t, err)
	require.Len(t, vErr.Errors, 2)
	assert.Equal(t, FieldError{Field: "title", Rule: RuleRequired}, vErr.Errors[0])
	assert.Equal(t, FieldError{Field: "excerpt", Rule: RuleMax, Param: "3"}, vErr.Errors[1])
	assert.True(t, vErr.Has("excerpt"))
	assert.Error(t, vErr.OrNil())
}

func TestValidateDTO_MaxCountsRunes(t *testing.T) {
	vErr, err := ValidateDTO(&sampleDTO{Title: strings.Repeat("ї", 5)})
	require.NoError(t, err)
	assert.NoError(t, vErr.OrNil())
}

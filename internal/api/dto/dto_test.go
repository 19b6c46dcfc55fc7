package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool(t *testing.T) {
	tests := []struct {
		raw   string
		set   bool
		valid bool
		value bool
	}{
		{`true`, true, true, true},
		{`false`, true, true, false},
		{`1`, true, true, true},
		{`0`, true, true, false},
		{`"1"`, true, true, true},
		{`"0"`, true, true, false},
		{`null`, false, true, false},
		{`"yes"`, true, false, false},
		{`2`, true, false, false},
		{`"true"`, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var req PostBaseDTO
			require.NoError(t, json.Unmarshal([]byte(`{"is_published":`+tt.raw+`}`), &req))
			assert.Equal(t, tt.set, req.IsPublished.Set())
			assert.Equal(t, tt.valid, req.IsPublished.Valid())
			assert.Equal(t, tt.value, req.Publish())
		})
	}

	var absent PostBaseDTO
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.IsPublished.Set())
	assert.True(t, absent.IsPublished.Valid())
	assert.True(t, NewFlexBool(true).Bool())
}

func TestPostBaseDTO_Normalize(t *testing.T) {
	req := PostBaseDTO{Title: "  Hi ", ContentRaw: " body ", Excerpt: ptr("   ")}
	req.Normalize()
	assert.Equal(t, "Hi", req.Title)
	assert.Equal(t, "body", req.Content)
	assert.Nil(t, req.Excerpt)
}

func ptr(s string) *string { return &s }

package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"New Roof! Tips & Tricks", "new-roof-tips-tricks"},
		{"Hello World", "hello-world"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.title), tt.title)
	}
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	a := GenerateSlug("Winter Gutter Maintenance")
	b := GenerateSlug("Winter Gutter Maintenance")
	assert.Equal(t, a, b)
}

func TestCalculateReadTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	assert.Equal(t, 1, CalculateReadTime(""), "empty content still reads as one minute")
	assert.Equal(t, 1, CalculateReadTime(words(1)))
	assert.Equal(t, 1, CalculateReadTime(words(200)))
	assert.Equal(t, 2, CalculateReadTime(words(201)))
	assert.Equal(t, 2, CalculateReadTime(words(400)))
}

func TestCalculateReadTime_Monotonic(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	prev := 0
	for _, n := range []int{50, 100, 200, 400, 800, 1600} {
		rt := CalculateReadTime(words(n))
		assert.GreaterOrEqual(t, rt, prev, "read time must not decrease with more words")
		prev = rt
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, validCategory(CategoryRoofing))
	assert.True(t, validCategory(CategoryNews))
	assert.False(t, validCategory("landscaping"))
	assert.False(t, validCategory(""))
}

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already formatted", "408-555-1234", "408-555-1234"},
		{"parentheses and spaces", "(408) 555 1234", "408-555-1234"},
		{"bare digits", "4085551234", "408-555-1234"},
		{"mixed separators", "(408)-555 12-34", "408-555-1234"},
		{"too short", "555-1234", ""},
		{"too long", "1-408-555-1234", ""},
		{"letters mixed in", "408x555123", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mixed casing", "fInn KElly", "Finn Kelly"},
		{"emoji dropped", "Ana 😊 Lopez", "Ana  Lopez"},
		{"cjk dropped", "明Tom", "Tom"},
		{"leading and trailing space", "  jo smith ", "Jo Smith"},
		{"single token", "madonna", "Madonna"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("John Smith Jr.")
	assert.Equal(t, "John", first)
	assert.Equal(t, "Smith Jr.", last)

	first, last = SplitName("Madonna")
	assert.Equal(t, "Madonna", first)
	assert.Equal(t, "", last)

	first, last = SplitName("  Mary   Jane   Watson ")
	assert.Equal(t, "Mary", first)
	assert.Equal(t, "Jane Watson", last)

	first, last = SplitName("")
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}

func TestNormalizeLabelKey(t *testing.T) {
	key, ok := NormalizeLabelKey("Chapter Head")
	assert.True(t, ok)
	assert.Equal(t, "custom.chapterHead", key)

	key, ok = NormalizeLabelKey("Member")
	assert.True(t, ok)
	assert.Equal(t, "custom.member", key)

	key, ok = NormalizeLabelKey("Guardian (2024)")
	assert.True(t, ok)
	assert.Equal(t, "custom.guardian2024", key)

	_, ok = NormalizeLabelKey("")
	assert.False(t, ok)

	_, ok = NormalizeLabelKey("   ")
	assert.False(t, ok)
}

func TestIsLeadershipTitle(t *testing.T) {
	assert.True(t, IsLeadershipTitle("Chapter Head"))
	assert.True(t, IsLeadershipTitle("Treasurer, Head of Logistics"))
	assert.True(t, IsLeadershipTitle("  chapter HEAD  "))
	assert.False(t, IsLeadershipTitle("Member"))
	assert.False(t, IsLeadershipTitle(""))
	assert.False(t, IsLeadershipTitle("Treasurer, Secretary"))
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"hi", HI},
		{"en", EN},
		{" HI ", HI},
		{"", EN},
		{"fr", EN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "Parse(%q)", tt.in)
	}
}

func TestFromLanguageCode(t *testing.T) {
	assert.Equal(t, HI, FromLanguageCode("hi-IN"))
	assert.Equal(t, EN, FromLanguageCode("en-US"))
	assert.Equal(t, EN, FromLanguageCode("de"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Hindi", HI.DisplayName())
	assert.Equal(t, "English", EN.DisplayName())
}

package i18n

import "strings"

type Lang string

const (
	HI Lang = "hi"
	EN Lang = "en"
)

func FromLanguageCode(code string) Lang {
	code = strings.ToLower(strings.TrimSpace(code))
	if strings.HasPrefix(code, "hi") {
		return HI
	}
	return EN
}

func Parse(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "hi":
		return HI
	case "en":
		return EN
	default:
		return EN
	}
}

// DisplayName is the label shown on the language selection keyboard.
func (l Lang) DisplayName() string {
	if l == HI {
		return "Hindi"
	}
	return "English"
}

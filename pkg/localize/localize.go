// Package localize provides the answer templates in English, Hindi and
// Marathi as well as Indian-style currency formatting.
package localize

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // en, fallback
	language.Hindi,   // hi
	language.Marathi, // mr
}

var matcher = language.NewMatcher(supported)

// NewTranslator returns a lookup function for the best supported match of
// lang, falling back to English. Unknown keys are returned verbatim so a
// missing template never blanks out a UI.
func NewTranslator(lang string) func(key string) string {
	_, index := language.MatchStrings(matcher, lang)

	templates := english
	switch supported[index] {
	case language.Hindi:
		templates = hindi
	case language.Marathi:
		templates = marathi
	}

	return func(key string) string {
		if s, ok := templates[key]; ok {
			return s
		}
		if s, ok := english[key]; ok {
			return s
		}
		return key
	}
}

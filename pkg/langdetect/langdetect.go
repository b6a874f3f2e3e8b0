// Package langdetect guesses the language of input text so that
// "--language auto" can ask the backend for a summary in the same language.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Fallback is used when the text is too short or too mixed to call.
const Fallback = "en"

// Supported are the languages the detector chooses between.
var Supported = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Chinese,
	lingua.Japanese,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Supported...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of text in lower case. ok is false
// when no language could be picked.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Resolve is Detect with the Fallback applied.
func (d *Detector) Resolve(text string) string {
	if code, ok := d.Detect(text); ok {
		return code
	}
	return Fallback
}

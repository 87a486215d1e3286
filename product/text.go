package product

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// DefaultLanguage is preferred when no language is requested
const DefaultLanguage = "en"

// MultilingualText maps a language code to the text in that language
type MultilingualText map[string]string

// Get returns the text for lang, trying each fallback language in order
func (t MultilingualText) Get(lang string, fallbacks ...string) (string, bool) {
	if text, ok := t[lang]; ok {
		return text, true
	}
	for _, fallback := range fallbacks {
		if text, ok := t[fallback]; ok {
			return text, true
		}
	}
	return "", false
}

// Best returns the English text if present, otherwise the text of the
// lexically first language. It reports false for an empty map.
func (t MultilingualText) Best() (string, bool) {
	if text, ok := t[DefaultLanguage]; ok {
		return text, true
	}
	langs := t.Languages()
	if len(langs) == 0 {
		return "", false
	}
	return t[langs[0]], true
}

// Languages returns the language codes in sorted order
func (t MultilingualText) Languages() []string {
	return slices.Sorted(maps.Keys(t))
}

// UnmarshalJSON implements json.Unmarshaler. Every entry must be a string.
func (t *MultilingualText) UnmarshalJSON(data []byte) error {
	if IsNull(data) {
		*t = nil
		return nil
	}

	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	text := make(MultilingualText, len(raw))
	for lang, s := range raw {
		if s == nil {
			return fmt.Errorf("%w for language %q", ErrNullText, lang)
		}
		text[lang] = *s
	}
	*t = text
	return nil
}

// Package i18n translates stable error codes into user-facing text.
// The table is loaded once at process start and is read-only afterwards,
// so concurrent lookups need no synchronization.
package i18n

// DefaultLocale is used when a request carries no usable language.
const DefaultLocale = "en"

// Translator resolves (code, locale) pairs against the static table.
type Translator struct {
	table map[string]map[string]string
}

// NewTranslator returns a translator over the built-in table.
func NewTranslator() *Translator {
	return &Translator{table: translations}
}

// Translate returns the display text for code in the given locale.
// An unsupported locale widens to "en"; a missing key falls back to the
// raw code so the caller always gets a non-empty string.
func (t *Translator) Translate(code, locale string) string {
	msgs, ok := t.table[locale]
	if !ok {
		msgs = t.table[DefaultLocale]
	}
	if text, ok := msgs[code]; ok {
		return text
	}
	return code
}

// Supported reports whether the locale has its own translation table.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.table[locale]
	return ok
}

// Locales lists the locales with a translation table.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.table))
	for l := range t.table {
		out = append(out, l)
	}
	return out
}

// Codes lists every key present in the given locale's table.
func (t *Translator) Codes(locale string) []string {
	msgs := t.table[locale]
	out := make([]string, 0, len(msgs))
	for c := range msgs {
		out = append(out, c)
	}
	return out
}

package ttml

import (
	"strings"
	"unicode"
)

// NormalizeKey strips element path and namespace prefix from attributed tree
// key ("style@tts:backgroundColor") and converts remaining camelCase local
// name to lowercase dash form ("background-color"). Stripping does not depend
// on known prefixes: everything up to the last '@' and then up to the last ':'
// is dropped, so "style@xml:", "style@ebutts:", "region@tts:", bare
// "region@" and unknown prefixes all reduce the same way.
func NormalizeKey(raw string) string {
	if i := strings.LastIndexByte(raw, '@'); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.LastIndexByte(raw, ':'); i >= 0 {
		raw = raw[i+1:]
	}

	var b strings.Builder
	b.Grow(len(raw) + 4)
	var prev rune
	for i, r := range raw {
		if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}

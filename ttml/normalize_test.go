package ttml

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"style@tts:backgroundColor", "background-color"},
		{"style@tts:fontSize", "font-size"},
		{"style@xml:id", "id"},
		{"style@ebutts:multiRowAlign", "multi-row-align"},
		{"style@ebutts:linePadding", "line-padding"},
		{"region@tts:displayAlign", "display-align"},
		{"region@tts:showBackground", "show-background"},
		{"region@style", "style"},
		{"p@itts:fillLineGap", "fill-line-gap"},
		{"unicodeBidi", "unicode-bidi"},
		{"color", "color"},
		{"tts:wrapOption", "wrap-option"},
		{"span@tts:textDecoration", "text-decoration"},
		{"region@xml:id", "id"},
		{"div@foo:barBaz", "bar-baz"},
		{"a@b@tts:lineHeight", "line-height"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeKey(tt.raw); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

package convert

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLooksLikeXML(t *testing.T) {
	tests := []struct {
		name string
		head string
		want bool
	}{
		{"declaration", `<?xml version="1.0"?><tt/>`, true},
		{"root", `<tt/>`, true},
		{"leading whitespace", " \r\n\t<tt/>", true},
		{"utf8 bom", "\xEF\xBB\xBF<tt/>", true},
		{"utf16 bom", "\xFF\xFE<\x00", true},
		{"text", "WEBVTT\n", false},
		{"empty", "", false},
		{"only whitespace", "  \n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeXML([]byte(tt.head)); got != tt.want {
				t.Errorf("looksLikeXML(%q) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestIsDocument(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    bool
	}{
		{"ttml", "a.ttml", helloDoc, true},
		{"dfxp upper case", "a.DFXP", helloDoc, true},
		{"xml", "a.xml", helloDoc, true},
		{"wrong extension", "a.txt", helloDoc, false},
		{"not xml", "a.ttml", "1\n00:00:01,000 --> 00:00:02,000\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isDocument(tt.file, strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("isDocument() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isDocument(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()
	zipPath := writeZip(t, filepath.Join(dir, "subs.bin"), [][2]string{{"a.ttml", helloDoc}})
	textPath := writeFile(t, filepath.Join(dir, "a.ttml"), helloDoc)
	emptyPath := writeFile(t, filepath.Join(dir, "empty.zip"), "")

	for _, tc := range []struct {
		path string
		want bool
	}{
		{zipPath, true},
		{textPath, false},
		{emptyPath, false},
	} {
		got, err := isArchiveFile(tc.path)
		if err != nil {
			t.Fatalf("isArchiveFile(%s) error = %v", tc.path, err)
		}
		if got != tc.want {
			t.Errorf("isArchiveFile(%s) = %v, want %v", filepath.Base(tc.path), got, tc.want)
		}
	}

	if _, err := isArchiveFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

//go:build !windows

package config

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"movie", "movie"},
		{"a/b:c", "abc"},
		{"..hidden", "hidden"},
		{"line\nbreak\t", "linebreak"},
		{" . ", "_bad_file_name_"},
		{"", "_bad_file_name_"},
		{"Фильм", "Фильм"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

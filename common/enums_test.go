package common

import (
	"errors"
	"testing"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"sdp-us", ProfileSdpUs, false},
		{"ebu-tt-d", ProfileEbuTtD, false},
		{"EBU-TT-D", 0, true},
		{"imsc1", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseProfile(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProfile(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("ParseProfile(%q) error = %v, want ErrInvalidProfile", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseProfile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnumText(t *testing.T) {
	var o Overflow
	if err := o.UnmarshalText([]byte("hidden")); err != nil || o != OverflowHidden {
		t.Errorf("UnmarshalText(hidden) = %v, %v", o, err)
	}
	if err := o.UnmarshalText([]byte("scroll")); err == nil {
		t.Error("UnmarshalText(scroll) should fail")
	}
	data, err := OutputFmtSqlite.MarshalText()
	if err != nil || string(data) != "sqlite" {
		t.Errorf("MarshalText() = %q, %v", data, err)
	}
	if OutputFmt(42).IsValid() {
		t.Error("OutputFmt(42) should not be valid")
	}
	if got := OutputFmt(42).String(); got != "OutputFmt(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	tests := map[OutputFmt]string{
		OutputFmtJson:   ".json",
		OutputFmtYaml:   ".yaml",
		OutputFmtIon:    ".ion",
		OutputFmtSqlite: ".db",
	}
	for f, want := range tests {
		if got := f.Ext(); got != want {
			t.Errorf("%s.Ext() = %q, want %q", f, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Ext() on invalid format should panic")
		}
	}()
	_ = OutputFmt(42).Ext()
}

func TestNames(t *testing.T) {
	if got := OutputFmtNames(); len(got) != 4 || got[3] != "sqlite" {
		t.Errorf("OutputFmtNames() = %v", got)
	}
	if got := ProfileNames(); len(got) != 2 || got[0] != "sdp-us" || got[1] != "ebu-tt-d" {
		t.Errorf("ProfileNames() = %v", got)
	}
	names := OverflowNames()
	names[0] = "changed"
	if OverflowNames()[0] != "default" {
		t.Error("OverflowNames() returned shared slice")
	}
}

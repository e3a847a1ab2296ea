package cli

import (
	"strings"
	"testing"

	"github.com/madder-sh/madder/internal/config"
)

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		field   config.Field
		raw     string
		want    any
		wantErr bool
	}{
		{
			name:  "string",
			field: config.Field{Key: "theme.mode", Value: "auto"},
			raw:   "dark",
			want:  "dark",
		},
		{
			name:  "int",
			field: config.Field{Key: "theme.colours", Value: 16},
			raw:   "8",
			want:  8,
		},
		{
			name:    "bad int",
			field:   config.Field{Key: "theme.colours", Value: 16},
			raw:     "many",
			wantErr: true,
		},
		{
			name:  "bool",
			field: config.Field{Key: "x", Value: false},
			raw:   "true",
			want:  true,
		},
		{
			name:    "bad bool",
			field:   config.Field{Key: "x", Value: false},
			raw:     "yeah",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfigValue(tt.field, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseConfigValue(%q) succeeded, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfigValue(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseConfigValue(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseConfigValueList(t *testing.T) {
	field := config.Field{Key: "targets.disabled", Value: []string{}}

	got, err := parseConfigValue(field, "qt, kitty,gtk")
	if err != nil {
		t.Fatalf("parseConfigValue failed: %v", err)
	}
	list, ok := got.([]string)
	if !ok {
		t.Fatalf("parseConfigValue returned %T, want []string", got)
	}
	want := []string{"qt", "kitty", "gtk"}
	if len(list) != len(want) {
		t.Fatalf("parsed %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, list[i], want[i])
		}
	}

	// Empty input clears the list rather than producing [""].
	got, err = parseConfigValue(field, "")
	if err != nil {
		t.Fatalf("parseConfigValue(\"\") failed: %v", err)
	}
	if list := got.([]string); len(list) != 0 {
		t.Errorf("parseConfigValue(\"\") = %v, want empty list", list)
	}
}

func TestFormatConfigValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "dark", "dark"},
		{"int", 16, "16"},
		{"bool", true, "true"},
		{"string slice", []string{"qt", "gtk"}, "qt,gtk"},
		{"any slice", []any{"waybar", "kitty"}, "waybar,kitty"},
		{"empty slice", []string{}, ""},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatConfigValue(tt.value); got != tt.want {
				t.Errorf("formatConfigValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestErrUnknownKey(t *testing.T) {
	err := errUnknownKey("wallpaper.dir")
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if !strings.Contains(err.Error(), "wallpaper.dir") {
		t.Errorf("error %q should name the rejected key", err)
	}
	if !strings.Contains(err.Error(), config.KeyWallpaperDir) {
		t.Errorf("error %q should suggest %q", err, config.KeyWallpaperDir)
	}
}

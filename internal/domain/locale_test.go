package domain

import (
	"errors"
	"testing"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{in: "es", want: LocaleES},
		{in: "en", want: LocaleEN},
		{in: "EN", want: LocaleEN},
		{in: "en-US", want: LocaleEN},
		{in: " es-419 ", want: LocaleES},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
		{in: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLocale(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLocale) {
				t.Fatalf("ParseLocale(%q) error = %v, want ErrUnknownLocale", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLocale(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLocaleDefaultsToSpanish(t *testing.T) {
	t.Parallel()

	if got := NormalizeLocale("de"); got != LocaleES {
		t.Fatalf("NormalizeLocale(de) = %q, want es", got)
	}
	if got := NormalizeLocale("en-GB"); got != LocaleEN {
		t.Fatalf("NormalizeLocale(en-GB) = %q, want en", got)
	}
}

func TestLocaleOther(t *testing.T) {
	t.Parallel()

	if LocaleES.Other() != LocaleEN || LocaleEN.Other() != LocaleES {
		t.Fatal("Other() must swap es and en")
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	if got := Code(ErrProjectNotFound); got != "project_not_found" {
		t.Fatalf("Code(ErrProjectNotFound) = %q", got)
	}
	wrapped := errors.Join(errors.New("lookup"), ErrSiteURLMissing)
	if got := Code(wrapped); got != "site_url_missing" {
		t.Fatalf("Code(wrapped) = %q", got)
	}
	if got := Code(errors.New("other")); got != "" {
		t.Fatalf("Code(other) = %q, want empty", got)
	}
	if got := Code(nil); got != "" {
		t.Fatalf("Code(nil) = %q, want empty", got)
	}
}

package canonical

import (
	"reflect"
	"testing"
)

func TestNormalizeOrgName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Acme AB", "acme"},
		{"ACME Aktiebolag", "acme"},
		{"acme", "acme"},
		{"Acme, Inc.", "acme"},
		{"Nordic IT Consulting Ltd", "nordic it consulting"},
		{"AB Volvo", "ab volvo"}, // prefix suffix words are kept
		{"  Spaced   Out  GmbH ", "spaced out"},
		{"foo-bar/baz", "foo bar baz"},
		{"AB", "ab"}, // a bare suffix word is still a name
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := NormalizeOrgName(tt.raw); got != tt.want {
			t.Errorf("NormalizeOrgName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeOrgNameSameKey(t *testing.T) {
	// Different raw spellings of the same company must key identically.
	spellings := []string{"Acme AB", "ACME Aktiebolag", "acme ab", "Acme"}
	want := NormalizeOrgName(spellings[0])
	for _, s := range spellings[1:] {
		if got := NormalizeOrgName(s); got != want {
			t.Errorf("NormalizeOrgName(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Python", "python"},
		{"  Machine   Learning  ", "machine learning"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTerm(tt.raw); got != tt.want {
			t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeTerms(t *testing.T) {
	got := NormalizeTerms([]string{"Swedish", "swedish", "", "English"})
	want := []string{"swedish", "english"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTerms = %v, want %v", got, want)
	}
}

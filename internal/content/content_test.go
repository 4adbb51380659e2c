package content

import (
	"strings"
	"testing"
)

func TestProviderHas(t *testing.T) {
	p := NewProvider("notty", map[string]string{
		"about": "# About\n\nHello.",
		"blank": "  \n",
	})

	tests := []struct {
		id   string
		want bool
	}{
		{"about", true},
		{"blank", false},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := p.Has(tt.id); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestProviderRenderCaches(t *testing.T) {
	p := NewProvider("notty", map[string]string{"about": "# About\n\nA small desktop."})

	first := p.Render("about", 40)
	if !strings.Contains(first, "A small desktop.") {
		t.Fatalf("rendered output missing body:\n%s", first)
	}
	if again := p.Render("about", 40); again != first {
		t.Error("second render at the same width differs")
	}
	if p.renders != 1 {
		t.Errorf("renders = %d, want 1", p.renders)
	}

	p.Render("about", 60)
	if p.renders != 2 {
		t.Errorf("new width should render again, renders = %d", p.renders)
	}

	if got := p.Render("missing", 40); got != "" {
		t.Errorf("Render(missing) = %q", got)
	}
}

func TestLocalizerTitle(t *testing.T) {
	l := NewLocalizer(
		map[string]string{"about": "About"},
		map[string]map[string]string{"about": {"fr": "À propos"}},
	)

	tests := []struct {
		id, lang, want string
	}{
		{"about", "fr", "À propos"},
		{"about", "fr-CA", "À propos"},
		{"about", "FR", "À propos"},
		{"about", "de", "About"},
		{"about", "", "About"},
		{"notes", "fr", "notes"},
	}
	for _, tt := range tests {
		if got := l.Title(tt.id, tt.lang); got != tt.want {
			t.Errorf("Title(%q, %q) = %q, want %q", tt.id, tt.lang, got, tt.want)
		}
	}
}

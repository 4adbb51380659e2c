// Package content supplies window bodies and localized titles. Markdown is
// rendered with glamour and cached per window and width.
package content

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type cacheKey struct {
	id    string
	width int
}

// Provider holds the Markdown source of each application.
type Provider struct {
	mu        sync.Mutex
	style     string
	docs      map[string]string
	cache     map[cacheKey]string
	renderers map[int]*glamour.TermRenderer
	renders   int
}

// NewProvider creates a provider rendering docs with the named glamour
// style (dark, light, notty, ascii, ...).
func NewProvider(style string, docs map[string]string) *Provider {
	if style == "" {
		style = "dark"
	}
	return &Provider{
		style:     style,
		docs:      docs,
		cache:     make(map[cacheKey]string),
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Has reports whether id has any content.
func (p *Provider) Has(id string) bool {
	return strings.TrimSpace(p.docs[id]) != ""
}

// Source returns the raw Markdown for id.
func (p *Provider) Source(id string) string {
	return p.docs[id]
}

// Render returns the content of id wrapped to width columns. When glamour
// fails the raw source is returned.
func (p *Provider) Render(id string, width int) string {
	if !p.Has(id) {
		return ""
	}
	width = max(width, 8)

	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey{id, width}
	if out, ok := p.cache[key]; ok {
		return out
	}

	out := p.docs[id]
	if r, err := p.renderer(width); err == nil {
		if rendered, err := r.Render(p.docs[id]); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}
	p.renders++
	p.cache[key] = out
	return out
}

func (p *Provider) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := p.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(p.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	p.renderers[width] = r
	return r, nil
}

// Localizer resolves window titles for a language.
type Localizer struct {
	defaults map[string]string
	titles   map[string]map[string]string
}

// NewLocalizer creates a localizer. defaults maps id to the fallback title;
// titles maps id to language code to title.
func NewLocalizer(defaults map[string]string, titles map[string]map[string]string) *Localizer {
	return &Localizer{defaults: defaults, titles: titles}
}

// Title returns the title of id in lang, falling back to the default title
// and then to id itself. Region suffixes are ignored ("fr-CA" uses "fr").
func (l *Localizer) Title(id, lang string) string {
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if t, ok := l.titles[id][lang]; ok && t != "" {
		return t
	}
	if t, ok := l.defaults[id]; ok && t != "" {
		return t
	}
	return id
}

package sproute

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cbroglie/mustache"
	"github.com/gomarkdown/markdown"
	"github.com/rohanthewiz/serr"
)

// TemplateSource supplies raw template text by name.
type TemplateSource interface {
	Fetch(name string) (string, error)
}

// DirSource reads templates from a directory on disk.
type DirSource struct {
	Root string
}

// Fetch implements TemplateSource.
func (s DirSource) Fetch(name string) (string, error) {
	body, err := os.ReadFile(filepath.Join(s.Root, name))
	if err != nil {
		return "", serr.Wrap(err, "failed to read template "+name)
	}

	return string(body), nil
}

// HTTPSource fetches templates over HTTP, the way a hosted SPA would pull
// template files from its origin.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client // defaults to http.DefaultClient
}

// Fetch implements TemplateSource. A non-200 status is an error.
func (s HTTPSource) Fetch(name string) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimSuffix(s.BaseURL, "/") + "/" + strings.TrimPrefix(name, "/")

	resp, err := client.Get(url)
	if err != nil {
		return "", serr.Wrap(err, "failed to fetch template "+name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", serr.New("template fetch for " + name + " returned " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", serr.Wrap(err, "failed to read template body for "+name)
	}

	return string(body), nil
}

// ViewEngine fetches string templates from a TemplateSource and renders
// them. Fetched templates are cached by name; the host can invalidate
// entries when the underlying files change (the dev watcher does this).
type ViewEngine struct {
	source TemplateSource
	mu     sync.Mutex
	cache  map[string]string
}

// NewViewEngine creates a view engine over the given source.
// A nil source is allowed; rendering then returns an error.
func NewViewEngine(source TemplateSource) *ViewEngine {
	return &ViewEngine{
		source: source,
		cache:  make(map[string]string),
	}
}

// Template returns the named template's text, fetching it on first use.
func (ve *ViewEngine) Template(name string) (string, error) {
	ve.mu.Lock()
	body, ok := ve.cache[name]
	ve.mu.Unlock()

	if ok {
		return body, nil
	}

	if ve.source == nil {
		return "", serr.New("no template source configured")
	}

	body, err := ve.source.Fetch(name)
	if err != nil {
		return "", err
	}

	ve.mu.Lock()
	ve.cache[name] = body
	ve.mu.Unlock()

	return body, nil
}

// Invalidate drops the named template from the cache.
func (ve *ViewEngine) Invalidate(name string) {
	ve.mu.Lock()
	delete(ve.cache, name)
	ve.mu.Unlock()
}

// InvalidateAll drops every cached template.
func (ve *ViewEngine) InvalidateAll() {
	ve.mu.Lock()
	ve.cache = make(map[string]string)
	ve.mu.Unlock()
}

// RenderTo renders the named template into the outlet with the Mustache
// engine, using data for interpolation.
func (ve *ViewEngine) RenderTo(o *Outlet, name string, data any) error {
	tmpl, err := ve.Template(name)
	if err != nil {
		return err
	}

	rendered, err := mustache.Render(tmpl, data)
	if err != nil {
		return serr.Wrap(err, "failed to render template "+name)
	}

	_, err = o.WriteString(rendered)
	return err
}

// renderString renders an inline Mustache template into the outlet,
// bypassing the source and cache.
func (ve *ViewEngine) renderString(o *Outlet, tmpl string, data any) error {
	rendered, err := mustache.Render(tmpl, data)
	if err != nil {
		return serr.Wrap(err, "failed to render inline template")
	}

	_, err = o.WriteString(rendered)
	return err
}

// RenderMarkdownTo renders the named template into the outlet as Markdown.
func (ve *ViewEngine) RenderMarkdownTo(o *Outlet, name string) error {
	tmpl, err := ve.Template(name)
	if err != nil {
		return err
	}

	_, err = o.Write(markdown.ToHTML([]byte(tmpl), nil, nil))
	return err
}

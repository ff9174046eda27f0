package dev

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/sproute/consts"
)

// ServerOptions configures the static dev server.
type ServerOptions struct {
	// Root is the directory served. Paths without a matching file fall
	// back to Root/index.html so client-side routes survive a refresh.
	Root string

	// Addr is the listen address, for example ":8080".
	Addr string

	// LiveReload enables the websocket reload endpoint and injects the
	// client script into served HTML.
	LiveReload bool

	// Verbose enables request logging.
	Verbose bool
}

// Server serves a single-page app directory during development.
type Server struct {
	opts    ServerOptions
	reload  *ReloadServer
	watcher *Watcher
	httpSrv *http.Server
	mu      sync.Mutex
	running bool
}

func NewServer(opts ServerOptions) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	s := &Server{opts: opts}
	if opts.LiveReload {
		s.reload = NewReloadServer()
		s.watcher = NewWatcher([]string{opts.Root}, 0)
		s.watcher.OnChange(func(c Change) {
			if s.opts.Verbose {
				fmt.Printf("changed: %s\n", c.Path)
			}
			if c.CSS {
				s.reload.NotifyCSS(filepath.Base(c.Path))
			} else {
				s.reload.NotifyReload(filepath.Base(c.Path))
			}
		})
	}
	return s
}

// Start runs the server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return serr.New("dev server already running")
	}
	s.running = true
	s.mu.Unlock()

	mux := http.NewServeMux()
	if s.reload != nil {
		mux.HandleFunc(consts.ReloadWSPath, s.reload.HandleWebSocket)
	}
	mux.HandleFunc("/", s.serveFile)

	s.httpSrv = &http.Server{Addr: s.opts.Addr, Handler: mux}

	if s.watcher != nil {
		go s.watcher.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return serr.Wrap(err, "dev server failed")
	}
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpSrv != nil {
		s.httpSrv.Close()
	}
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	if s.opts.Verbose {
		fmt.Printf("%s %s\n", r.Method, r.URL.Path)
	}

	reqPath := filepath.Clean(r.URL.Path)
	full := filepath.Join(s.opts.Root, reqPath)

	// Keep requests inside the root
	if !strings.HasPrefix(full, filepath.Clean(s.opts.Root)) {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		// History-API fallback: unknown paths get the SPA shell
		full = filepath.Join(s.opts.Root, consts.IndexTemplate)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ct := contentType(full)
	w.Header().Set("Content-Type", ct)

	if ct == consts.MIMEHTML && s.reload != nil {
		data = injectScript(data)
	}
	w.Write(data)
}

// injectScript places the reload client before </body>, or appends it
// when the tag is absent.
func injectScript(page []byte) []byte {
	html := string(page)
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return []byte(html[:i] + ClientScript + html[i:])
	}
	return append(page, []byte(ClientScript)...)
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return consts.MIMEHTML
	case ".css":
		return consts.MIMECSS
	case ".js", ".mjs":
		return consts.MIMEJS
	case ".json":
		return consts.MIMEJSON
	case ".md":
		return consts.MIMEMarkdown
	case ".mustache":
		return consts.MIMEMustache
	case ".png":
		return consts.MIMEPNG
	case ".jpg", ".jpeg":
		return consts.MIMEJPEG
	case ".gif":
		return consts.MIMEGIF
	case ".svg":
		return consts.MIMESVG
	case ".ico":
		return consts.MIMEIcon
	case ".txt":
		return consts.MIMETextPlain
	}
	return consts.MIMEOctetStream
}

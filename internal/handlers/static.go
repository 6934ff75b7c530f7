package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// siteDirs are the website directories served as file trees under their own prefix.
var siteDirs = []string{"controle-dados", "dashboard", "imgs", "login", "usuário", "backend"}

// pageDirs are the directories whose pages are also routed as /<dir>/{page}.
var pageDirs = []string{"dashboard", "controle-dados", "usuário"}

const indexFile = "index.html"

// StaticSite serves the website files below root.
// Requested paths are canonicalised and must stay inside their directory;
// dot-files are never served.
type StaticSite struct {
	root string
}

// NewStaticSite creates a StaticSite rooted at the given directory.
func NewStaticSite(root string) (*StaticSite, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve site root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat site root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site root %s is not a directory", abs)
	}
	return &StaticSite{root: abs}, nil
}

// Root returns the absolute site root.
func (s *StaticSite) Root() string {
	return s.root
}

// Check reports whether the root index page is readable.
func (s *StaticSite) Check(ctx context.Context) error {
	_, err := os.Stat(filepath.Join(s.root, indexFile))
	return err
}

// ServeIndex serves the root index page.
func (s *StaticSite) ServeIndex(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, "", indexFile)
}

// ServePage serves the {page} file of dir.
func (s *StaticSite) ServePage(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, dir, urlParam(r, "page"))
	}
}

// ServeTree serves any file below dir. Directories answer with their index page.
func (s *StaticSite) ServeTree(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := urlParam(r, "*")
		if rest == "" || strings.HasSuffix(rest, "/") {
			s.serve(w, r, dir, path.Join(rest, indexFile))
			return
		}
		s.serve(w, r, dir, rest)
	}
}

// ServeRootAsset serves top-level files of the site root, such as stylesheets.
func (s *StaticSite) ServeRootAsset(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "*")
	if strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	s.serve(w, r, "", name)
}

func (s *StaticSite) serve(w http.ResponseWriter, r *http.Request, dir, name string) {
	full, ok := s.resolve(dir, name)
	if !ok {
		requestLog(r).Warnw("rejected static path", "dir", dir, "name", name)
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// resolve maps name inside dir to an absolute path below the site root.
func (s *StaticSite) resolve(dir, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.ContainsAny(name, "\\\x00") {
		return "", false
	}

	clean := path.Clean("/" + name)
	for _, seg := range strings.Split(clean, "/") {
		if strings.HasPrefix(seg, ".") {
			return "", false
		}
	}

	base := filepath.Join(s.root, dir)
	full := filepath.Join(base, filepath.FromSlash(clean))
	if !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// RegisterStaticRoutes registers the website routes.
func RegisterStaticRoutes(r chi.Router, site *StaticSite) {
	r.Get("/", site.ServeIndex)
	r.Get("/login/index.html", func(w http.ResponseWriter, r *http.Request) {
		site.serve(w, r, "login", indexFile)
	})

	for _, dir := range pageDirs {
		r.Get("/"+dir+"/{page}", site.ServePage(dir))
	}

	for _, dir := range siteDirs {
		prefix := "/" + dir
		r.Get(prefix, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, (&url.URL{Path: prefix + "/"}).String(), http.StatusMovedPermanently)
		})
		r.Get(prefix+"/*", site.ServeTree(dir))
	}

	r.Get("/*", site.ServeRootAsset)
}

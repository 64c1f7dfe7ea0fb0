// Package ui serves a small web playground for the parser: paste markup,
// get the node tree and the raw token stream back.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/maheshbansod/html-parser/format"
	"github.com/maheshbansod/html-parser/parser"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	staticFS   fs.FS
	templateFS fs.FS
	mux        *http.ServeMux
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	if _, err := template.New("").ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		staticFS:   staticFS,
		templateFS: templateFS,
		mux:        http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// render re-parses the templates on every request so edits under
// ui/templates show up without a rebuild.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

// ParseView is the data behind the playground page.
type ParseView struct {
	Source string
	Tree   string
	Tokens string
	Parsed bool
}

type parseRequest struct {
	Source string `json:"source"`
}

type parseResponse struct {
	Tree   json.RawMessage `json:"tree"`
	Tokens json.RawMessage `json:"tokens"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", ParseView{})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var source string

	if r.Header.Get("Content-Type") == "application/json" {
		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		source = req.Source
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		source = r.FormValue("source")
	}

	forest := parser.New(source).Parse()
	tokens := parser.Tokens(source)

	if r.Header.Get("Accept") == "application/json" {
		tree, err := format.MarshalForest(forest)
		if err != nil {
			http.Error(w, "encode tree: "+err.Error(), http.StatusInternalServerError)
			return
		}
		tokenJSON, err := format.MarshalTokens(tokens)
		if err != nil {
			http.Error(w, "encode tokens: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(parseResponse{Tree: tree, Tokens: tokenJSON})
		return
	}

	var treeText strings.Builder
	format.NewTreeEncoder(&treeText, format.WithPositions()).Encode(forest)
	var tokenText strings.Builder
	format.NewTokenEncoder(&tokenText).Encode(tokens)

	s.render(w, "index.html", ParseView{
		Source: source,
		Tree:   treeText.String(),
		Tokens: tokenText.String(),
		Parsed: true,
	})
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files on disk under primaryPath and falls back to the
// embedded copies.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}

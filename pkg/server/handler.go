package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/hypertext-dev/hypertext/el"
	"github.com/hypertext-dev/hypertext/internal/dev"
	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/render"
	"github.com/hypertext-dev/hypertext/pkg/site"
)

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	page, ok := site.Resolve(s.config.SourceDir, r.URL.Path)
	if !ok {
		if s.serveAsset(w, r) {
			return
		}
		s.write(w, http.StatusNotFound, notFoundPage(r.URL.Path))
		return
	}

	tree, err := site.LoadPage(page.Source)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.To(&buf, s.withReloadScript(tree)); err != nil {
		s.fail(w, r, err)
		return
	}

	if s.hub != nil && s.failing.CompareAndSwap(true, false) {
		s.hub.ClearError()
	}
	w.Header().Set("Content-Type", site.ContentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("page failed", "path", r.URL.Path, "error", err)

	detail := ""
	if s.hub != nil {
		// Developers see the cause in the page and in the overlay.
		detail = err.Error()
		if e, ok := err.(*errors.Error); ok {
			detail = e.FormatCompact()
		}
		s.failing.Store(true)
		s.hub.NotifyError(detail)
	}
	s.write(w, http.StatusInternalServerError, errorPage(detail))
}

func (s *Server) write(w http.ResponseWriter, status int, tree render.Renderable) {
	body := render.Bytes(s.withReloadScript(tree))
	w.Header().Set("Content-Type", site.ContentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) withReloadScript(tree render.Renderable) render.Renderable {
	if s.hub == nil {
		return tree
	}
	return render.Pair(tree, render.Raw(dev.ClientScript))
}

func notFoundPage(path string) render.Renderable {
	return site.Shell("Not Found", el.Group(
		el.H1("404"),
		el.P("No page at ", el.Code(path), "."),
	))
}

func errorPage(detail string) render.Renderable {
	return site.Shell("Server Error", el.Group(
		el.H1("500"),
		el.P("The page could not be rendered."),
		el.If(detail != "", el.Pre(detail)),
	))
}

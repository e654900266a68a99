// internal/web/server.go

// Package web serves the catalog pages: list/search, add, and update for
// each item kind. Handlers are generic over the kind via the field
// schema; there is one form page, not one per kind.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"libery/internal/catalog"
	"libery/internal/form"
	"libery/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Repository is the catalog backend surface the pages rely on.
type Repository interface {
	List(ctx context.Context) ([]catalog.Item, error)
	Get(ctx context.Context, kind catalog.Kind, id catalog.ItemID) (*catalog.Item, error)
	Create(ctx context.Context, kind catalog.Kind, item catalog.Item) (*catalog.Item, error)
	Update(ctx context.Context, kind catalog.Kind, id catalog.ItemID, item catalog.Item) (*catalog.Item, error)
	Remove(ctx context.Context, kind catalog.Kind, id catalog.ItemID) error
}

type Server struct {
	repo   Repository
	store  *store.Store
	logger *zap.Logger
	tmpl   *template.Template
}

func NewServer(repo Repository, st *store.Store, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{repo: repo, store: st, logger: logger, tmpl: tmpl}, nil
}

// Routes wires every page and action.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(s.logger))

	r.Get("/", s.handleHome)

	for _, kind := range catalog.Kinds() {
		kind := kind
		r.Get(kind.AddRoute(), s.handleAddForm(kind))
		r.Post(kind.AddRoute(), s.handleCreate(kind))
		r.Get(kind.EditRoute("{id}"), s.handleUpdateForm(kind))
		r.Post(kind.EditRoute("{id}"), s.handleUpdate(kind))
	}

	r.Post("/delete/{kind}/{id}", s.handleDelete)

	return r
}

type homeView struct {
	Query string
	Items []catalog.Item
	Error string
	Flash string
}

type fieldView struct {
	catalog.Field
	Value string
}

type formView struct {
	Heading string
	Action  string
	Submit  string
	Cover   string
	Fields  []fieldView
	Error   string
	Flash   string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.store.SetQuery(r.URL.Query().Get("q"))

	view := homeView{Flash: r.URL.Query().Get("flash")}
	if err := s.store.Refresh(r.Context()); err != nil {
		// The view stays recoverable: prior items plus an error banner.
		view.Error = err.Error()
	}
	view.Query = s.store.Query()
	view.Items = s.store.Visible()

	s.render(w, "home", view)
}

func (s *Server) handleAddForm(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, "form", s.addFormView(kind, nil, "", r.URL.Query().Get("flash")))
	}
}

func (s *Server) handleCreate(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := form.NewCreate(s.repo, kind, submitPolicy(kind))
		if err := s.submit(r, ctrl, kind); err != nil {
			s.render(w, "form", s.addFormView(kind, ctrl, err.Error(), ""))
			return
		}

		flash := url.QueryEscape(fmt.Sprintf("%s added successfully", kind.Label()))
		if submitPolicy(kind) == form.ResetOnSuccess {
			http.Redirect(w, r, kind.AddRoute()+"?flash="+flash, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/?flash="+flash, http.StatusSeeOther)
	}
}

func (s *Server) handleUpdateForm(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.ItemID(chi.URLParam(r, "id"))

		item, err := s.repo.Get(r.Context(), kind, id)
		if err != nil {
			s.render(w, "form", s.updateFormView(kind, id, nil, err.Error()))
			return
		}

		ctrl := form.NewUpdate(s.repo, kind, id)
		ctrl.Fill(*item)
		s.render(w, "form", s.updateFormView(kind, id, ctrl, ""))
	}
}

func (s *Server) handleUpdate(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.ItemID(chi.URLParam(r, "id"))

		ctrl := form.NewUpdate(s.repo, kind, id)
		if err := s.submit(r, ctrl, kind); err != nil {
			s.render(w, "form", s.updateFormView(kind, id, ctrl, err.Error()))
			return
		}

		flash := url.QueryEscape(fmt.Sprintf("%s updated successfully", kind.Label()))
		http.Redirect(w, r, "/?flash="+flash, http.StatusSeeOther)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	// Unparseable kinds still go through; the client routes them to the
	// books endpoint and logs the fallback.
	kind := catalog.Kind(chi.URLParam(r, "kind"))
	id := catalog.ItemID(chi.URLParam(r, "id"))

	if err := s.repo.Remove(r.Context(), kind, id); err != nil {
		flash := url.QueryEscape(fmt.Sprintf("Failed to delete %s: %s", kind.Label(), err.Error()))
		http.Redirect(w, r, "/?flash="+flash, http.StatusSeeOther)
		return
	}

	// Confirmed server-side; drop it locally without a re-fetch.
	s.store.ApplyDelete(id)

	flash := url.QueryEscape(fmt.Sprintf("%s deleted successfully", kind.Label()))
	http.Redirect(w, r, "/?flash="+flash, http.StatusSeeOther)
}

// submit copies the posted form into the controller and runs it.
func (s *Server) submit(r *http.Request, ctrl *form.Controller, kind catalog.Kind) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for _, f := range catalog.Schema(kind) {
		ctrl.SetField(f.Name, r.PostFormValue(f.Name))
	}
	_, err := ctrl.Submit(r.Context())
	return err
}

func (s *Server) addFormView(kind catalog.Kind, ctrl *form.Controller, errMsg, flash string) formView {
	return s.formView("Add "+kind.Label(), kind.AddRoute(), kind, ctrl, errMsg, flash)
}

func (s *Server) updateFormView(kind catalog.Kind, id catalog.ItemID, ctrl *form.Controller, errMsg string) formView {
	return s.formView("Update "+kind.Label(), kind.EditRoute(id), kind, ctrl, errMsg, "")
}

// formView assembles the generic form page for a kind. A nil controller
// renders an empty form.
func (s *Server) formView(heading, action string, kind catalog.Kind, ctrl *form.Controller, errMsg, flash string) formView {
	schema := catalog.Schema(kind)
	fields := make([]fieldView, 0, len(schema))
	cover := catalog.PlaceholderCover
	for _, f := range schema {
		var value string
		if ctrl != nil {
			value = ctrl.Value(f.Name)
		}
		if f.Name == "coverImage" && value != "" {
			cover = value
		}
		fields = append(fields, fieldView{Field: f, Value: value})
	}

	return formView{
		Heading: heading,
		Action:  action,
		Submit:  heading,
		Cover:   cover,
		Fields:  fields,
		Error:   errMsg,
		Flash:   flash,
	}
}

func (s *Server) render(w http.ResponseWriter, name string, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, view); err != nil {
		s.logger.Error("render failed", zap.String("template", name), zap.Error(err))
	}
}

// submitPolicy picks the post-submit behavior per kind: comics reset for
// repeatable entry, books and journals navigate back to the catalog.
func submitPolicy(kind catalog.Kind) form.Policy {
	if kind == catalog.KindComic {
		return form.ResetOnSuccess
	}
	return form.NavigateOnSuccess
}

// internal/stubapi/stubapi.go

// Package stubapi is an in-memory stand-in for the catalog backend. It
// implements the same REST contract the real service exposes, so the
// round-trip tests and local development can run without it.
package stubapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"libery/internal/catalog"
)

// Server stores items in memory, keyed by their server-assigned ID, with
// insertion order preserved for listing.
type Server struct {
	mu    sync.RWMutex
	items map[catalog.ItemID]catalog.Item
	order []catalog.ItemID
}

func New() *Server {
	return &Server{items: make(map[catalog.ItemID]catalog.Item)}
}

// Seed inserts items directly, assigning IDs to any that lack one.
func (s *Server) Seed(items []catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if it.ID == "" {
			it.ID = catalog.ItemID(uuid.NewString())
		}
		if it.Status == "" {
			it.Status = catalog.StatusAvailable
		}
		s.items[it.ID] = it
		s.order = append(s.order, it.ID)
	}
}

// Handler returns the REST surface: a unified list plus per-kind
// create/update/delete resources. The journals fetch-one wraps its
// response in {success, data}, matching the real journals service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/items", s.handleList)

	r.Route("/books", func(r chi.Router) {
		r.Post("/", s.handleCreate(catalog.KindBook))
		r.Get("/{id}", s.handleGet(false))
		r.Put("/{id}", s.handleUpdate(catalog.KindBook))
		r.Delete("/{id}", s.handleDelete)
	})
	r.Route("/comics", func(r chi.Router) {
		r.Post("/", s.handleCreate(catalog.KindComic))
		r.Get("/{id}", s.handleGet(false))
		r.Put("/{id}", s.handleUpdate(catalog.KindComic))
		r.Delete("/{id}", s.handleDelete)
	})
	r.Route("/journals", func(r chi.Router) {
		r.Post("/", s.handleCreate(catalog.KindJournal))
		r.Get("/{id}", s.handleGet(true))
		r.Put("/{id}", s.handleUpdate(catalog.KindJournal))
		r.Delete("/{id}", s.handleDelete)
	})

	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	out := make([]catalog.Item, 0, len(s.order))
	for _, id := range s.order {
		if it, ok := s.items[id]; ok {
			out = append(out, it)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item catalog.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid item payload")
			return
		}

		item.ID = catalog.ItemID(uuid.NewString())
		item.LegacyID = ""
		item.ItemType = kind
		if item.Status == "" {
			item.Status = catalog.StatusAvailable
		}

		s.mu.Lock()
		s.items[item.ID] = item
		s.order = append(s.order, item.ID)
		s.mu.Unlock()

		writeJSON(w, http.StatusCreated, item)
	}
}

func (s *Server) handleGet(wrapped bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.ItemID(chi.URLParam(r, "id"))

		s.mu.RLock()
		item, ok := s.items[id]
		s.mu.RUnlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		if wrapped {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": item})
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) handleUpdate(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.ItemID(chi.URLParam(r, "id"))

		var item catalog.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid item payload")
			return
		}

		s.mu.Lock()
		prev, ok := s.items[id]
		if !ok {
			s.mu.Unlock()
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}

		// ID and kind are immutable once created.
		item.ID = id
		item.LegacyID = ""
		item.ItemType = kind
		if item.Status == "" {
			item.Status = prev.Status
		}
		s.items[id] = item
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := catalog.ItemID(chi.URLParam(r, "id"))

	s.mu.Lock()
	_, ok := s.items[id]
	if ok {
		delete(s.items, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		writeMessage(w, http.StatusNotFound, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GiftStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves the read-only catalog API. It is mounted under /api.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)
	r.Get("/categories", s.categories)

	return r
}

// list answers GET /products?featured=true&category=Gaming&limit=4.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q, err := parseGridQuery(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad query", map[string]any{"cause": err.Error()})
		return
	}

	products, err := s.Store.List(r.Context())
	if err != nil {
		s.logError("list products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, Grid(products, q))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, ok, err := s.Store.Detail(r.Context(), id)
	if err != nil {
		s.logError("get product failed", err, zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, d)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.logError("list categories failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, DistinctCategories(products))
}

func parseGridQuery(r *http.Request) (GridQuery, error) {
	v := r.URL.Query()
	q := GridQuery{Category: v.Get("category")}

	if raw := v.Get("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return GridQuery{}, err
		}
		q.FeaturedOnly = b
	}
	if raw := v.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return GridQuery{}, err
		}
		q.Limit = n
	}
	return q, nil
}

func (s *Server) logError(msg string, err error, fields ...zap.Field) {
	if s.Log == nil {
		return
	}
	s.Log.Error(msg, append(fields, zap.Error(err))...)
}

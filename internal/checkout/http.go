package checkout

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GiftStore/internal/apperr"
	"GiftStore/pkg/kit"
)

type Server struct {
	Quoter *Quoter
	Log    *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.quote)
	return r
}

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	q, err := s.Quoter.Quote(r.Context(), req)
	if err != nil {
		var ve *apperr.ValidationError
		switch {
		case errors.As(err, &ve):
			kit.WriteError(w, r, http.StatusBadRequest, ve.Message, ve.Fields)
		case errors.Is(err, ErrProductNotFound):
			kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": req.ProductID})
		default:
			if s.Log != nil {
				s.Log.Error("quote failed", zap.Error(err), zap.String("product_id", req.ProductID))
			}
			kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		}
		return
	}

	kit.WriteJSON(w, http.StatusOK, q)
}

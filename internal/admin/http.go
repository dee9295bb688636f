package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GiftStore/internal/apperr"
	"GiftStore/internal/catalog"
	"GiftStore/pkg/kit"
)

type Server struct {
	Catalog  catalog.Store
	Products *ProductManager
	Orders   *OrderTracker
	Log      *zap.Logger
}

type productResp struct {
	Product      catalog.Product `json:"product"`
	Notification Notification    `json:"notification"`
}

type deleteResp struct {
	Deleted      bool         `json:"deleted"`
	Notification Notification `json:"notification"`
}

type statusReq struct {
	Status string `json:"status"`
}

type statusResp struct {
	Updated      bool          `json:"updated"`
	Order        *Order        `json:"order,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// Routes serves the admin panel API. guard wraps the mutating routes; a nil
// guard leaves them open.
func (s *Server) Routes(guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/stats", s.stats)
	r.Get("/products", s.listProducts)
	r.Get("/orders", s.listOrders)
	r.Get("/orders/{id}", s.getOrder)

	r.Group(func(wr chi.Router) {
		if guard != nil {
			wr.Use(guard)
		}
		wr.Post("/products", s.addProduct)
		wr.Delete("/products/{id}", s.deleteProduct)
		wr.Patch("/orders/{id}", s.updateStatus)
	})

	return r
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st, err := ComputeStats(r.Context(), s.Catalog, s.Products, s.Orders)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("compute stats failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, st)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Products.List(r.Context()))
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	// the panel posts its whole form object; keys like id and image are server-derived
	var in ProductInput
	if err := kit.DecodeJSON(w, r, &in, kit.AllowUnknownFields()); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	p, err := s.Products.AddProduct(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, productResp{
		Product:      p,
		Notification: success(msgProductAdded),
	})
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	deleted := s.Products.DeleteProduct(r.Context(), chi.URLParam(r, "id"))

	kit.WriteJSON(w, http.StatusOK, deleteResp{
		Deleted:      deleted,
		Notification: success(msgProductDeleted),
	})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Orders.List(r.Context()))
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, ok := s.Orders.Get(r.Context(), id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

// updateStatus answers PATCH /orders/{id}. An unknown id is a no-op and
// reports updated=false with 200.
func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	status := Status(req.Status)
	o, updated, err := s.Orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if !updated {
		kit.WriteJSON(w, http.StatusOK, statusResp{Updated: false})
		return
	}

	note := success(statusMessage(status))
	kit.WriteJSON(w, http.StatusOK, statusResp{Updated: true, Order: &o, Notification: &note})
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		kit.WriteError(w, r, http.StatusBadRequest, ve.Message, ve.Fields)
		return
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

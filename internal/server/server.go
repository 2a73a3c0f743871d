// Package server exposes the loaded catalog over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clothinghub/internal/catalog"
	"clothinghub/internal/logger"
	"clothinghub/internal/models"
)

// Server serves the catalog read API.
type Server struct {
	*http.Server
	logger *logger.Logger
}

// NewServer creates the catalog HTTP server.
func NewServer(port string, cat *catalog.Catalog, log *logger.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	handler := &catalogHandler{catalog: cat, logger: log}
	handler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: log,
	}
}

// ProductListResponse is the product collection payload.
type ProductListResponse struct {
	Total    int                     `json:"total"`
	Products []models.CatalogProduct `json:"products"`
}

// ErrorResponse is the error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// catalogHandler handles HTTP requests for catalog reads.
type catalogHandler struct {
	catalog *catalog.Catalog
	logger  *logger.Logger
}

// RegisterRoutes mounts the catalog routes on the router.
func (h *catalogHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
	})
}

func (h *catalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()

	writeJSON(w, http.StatusOK, ProductListResponse{
		Total:    len(products),
		Products: products,
	})
}

func (h *catalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.FindByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found"})

		return
	}

	writeJSON(w, http.StatusOK, product)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
	"github.com/king0ffire/inventory-service/internal/inventory/usecase/command"
	"github.com/king0ffire/inventory-service/internal/inventory/usecase/query"
	"github.com/king0ffire/inventory-service/pkg/logger"
)

const (
	serviceName    = "Inventory REST API Service"
	serviceVersion = "1.0"
	basePath       = "/api/inventories"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
}

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	// Command handlers
	createHandler       *command.CreateInventoryHandler
	updateHandler       *command.UpdateInventoryHandler
	deleteHandler       *command.DeleteInventoryHandler
	startRestockHandler *command.StartRestockHandler
	stopRestockHandler  *command.StopRestockHandler

	// Query handlers
	getHandler  *query.GetInventoryHandler
	listHandler *query.ListInventoryHandler

	repo domain.InventoryRepository
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.InventoryRepository, events domain.EventPublisher) *InventoryHandler {
	return &InventoryHandler{
		createHandler:       command.NewCreateInventoryHandler(repo, events),
		updateHandler:       command.NewUpdateInventoryHandler(repo),
		deleteHandler:       command.NewDeleteInventoryHandler(repo),
		startRestockHandler: command.NewStartRestockHandler(repo, events),
		stopRestockHandler:  command.NewStopRestockHandler(repo, events),
		getHandler:          query.NewGetInventoryHandler(repo),
		listHandler:         query.NewListInventoryHandler(repo),
		repo:                repo,
	}
}

// ErrorResponse is the body shape for every 4xx/5xx answer
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Index handles GET /
func (h *InventoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    serviceName,
		"version": serviceVersion,
		"paths": map[string]string{
			"list": basePath,
		},
	})
}

// Health handles GET /health, a fixed-payload liveness probe
func (h *InventoryHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Healthy",
	})
}

// CreateInventory handles POST /api/inventories
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	entity := req.ToEntity()
	inventory, err := h.createHandler.Handle(r.Context(), command.CreateInventoryCommand{
		Name:                entity.Name,
		Quantity:            entity.Quantity,
		RestockLevel:        entity.RestockLevel,
		Condition:           entity.Condition,
		RestockingAvailable: entity.RestockingAvailable,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create inventory")
		writeError(w, err)
		return
	}

	w.Header().Set("Location", basePath+"/"+strconv.FormatUint(uint64(inventory.ID), 10))
	respondJSON(w, http.StatusCreated, inventory)
}

// GetInventory handles GET /api/inventories/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	inventory, err := h.getHandler.Handle(r.Context(), query.GetInventoryQuery{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

// ListInventory handles GET /api/inventories with optional field filters
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	inventories, err := h.listHandler.Handle(r.Context(), query.ListInventoryQuery{
		Name:                params.Get("name"),
		Quantity:            params.Get("quantity"),
		RestockLevel:        params.Get("restock_level"),
		Condition:           params.Get("condition"),
		RestockingAvailable: params.Get("restocking_available"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventories")
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventories)
}

// UpdateInventory handles PUT /api/inventories/{id}, a full-record replace
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	entity := req.ToEntity()
	inventory, err := h.updateHandler.Handle(r.Context(), command.UpdateInventoryCommand{
		ID:                  pathID(r),
		Name:                entity.Name,
		Quantity:            entity.Quantity,
		RestockLevel:        entity.RestockLevel,
		Condition:           entity.Condition,
		RestockingAvailable: entity.RestockingAvailable,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

// DeleteInventory handles DELETE /api/inventories/{id}. It answers 204
// whether or not the record existed.
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteHandler.Handle(r.Context(), command.DeleteInventoryCommand{ID: pathID(r)}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete inventory")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartRestock handles PUT /api/inventories/{id}/start_restock
func (h *InventoryHandler) StartRestock(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.startRestockHandler.Handle(r.Context(), command.StartRestockCommand{ID: pathID(r)})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

// StopRestock handles PUT /api/inventories/{id}/stop_restock
func (h *InventoryHandler) StopRestock(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.stopRestockHandler.Handle(r.Context(), command.StopRestockCommand{ID: pathID(r)})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.metricsMiddleware("index", h.Index)).Methods("GET")
	router.HandleFunc("/health", h.metricsMiddleware("health", h.Health)).Methods("GET")

	router.HandleFunc(basePath, h.metricsMiddleware("list", h.ListInventory)).Methods("GET")
	router.HandleFunc(basePath, h.metricsMiddleware("create", h.CreateInventory)).Methods("POST")
	router.HandleFunc(basePath+"/{id:[0-9]+}", h.metricsMiddleware("get", h.GetInventory)).Methods("GET")
	router.HandleFunc(basePath+"/{id:[0-9]+}", h.metricsMiddleware("update", h.UpdateInventory)).Methods("PUT")
	router.HandleFunc(basePath+"/{id:[0-9]+}", h.metricsMiddleware("delete", h.DeleteInventory)).Methods("DELETE")
	router.HandleFunc(basePath+"/{id:[0-9]+}/start_restock", h.metricsMiddleware("start_restock", h.StartRestock)).Methods("PUT")
	router.HandleFunc(basePath+"/{id:[0-9]+}/stop_restock", h.metricsMiddleware("stop_restock", h.StopRestock)).Methods("PUT")

	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
}

// RegisterReadinessCheck registers a readiness probe backed by a store ping
func (h *InventoryHandler) RegisterReadinessCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Readiness check failed")
			respondError(w, http.StatusServiceUnavailable, "Service Unavailable", "Database unavailable")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": "Ready",
		})
	}).Methods("GET")
}

// notFoundHandler answers any unknown path
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "URL Not Found", "The requested URL was not found on the server: "+r.URL.Path)
}

// methodNotAllowedHandler answers a known path hit with the wrong verb
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "The method is not allowed for the requested URL: "+r.Method+" "+r.URL.Path)
}

// requireJSON enforces the JSON media type before the body is touched.
// A missing or mismatched Content-Type answers 415.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		respondError(w, http.StatusUnsupportedMediaType, "Unsupported media type",
			"Content-Type must be application/json")
		return false
	}
	return true
}

// decodeRequest parses and validates the inventory payload
func decodeRequest(w http.ResponseWriter, r *http.Request) (*domain.InventoryRequest, bool) {
	var req domain.InventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.DecodeError(err))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return nil, false
	}
	return &req, true
}

// pathID reads the {id} route variable. Routes constrain it to digits, so
// parse failures cannot happen on registered paths.
func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id)
}

// writeError is the single error-to-status mapping for the resource layer
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.DataValidationError
	var notFoundErr *domain.NotFoundError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, "Bad Request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		respondError(w, http.StatusNotFound, "Not Found", notFoundErr.Error())
	case errors.As(err, &conflictErr):
		respondError(w, http.StatusConflict, "Conflict", conflictErr.Message)
	default:
		// Store failures and anything unexpected: generic body, no internals
		respondError(w, http.StatusInternalServerError, "Internal Server Error",
			"The server encountered an internal error and was unable to complete your request.")
	}
}

func respondError(w http.ResponseWriter, status int, reason, message string) {
	respondJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      reason,
		Message:    message,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

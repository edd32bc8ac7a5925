package query

import (
	"context"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

// GetInventoryQuery represents the query to get a single inventory record
type GetInventoryQuery struct {
	ID uint
}

// GetInventoryHandler handles get inventory queries
type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, query GetInventoryQuery) (*domain.Inventory, error) {
	return h.repo.FindByID(ctx, query.ID)
}

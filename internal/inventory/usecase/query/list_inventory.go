package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

// ListInventoryQuery carries the raw query parameters of a list request.
// An empty string means the parameter was not supplied.
type ListInventoryQuery struct {
	Name                string
	Quantity            string
	RestockLevel        string
	Condition           string
	RestockingAvailable string
}

// ListInventoryHandler resolves query parameters into a conjunction of
// equality filters and runs the lookup. All supplied parameters combine
// with AND; with none supplied every record is returned.
type ListInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(repo domain.InventoryRepository) *ListInventoryHandler {
	return &ListInventoryHandler{repo: repo}
}

// Handle executes the list inventory query
func (h *ListInventoryHandler) Handle(ctx context.Context, query ListInventoryQuery) ([]domain.Inventory, error) {
	filter, err := resolveFilter(query)
	if err != nil {
		return nil, err
	}

	var inventories []domain.Inventory
	if filter.Empty() {
		inventories, err = h.repo.FindAll(ctx)
	} else {
		inventories, err = h.repo.FindByFilter(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}

	if inventories == nil {
		inventories = []domain.Inventory{}
	}
	return inventories, nil
}

// resolveFilter coerces raw parameters to their field types. A parameter
// that fails coercion is a validation error, not a silent skip.
func resolveFilter(query ListInventoryQuery) (domain.Filter, error) {
	var filter domain.Filter

	if query.Name != "" {
		name := query.Name
		filter.Name = &name
	}

	if query.Quantity != "" {
		quantity, err := strconv.Atoi(query.Quantity)
		if err != nil {
			return domain.Filter{}, domain.NewWrongTypeError("quantity", "an integer")
		}
		filter.Quantity = &quantity
	}

	if query.RestockLevel != "" {
		restockLevel, err := strconv.Atoi(query.RestockLevel)
		if err != nil {
			return domain.Filter{}, domain.NewWrongTypeError("restock_level", "an integer")
		}
		filter.RestockLevel = &restockLevel
	}

	if query.Condition != "" {
		condition, err := domain.ParseCondition(query.Condition)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.Condition = &condition
	}

	if query.RestockingAvailable != "" {
		switch strings.ToLower(query.RestockingAvailable) {
		case "true":
			available := true
			filter.RestockingAvailable = &available
		case "false":
			available := false
			filter.RestockingAvailable = &available
		default:
			return domain.Filter{}, domain.NewWrongTypeError("restocking_available", "true or false")
		}
	}

	return filter, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

// UpdateInventoryCommand represents a full-record replace of an inventory.
// Every mutable field is overwritten; the id never changes.
type UpdateInventoryCommand struct {
	ID                  uint
	Name                string
	Quantity            int
	RestockLevel        int
	Condition           domain.Condition
	RestockingAvailable bool
}

// UpdateInventoryHandler handles update inventory commands
type UpdateInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateInventoryHandler creates a new update inventory handler
func NewUpdateInventoryHandler(repo domain.InventoryRepository) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{repo: repo}
}

// Handle executes the update inventory command
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.Inventory, error) {
	if cmd.Name == "" {
		return nil, domain.NewMissingFieldError("name")
	}
	if !cmd.Condition.Valid() {
		return nil, domain.NewInvalidEnumError("condition", cmd.Condition.String())
	}

	inventory, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	inventory.Name = cmd.Name
	inventory.Quantity = cmd.Quantity
	inventory.RestockLevel = cmd.RestockLevel
	inventory.Condition = cmd.Condition
	inventory.RestockingAvailable = cmd.RestockingAvailable

	if err := h.repo.Update(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	return inventory, nil
}

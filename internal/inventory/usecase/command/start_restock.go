package command

import (
	"context"
	"fmt"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
	"github.com/king0ffire/inventory-service/pkg/logger"
)

// StartRestockCommand begins restocking: restocking_available goes true -> false
type StartRestockCommand struct {
	ID uint
}

// StartRestockHandler handles start restock commands
type StartRestockHandler struct {
	repo   domain.InventoryRepository
	events domain.EventPublisher
}

// NewStartRestockHandler creates a new start restock handler
func NewStartRestockHandler(repo domain.InventoryRepository, events domain.EventPublisher) *StartRestockHandler {
	return &StartRestockHandler{repo: repo, events: events}
}

// Handle executes the start restock command
func (h *StartRestockHandler) Handle(ctx context.Context, cmd StartRestockCommand) (*domain.Inventory, error) {
	inventory, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if !inventory.RestockingAvailable {
		return nil, &domain.ConflictError{
			Message: fmt.Sprintf("Inventory with id '%d' is not available for restocking.", cmd.ID),
		}
	}

	inventory.RestockingAvailable = false
	if err := h.repo.Update(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to start restock: %w", err)
	}

	if h.events != nil {
		if err := h.events.PublishRestockStarted(ctx, inventory); err != nil {
			logger.Warn(ctx).Err(err).Uint("inventory_id", inventory.ID).Msg("Failed to publish restock started event")
		}
	}

	return inventory, nil
}

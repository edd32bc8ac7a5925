package command

import (
	"context"
	"fmt"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
	"github.com/king0ffire/inventory-service/pkg/logger"
)

// StopRestockCommand ends restocking: restocking_available goes false -> true
type StopRestockCommand struct {
	ID uint
}

// StopRestockHandler handles stop restock commands
type StopRestockHandler struct {
	repo   domain.InventoryRepository
	events domain.EventPublisher
}

// NewStopRestockHandler creates a new stop restock handler
func NewStopRestockHandler(repo domain.InventoryRepository, events domain.EventPublisher) *StopRestockHandler {
	return &StopRestockHandler{repo: repo, events: events}
}

// Handle executes the stop restock command
func (h *StopRestockHandler) Handle(ctx context.Context, cmd StopRestockCommand) (*domain.Inventory, error) {
	inventory, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if inventory.RestockingAvailable {
		return nil, &domain.ConflictError{
			Message: fmt.Sprintf("Inventory with id '%d' is not being restocked.", cmd.ID),
		}
	}

	inventory.RestockingAvailable = true
	if err := h.repo.Update(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to stop restock: %w", err)
	}

	if h.events != nil {
		if err := h.events.PublishRestockStopped(ctx, inventory); err != nil {
			logger.Warn(ctx).Err(err).Uint("inventory_id", inventory.ID).Msg("Failed to publish restock stopped event")
		}
	}

	return inventory, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
	"github.com/king0ffire/inventory-service/pkg/logger"
)

// CreateInventoryCommand represents the command to create an inventory record
type CreateInventoryCommand struct {
	Name                string
	Quantity            int
	RestockLevel        int
	Condition           domain.Condition
	RestockingAvailable bool
}

// CreateInventoryHandler handles create inventory commands
type CreateInventoryHandler struct {
	repo   domain.InventoryRepository
	events domain.EventPublisher
}

// NewCreateInventoryHandler creates a new create inventory handler
func NewCreateInventoryHandler(repo domain.InventoryRepository, events domain.EventPublisher) *CreateInventoryHandler {
	return &CreateInventoryHandler{repo: repo, events: events}
}

// Handle executes the create inventory command. The assigned id is set on the
// returned entity.
func (h *CreateInventoryHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (*domain.Inventory, error) {
	if cmd.Name == "" {
		return nil, domain.NewMissingFieldError("name")
	}
	if !cmd.Condition.Valid() {
		return nil, domain.NewInvalidEnumError("condition", cmd.Condition.String())
	}

	inventory := &domain.Inventory{
		Name:                cmd.Name,
		Quantity:            cmd.Quantity,
		RestockLevel:        cmd.RestockLevel,
		Condition:           cmd.Condition,
		RestockingAvailable: cmd.RestockingAvailable,
	}

	if err := h.repo.Create(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	if h.events != nil {
		if err := h.events.PublishInventoryCreated(ctx, inventory); err != nil {
			logger.Warn(ctx).Err(err).Uint("inventory_id", inventory.ID).Msg("Failed to publish inventory created event")
		}
	}

	return inventory, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

// DeleteInventoryCommand represents the command to delete an inventory record
type DeleteInventoryCommand struct {
	ID uint
}

// DeleteInventoryHandler handles delete inventory commands
type DeleteInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewDeleteInventoryHandler creates a new delete inventory handler
func NewDeleteInventoryHandler(repo domain.InventoryRepository) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{repo: repo}
}

// Handle executes the delete inventory command. Deleting an id that does not
// exist succeeds, so the operation is idempotent.
func (h *DeleteInventoryHandler) Handle(ctx context.Context, cmd DeleteInventoryCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}

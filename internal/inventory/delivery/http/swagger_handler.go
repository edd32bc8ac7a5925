package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Inventory Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateInventory godoc
// @Summary Create new inventory
// @Description Create a new inventory record
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body object{name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool} true "Inventory data"
// @Success 201 {object} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Header 201 {string} Location "URL of the created resource"
// @Failure 400 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /api/inventories [post]
func (h *InventoryHandler) CreateInventoryDoc() {}

// ListInventory godoc
// @Summary List inventories
// @Description Get all inventory records, optionally filtered by field equality
// @Tags Inventory
// @Produce json
// @Param name query string false "Filter by name"
// @Param quantity query int false "Filter by quantity"
// @Param restock_level query int false "Filter by restock level"
// @Param condition query string false "Filter by condition (NEW, OPEN_BOX, USED)"
// @Param restocking_available query bool false "Filter by restocking availability"
// @Success 200 {array} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Failure 400 {object} ErrorResponse
// @Router /api/inventories [get]
func (h *InventoryHandler) ListInventoryDoc() {}

// GetInventory godoc
// @Summary Get inventory by ID
// @Description Get a single inventory record by its ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Failure 404 {object} ErrorResponse
// @Router /api/inventories/{id} [get]
func (h *InventoryHandler) GetInventoryDoc() {}

// UpdateInventory godoc
// @Summary Update inventory
// @Description Replace every mutable field of an inventory record
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body object{name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool} true "Inventory data"
// @Success 200 {object} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /api/inventories/{id} [put]
func (h *InventoryHandler) UpdateInventoryDoc() {}

// DeleteInventory godoc
// @Summary Delete inventory
// @Description Delete an inventory record. Always answers 204, even when the id does not exist.
// @Tags Inventory
// @Param id path int true "Inventory ID"
// @Success 204
// @Router /api/inventories/{id} [delete]
func (h *InventoryHandler) DeleteInventoryDoc() {}

// StartRestock godoc
// @Summary Start restocking
// @Description Flip restocking_available from true to false
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/inventories/{id}/start_restock [put]
func (h *InventoryHandler) StartRestockDoc() {}

// StopRestock godoc
// @Summary Stop restocking
// @Description Flip restocking_available from false to true
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{id=int,name=string,quantity=int,restock_level=int,condition=string,restocking_available=bool}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/inventories/{id}/stop_restock [put]
func (h *InventoryHandler) StopRestockDoc() {}

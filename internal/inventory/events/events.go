package events

import "time"

// InventoryEvent is the wire shape for every inventory lifecycle event
type InventoryEvent struct {
	EventID             string    `json:"event_id"`
	EventType           string    `json:"event_type"`
	InventoryID         uint      `json:"inventory_id"`
	Name                string    `json:"name"`
	Quantity            int       `json:"quantity"`
	RestockLevel        int       `json:"restock_level"`
	Condition           string    `json:"condition"`
	RestockingAvailable bool      `json:"restocking_available"`
	Timestamp           time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeInventoryCreated = "inventory.created"
	EventTypeRestockStarted   = "inventory.restock_started"
	EventTypeRestockStopped   = "inventory.restock_stopped"
)

// Kafka topics
const (
	TopicInventoryEvents = "inventory-events"
)

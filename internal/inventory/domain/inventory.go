package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Inventory represents a single inventory record
type Inventory struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null;index"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	RestockLevel        int       `json:"restock_level" gorm:"not null"`
	Condition           Condition `json:"condition" gorm:"type:varchar(16);not null"`
	RestockingAvailable bool      `json:"restocking_available" gorm:"not null;default:true"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// InventoryRequest is the inbound payload for create and update. Fields are
// pointers so a missing field is distinguishable from a zero value.
type InventoryRequest struct {
	Name                *string `json:"name"`
	Quantity            *int    `json:"quantity"`
	RestockLevel        *int    `json:"restock_level"`
	Condition           *string `json:"condition"`
	RestockingAvailable *bool   `json:"restocking_available"`
}

// Validate checks that every required field is present and well formed
func (r *InventoryRequest) Validate() error {
	if r.Name == nil || *r.Name == "" {
		return NewMissingFieldError("name")
	}
	if r.Quantity == nil {
		return NewMissingFieldError("quantity")
	}
	if r.RestockLevel == nil {
		return NewMissingFieldError("restock_level")
	}
	if r.Condition == nil {
		return NewMissingFieldError("condition")
	}
	if _, err := ParseCondition(*r.Condition); err != nil {
		return err
	}
	return nil
}

// ToEntity builds an Inventory from a validated request. It never assigns an
// id; restocking availability defaults to true when the payload omits it.
func (r *InventoryRequest) ToEntity() *Inventory {
	available := true
	if r.RestockingAvailable != nil {
		available = *r.RestockingAvailable
	}
	return &Inventory{
		Name:                *r.Name,
		Quantity:            *r.Quantity,
		RestockLevel:        *r.RestockLevel,
		Condition:           Condition(*r.Condition),
		RestockingAvailable: available,
	}
}

// DecodeError translates JSON decoding failures into the validation error
// taxonomy so a wrong-typed field surfaces as a 400, not a 500
func DecodeError(err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return NewWrongTypeError(typeErr.Field, typeErr.Type.String())
	}
	return &DataValidationError{
		Kind:    WrongType,
		Field:   "",
		Message: "Invalid Inventory: request body is not valid JSON",
	}
}

// Filter is a conjunction of equality predicates over inventory fields.
// A nil field means the predicate is absent.
type Filter struct {
	Name                *string
	Quantity            *int
	RestockLevel        *int
	Condition           *Condition
	RestockingAvailable *bool
}

// Empty reports whether no predicate is set
func (f Filter) Empty() bool {
	return f.Name == nil && f.Quantity == nil && f.RestockLevel == nil &&
		f.Condition == nil && f.RestockingAvailable == nil
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Create(ctx context.Context, inventory *Inventory) error
	FindByID(ctx context.Context, id uint) (*Inventory, error)
	FindAll(ctx context.Context) ([]Inventory, error)
	FindByFilter(ctx context.Context, filter Filter) ([]Inventory, error)
	Update(ctx context.Context, inventory *Inventory) error
	Delete(ctx context.Context, id uint) error
}

// EventPublisher emits inventory lifecycle events to the message broker.
// Implementations must be safe to skip: a nil publisher disables eventing.
type EventPublisher interface {
	PublishInventoryCreated(ctx context.Context, inventory *Inventory) error
	PublishRestockStarted(ctx context.Context, inventory *Inventory) error
	PublishRestockStopped(ctx context.Context, inventory *Inventory) error
}

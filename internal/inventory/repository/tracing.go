package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps GormInventoryRepository with tracing
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

func (r *GormInventoryRepositoryWithTracing) Create(ctx context.Context, inventory *domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("inventory.name", inventory.Name),
			attribute.Int("inventory.quantity", inventory.Quantity),
			attribute.Int("inventory.restock_level", inventory.RestockLevel),
			attribute.String("inventory.condition", inventory.Condition.String()),
		),
	)
	defer span.End()

	err := r.GormInventoryRepository.Create(ctx, inventory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inventory.ID)))
	return nil
}

func (r *GormInventoryRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("inventory.id", int(id)),
		),
	)
	defer span.End()

	inventory, err := r.GormInventoryRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("inventory.name", inventory.Name),
		attribute.Int("inventory.quantity", inventory.Quantity),
		attribute.Bool("inventory.restocking_available", inventory.RestockingAvailable),
	)
	return inventory, nil
}

func (r *GormInventoryRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	inventories, err := r.GormInventoryRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(inventories)))
	return inventories, nil
}

func (r *GormInventoryRepositoryWithTracing) FindByFilter(ctx context.Context, filter domain.Filter) ([]domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByFilter")
	defer span.End()

	if filter.Name != nil {
		span.SetAttributes(attribute.String("filter.name", *filter.Name))
	}
	if filter.Quantity != nil {
		span.SetAttributes(attribute.Int("filter.quantity", *filter.Quantity))
	}
	if filter.RestockLevel != nil {
		span.SetAttributes(attribute.Int("filter.restock_level", *filter.RestockLevel))
	}
	if filter.Condition != nil {
		span.SetAttributes(attribute.String("filter.condition", filter.Condition.String()))
	}
	if filter.RestockingAvailable != nil {
		span.SetAttributes(attribute.Bool("filter.restocking_available", *filter.RestockingAvailable))
	}

	inventories, err := r.GormInventoryRepository.FindByFilter(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(inventories)))
	return inventories, nil
}

func (r *GormInventoryRepositoryWithTracing) Update(ctx context.Context, inventory *domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("inventory.id", int(inventory.ID)),
			attribute.Int("inventory.quantity", inventory.Quantity),
			attribute.Bool("inventory.restocking_available", inventory.RestockingAvailable),
		),
	)
	defer span.End()

	err := r.GormInventoryRepository.Update(ctx, inventory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *GormInventoryRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("inventory.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormInventoryRepository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

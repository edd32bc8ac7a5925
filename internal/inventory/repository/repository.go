package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

func (r *GormInventoryRepository) Create(ctx context.Context, inventory *domain.Inventory) error {
	return r.db.WithContext(ctx).Create(inventory).Error
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	err := r.db.WithContext(ctx).First(&inventory, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	var inventories []domain.Inventory
	err := r.db.WithContext(ctx).Order("id").Find(&inventories).Error
	return inventories, err
}

func (r *GormInventoryRepository) FindByFilter(ctx context.Context, filter domain.Filter) ([]domain.Inventory, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Inventory{})

	if filter.Name != nil {
		tx = tx.Where("name = ?", *filter.Name)
	}
	if filter.Quantity != nil {
		tx = tx.Where("quantity = ?", *filter.Quantity)
	}
	if filter.RestockLevel != nil {
		tx = tx.Where("restock_level = ?", *filter.RestockLevel)
	}
	if filter.Condition != nil {
		tx = tx.Where("condition = ?", filter.Condition.String())
	}
	if filter.RestockingAvailable != nil {
		tx = tx.Where("restocking_available = ?", *filter.RestockingAvailable)
	}

	var inventories []domain.Inventory
	err := tx.Order("id").Find(&inventories).Error
	return inventories, err
}

func (r *GormInventoryRepository) Update(ctx context.Context, inventory *domain.Inventory) error {
	return r.db.WithContext(ctx).Save(inventory).Error
}

// Delete removes the record if it exists. Deleting an absent id is a no-op,
// which keeps the HTTP DELETE idempotent.
func (r *GormInventoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Inventory{}, id).Error
}

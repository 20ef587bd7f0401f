package repository

import (
	"vendas_admin/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(orderItem *models.OrderItem) error
	GetByID(id string) (*models.OrderItem, error)
	GetAll() ([]models.OrderItem, error)
	GetByOrderID(orderID string) ([]models.OrderItem, error)
	Update(orderItem *models.OrderItem) error
	Delete(id string) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(orderItem *models.OrderItem) error {
	return r.db.Create(orderItem).Error
}

func (r *orderItemRepository) GetByID(id string) (*models.OrderItem, error) {
	var orderItem models.OrderItem
	err := r.db.First(&orderItem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &orderItem, nil
}

func (r *orderItemRepository) GetAll() ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Find(&orderItems).Error
	return orderItems, err
}

// GetByOrderID pushes the item-to-order filter into the store instead of
// scanning the whole collection.
func (r *orderItemRepository) GetByOrderID(orderID string) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&orderItems).Error
	return orderItems, err
}

func (r *orderItemRepository) Update(orderItem *models.OrderItem) error {
	return r.db.Save(orderItem).Error
}

func (r *orderItemRepository) Delete(id string) error {
	return r.db.Delete(&models.OrderItem{}, "id = ?", id).Error
}

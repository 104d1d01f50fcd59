package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) GetAll() ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderItemRepository) GetByOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) GetWithMenuDetails(orderID uint) ([]models.OrderItemWithMenu, error) {
	var rows []models.OrderItemWithMenu
	err := r.db.Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.menu_item_id, order_items.quantity, order_items.price, "+
			"menu_items.name AS item_name, menu_items.description AS item_description").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error
	return rows, err
}

// GetMostOrdered returns the menu items with the highest ordered quantity.
func (r *OrderItemRepository) GetMostOrdered(limit int) ([]models.PopularItem, error) {
	var rows []models.PopularItem
	err := r.db.Table("order_items").
		Select("menu_items.id, menu_items.name, SUM(order_items.quantity) AS total_ordered").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Group("menu_items.id, menu_items.name").
		Order("total_ordered DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *OrderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *OrderItemRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.OrderItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *OrderItemRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.OrderItem{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *OrderItemRepository) DeleteByOrder(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", status).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetWithUser(id uint) (*models.OrderWithUser, error) {
	var row models.OrderWithUser
	err := r.db.Table("orders").
		Select("orders.id, orders.user_id, orders.total_amount, orders.status, orders.order_date, "+
			"users.name AS user_name, users.email AS user_email, users.phone AS user_phone").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields).Error
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *OrderRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Order{}, id)
	return res.RowsAffected > 0, res.Error
}

// TotalRevenue sums the total amounts of delivered orders.
func (r *OrderRepository) TotalRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *OrderRepository) CountByDateRange(start, end string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("order_date BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

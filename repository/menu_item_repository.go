package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) GetByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ?", categoryID).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) GetAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_available = ?", true).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) GetWithCategory() ([]models.MenuItemWithCategory, error) {
	var rows []models.MenuItemWithCategory
	err := r.db.Table("menu_items").
		Select("menu_items.id, menu_items.category_id, menu_items.name, menu_items.description, menu_items.price, menu_items.is_available, " +
			"categories.name AS category_name, categories.description AS category_description").
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Scan(&rows).Error
	return rows, err
}

func (r *MenuItemRepository) SearchByName(term string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("name LIKE ?", "%"+term+"%").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *MenuItemRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuItemRepository) UpdateAvailability(id uint, isAvailable bool) error {
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).Update("is_available", isAvailable).Error
}

func (r *MenuItemRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.MenuItem{}, id)
	return res.RowsAffected > 0, res.Error
}

package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"gorm.io/gorm"
)

type MenuItemService struct {
	menuItems  *repository.MenuItemRepository
	categories *repository.CategoryRepository
}

func NewMenuItemService(menuItems *repository.MenuItemRepository, categories *repository.CategoryRepository) *MenuItemService {
	return &MenuItemService{menuItems: menuItems, categories: categories}
}

func (s *MenuItemService) GetAll() ([]models.MenuItem, error) {
	return s.menuItems.GetAll()
}

func (s *MenuItemService) GetByID(id int) (*models.MenuItem, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid menu item ID")
	}
	item, err := s.menuItems.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Menu item not found")
	}
	return item, err
}

func (s *MenuItemService) GetByCategory(categoryID int) ([]models.MenuItem, error) {
	if categoryID <= 0 {
		return nil, utils.ValidationErr("Invalid category ID")
	}
	return s.menuItems.GetByCategory(uint(categoryID))
}

func (s *MenuItemService) GetAvailable() ([]models.MenuItem, error) {
	return s.menuItems.GetAvailable()
}

func (s *MenuItemService) GetWithCategory() ([]models.MenuItemWithCategory, error) {
	return s.menuItems.GetWithCategory()
}

func (s *MenuItemService) SearchByName(term string) ([]models.MenuItem, error) {
	if term == "" {
		return nil, utils.ValidationErr("Search term is required")
	}
	return s.menuItems.SearchByName(term)
}

// Create validates the category reference and defaults availability to true
// when the field is omitted.
func (s *MenuItemService) Create(req models.MenuItemRequest) (*models.MenuItem, error) {
	if req.Name == "" {
		return nil, utils.ValidationErr("Menu item name is required")
	}
	if req.CategoryID <= 0 {
		return nil, utils.ValidationErr("Valid category ID is required")
	}
	if req.Price <= 0 {
		return nil, utils.ValidationErr("Valid price is required")
	}

	if _, err := s.categories.GetByID(uint(req.CategoryID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Category not found")
		}
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := models.MenuItem{
		CategoryID:  uint(req.CategoryID),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: isAvailable,
	}
	if err := s.menuItems.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuItemService) Update(id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid menu item ID")
	}
	if _, err := s.menuItems.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Menu item not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price <= 0 {
			return nil, utils.ValidationErr("Price must be a positive number")
		}
		fields["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID <= 0 {
			return nil, utils.ValidationErr("Invalid category ID")
		}
		if _, err := s.categories.GetByID(uint(*patch.CategoryID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.NotFoundErr("Category not found")
			}
			return nil, err
		}
		fields["category_id"] = uint(*patch.CategoryID)
	}
	if patch.IsAvailable != nil {
		fields["is_available"] = *patch.IsAvailable
	}

	if len(fields) > 0 {
		if err := s.menuItems.Update(uint(id), fields); err != nil {
			return nil, err
		}
	}
	return s.menuItems.GetByID(uint(id))
}

func (s *MenuItemService) UpdateAvailability(id int, isAvailable bool) (*models.MenuItem, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid menu item ID")
	}
	if _, err := s.menuItems.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Menu item not found")
		}
		return nil, err
	}
	if err := s.menuItems.UpdateAvailability(uint(id), isAvailable); err != nil {
		return nil, err
	}
	return s.menuItems.GetByID(uint(id))
}

func (s *MenuItemService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid menu item ID")
	}
	removed, err := s.menuItems.Delete(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("Menu item not found")
	}
	return nil
}

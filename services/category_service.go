package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	return s.categories.GetAll()
}

func (s *CategoryService) GetByID(id int) (*models.Category, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid category ID")
	}
	category, err := s.categories.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Category not found")
	}
	return category, err
}

func (s *CategoryService) GetByName(name string) (*models.Category, error) {
	if name == "" {
		return nil, utils.ValidationErr("Category name is required")
	}
	category, err := s.categories.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Category not found")
	}
	return category, err
}

func (s *CategoryService) GetWithItemCount() ([]models.CategoryWithItemCount, error) {
	return s.categories.GetWithItemCount()
}

func (s *CategoryService) Create(req models.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, utils.ValidationErr("Category name is required")
	}

	_, err := s.categories.GetByName(req.Name)
	if err == nil {
		return nil, utils.ConflictErr("Category name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categories.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id int, patch models.CategoryPatch) (*models.Category, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid category ID")
	}
	if _, err := s.categories.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Category not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, utils.ValidationErr("Category name cannot be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	if len(fields) > 0 {
		if err := s.categories.Update(uint(id), fields); err != nil {
			return nil, err
		}
	}
	return s.categories.GetByID(uint(id))
}

// Delete removes the category together with its menu items.
func (s *CategoryService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid category ID")
	}
	removed, err := s.categories.DeleteWithItems(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("Category not found")
	}
	return nil
}

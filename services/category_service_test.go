package services

import (
	"testing"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB) {
	db := setupTestDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func TestCategoryCreateAndFetch(t *testing.T) {
	svc, _ := newCategoryService(t)

	created, err := svc.Create(models.CategoryRequest{Name: "Desserts", Description: "Sweet things"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByID(int(created.ID))
	assert.NoError(t, err)
	assert.Equal(t, "Desserts", got.Name)
	assert.Equal(t, "Sweet things", got.Description)

	byName, err := svc.GetByName("Desserts")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(models.CategoryRequest{Name: "Desserts"})
	assert.NoError(t, err)

	_, err = svc.Create(models.CategoryRequest{Name: "Desserts"})
	assert.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, "Category name already exists", err.Error())
}

func TestCategoryCreateRequiresName(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(models.CategoryRequest{Description: "no name"})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Equal(t, "Category name is required", err.Error())
}

func TestCategoryUpdateRejectsEmptyName(t *testing.T) {
	svc, db := newCategoryService(t)
	category := seedCategory(t, db, "Mains")

	empty := ""
	_, err := svc.Update(int(category.ID), models.CategoryPatch{Name: &empty})
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Equal(t, "Category name cannot be empty", err.Error())
}

func TestCategoryPartialUpdate(t *testing.T) {
	svc, db := newCategoryService(t)
	category := seedCategory(t, db, "Mains")

	desc := "Hearty plates"
	updated, err := svc.Update(int(category.ID), models.CategoryPatch{Description: &desc})
	assert.NoError(t, err)
	assert.Equal(t, "Mains", updated.Name)
	assert.Equal(t, "Hearty plates", updated.Description)
}

func TestCategoryDeleteRemovesItems(t *testing.T) {
	svc, db := newCategoryService(t)
	category := seedCategory(t, db, "Mains")
	seedMenuItem(t, db, category.ID, true)
	seedMenuItem(t, db, category.ID, false)

	err := svc.Delete(int(category.ID))
	assert.NoError(t, err)

	var itemCount int64
	db.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&itemCount)
	assert.Zero(t, itemCount)

	_, err = svc.GetByID(int(category.ID))
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestCategoryDeleteMissingFails(t *testing.T) {
	svc, _ := newCategoryService(t)

	err := svc.Delete(42)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestCategoryWithItemCount(t *testing.T) {
	svc, db := newCategoryService(t)
	full := seedCategory(t, db, "Mains")
	seedMenuItem(t, db, full.ID, true)
	seedMenuItem(t, db, full.ID, true)
	seedCategory(t, db, "Drinks")

	rows, err := svc.GetWithItemCount()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Name] = row.ItemCount
	}
	assert.Equal(t, int64(2), counts["Mains"])
	assert.Equal(t, int64(0), counts["Drinks"])
}

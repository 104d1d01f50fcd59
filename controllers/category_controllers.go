package controllers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.service.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

func (cc *CategoryController) GetCategoriesWithItemCount(c *gin.Context) {
	categories, err := cc.service.GetWithItemCount()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	category, err := cc.service.GetByID(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	category, err := cc.service.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var patch models.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	category, err := cc.service.Update(pathID(c, "id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if err := cc.service.Delete(pathID(c, "id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}

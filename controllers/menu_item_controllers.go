package controllers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct {
	service *services.MenuItemService
}

func NewMenuItemController(service *services.MenuItemService) *MenuItemController {
	return &MenuItemController{service: service}
}

func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.service.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	item, err := mc.service.GetByID(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuItemController) GetMenuItemsByCategory(c *gin.Context) {
	items, err := mc.service.GetByCategory(pathID(c, "category_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) GetAvailableMenuItems(c *gin.Context) {
	items, err := mc.service.GetAvailable()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) GetMenuItemsWithCategory(c *gin.Context) {
	items, err := mc.service.GetWithCategory()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) SearchMenuItems(c *gin.Context) {
	items, err := mc.service.SearchByName(c.Query("q"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	item, err := mc.service.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, item)
}

func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	item, err := mc.service.Update(pathID(c, "id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuItemController) UpdateMenuItemAvailability(c *gin.Context) {
	var body struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IsAvailable == nil {
		utils.RespondError(c, utils.ValidationErr("is_available is required"))
		return
	}
	item, err := mc.service.UpdateAvailability(pathID(c, "id"), *body.IsAvailable)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	if err := mc.service.Delete(pathID(c, "id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Menu item deleted"})
}

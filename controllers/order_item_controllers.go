package controllers

import (
	"net/http"
	"strconv"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	service *services.OrderItemService
}

func NewOrderItemController(service *services.OrderItemService) *OrderItemController {
	return &OrderItemController{service: service}
}

func (oic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	items, err := oic.service.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (oic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	item, err := oic.service.GetByID(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (oic *OrderItemController) GetItemsByOrder(c *gin.Context) {
	items, err := oic.service.GetByOrder(pathID(c, "order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (oic *OrderItemController) GetItemsWithMenuDetails(c *gin.Context) {
	items, err := oic.service.GetWithMenuDetails(pathID(c, "order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (oic *OrderItemController) GetMostOrderedItems(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 0
	}
	items, err := oic.service.GetMostOrdered(limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var req models.OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	item, err := oic.service.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, item)
}

func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	var patch models.OrderItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	item, err := oic.service.Update(pathID(c, "id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	if err := oic.service.Delete(pathID(c, "id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Order item deleted"})
}

func (oic *OrderItemController) DeleteItemsByOrder(c *gin.Context) {
	if err := oic.service.DeleteByOrder(pathID(c, "order_id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Order items deleted"})
}

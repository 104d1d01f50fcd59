package controllers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.service.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.service.GetByID(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) GetOrderDetails(c *gin.Context) {
	order, err := oc.service.GetWithUser(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) GetOrdersByUser(c *gin.Context) {
	orders, err := oc.service.GetByUser(pathID(c, "user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

func (oc *OrderController) GetOrdersByStatus(c *gin.Context) {
	orders, err := oc.service.GetByStatus(c.Param("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	order, err := oc.service.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	order, err := oc.service.Update(pathID(c, "id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var body models.StatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	order, err := oc.service.UpdateStatus(pathID(c, "id"), body.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if err := oc.service.Delete(pathID(c, "id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}

func (oc *OrderController) GetTotalRevenue(c *gin.Context) {
	revenue, err := oc.service.TotalRevenue()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"revenue": revenue})
}

func (oc *OrderController) GetOrdersCountByDateRange(c *gin.Context) {
	count, err := oc.service.CountByDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"count": count})
}

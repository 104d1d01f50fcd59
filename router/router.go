package router

import (
	"net/http"

	"restaurant-api/controllers"
	"restaurant-api/middlewares"
	"restaurant-api/repository"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(categoryRepo))
	menuItemCtrl := controllers.NewMenuItemController(services.NewMenuItemService(menuItemRepo, categoryRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, userRepo))
	orderItemCtrl := controllers.NewOrderItemController(services.NewOrderItemService(orderItemRepo, orderRepo, menuItemRepo))
	reservationCtrl := controllers.NewReservationController(services.NewReservationService(reservationRepo, userRepo))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant Management API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// USERS — the literal /users/email and /users/role segments must be
	// registered alongside the :id catch-all.
	r.GET("/users", userCtrl.GetAllUsers)
	r.GET("/users/email/:email", userCtrl.GetUserByEmail)
	r.GET("/users/role/:role", userCtrl.GetUsersByRole)
	r.GET("/users/:id", userCtrl.GetUserByID)
	r.POST("/users", userCtrl.CreateUser)
	r.POST("/users/authenticate", userCtrl.Authenticate)
	r.PUT("/users/:id", userCtrl.UpdateUser)
	r.DELETE("/users/:id", userCtrl.DeleteUser)

	// CATEGORIES
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/categories/with-item-count", categoryCtrl.GetCategoriesWithItemCount)
	r.GET("/categories/:id", categoryCtrl.GetCategoryByID)
	r.POST("/categories", categoryCtrl.CreateCategory)
	r.PUT("/categories/:id", categoryCtrl.UpdateCategory)
	r.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

	// MENU ITEMS
	r.GET("/menu-items", menuItemCtrl.GetAllMenuItems)
	r.GET("/menu-items/available", menuItemCtrl.GetAvailableMenuItems)
	r.GET("/menu-items/search", menuItemCtrl.SearchMenuItems)
	r.GET("/menu-items/with-category", menuItemCtrl.GetMenuItemsWithCategory)
	r.GET("/menu-items/category/:category_id", menuItemCtrl.GetMenuItemsByCategory)
	r.GET("/menu-items/:id", menuItemCtrl.GetMenuItemByID)
	r.POST("/menu-items", menuItemCtrl.CreateMenuItem)
	r.PUT("/menu-items/:id", menuItemCtrl.UpdateMenuItem)
	r.PUT("/menu-items/:id/availability", menuItemCtrl.UpdateMenuItemAvailability)
	r.DELETE("/menu-items/:id", menuItemCtrl.DeleteMenuItem)

	// ORDERS
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/stats/revenue", orderCtrl.GetTotalRevenue)
	r.GET("/orders/stats/count", orderCtrl.GetOrdersCountByDateRange)
	r.GET("/orders/status/:status", orderCtrl.GetOrdersByStatus)
	r.GET("/orders/user/:user_id", orderCtrl.GetOrdersByUser)
	r.GET("/orders/:id", orderCtrl.GetOrderByID)
	r.GET("/orders/:id/details", orderCtrl.GetOrderDetails)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.PUT("/orders/:id", orderCtrl.UpdateOrder)
	r.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	r.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	// ORDER ITEMS
	r.GET("/order-items", orderItemCtrl.GetAllOrderItems)
	r.GET("/order-items/popular", orderItemCtrl.GetMostOrderedItems)
	r.GET("/order-items/order/:order_id", orderItemCtrl.GetItemsByOrder)
	r.GET("/order-items/order/:order_id/details", orderItemCtrl.GetItemsWithMenuDetails)
	r.GET("/order-items/:id", orderItemCtrl.GetOrderItemByID)
	r.POST("/order-items", orderItemCtrl.CreateOrderItem)
	r.PUT("/order-items/:id", orderItemCtrl.UpdateOrderItem)
	r.DELETE("/order-items/:id", orderItemCtrl.DeleteOrderItem)
	r.DELETE("/order-items/order/:order_id", orderItemCtrl.DeleteItemsByOrder)

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.GET("/reservations/availability", reservationCtrl.CheckAvailability)
	r.GET("/reservations/upcoming", reservationCtrl.GetUpcomingReservations)
	r.GET("/reservations/today/count", reservationCtrl.GetTodayReservationsCount)
	r.GET("/reservations/date/:date", reservationCtrl.GetReservationsByDate)
	r.GET("/reservations/status/:status", reservationCtrl.GetReservationsByStatus)
	r.GET("/reservations/user/:user_id", reservationCtrl.GetReservationsByUser)
	r.GET("/reservations/:id", reservationCtrl.GetReservationByID)
	r.GET("/reservations/:id/details", reservationCtrl.GetReservationDetails)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.PUT("/reservations/:id", reservationCtrl.UpdateReservation)
	r.PUT("/reservations/:id/status", reservationCtrl.UpdateReservationStatus)
	r.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorEnvelope{Error: "Route not found", Code: http.StatusNotFound})
	})

	return r
}

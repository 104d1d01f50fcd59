package services

import (
	"errors"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"gorm.io/gorm"
)

// OrderItemService validates order item writes. It deliberately does not
// recompute the parent order's total amount; keeping the total consistent is
// the caller's responsibility.
type OrderItemService struct {
	orderItems *repository.OrderItemRepository
	orders     *repository.OrderRepository
	menuItems  *repository.MenuItemRepository
}

func NewOrderItemService(
	orderItems *repository.OrderItemRepository,
	orders *repository.OrderRepository,
	menuItems *repository.MenuItemRepository,
) *OrderItemService {
	return &OrderItemService{orderItems: orderItems, orders: orders, menuItems: menuItems}
}

func (s *OrderItemService) GetAll() ([]models.OrderItem, error) {
	return s.orderItems.GetAll()
}

func (s *OrderItemService) GetByID(id int) (*models.OrderItem, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order item ID")
	}
	item, err := s.orderItems.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Order item not found")
	}
	return item, err
}

func (s *OrderItemService) GetByOrder(orderID int) ([]models.OrderItem, error) {
	if orderID <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	return s.orderItems.GetByOrder(uint(orderID))
}

func (s *OrderItemService) GetWithMenuDetails(orderID int) ([]models.OrderItemWithMenu, error) {
	if orderID <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	return s.orderItems.GetWithMenuDetails(uint(orderID))
}

func (s *OrderItemService) GetMostOrdered(limit int) ([]models.PopularItem, error) {
	if limit <= 0 {
		return nil, utils.ValidationErr("Limit must be a positive number")
	}
	return s.orderItems.GetMostOrdered(limit)
}

// Create checks both foreign keys and that the menu item is available at
// insertion time. The price is a snapshot supplied by the caller.
func (s *OrderItemService) Create(req models.OrderItemRequest) (*models.OrderItem, error) {
	if req.OrderID <= 0 {
		return nil, utils.ValidationErr("Valid order ID is required")
	}
	if req.MenuItemID <= 0 {
		return nil, utils.ValidationErr("Valid menu item ID is required")
	}
	if req.Quantity <= 0 {
		return nil, utils.ValidationErr("Valid quantity is required")
	}
	if req.Price <= 0 {
		return nil, utils.ValidationErr("Valid price is required")
	}

	if _, err := s.orders.GetByID(uint(req.OrderID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Order not found")
		}
		return nil, err
	}

	menuItem, err := s.menuItems.GetByID(uint(req.MenuItemID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Menu item not found")
		}
		return nil, err
	}
	if !menuItem.IsAvailable {
		return nil, utils.ValidationErr("Menu item is not available")
	}

	item := models.OrderItem{
		OrderID:    uint(req.OrderID),
		MenuItemID: uint(req.MenuItemID),
		Quantity:   int(req.Quantity),
		Price:      req.Price,
	}
	if err := s.orderItems.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *OrderItemService) Update(id int, patch models.OrderItemPatch) (*models.OrderItem, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order item ID")
	}
	if _, err := s.orderItems.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Order item not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return nil, utils.ValidationErr("Quantity must be a positive number")
		}
		fields["quantity"] = int(*patch.Quantity)
	}
	if patch.Price != nil {
		if *patch.Price <= 0 {
			return nil, utils.ValidationErr("Price must be a positive number")
		}
		fields["price"] = *patch.Price
	}

	if len(fields) > 0 {
		if err := s.orderItems.Update(uint(id), fields); err != nil {
			return nil, err
		}
	}
	return s.orderItems.GetByID(uint(id))
}

func (s *OrderItemService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid order item ID")
	}
	removed, err := s.orderItems.Delete(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("Order item not found")
	}
	return nil
}

func (s *OrderItemService) DeleteByOrder(orderID int) error {
	if orderID <= 0 {
		return utils.ValidationErr("Invalid order ID")
	}
	return s.orderItems.DeleteByOrder(uint(orderID))
}

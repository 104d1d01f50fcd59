package services

import (
	"errors"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	orders *repository.OrderRepository
	users  *repository.UserRepository
	now    func() time.Time
}

func NewOrderService(orders *repository.OrderRepository, users *repository.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users, now: time.Now}
}

func (s *OrderService) GetAll() ([]models.Order, error) {
	return s.orders.GetAll()
}

func (s *OrderService) GetByID(id int) (*models.Order, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	order, err := s.orders.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Order not found")
	}
	return order, err
}

func (s *OrderService) GetByUser(userID int) ([]models.Order, error) {
	if userID <= 0 {
		return nil, utils.ValidationErr("Invalid user ID")
	}
	return s.orders.GetByUser(uint(userID))
}

func (s *OrderService) GetByStatus(status string) ([]models.Order, error) {
	if !statusIn(status, models.OrderStatuses) {
		return nil, utils.ValidationErr("Invalid status. Must be: pending, confirmed, preparing, ready, delivered, cancelled")
	}
	return s.orders.GetByStatus(status)
}

func (s *OrderService) GetWithUser(id int) (*models.OrderWithUser, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	order, err := s.orders.GetWithUser(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Order not found")
	}
	return order, err
}

func (s *OrderService) Create(req models.OrderRequest) (*models.Order, error) {
	if req.UserID <= 0 {
		return nil, utils.ValidationErr("Valid user ID is required")
	}
	if req.TotalAmount <= 0 {
		return nil, utils.ValidationErr("Valid total amount is required")
	}
	if req.Status != "" && !statusIn(req.Status, models.OrderStatuses) {
		return nil, utils.ValidationErr("Invalid status. Must be: pending, confirmed, preparing, ready, delivered, cancelled")
	}

	if _, err := s.users.GetByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("User not found")
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	orderDate := s.now()
	if req.OrderDate != "" {
		parsed, err := parseOrderDate(req.OrderDate)
		if err != nil {
			return nil, utils.ValidationErr("Invalid order date format")
		}
		orderDate = parsed
	}

	order := models.Order{
		UserID:      uint(req.UserID),
		TotalAmount: req.TotalAmount,
		Status:      status,
		OrderDate:   orderDate,
	}
	if err := s.orders.Create(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Update(id int, patch models.OrderPatch) (*models.Order, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	if _, err := s.orders.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Order not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.TotalAmount != nil {
		if *patch.TotalAmount <= 0 {
			return nil, utils.ValidationErr("Total amount must be a positive number")
		}
		fields["total_amount"] = *patch.TotalAmount
	}
	if patch.Status != nil {
		if !statusIn(*patch.Status, models.OrderStatuses) {
			return nil, utils.ValidationErr("Invalid status")
		}
		fields["status"] = *patch.Status
	}

	if len(fields) > 0 {
		if err := s.orders.Update(uint(id), fields); err != nil {
			return nil, err
		}
	}
	return s.orders.GetByID(uint(id))
}

// UpdateStatus accepts any member of the closed status set; there is no
// enforced transition order.
func (s *OrderService) UpdateStatus(id int, status string) (*models.Order, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid order ID")
	}
	if !statusIn(status, models.OrderStatuses) {
		return nil, utils.ValidationErr("Invalid status. Must be: pending, confirmed, preparing, ready, delivered, cancelled")
	}
	if _, err := s.orders.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Order not found")
		}
		return nil, err
	}
	if err := s.orders.UpdateStatus(uint(id), status); err != nil {
		return nil, err
	}
	return s.orders.GetByID(uint(id))
}

func (s *OrderService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid order ID")
	}
	removed, err := s.orders.Delete(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("Order not found")
	}
	return nil
}

func (s *OrderService) TotalRevenue() (float64, error) {
	return s.orders.TotalRevenue()
}

func (s *OrderService) CountByDateRange(start, end string) (int64, error) {
	if start == "" || end == "" {
		return 0, utils.ValidationErr("Start date and end date are required")
	}
	return s.orders.CountByDateRange(start, end)
}

func parseOrderDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

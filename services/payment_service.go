package services

import (
	"cafe-counter-api/models"
	"cafe-counter-api/repository"
)

// PaymentService toggles an order's paid flag. Marking an order paid
// locks its lines; marking it unpaid reopens it for administration.
type PaymentService struct {
	Orders *repository.OrderRepository
}

func NewPaymentService(orders *repository.OrderRepository) *PaymentService {
	return &PaymentService{Orders: orders}
}

// SetPaid flips the paid flag on an order. Staff only.
func (s *PaymentService) SetPaid(sess models.Session, orderID uint, paid bool) (*models.Order, error) {
	if !sess.IsStaff() {
		return nil, models.ErrUnauthorized
	}
	if _, err := s.Orders.FindByID(s.Orders.DB, orderID); err != nil {
		return nil, err
	}
	if err := s.Orders.SetPaid(orderID, paid); err != nil {
		return nil, err
	}
	return s.Orders.FindByID(s.Orders.DB, orderID)
}

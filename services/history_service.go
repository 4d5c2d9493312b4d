package services

import (
	"time"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"
)

const (
	unpaidWindow  = 24 * time.Hour
	myRecentLimit = 5
)

// HistoryService serves the read-only order views: staff see all unpaid
// recent orders, everyone sees their own recent orders.
type HistoryService struct {
	Orders *repository.OrderRepository
}

func NewHistoryService(orders *repository.OrderRepository) *HistoryService {
	return &HistoryService{Orders: orders}
}

// UnpaidRecent returns every unpaid order received within the last 24
// hours, across all owners. Staff only.
func (s *HistoryService) UnpaidRecent(sess models.Session) ([]models.Order, error) {
	if !sess.IsStaff() {
		return nil, models.ErrUnauthorized
	}
	return s.Orders.UnpaidSince(time.Now().Add(-unpaidWindow))
}

// MyRecent returns up to 5 of the caller's own orders, newest first.
func (s *HistoryService) MyRecent(sess models.Session) ([]models.Order, error) {
	return s.Orders.RecentByOwner(sess.Login, myRecentLimit)
}

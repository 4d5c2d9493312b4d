package services

import (
	"errors"
	"time"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"

	"gorm.io/gorm"
)

// One line/price algorithm shared by the draft cart and post-placement
// order administration: a line insert or delete and the matching total
// delta always land in the same transaction, guarded by the order's
// version counter.

const totalWriteAttempts = 3

// OrderView is the caller-facing snapshot returned after every edit.
type OrderView struct {
	OrderID    uint               `json:"order_id"`
	OwnerLogin string             `json:"owner_login"`
	Status     models.OrderStatus `json:"status"`
	Paid       bool               `json:"paid"`
	ReceivedAt time.Time          `json:"received_at"`
	Total      float64            `json:"total"`
	Lines      []models.OrderLine `json:"lines"`
}

// RemoveOutcome distinguishes a normal removal from one that emptied and
// therefore deleted the whole order.
type RemoveOutcome struct {
	OrderDeleted bool       `json:"order_deleted"`
	View         *OrderView `json:"order,omitempty"`
}

func orderView(tx *gorm.DB, orders *repository.OrderRepository, id uint) (*OrderView, error) {
	order, err := orders.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	lines, err := orders.Lines(tx, id)
	if err != nil {
		return nil, err
	}
	return &OrderView{
		OrderID:    order.ID,
		OwnerLogin: order.OwnerLogin,
		Status:     order.Status,
		Paid:       order.Paid,
		ReceivedAt: order.ReceivedAt,
		Total:      order.Total,
		Lines:      lines,
	}, nil
}

// addLineToOrder attaches the item and adds its current price to the
// running total. The composite line key rejects a second add of the
// same item.
func addLineToOrder(tx *gorm.DB, orders *repository.OrderRepository, order *models.Order, item *models.MenuItem) error {
	if _, err := orders.FindLine(tx, order.ID, item.Name); err == nil {
		return models.ErrDuplicateLine
	} else if !errors.Is(err, models.ErrLineNotFound) {
		return err
	}
	line := &models.OrderLine{
		OrderID:     order.ID,
		ItemName:    item.Name,
		LastUpdated: time.Now(),
	}
	if err := orders.InsertLine(tx, line); err != nil {
		return err
	}
	return orders.ApplyTotalDelta(tx, order.ID, item.Price, order.Version)
}

// removeLineFromOrder detaches the item and subtracts its current price.
// Removing the last line deletes the order itself: a zero-line order
// never outlives the operation that emptied it.
func removeLineFromOrder(tx *gorm.DB, orders *repository.OrderRepository, order *models.Order, item *models.MenuItem) (orderDeleted bool, err error) {
	if _, err := orders.FindLine(tx, order.ID, item.Name); err != nil {
		return false, err
	}
	if err := orders.DeleteLine(tx, order.ID, item.Name); err != nil {
		return false, err
	}
	remaining, err := orders.CountLines(tx, order.ID)
	if err != nil {
		return false, err
	}
	if remaining == 0 {
		return true, orders.Delete(tx, order.ID)
	}
	return false, orders.ApplyTotalDelta(tx, order.ID, -item.Price, order.Version)
}

// retryConflict reruns fn while it keeps losing the optimistic version
// race; each attempt re-reads the order inside a fresh transaction.
func retryConflict(fn func() error) error {
	var err error
	for attempt := 0; attempt < totalWriteAttempts; attempt++ {
		if err = fn(); !errors.Is(err, models.ErrConflict) {
			return err
		}
	}
	return err
}

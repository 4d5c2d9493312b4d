package services

import (
	"cafe-counter-api/models"
	"cafe-counter-api/repository"
	"cafe-counter-api/statemachine"

	"gorm.io/gorm"
)

// OrderAdminService edits or cancels an existing order located by id.
// It shares the cart's line/price algorithm but adds ownership and paid
// locking rules.
type OrderAdminService struct {
	DB     *gorm.DB
	Menu   *repository.MenuRepository
	Orders *repository.OrderRepository
}

func NewOrderAdminService(db *gorm.DB, menu *repository.MenuRepository, orders *repository.OrderRepository) *OrderAdminService {
	return &OrderAdminService{DB: db, Menu: menu, Orders: orders}
}

// editable loads an order and checks the edit preconditions in their
// fixed sequence: existence, then ownership (customers only), then the
// paid lock. Staff may edit any unpaid order.
func (s *OrderAdminService) editable(tx *gorm.DB, sess models.Session, orderID uint) (*models.Order, error) {
	order, err := s.Orders.FindByID(tx, orderID)
	if err != nil {
		return nil, err
	}
	if sess.Role == models.RoleCustomer && order.OwnerLogin != sess.Login {
		return nil, models.ErrNotOrderOwner
	}
	if order.Paid {
		return nil, models.ErrOrderAlreadyPaid
	}
	return order, nil
}

// Get returns an order snapshot; customers may only view their own.
func (s *OrderAdminService) Get(sess models.Session, orderID uint) (*OrderView, error) {
	order, err := s.Orders.FindByID(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if sess.Role == models.RoleCustomer && order.OwnerLogin != sess.Login {
		return nil, models.ErrNotOrderOwner
	}
	return orderView(s.DB, s.Orders, orderID)
}

// AddItem puts a menu item on the order at its current price.
func (s *OrderAdminService) AddItem(sess models.Session, orderID uint, itemName string) (*OrderView, error) {
	var view *OrderView
	err := retryConflict(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			order, err := s.editable(tx, sess, orderID)
			if err != nil {
				return err
			}
			item, err := s.Menu.FindByName(tx, itemName)
			if err != nil {
				return err
			}
			if err := addLineToOrder(tx, s.Orders, order, item); err != nil {
				return err
			}
			view, err = orderView(tx, s.Orders, orderID)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem takes a menu item off the order. Removing the last line
// deletes the order and reports that outcome distinctly.
func (s *OrderAdminService) RemoveItem(sess models.Session, orderID uint, itemName string) (*RemoveOutcome, error) {
	var outcome *RemoveOutcome
	err := retryConflict(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			order, err := s.editable(tx, sess, orderID)
			if err != nil {
				return err
			}
			item, err := s.Menu.FindByName(tx, itemName)
			if err != nil {
				return err
			}
			deleted, err := removeLineFromOrder(tx, s.Orders, order, item)
			if err != nil {
				return err
			}
			outcome = &RemoveOutcome{OrderDeleted: deleted}
			if !deleted {
				outcome.View, err = orderView(tx, s.Orders, orderID)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Cancel deletes the order and all its lines once the preconditions pass.
func (s *OrderAdminService) Cancel(sess models.Session, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.editable(tx, sess, orderID)
		if err != nil {
			return err
		}
		if err := statemachine.CanTransition(order.Status, models.StatusCanceled); err != nil {
			return err
		}
		return s.Orders.Delete(tx, order.ID)
	})
}

package services

import (
	"errors"
	"time"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"
	"cafe-counter-api/statemachine"

	"gorm.io/gorm"
)

// CartService assembles a caller's single draft order. A draft is the
// owner's order row with status DRAFT; it is created implicitly on the
// first add and found by status, never by a total-of-zero marker.
type CartService struct {
	DB     *gorm.DB
	Menu   *repository.MenuRepository
	Orders *repository.OrderRepository
}

func NewCartService(db *gorm.DB, menu *repository.MenuRepository, orders *repository.OrderRepository) *CartService {
	return &CartService{DB: db, Menu: menu, Orders: orders}
}

// openOrEnterDraft resumes the caller's draft or creates an empty one.
// Detection and creation share one transaction, so two concurrent first
// adds cannot open two drafts.
func (s *CartService) openOrEnterDraft(tx *gorm.DB, sess models.Session) (*models.Order, error) {
	order, err := s.Orders.FindDraft(tx, sess.Login)
	if errors.Is(err, models.ErrNoDraft) {
		order = &models.Order{
			OwnerLogin: sess.Login,
			Status:     models.StatusDraft,
			ReceivedAt: time.Now(),
		}
		return order, s.Orders.Create(tx, order)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Orders.Touch(tx, order.ID, time.Now()); err != nil {
		return nil, err
	}
	return order, nil
}

// Open resumes an existing draft or starts an empty one.
func (s *CartService) Open(sess models.Session) (*OrderView, error) {
	var view *OrderView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.openOrEnterDraft(tx, sess)
		if err != nil {
			return err
		}
		view, err = orderView(tx, s.Orders, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddItem puts a menu item on the caller's draft, creating the draft if
// none is open, and returns the updated line list and total.
func (s *CartService) AddItem(sess models.Session, itemName string) (*OrderView, error) {
	var view *OrderView
	err := retryConflict(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			order, err := s.openOrEnterDraft(tx, sess)
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
			view, err = orderView(tx, s.Orders, order.ID)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem takes a menu item off the caller's draft. Emptying the
// draft deletes it outright.
func (s *CartService) RemoveItem(sess models.Session, itemName string) (*RemoveOutcome, error) {
	var outcome *RemoveOutcome
	err := retryConflict(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			item, err := s.Menu.FindByName(tx, itemName)
			if err != nil {
				return err
			}
			order, err := s.Orders.FindDraft(tx, sess.Login)
			if err != nil {
				return err
			}
			deleted, err := removeLineFromOrder(tx, s.Orders, order, item)
			if err != nil {
				return err
			}
			outcome = &RemoveOutcome{OrderDeleted: deleted}
			if !deleted {
				outcome.View, err = orderView(tx, s.Orders, order.ID)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Place submits the draft as-is. Empty drafts are rejected; a zero-line
// order is never worth submitting and would otherwise dodge the
// empty-order cleanup rule.
func (s *CartService) Place(sess models.Session) (*OrderView, error) {
	var view *OrderView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.FindDraft(tx, sess.Login)
		if err != nil {
			return err
		}
		count, err := s.Orders.CountLines(tx, order.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return models.ErrEmptyOrder
		}
		if err := statemachine.CanTransition(order.Status, models.StatusPlaced); err != nil {
			return err
		}
		order.Status = models.StatusPlaced
		order.ReceivedAt = time.Now()
		if err := s.Orders.Save(tx, order); err != nil {
			return err
		}
		view, err = orderView(tx, s.Orders, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// CancelDraft stops editing without rolling anything back: every add and
// remove was already committed, so the draft stays as-is and is resumed
// by the next Open. A true discard goes through order administration.
func (s *CartService) CancelDraft(sess models.Session) (*OrderView, error) {
	order, err := s.Orders.FindDraft(s.DB, sess.Login)
	if err != nil {
		return nil, err
	}
	return orderView(s.DB, s.Orders, order.ID)
}

package services

import (
	"strconv"
	"strings"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"

	"gorm.io/gorm"
)

// MenuService is the manager-gated catalog of named menu items. Reads
// are open to every role.
type MenuService struct {
	DB     *gorm.DB
	Menu   *repository.MenuRepository
	Orders *repository.OrderRepository
}

func NewMenuService(db *gorm.DB, menu *repository.MenuRepository, orders *repository.OrderRepository) *MenuService {
	return &MenuService{DB: db, Menu: menu, Orders: orders}
}

// AddItem inserts a new menu item. Manager only; names are unique.
func (s *MenuService) AddItem(sess models.Session, item models.MenuItem) (*models.MenuItem, error) {
	if sess.Role != models.RoleManager {
		return nil, models.ErrUnauthorized
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil, models.ErrInvalidItemName
	}
	if item.Price < 0 {
		return nil, models.ErrInvalidPrice
	}
	exists, err := s.Menu.Exists(item.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateItem
	}
	if err := s.Menu.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem changes exactly one field of an existing item. A rename
// cascades to order lines referencing the old name; a price change
// re-prices every unpaid order holding the item so totals keep matching
// the catalog's current prices.
func (s *MenuService) UpdateItem(sess models.Session, name, field, value string) (*models.MenuItem, error) {
	if sess.Role != models.RoleManager {
		return nil, models.ErrUnauthorized
	}
	item, err := s.Menu.FindByName(s.DB, name)
	if err != nil {
		return nil, err
	}

	switch field {
	case "itemname":
		if strings.TrimSpace(value) == "" {
			return nil, models.ErrInvalidItemName
		}
		exists, err := s.Menu.Exists(value)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrDuplicateItem
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Menu.UpdateColumn(tx, name, "itemname", value); err != nil {
				return err
			}
			return s.Orders.RenameLines(tx, name, value)
		})
		if err != nil {
			return nil, err
		}
		name = value
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price < 0 {
			return nil, models.ErrInvalidPrice
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Menu.UpdateColumn(tx, name, "price", price); err != nil {
				return err
			}
			return s.Orders.RepriceUnpaidOrders(tx, name, price-item.Price)
		})
		if err != nil {
			return nil, err
		}
	case "category":
		if err := s.Menu.UpdateColumn(s.DB, name, "type", value); err != nil {
			return nil, err
		}
	case "description":
		if err := s.Menu.UpdateColumn(s.DB, name, "description", value); err != nil {
			return nil, err
		}
	case "imageurl":
		if err := s.Menu.UpdateColumn(s.DB, name, "imageurl", value); err != nil {
			return nil, err
		}
	default:
		return nil, models.ErrUnknownField
	}

	return s.Menu.FindByName(s.DB, name)
}

// DeleteItem removes an item from the catalog. Deletion is refused while
// any order line still references the name, so lines never go orphaned.
func (s *MenuService) DeleteItem(sess models.Session, name string) error {
	if sess.Role != models.RoleManager {
		return models.ErrUnauthorized
	}
	if _, err := s.Menu.FindByName(s.DB, name); err != nil {
		return err
	}
	refs, err := s.Orders.CountLinesReferencing(name)
	if err != nil {
		return err
	}
	if refs > 0 {
		return models.ErrItemInUse
	}
	return s.Menu.Delete(name)
}

// Search matches the term against categories first and falls back to an
// exact item-name match. No match is an empty result, not an error.
func (s *MenuService) Search(term string) ([]models.MenuItem, error) {
	items, err := s.Menu.SearchByCategory(term)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	return s.Menu.SearchByName(term)
}

// ListAll returns the whole menu.
func (s *MenuService) ListAll() ([]models.MenuItem, error) {
	return s.Menu.ListAll()
}

package repository

import (
	"errors"

	"cafe-counter-api/models"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *models.MenuItem) error {
	return storeErr(r.DB.Create(item).Error)
}

// FindByName returns models.ErrItemNotFound for an unknown item name.
// Callers inside a transaction pass their tx so the lookup shares it.
func (r *MenuRepository) FindByName(tx *gorm.DB, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := tx.Where("itemname = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &item, nil
}

func (r *MenuRepository) Exists(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.MenuItem{}).Where("itemname = ?", name).Count(&count).Error
	if err != nil {
		return false, storeErr(err)
	}
	return count > 0, nil
}

// UpdateColumn sets a single column on one menu row. A rename must also
// repoint the order lines referencing the old name; the menu service
// does both inside one transaction.
func (r *MenuRepository) UpdateColumn(tx *gorm.DB, name, column string, value interface{}) error {
	return storeErr(tx.Model(&models.MenuItem{}).Where("itemname = ?", name).Update(column, value).Error)
}

func (r *MenuRepository) Delete(name string) error {
	return storeErr(r.DB.Where("itemname = ?", name).Delete(&models.MenuItem{}).Error)
}

// SearchByCategory matches the menu's type column.
func (r *MenuRepository) SearchByCategory(term string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Where("type = ?", term).Order("itemname").Find(&items).Error
	return items, storeErr(err)
}

// SearchByName matches the item name exactly.
func (r *MenuRepository) SearchByName(term string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Where("itemname = ?", term).Find(&items).Error
	return items, storeErr(err)
}

func (r *MenuRepository) ListAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Order("type, itemname").Find(&items).Error
	return items, storeErr(err)
}

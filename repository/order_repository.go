package repository

import (
	"errors"
	"time"

	"cafe-counter-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	return storeErr(tx.Create(order).Error)
}

// FindByID returns models.ErrOrderNotFound for an unknown order id.
func (r *OrderRepository) FindByID(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := tx.Where("orderid = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &order, nil
}

// FindDraft returns the caller's open draft, or models.ErrNoDraft.
func (r *OrderRepository) FindDraft(tx *gorm.DB, login string) (*models.Order, error) {
	var order models.Order
	err := tx.Where("login = ? AND status = ?", login, models.StatusDraft).
		Order("timestamprecieved DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNoDraft
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &order, nil
}

func (r *OrderRepository) Save(tx *gorm.DB, order *models.Order) error {
	return storeErr(tx.Save(order).Error)
}

// Touch refreshes the received timestamp when an existing draft is resumed.
func (r *OrderRepository) Touch(tx *gorm.DB, id uint, at time.Time) error {
	return storeErr(tx.Model(&models.Order{}).Where("orderid = ?", id).
		Update("timestamprecieved", at).Error)
}

// Delete removes the order and every line attached to it.
func (r *OrderRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("orderid = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
		return storeErr(err)
	}
	return storeErr(tx.Where("orderid = ?", id).Delete(&models.Order{}).Error)
}

func (r *OrderRepository) Lines(tx *gorm.DB, orderID uint) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := tx.Where("orderid = ?", orderID).Order("lastupdated").Find(&lines).Error
	return lines, storeErr(err)
}

// FindLine returns models.ErrLineNotFound if the item is not on the order.
func (r *OrderRepository) FindLine(tx *gorm.DB, orderID uint, itemName string) (*models.OrderLine, error) {
	var line models.OrderLine
	err := tx.Where("orderid = ? AND itemname = ?", orderID, itemName).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrLineNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &line, nil
}

func (r *OrderRepository) InsertLine(tx *gorm.DB, line *models.OrderLine) error {
	return storeErr(tx.Create(line).Error)
}

func (r *OrderRepository) DeleteLine(tx *gorm.DB, orderID uint, itemName string) error {
	return storeErr(tx.Where("orderid = ? AND itemname = ?", orderID, itemName).
		Delete(&models.OrderLine{}).Error)
}

func (r *OrderRepository) CountLines(tx *gorm.DB, orderID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.OrderLine{}).Where("orderid = ?", orderID).Count(&count).Error
	return count, storeErr(err)
}

// ApplyTotalDelta mutates the running total with an optimistic version
// check. Zero rows affected means a concurrent writer got there first;
// the caller retries with a fresh read.
func (r *OrderRepository) ApplyTotalDelta(tx *gorm.DB, orderID uint, delta float64, expectedVersion int64) error {
	result := tx.Model(&models.Order{}).
		Where("orderid = ? AND version = ?", orderID, expectedVersion).
		Updates(map[string]interface{}{
			"total":   gorm.Expr("total + ?", delta),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrConflict
	}
	return nil
}

// CountLinesReferencing reports how many order lines, across all
// orders, still point at the given menu item name.
func (r *OrderRepository) CountLinesReferencing(itemName string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.OrderLine{}).Where("itemname = ?", itemName).Count(&count).Error
	return count, storeErr(err)
}

// RenameLines repoints every order line from oldName to newName.
func (r *OrderRepository) RenameLines(tx *gorm.DB, oldName, newName string) error {
	return storeErr(tx.Model(&models.OrderLine{}).Where("itemname = ?", oldName).
		Update("itemname", newName).Error)
}

// RepriceUnpaidOrders shifts the total of every unpaid order holding the
// item by delta per line, keeping totals in step with the catalog's
// current price. Paid orders stay frozen under the paid lock.
func (r *OrderRepository) RepriceUnpaidOrders(tx *gorm.DB, itemName string, delta float64) error {
	return storeErr(tx.Exec(`
		UPDATE orders
		   SET total = total + ? * (SELECT COUNT(*) FROM itemstatus
		                             WHERE itemstatus.orderid = orders.orderid
		                               AND itemstatus.itemname = ?),
		       version = version + 1
		 WHERE paid = ?
		   AND orderid IN (SELECT orderid FROM itemstatus WHERE itemname = ?)`,
		delta, itemName, false, itemName).Error)
}

func (r *OrderRepository) UnpaidSince(cutoff time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Lines").
		Where("paid = ? AND timestamprecieved >= ?", false, cutoff).
		Order("timestamprecieved DESC").
		Find(&orders).Error
	return orders, storeErr(err)
}

func (r *OrderRepository) RecentByOwner(login string, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Lines").
		Where("login = ?", login).
		Order("timestamprecieved DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, storeErr(err)
}

// SetPaid flips the paid flag; paid=false reopens the order for edits.
func (r *OrderRepository) SetPaid(id uint, paid bool) error {
	return storeErr(r.DB.Model(&models.Order{}).Where("orderid = ?", id).
		Update("paid", paid).Error)
}

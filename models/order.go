package models

import "time"

// OrderStatus represents the lifecycle of a counter order. Draft orders
// are still being assembled by their owner; placed orders are submitted
// and editable until paid.
type OrderStatus string

const (
	StatusDraft    OrderStatus = "DRAFT"
	StatusPlaced   OrderStatus = "PLACED"
	StatusCanceled OrderStatus = "CANCELED"
)

type Order struct {
	ID         uint        `json:"id" gorm:"column:orderid;primaryKey"`
	OwnerLogin string      `json:"owner_login" gorm:"column:login;not null;index"`
	Paid       bool        `json:"paid" gorm:"column:paid;not null;default:false"`
	Status     OrderStatus `json:"status" gorm:"column:status;not null;default:'DRAFT'"`
	ReceivedAt time.Time   `json:"received_at" gorm:"column:timestamprecieved"`
	Total      float64     `json:"total" gorm:"column:total;not null;default:0"`
	// Version guards the read-total/write-total window; every total
	// mutation bumps it and re-checks the expected value at write time.
	Version int64       `json:"-" gorm:"column:version;not null;default:0"`
	Lines   []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderLine attaches one menu item to one order. The composite key
// (orderid, itemname) means repeated adds of the same item are rejected
// rather than stacked; the system has no quantity field.
type OrderLine struct {
	OrderID     uint      `json:"order_id" gorm:"column:orderid;primaryKey;autoIncrement:false"`
	ItemName    string    `json:"item_name" gorm:"column:itemname;primaryKey"`
	LastUpdated time.Time `json:"last_updated" gorm:"column:lastupdated"`
	Status      string    `json:"status" gorm:"column:status"`
	Comments    string    `json:"comments" gorm:"column:comments"`
}

func (OrderLine) TableName() string { return "itemstatus" }

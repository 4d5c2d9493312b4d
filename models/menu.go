package models

import "time"

// MenuItem is keyed by its unique name; order lines reference it by name.
type MenuItem struct {
	Name        string    `json:"name" gorm:"column:itemname;primaryKey"`
	Category    string    `json:"category" gorm:"column:type"`
	Price       float64   `json:"price" gorm:"column:price;not null"`
	Description string    `json:"description" gorm:"column:description"`
	ImageURL    string    `json:"image_url" gorm:"column:imageurl"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string { return "menu" }

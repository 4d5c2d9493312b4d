package repository

import (
	"errors"

	"cafe-counter-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return storeErr(r.DB.Create(user).Error)
}

// FindByLogin returns models.ErrUserNotFound for an unknown login.
func (r *UserRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// UpdateFields applies the given column/value pairs to one user row.
func (r *UserRepository) UpdateFields(login string, fields map[string]interface{}) error {
	return storeErr(r.DB.Model(&models.User{}).Where("login = ?", login).Updates(fields).Error)
}

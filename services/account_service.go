package services

import (
	"errors"

	"cafe-counter-api/models"
	"cafe-counter-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountService creates and authenticates users and guards profile
// edits. Hashing is delegated to bcrypt; the rest of the core treats
// passwords as opaque.
type AccountService struct {
	Users *repository.UserRepository
}

func NewAccountService(users *repository.UserRepository) *AccountService {
	return &AccountService{Users: users}
}

// Register creates a new Customer account with empty favorites.
func (s *AccountService) Register(login, password, phone string) (*models.User, error) {
	if _, err := s.Users.FindByLogin(login); err == nil {
		return nil, models.ErrDuplicateLogin
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Login:        login,
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         models.RoleCustomer,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown login and wrong password
// collapse into the same error so callers cannot tell which was wrong.
func (s *AccountService) Authenticate(login, password string) (*models.User, error) {
	user, err := s.Users.FindByLogin(login)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// Profile returns the stored record for a login.
func (s *AccountService) Profile(login string) (*models.User, error) {
	return s.Users.FindByLogin(login)
}

// ProfileUpdate carries the optional field changes of one update call.
// Password changes require a matching confirmation.
type ProfileUpdate struct {
	Phone           *string
	Password        *string
	PasswordConfirm *string
	FavoriteItems   *string
	Role            *models.UserRole
}

// UpdateProfile edits a user record. Customers and employees may only
// touch their own phone, password and favorites; managers may target any
// login and additionally change the role. The login itself is immutable.
// All validation happens before the single write, so a failing call
// leaves the record untouched.
func (s *AccountService) UpdateProfile(sess models.Session, targetLogin string, upd ProfileUpdate) (*models.User, error) {
	if targetLogin != sess.Login && sess.Role != models.RoleManager {
		return nil, models.ErrUnauthorized
	}
	if upd.Role != nil && sess.Role != models.RoleManager {
		return nil, models.ErrUnauthorized
	}

	if _, err := s.Users.FindByLogin(targetLogin); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Phone != nil {
		fields["phonenum"] = *upd.Phone
	}
	if upd.FavoriteItems != nil {
		fields["favitems"] = *upd.FavoriteItems
	}
	if upd.Role != nil {
		if !models.ValidRole(*upd.Role) {
			return nil, models.ErrUnknownRole
		}
		fields["type"] = *upd.Role
	}
	if upd.Password != nil {
		if upd.PasswordConfirm == nil || *upd.Password != *upd.PasswordConfirm {
			return nil, models.ErrPasswordMismatch
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}

	if len(fields) > 0 {
		if err := s.Users.UpdateFields(targetLogin, fields); err != nil {
			return nil, err
		}
	}
	return s.Users.FindByLogin(targetLogin)
}

package repository

import (
	"fmt"

	"cafe-counter-api/models"
)

// storeErr wraps an unexpected database failure so callers can treat
// every connectivity/driver problem as one recoverable error kind.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}

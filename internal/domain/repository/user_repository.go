package repository

import (
	"digital-hospital-sim/internal/domain/entity"
)

// UserRepository resolves simulator accounts from the seeded user fixture.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
}

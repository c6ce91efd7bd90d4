package repository

import "github.com/jhoicas/brewflow-pos/internal/domain/entity"

// UserRepository contrato de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

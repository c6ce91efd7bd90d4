package memory

import (
	"sync"

	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// UserRepository repositorio en memoria de usuarios.
type UserRepository struct {
	mu   sync.RWMutex
	byID map[string]entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]entity.User)}
}

// Create persiste el usuario; falla con ErrDuplicate si el ID o el email ya existen.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	r.byID[user.ID] = *user
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

// FindByEmail devuelve el usuario con ese email o nil si no existe.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// UserRepository define el puerto de persistencia (solo lectura) para User.
type UserRepository interface {
	// FindByEmail busca por email exacto. Devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

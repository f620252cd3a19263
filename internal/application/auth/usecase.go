package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/application/validation"
	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/jwt"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

// StrategyCredentials estrategia de login por email y password.
const StrategyCredentials = "credentials"

// Mensajes para el formulario de login.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// Tipos de AuthError.
const (
	ErrTypeCredentialsSignin = "CredentialsSignin"
	ErrTypeCallbackRoute     = "CallbackRouteError"
	ErrTypeInvalidProvider   = "InvalidProvider"
)

// AuthError error clasificado del flujo de sign-in.
type AuthError struct {
	Type string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Type, e.Err)
	}
	return "auth: " + e.Type
}

func (e *AuthError) Unwrap() error { return e.Err }

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación por credenciales: búsqueda de usuario, autorización y sign-in.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// GetUser busca un usuario por email exacto. Devuelve (nil, nil) si no existe;
// solo un fallo de infraestructura devuelve error (domain.ErrFetchUser).
func (uc *AuthUseCase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "getUser").Msg("error de base de datos")
		return nil, domain.ErrFetchUser
	}
	return user, nil
}

// Authorize valida las credenciales y compara el password con el hash bcrypt.
// Entrada inválida, usuario inexistente o password incorrecto → (nil, nil).
func (uc *AuthUseCase) Authorize(ctx context.Context, in dto.Credentials) (*entity.User, error) {
	creds, errs := validation.ParseCredentials(in)
	if errs != nil {
		uc.log.Debug().Msg("credenciales inválidas")
		return nil, nil
	}
	user, err := uc.GetUser(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Debug().Msg("credenciales inválidas")
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		uc.log.Debug().Msg("credenciales inválidas")
		return nil, nil
	}
	return user, nil
}

// SignIn ejecuta la estrategia indicada y emite la sesión. Los fallos de autenticación
// se devuelven como *AuthError; cualquier otro error se devuelve tal cual.
func (uc *AuthUseCase) SignIn(ctx context.Context, strategy string, in dto.Credentials) (*dto.SessionResponse, error) {
	if strategy != StrategyCredentials {
		return nil, &AuthError{Type: ErrTypeInvalidProvider}
	}
	user, err := uc.Authorize(ctx, in)
	if err != nil {
		return nil, &AuthError{Type: ErrTypeCallbackRoute, Err: err}
	}
	if user == nil {
		return nil, &AuthError{Type: ErrTypeCredentialsSignin}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir sesión: %w", err)
	}
	return &dto.SessionResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// Authenticate acción del formulario de login. Devuelve la sesión, o un mensaje para el
// usuario si la autenticación falló. Los errores que no son de autenticación se propagan.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.Credentials) (*dto.SessionResponse, string, error) {
	session, err := uc.SignIn(ctx, StrategyCredentials, in)
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			if authErr.Type == ErrTypeCredentialsSignin {
				return nil, MsgInvalidCredentials, nil
			}
			return nil, MsgSomethingWentWrong, nil
		}
		return nil, "", err
	}
	return session, "", nil
}

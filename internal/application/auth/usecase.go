package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
	pkgjwt "github.com/factora/pos-api/pkg/jwt"
	"github.com/factora/pos-api/pkg/textutil"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verifica credenciales y emite tokens JWT. Las contraseñas se
// almacenan con bcrypt; el sistema anterior las guardaba en claro.
type AuthUseCase struct {
	userRepo repository.UserRepository
	alloc    repository.IDAllocator
	cfg      JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, alloc repository.IDAllocator, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, alloc: alloc, cfg: cfg, now: time.Now}
}

// Login verifica usuario (nombre o correo) y contraseña, y devuelve un token.
// Credenciales malas devuelven siempre el mismo error, exista o no el usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByLogin(ctx, textutil.Clean(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := pkgjwt.Generate(uc.cfg.Secret, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:     user.ID,
			Nombre: user.Name,
			Correo: user.Email,
			Rol:    user.Role,
		},
	}, nil
}

// Register crea un usuario operador con la contraseña hasheada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByLogin(ctx, textutil.Clean(in.Correo))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         textutil.Clean(in.Nombre),
		Email:        textutil.Clean(in.Correo),
		PasswordHash: string(hash),
		Role:         in.Rol,
		CreatedAt:    uc.now(),
	}

	for attempt := 0; attempt < 3; attempt++ {
		user.ID, err = uc.alloc.Next(ctx, repository.EntityUser)
		if err != nil {
			return nil, err
		}
		err = uc.userRepo.Create(ctx, user)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Nombre: user.Name, Correo: user.Email, Rol: user.Role}, nil
}

package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
	"github.com/alquimueble/muebles-api/internal/domain/repository"
	"github.com/alquimueble/muebles-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login y emisión de token.
// El alta de usuarios vive en UserUseCase (POST /users es público).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash almacenado y genera un JWT
// con el ID del usuario como subject. Email desconocido y password incorrecta
// devuelven el mismo error para no filtrar qué emails existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		IsActive:        u.IsActive,
		Address:         u.Address,
		Nombre:          u.Nombre,
		Nacionalidad:    u.Nacionalidad,
		FechaNacimiento: u.FechaNacimiento,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

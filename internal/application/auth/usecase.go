package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/dto"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/access"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y carga de perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, normaliza el perfil una sola vez y
// genera el JWT con rol + módulos otorgados, para que el middleware
// resuelva el acceso a módulos sin consultar la DB.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrInactiveUser
	}

	profile := profileOf(user)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.Rol, profile.AccessModules, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user, profile),
	}, nil
}

// GetProfile perfil canónico por id (para /me).
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user, profileOf(user))
	return &resp, nil
}

// profileOf normaliza el registro de usuario a un perfil canónico (un
// solo rol, un solo booleano de admin, una sola lista de módulos).
func profileOf(u *entity.User) access.Profile {
	return access.NormalizeProfile(access.RawProfile{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		AccessModules: u.AccessModules,
	})
}

func toUserResponse(u *entity.User, p access.Profile) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Rol:           p.Rol,
		Admin:         p.Admin,
		AccessModules: p.AccessModules,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}

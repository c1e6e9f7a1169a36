package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 72 * time.Hour

// AuthService registers users and issues JWTs.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account and returns the user plus a signed token.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, string, error) {
	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, "", apperrors.Conflict("AUTH.EMAIL_ALREADY_REGISTERED")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.Internal(err)
	}
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, "", apperrors.Conflict("AUTH.USERNAME_ALREADY_TAKEN")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hashed),
		NotifyLikes:    true,
		NotifyComments: true,
		NotifyFollows:  true,
		NotifySeries:   true,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.Conflict("AUTH.EMAIL_ALREADY_REGISTERED")
		}
		return nil, "", apperrors.Internal(err)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a signed token.
// Not-found and wrong-password both map to the same error so the response
// does not leak which accounts exist.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthorized("AUTH.INVALID_CREDENTIALS")
		}
		return nil, "", apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apperrors.Unauthorized("AUTH.INVALID_CREDENTIALS")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, token, nil
}

func (s *AuthService) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

package service

import (
	"context"
	"errors"
	"time"

	"eduquest_backend/internal/config"
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const blacklistPrefix = "jwt:blacklist:"

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if user.Disabled {
		return "", errors.New("account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	s.UserRepo.UpdateLastLogin(user.ID)

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Logout blacklists the token in Redis until its natural expiry; the auth
// middleware rejects blacklisted tokens.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := util.ParseJWT(tokenString, s.Cfg.JWT.Secret)
	if err != nil {
		return err
	}

	ttl := s.Cfg.JWT.ExpireTime
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return s.Redis.Set(ctx, blacklistPrefix+tokenString, "1", ttl).Err()
}

func (s *AuthService) IsRevoked(ctx context.Context, tokenString string) bool {
	if s.Redis == nil {
		return false
	}
	n, err := s.Redis.Exists(ctx, blacklistPrefix+tokenString).Result()
	return err == nil && n > 0
}

func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

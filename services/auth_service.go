package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = models.ErrorUnauthorized{Message: "invalid email or password"}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Verify(ctx context.Context, token string) (*models.User, error)
	FirstAdmin(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error
	DevLogin(ctx context.Context) (*models.AuthResponse, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokens    TokenManager
	resolver  AdminResolver
	validator *Validator
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenManager, resolver AdminResolver, validator *Validator, log logrus.FieldLogger) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		resolver:  resolver,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrorConflict{Message: "email already registered"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) && user.Role == models.RoleAdmin {
		// Another registration claimed the admin slot between our count and insert.
		s.log.WithField("email", user.Email).Warn("lost first-admin race, registering as user")
		user.ID = uuid.Nil
		err = s.userRepo.Create(ctx, user)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrorConflict{Message: "email already registered"}
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("updating last login failed")
	} else {
		user.LastLoginAt = &now
	}

	return s.issue(user)
}

func (s *authService) Verify(ctx context.Context, token string) (*models.User, error) {
	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorInvalidToken{}
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

func (s *authService) FirstAdmin(ctx context.Context) (*models.User, error) {
	id, err := s.resolver.AdminID(ctx)
	if err != nil {
		return nil, err
	}
	return s.getUser(ctx, id)
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.ErrorUnauthorized{Message: "current password is incorrect"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

// DevLogin issues a token for the owner without credentials. Only routed in development.
func (s *authService) DevLogin(ctx context.Context) (*models.AuthResponse, error) {
	admin, err := s.FirstAdmin(ctx)
	if err != nil {
		return nil, err
	}
	s.log.WithField("user_id", admin.ID).Warn("development login used")
	return s.issue(admin)
}

func (s *authService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: models.NewUserResponse(user)}, nil
}

func (s *authService) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "user"}
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/marketdata"
	"stockfolio/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db      *gorm.DB
	matcher *marketdata.SymbolMatcher
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, matcher *marketdata.SymbolMatcher) UserServicer {
	return &userService{db: db, matcher: matcher}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(email, password, displayName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: displayName,
		Watchlist:   []string{},
		IsActive:    true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

// GetUserByEmail looks up a user by email.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrUserNotFound, err)
	}
	return &user, nil
}

// GetUserByID looks up a user by id.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrUserNotFound, err)
	}
	return &user, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// AttemptLogin authenticates a user by email and password.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive || !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateWatchlist replaces the user's pinned symbols. Every entry must be a
// tracked instrument code.
func (s *userService) UpdateWatchlist(userID string, symbols []string) (*models.User, error) {
	cleaned := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		code, ok := s.matcher.Match(raw)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrUntrackedSymbol, "Symbol "+strings.ToUpper(strings.TrimSpace(raw))+" is not tracked")
		}
		cleaned = append(cleaned, code)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("watchlist", cleaned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	user.Watchlist = cleaned
	return user, nil
}

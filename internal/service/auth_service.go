package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/careernet/careernet/internal/config"
	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/mailer"
	"github.com/careernet/careernet/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrMissingSecret      = errors.New("signing secret is not configured")

	// ErrInvalidToken covers every session token failure: malformed, bad
	// signature, expired. Callers must not learn which.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidOrExpiredToken is the single answer for any reset ticket
	// failure, so an attacker cannot distinguish an unknown token from an
	// expired or already-consumed one.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

const minPasswordLength = 8

type AuthService struct {
	userRepo repository.UserRepository
	mailer   mailer.Mailer
	cfg      *config.Config
	log      zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, m mailer.Mailer, cfg *config.Config, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   m,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Claims is the identity payload recovered from a verified session token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResult(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// bcrypt rejects malformed stored hashes with an error too, which folds
	// into the same uniform denial.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *AuthService) authResult(user *domain.User) (*AuthResult, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken fails closed: any parse, signature, expiry, or claim-shape
// failure yields ErrInvalidToken. The underlying reason is logged at debug
// level only; callers never see it.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	if s.cfg.JWTSecret == "" {
		s.log.Error().Msg("token validation attempted without signing secret")
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		s.log.Debug().Err(err).Msg("token validation failed")
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		s.log.Debug().Msg("token claims invalid")
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		s.log.Debug().Err(err).Msg("token subject is not a user id")
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset stores a hashed single-use ticket and hands the
// plaintext token to the mailer. It reports success for unknown emails as
// well; the response must not reveal whether an address is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	plaintext := hex.EncodeToString(buf)

	expiresAt := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.userRepo.SetResetTicket(ctx, user.ID, hashResetToken(plaintext), expiresAt); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, plaintext)
}

// CompleteReset consumes a reset ticket and rotates the password. The
// lookup and the consume are one conditional update, so a ticket can be
// spent at most once even under concurrent attempts.
func (s *AuthService) CompleteReset(ctx context.Context, plaintextToken, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if plaintextToken == "" {
		return ErrInvalidOrExpiredToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	consumed, err := s.userRepo.ConsumeResetTicket(ctx, hashResetToken(plaintextToken), string(hashedPassword), time.Now())
	if err != nil {
		return err
	}
	if !consumed {
		return ErrInvalidOrExpiredToken
	}

	s.log.Info().Msg("password reset completed")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

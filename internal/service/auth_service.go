package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"trading-service/internal/entity"
)

// sessionTTL bounds both the JWT expiry and the Redis session entry.
const sessionTTL = 24 * time.Hour

// ErrInvalidCredentials is the generic login failure. It deliberately does
// not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username and/or password")

// ErrUsernameTaken means the requested username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// StartingCash is the simulated balance every new account is seeded with.
var StartingCash = decimal.NewFromInt(10000)

type SessionClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users     entity.UserRepository
	sessions  SessionStore
	jwtSecret []byte
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users entity.UserRepository, sessions SessionStore, jwtSecret []byte) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new user with the starting cash balance and logs it
// in, returning the session token.
func (s *AuthService) Register(ctx context.Context, username, password, confirmation string) (string, error) {
	if username == "" {
		return "", validationErr("must provide username")
	}
	if password == "" {
		return "", validationErr("must provide password")
	}
	if confirmation == "" {
		return "", validationErr("must confirm password")
	}
	if password != confirmation {
		return "", validationErr("passwords must match")
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, entity.ErrNotFound) {
		logger.Error().Err(err).Msgf("Error checking username %s", username)
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Cash:         StartingCash,
	}
	user, err = s.users.Create(ctx, user)
	if err != nil {
		// A concurrent registration of the same username can slip past the
		// read above and fail on the unique index instead.
		if errors.Is(err, entity.ErrAlreadyExists) {
			return "", ErrUsernameTaken
		}
		logger.Error().Err(err).Msg("Error creating user")
		return "", err
	}

	return s.establishSession(ctx, user)
}

// Login verifies the credentials and establishes a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" {
		return "", validationErr("must provide username")
	}
	if password == "" {
		return "", validationErr("must provide password")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		logger.Error().Err(err).Msgf("Error getting user %s", username)
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.establishSession(ctx, user)
}

// Logout deletes the server-side session, invalidating the token before
// its expiry.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.sessions.Delete(ctx, userID)
}

// ValidateSession checks that token is the live session for the user. A
// token that outlived its logout fails here even though its signature and
// expiry still verify.
func (s *AuthService) ValidateSession(ctx context.Context, userID int, token string) error {
	stored, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return err
	}
	if stored != token {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) establishSession(ctx context.Context, user *entity.User) (string, error) {
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Put(ctx, user.ID, t, sessionTTL); err != nil {
		logger.Error().Err(err).Msgf("Error storing session for user %d", user.ID)
		return "", err
	}

	return t, nil
}

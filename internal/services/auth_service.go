package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assignments/internal/config"
	"assignments/internal/models"
	"assignments/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationResult is the outcome of a registration attempt. A duplicate
// account is a normal, distinguishable outcome, not an error.
type RegistrationResult int

const (
	RegistrationCreated RegistrationResult = iota
	RegistrationAlreadyExists
)

// AccessClaims is the claim set carried by issued tokens.
type AccessClaims struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	jwt.StandardClaims
}

// AuthService handles registration, credential checks, and token issue/validate.
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      config.Config
}

// NewAuthService creates a new AuthService. The config is immutable; the
// issuer, audience, secret, and lifetime are fixed for the process.
func NewAuthService(userRepo repositories.UserRepository, cfg config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// HashPassword produces a salted bcrypt hash. The salt is embedded in the
// output, so hashing the same password twice yields different strings.
func (s *AuthService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// bcrypt compares in constant time; a mismatch is false, never an error.
func (s *AuthService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterUser hashes the candidate's password and persists the account
// unless the username or email is already taken.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User) (RegistrationResult, error) {
	hashed, err := s.HashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.Password = hashed

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, user.Username, user.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if exists {
		return RegistrationAlreadyExists, nil
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("failed to register user: %w", err)
	}
	return RegistrationCreated, nil
}

// Authenticate looks up the user and verifies the password. It returns
// (nil, nil) for a missing user or a wrong password without revealing which;
// a violated uniqueness invariant surfaces as an error instead of silently
// picking a row.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !s.VerifyPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// GenerateToken issues a signed HS256 token for the user, valid for the
// configured lifetime.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Name:       user.Username,
		Email:      user.Email,
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.Username,
			Issuer:    s.cfg.JWTIssuer,
			Audience:  s.cfg.JWTAudience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.cfg.TokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses the token and checks signature, expiry, issuer, and
// audience against the process configuration.
func (s *AuthService) ValidateToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.VerifyIssuer(s.cfg.JWTIssuer, true) {
		return nil, errors.New("invalid token issuer")
	}
	if !claims.VerifyAudience(s.cfg.JWTAudience, true) {
		return nil, errors.New("invalid token audience")
	}
	return claims, nil
}

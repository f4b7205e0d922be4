package service

import (
	"log"

	"github.com/sangkips/billing-api/internal/config"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/sangkips/billing-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the till operator. The terminal has exactly
// one account, configured at startup; there is no user table.
type AuthService struct {
	jwtManager   *utils.JWTManager
	username     string
	passwordHash []byte
}

// NewAuthService creates the auth service, hashing the configured operator
// password so the plaintext never lives longer than startup.
func NewAuthService(jwtManager *utils.JWTManager, cfg config.OperatorConfig) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost values or over-long input
		log.Fatalf("Failed to hash operator password: %v", err)
	}
	return &AuthService{
		jwtManager:   jwtManager,
		username:     cfg.Username,
		passwordHash: hash,
	}
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Login validates operator credentials and issues a token pair.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	if username != s.username {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	return s.issueTokens(username)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	operator, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	if operator != s.username {
		return nil, apperror.ErrInvalidToken
	}
	return s.issueTokens(operator)
}

func (s *AuthService) issueTokens(operator string) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(operator)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(operator)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}

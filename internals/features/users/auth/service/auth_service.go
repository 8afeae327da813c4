// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/auth/model"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = 24 * time.Hour

/* =======================================================================
   AuthService
======================================================================= */

type AuthService struct {
	Store *datastore.Store
	Now   func() time.Time
}

func NewAuthService(store *datastore.Store) *AuthService {
	return &AuthService{Store: store, Now: time.Now}
}

// Login checks the credentials against the store and issues an HS256
// access token. Unknown users and bad passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	s.Store.Lock()
	u := s.Store.UserByUsername(username)
	s.Store.Unlock()

	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.Now()
	claims := jwt.MapClaims{
		"id":        u.ID,
		"user_name": u.Name,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	cp := *u
	return token, &cp, nil
}

// ChangePassword verifies the old password and replaces the hash. The
// user is addressed by id, as carried in the access-token claims.
func (s *AuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	u := s.Store.UserByID(userID)
	if u == nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

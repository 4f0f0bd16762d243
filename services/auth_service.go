package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/defenstration/diet-tracker-app/models"
	"github.com/defenstration/diet-tracker-app/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sign-in is passwordless: the user asks for a magic link, we mail a
// one-time token, and exchanging the token yields a JWT.
type AuthService struct {
	db     *gorm.DB
	mailer utils.Mailer
}

func NewAuthService(db *gorm.DB, mailer utils.Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

const signInTokenTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired sign-in token")

// SendMagicLink upserts the user for the address and emails a sign-in
// link. redirectTo is the path the user originally asked for; it rides
// along in the link so the client can land them back there after login.
func (s *AuthService) SendMagicLink(email, redirectTo string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Email: email}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("%w: creating user: %v", ErrPersistence, err)
		}
	} else if err != nil {
		return fmt.Errorf("%w: fetching user: %v", ErrPersistence, err)
	}

	user.SignInToken = uuid.NewString()
	user.SignInTokenExp = time.Now().Add(signInTokenTTL)
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("%w: storing sign-in token: %v", ErrPersistence, err)
	}

	return s.mailer.SendMagicLink(user.Email, user.SignInToken, redirectTo)
}

// VerifyMagicLink exchanges a one-time token for a JWT. The token is
// cleared on success so each link works exactly once.
func (s *AuthService) VerifyMagicLink(token string) (jwtToken string, user *models.User, err error) {
	if token == "" {
		return "", nil, ErrInvalidToken
	}

	var u models.User
	result := s.db.Where("sign_in_token = ?", token).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidToken
		}
		return "", nil, fmt.Errorf("%w: fetching user by token: %v", ErrPersistence, result.Error)
	}
	if time.Now().After(u.SignInTokenExp) {
		return "", nil, ErrInvalidToken
	}

	signed, err := utils.GenerateJWT(u.Email, u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generating token: %w", err)
	}

	u.SignInToken = ""
	u.SignInTokenExp = time.Time{}
	if err := s.db.Save(&u).Error; err != nil {
		return "", nil, fmt.Errorf("%w: clearing sign-in token: %v", ErrPersistence, err)
	}

	return signed, &u, nil
}

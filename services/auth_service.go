package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lareserve-backend/configs"
	"lareserve-backend/entity"
	"lareserve-backend/repository"
	"lareserve-backend/utils"
)

type AuthService struct {
	DB       *gorm.DB
	Sessions *repository.SessionRepository
	Cfg      *configs.Config
}

func NewAuthService(db *gorm.DB, sessions *repository.SessionRepository, cfg *configs.Config) *AuthService {
	return &AuthService{DB: db, Sessions: sessions, Cfg: cfg}
}

// Login verifies the credentials and opens a session. The returned token is
// a signed JWT whose token id points at the session row.
func (s *AuthService) Login(email, password string) (string, *entity.AdminUser, error) {
	var admin entity.AdminUser
	if err := s.DB.Where("email = ?", strings.ToLower(email)).First(&admin).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := entity.Session{
		TokenID:     uuid.NewString(),
		AdminUserID: admin.ID,
		ExpiresAt:   time.Now().Add(s.Cfg.SessionTTL),
	}
	if err := s.Sessions.Create(&session); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, session.TokenID, s.Cfg.JWTSecret, s.Cfg.SessionTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// CurrentSession resolves a token id to its live session. Expired sessions
// are removed on sight and reported as expired.
func (s *AuthService) CurrentSession(tokenID string) (*entity.Session, error) {
	session, err := s.Sessions.FindByTokenID(tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.Sessions.DeleteByTokenID(tokenID)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Logout terminates the session. It succeeds from the caller's point of view
// even when the session was already gone.
func (s *AuthService) Logout(tokenID string) {
	// Nothing actionable for the caller on failure; the token is unusable
	// either way.
	_ = s.Sessions.DeleteByTokenID(tokenID)
}

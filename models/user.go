package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Username string `gorm:"uniqueIndex;size:64" json:"username"`
	Email    string `gorm:"uniqueIndex;size:128" json:"email"`
	Password string `gorm:"size:128" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Bets        []Bet           `gorm:"foreignKey:UserID"`
	BulkActions []BulkBetAction `gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

type Session struct {
	gorm.Model

	SID       string    `gorm:"column:sid;size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	s.SID = strings.ToLower(uuid.New().String())
	return nil
}

// FindUserByLogin looks a user up by email first, falling back to username.
// Email matching is case-insensitive.
func FindUserByLogin(db *gorm.DB, login string) (*User, error) {
	var user User
	err := db.Where("LOWER(email) = LOWER(?) AND is_active = ?", login, true).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := db.Where("username = ? AND is_active = ?", login, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindSession returns the session for sid if it exists and has not expired.
func FindSession(db *gorm.DB, sid string) (*Session, error) {
	var session Session
	err := db.Preload("User").
		Where("sid = ? AND expires_at > ?", strings.ToLower(sid), time.Now()).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

package users

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`
	Password string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

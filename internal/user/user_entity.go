package user

import (
	"time"

	"github.com/mirak10/PeopleIQ/internal/domain"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Name      string      `gorm:"column:name;type:text;not null"`
	Email     string      `gorm:"column:email;type:text;not null;uniqueIndex:idx_users_email"`
	Password  string      `gorm:"column:password;type:text;not null"`
	Role      domain.Role `gorm:"column:role;type:text;not null"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

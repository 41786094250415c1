package domain

import "time"

// Role is the coarse authorization tier gating administrative endpoints.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone"`
	Birthday  time.Time `json:"birthday" gorm:"type:date"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	Role      Role      `json:"role" gorm:"type:varchar(16);default:USER"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package domain

import "gorm.io/gorm"

const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	FullName     string `gorm:"not null" json:"full_name"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role"`
	gorm.Model
}

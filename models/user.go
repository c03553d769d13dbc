package models

import "gorm.io/gorm"

// User автор постов и комментариев. Публиковать посты могут только сотрудники (IsStaff).
type User struct {
	gorm.Model
	Username string  `gorm:"type:VARCHAR(150);uniqueIndex;not null"`
	Email    *string `gorm:"type:VARCHAR(254)"`
	IsStaff  bool    `gorm:"default:false"`
}

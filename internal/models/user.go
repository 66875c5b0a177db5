package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:150"`
	Email    string `gorm:"uniqueIndex"`
	Password string
	IsStaff  bool `gorm:"default:false"`
}

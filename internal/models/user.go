package models

import "gorm.io/gorm"

// User represents a registered account.
type User struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email          string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email,max=255"`
	FullName       string `json:"full_name,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
	IsSuperuser    bool   `json:"is_superuser" gorm:"default:false"`
	HashedPassword string `json:"-" gorm:"type:varchar(255);not null"`
	Items          []Item `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	gorm.Model     `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=40"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

// LoginRequest is the request body for the token endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Token is the response body returned on a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
}

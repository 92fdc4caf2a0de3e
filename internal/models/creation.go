package models

import (
	"time"
)

type CreationType string

const (
	CreationType2D CreationType = "2d"
	CreationType3D CreationType = "3d"
)

// Valid reports whether t is a known creation type.
func (t CreationType) Valid() bool {
	return t == CreationType2D || t == CreationType3D
}

// Settings holds the generation parameters a creation was rendered with.
type Settings map[string]interface{}

type Creation struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"userId" gorm:"not null;index"`
	Type      CreationType `json:"type" gorm:"type:varchar(8);not null;index"`
	Prompt    string       `json:"prompt" gorm:"not null"`
	ImageURL  string       `json:"imageUrl" gorm:"type:text;not null"`
	Settings  Settings     `json:"settings" gorm:"type:json;serializer:json"`
	CreatedAt time.Time    `json:"createdAt" gorm:"index"`
}

// CreationFilter narrows a creation listing. Zero values match everything.
type CreationFilter struct {
	Type   CreationType
	UserID uint
	Limit  int
}

const (
	DefaultCreationLimit = 100
	MaxCreationLimit     = 500
)

package models

import (
	"time"
)

type UploadedImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"not null;index"`
	ImageURL     string    `json:"imageUrl" gorm:"not null"`
	OriginalName string    `json:"originalName" gorm:"not null"`
	Size         int64     `json:"size" gorm:"not null"`
	MimeType     string    `json:"mimeType" gorm:"not null"`
	StorageKey   string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

package service

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuotaExhausted     = errors.New("generation limit reached")
	ErrCreationNotFound   = errors.New("creation not found")
	ErrUploadNotFound     = errors.New("upload not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrNoFile             = errors.New("no file uploaded")
	ErrFileTooLarge       = errors.New("file size too large")
	ErrUnsupportedFile    = errors.New("unsupported file type")
)

package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrUnauthorized       = errors.New("tidak terautentikasi")
	ErrForbidden          = errors.New("akses ditolak")
	ErrInvalidTransition  = errors.New("transisi status tidak valid")
	ErrInsufficientStock  = errors.New("stok tidak mencukupi")
	ErrEmailAlreadyExists = errors.New("email sudah terdaftar")
)

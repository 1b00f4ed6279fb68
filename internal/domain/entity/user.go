package entity

import "time"

// Role is a closed enumeration of user roles. The authority resolver
// switches exhaustively over these values, so roles are never free text.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleHeadmaster Role = "Kepala Sekolah"
	RolePengguna   Role = "Pengguna"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHeadmaster, RolePengguna:
		return true
	default:
		return false
	}
}

// String returns the stored representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is an authenticated account. Instansi is the school unit or
// institution the user belongs to.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	FirstName    string
	LastName     string
	Instansi     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display and audit records.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

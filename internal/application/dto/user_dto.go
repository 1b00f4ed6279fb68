package dto

// RegisterRequest body for account registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Instansi  string `json:"instansi"`
}

// LoginRequest body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse wire shape of a user (never carries the password hash).
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Instansi  string `json:"instansi,omitempty"`
	Role      string `json:"role"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateRoleRequest body for Admin role changes.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

package models

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a registered customer or administrator.
type User struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	FullName     string  `json:"full_name"`
	Phone        string  `json:"phone"`
	GoogleID     *string `gorm:"uniqueIndex" json:"-"`
	Role         string  `gorm:"default:customer" json:"role"`
	Orders       []Order `json:"orders,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package model

import "time"

// Role is the fixed capability set of a user.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered buyer, supplier or admin.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:20;not null;index"`
	ProfileImage string    `json:"profile_image,omitempty" gorm:"size:255"`
	CompanyName  string    `json:"company_name,omitempty" gorm:"size:200"`
	City         string    `json:"city,omitempty" gorm:"size:100"`
	Industry     string    `json:"industry,omitempty" gorm:"size:100"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

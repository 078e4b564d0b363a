package user

import (
	"time"

	"go-assetms/internal/employee"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account linked one-to-one to an Employee. The unique index on
// employee_id is the hard guard behind the "one account per employee" rule;
// the service-level existence check only exists to give a friendly 409.
type User struct {
	ID           uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(50);not null;default:'USER'"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;uniqueIndex:uq_user_employee;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`

	// Deleting the employee deletes the account with it.
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

// Credential is the login projection: the users row joined to the employee
// that owns it (users has no email column of its own).
type Credential struct {
	UserID       uuid.UUID `gorm:"column:user_id"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	Email        string    `gorm:"column:email"`
}

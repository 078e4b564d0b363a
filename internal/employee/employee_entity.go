package employee

import (
	"go-assetms/internal/office"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID  `gorm:"column:employee_id;type:uuid;primaryKey"`
	EmployeeNumber  string     `gorm:"column:employee_number;type:varchar(50);uniqueIndex:uq_employee_number;not null"`
	FirstName       string     `gorm:"column:first_name;type:varchar(255);not null"`
	LastName        string     `gorm:"column:last_name;type:varchar(255);not null"`
	Email           string     `gorm:"column:email;type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	CurrentOfficeID *uuid.UUID `gorm:"column:current_office_id;type:uuid"`

	// current_office_id is nullable; losing the office leaves the employee.
	CurrentOffice *office.Office `gorm:"foreignKey:CurrentOfficeID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Employee) TableName() string {
	return "employees"
}

package office

import (
	"github.com/google/uuid"
)

type Office struct {
	ID         uuid.UUID `gorm:"column:office_id;type:uuid;primaryKey"`
	OfficeName string    `gorm:"column:office_name;type:varchar(255);not null"`
	Address    *string   `gorm:"column:address;type:text"`
}

func (Office) TableName() string {
	return "offices"
}

package employee_test

import (
	"sync"
	"testing"

	"go-assetms/internal/employee"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestEmployeeSchema_OfficeForeignKeySetsNull(t *testing.T) {
	s, err := schema.Parse(&employee.Employee{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	rel, ok := s.Relationships.Relations["CurrentOffice"]
	assert.True(t, ok, "employees must declare the offices relation")
	assert.Equal(t, schema.BelongsTo, rel.Type)

	constraint := rel.ParseConstraint()
	assert.NotNil(t, constraint, "migration must emit a real foreign key")
	assert.Equal(t, "SET NULL", constraint.OnDelete)
}

package user_test

import (
	"sync"
	"testing"

	"go-assetms/internal/user"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestUserSchema_EmployeeForeignKeyCascades(t *testing.T) {
	s, err := schema.Parse(&user.User{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	rel, ok := s.Relationships.Relations["Employee"]
	assert.True(t, ok, "users must declare the employees relation")
	assert.Equal(t, schema.BelongsTo, rel.Type)

	constraint := rel.ParseConstraint()
	assert.NotNil(t, constraint, "migration must emit a real foreign key")
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}

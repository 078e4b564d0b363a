package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, user *User) error
	ExistsForEmployee(ctx context.Context, employeeID string) (bool, error)
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) ExistsForEmployee(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindCredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).
		Table("users u").
		Select("u.user_id, u.password_hash, u.role, e.email").
		Joins("JOIN employees e ON u.employee_id = e.employee_id").
		Where("e.email = ?", email).
		Take(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

package employee

import (
	"context"

	"go-assetms/internal/shared/patch"

	"gorm.io/gorm"
)

// updatableColumns is the allow-list for partial updates.
var updatableColumns = patch.Columns(
	"employee_number",
	"first_name",
	"last_name",
	"email",
	"current_office_id",
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmailAndNumber(ctx context.Context, email, employeeNumber string) (*Employee, error)
	UpdatePartial(ctx context.Context, id string, fields map[string]any) (*Employee, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "employee_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindByEmailAndNumber matches both values against the same record; used by
// the registration flow to verify the applicant is a known employee.
func (r *repository) FindByEmailAndNumber(ctx context.Context, email, employeeNumber string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("employee_number = ?", employeeNumber).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) UpdatePartial(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	query, args, err := patch.Build("employees", "employee_id", id, fields, updatableColumns)
	if err != nil {
		return nil, err
	}

	var empl Employee
	res := r.db.WithContext(ctx).Raw(query, args...).Scan(&empl)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &empl, nil
}

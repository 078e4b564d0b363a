package office

import (
	"context"

	"go-assetms/internal/shared/patch"

	"gorm.io/gorm"
)

// updatableColumns is the allow-list for partial updates. Keys that are not
// listed here never reach the SQL layer as identifiers.
var updatableColumns = patch.Columns("office_name", "address")

//go:generate mockgen -source=office_repo.go -destination=mock/office_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, office *Office) error
	FindAll(ctx context.Context) ([]Office, error)
	FindByID(ctx context.Context, id string) (*Office, error)
	UpdatePartial(ctx context.Context, id string, fields map[string]any) (*Office, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, office *Office) error {
	return r.db.WithContext(ctx).Create(office).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Office, error) {
	var offices []Office
	err := r.db.WithContext(ctx).
		Order("office_name ASC").
		Find(&offices).Error
	return offices, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Office, error) {
	var office Office
	err := r.db.WithContext(ctx).First(&office, "office_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *repository) UpdatePartial(ctx context.Context, id string, fields map[string]any) (*Office, error) {
	query, args, err := patch.Build("offices", "office_id", id, fields, updatableColumns)
	if err != nil {
		return nil, err
	}

	var office Office
	res := r.db.WithContext(ctx).Raw(query, args...).Scan(&office)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &office, nil
}

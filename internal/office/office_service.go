package office

import (
	"context"

	officeerrors "go-assetms/internal/office/errors"
	"go-assetms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=office_service.go -destination=mock/office_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	GetAll(ctx context.Context) ([]OfficeResponse, error)
	Update(ctx context.Context, id string, req UpdateOfficeRequest) (OfficeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("office.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("office.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create office requested",
		zap.String("request_id", rid),
		zap.String("office_name", req.OfficeName),
	)

	office := &Office{
		ID:         uuid.New(),
		OfficeName: req.OfficeName,
		Address:    req.Address,
	}

	if err := s.repo.Create(ctx, office); err != nil {
		s.logger.Error("create office persist failed", zap.String("request_id", rid), zap.Error(err))
		return OfficeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create office success",
		zap.String("request_id", rid),
		zap.String("office_id", office.ID.String()),
	)

	return mapToResponse(*office), nil
}

func (s *service) GetAll(ctx context.Context) ([]OfficeResponse, error) {
	s.logger.Debug("get all offices requested")
	offices, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all offices failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(offices), nil
}

// Update applies a partial update. Empty payloads are rejected here: the
// office endpoint requires at least one field.
func (s *service) Update(ctx context.Context, id string, req UpdateOfficeRequest) (OfficeResponse, error) {
	s.logger.Debug("update office requested", zap.String("office_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return OfficeResponse{}, officeerrors.ErrInvalidOfficeID
	}

	fields := map[string]any{}
	if req.OfficeName != nil {
		fields["office_name"] = *req.OfficeName
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return OfficeResponse{}, officeerrors.ErrNoFieldsToUpdate
	}

	office, err := s.repo.UpdatePartial(ctx, id, fields)
	if err != nil {
		s.logger.Error("update office failed", zap.String("office_id", id), zap.Error(err))
		return OfficeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update office success", zap.String("office_id", id))

	return mapToResponse(*office), nil
}

func mapToResponse(office Office) OfficeResponse {
	return OfficeResponse{
		OfficeID:   office.ID.String(),
		OfficeName: office.OfficeName,
		Address:    office.Address,
	}
}

func mapToListResponse(offices []Office) []OfficeResponse {
	res := make([]OfficeResponse, len(offices))
	for i, o := range offices {
		res[i] = mapToResponse(o)
	}
	return res
}

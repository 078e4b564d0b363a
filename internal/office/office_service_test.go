package office_test

import (
	"context"
	"errors"
	"testing"

	"go-assetms/internal/office"
	officeerrors "go-assetms/internal/office/errors"
	officeMock "go-assetms/internal/office/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestOfficeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := officeMock.NewMockRepository(ctrl)
	service := office.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := office.CreateOfficeRequest{OfficeName: "HQ"}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *office.Office) error {
				assert.Equal(t, "HQ", o.OfficeName)
				assert.Nil(t, o.Address)
				assert.NotEqual(t, uuid.Nil, o.ID)
				return nil
			})

		resp, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "HQ", resp.OfficeName)
		assert.NotEmpty(t, resp.OfficeID)
		assert.Nil(t, resp.Address)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db down"))

		_, err := service.Create(ctx, office.CreateOfficeRequest{OfficeName: "HQ"})
		assert.Error(t, err)
	})
}

func TestOfficeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := officeMock.NewMockRepository(ctrl)
	service := office.NewService(mockRepo)
	ctx := context.Background()

	t.Run("returns offices in repository order", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAll(ctx).
			Return([]office.Office{
				{ID: uuid.New(), OfficeName: "Berlin"},
				{ID: uuid.New(), OfficeName: "HQ", Address: strPtr("1 Main St")},
			}, nil)

		resp, err := service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Berlin", resp[0].OfficeName)
		assert.Equal(t, "1 Main St", *resp[1].Address)
	})
}

func TestOfficeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := officeMock.NewMockRepository(ctrl)
	service := office.NewService(mockRepo)
	ctx := context.Background()

	officeID := uuid.New()

	t.Run("updates only supplied fields", func(t *testing.T) {
		req := office.UpdateOfficeRequest{Address: strPtr("1 Main St")}
		updated := &office.Office{ID: officeID, OfficeName: "HQ", Address: strPtr("1 Main St")}

		mockRepo.EXPECT().
			UpdatePartial(ctx, officeID.String(), map[string]any{"address": "1 Main St"}).
			Return(updated, nil)

		resp, err := service.Update(ctx, officeID.String(), req)

		assert.NoError(t, err)
		// office_name untouched, address now set
		assert.Equal(t, "HQ", resp.OfficeName)
		assert.Equal(t, "1 Main St", *resp.Address)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		_, err := service.Update(ctx, officeID.String(), office.UpdateOfficeRequest{})
		assert.ErrorIs(t, err, officeerrors.ErrNoFieldsToUpdate)
	})

	t.Run("invalid id rejected", func(t *testing.T) {
		_, err := service.Update(ctx, "not-a-uuid", office.UpdateOfficeRequest{Address: strPtr("x")})
		assert.ErrorIs(t, err, officeerrors.ErrInvalidOfficeID)
	})

	t.Run("unknown office maps to not found", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdatePartial(ctx, officeID.String(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Update(ctx, officeID.String(), office.UpdateOfficeRequest{OfficeName: strPtr("HQ2")})
		assert.ErrorIs(t, err, officeerrors.ErrOfficeNotFound)
	})
}

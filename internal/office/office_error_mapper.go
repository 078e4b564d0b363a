package office

import (
	"errors"

	officeerrors "go-assetms/internal/office/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return officeerrors.ErrOfficeNotFound
	}

	return err
}

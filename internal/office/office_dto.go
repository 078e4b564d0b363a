package office

type CreateOfficeRequest struct {
	OfficeName string  `json:"office_name" binding:"required"`
	Address    *string `json:"address"`
}

// UpdateOfficeRequest is a partial payload: absent fields keep their prior
// values. At least one field must be present (enforced in the service).
type UpdateOfficeRequest struct {
	OfficeName *string `json:"office_name" binding:"omitempty,min=1"`
	Address    *string `json:"address"`
}

type OfficeResponse struct {
	OfficeID   string  `json:"office_id"`
	OfficeName string  `json:"office_name"`
	Address    *string `json:"address"`
}

package contact

type CreateRequest struct {
	ElderID      int64  `json:"elder_id"` // required for caretakers, ignored for elders
	Name         string `json:"name" binding:"required"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	IsPrimary    bool   `json:"is_primary"`
}

type UpdateRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	IsPrimary    *bool   `json:"is_primary"`
}

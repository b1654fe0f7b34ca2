package health

type CreateRequest struct {
	ElderID int64  `json:"elder_id"` // required for caretakers, ignored for elders
	Type    string `json:"type" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Unit    string `json:"unit"`
	Notes   string `json:"notes"`
}

type ListQuery struct {
	ElderID int64  `form:"elder_id"`
	Type    string `form:"type"`
	Days    int    `form:"days"`
}

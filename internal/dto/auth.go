package dto

type TokenRequestDTO struct {
	Key      string `json:"key" example:"operator-secret"`
	MemberID int64  `json:"member_id,omitempty" example:"42"`
}

type TokenResponseDTO struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

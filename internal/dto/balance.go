package dto

import "time"

type PointsRequestDTO struct {
	Amount    int64  `json:"amount" example:"150"`
	Reference string `json:"reference,omitempty" example:"2377225624"`
}

type TotalResponseDTO struct {
	MemberID int64 `json:"member_id" example:"42"`
	Total    int64 `json:"total" example:"350"`
}

type SweepResponseDTO struct {
	Processed int `json:"processed" example:"3"`
}

type ConsistencyResponseDTO struct {
	MemberID   int64  `json:"member_id" example:"42"`
	Consistent bool   `json:"consistent" example:"true"`
	Problem    string `json:"problem,omitempty" example:"points were not consumed in first-in-first-out order"`
}

type ExpireAtRequestDTO struct {
	ExpireAt time.Time `json:"expire_at" example:"2026-01-01T00:00:00Z"`
}

package dto

import (
	"time"

	"github.com/GlebRadaev/pointledger/internal/domain"
)

type EventResponseDTO struct {
	ID         int64      `json:"id" example:"17"`
	MemberID   int64      `json:"member_id" example:"42"`
	Type       string     `json:"type" example:"USE"`
	Amount     int64      `json:"amount" example:"-150"`
	Reference  string     `json:"reference,omitempty" example:"2377225624"`
	RollbackOf *int64     `json:"rollback_of,omitempty"`
	CreatedAt  time.Time  `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	ExpireAt   *time.Time `json:"expire_at,omitempty"`
}

type EventsPageResponseDTO struct {
	Items      []EventResponseDTO `json:"items"`
	Page       int                `json:"page" example:"0"`
	Size       int                `json:"size" example:"20"`
	Total      int64              `json:"total" example:"35"`
	TotalPages int                `json:"total_pages" example:"2"`
}

func NewEventResponse(e *domain.Event) EventResponseDTO {
	return EventResponseDTO{
		ID:         e.ID,
		MemberID:   e.MemberID,
		Type:       string(e.Type),
		Amount:     e.Amount,
		Reference:  e.Reference,
		RollbackOf: e.RollbackOf,
		CreatedAt:  e.CreatedAt,
		ExpireAt:   e.ExpireAt,
	}
}

func NewEventsPageResponse(p *domain.Page[domain.Event]) EventsPageResponseDTO {
	items := make([]EventResponseDTO, len(p.Items))
	for i := range p.Items {
		items[i] = NewEventResponse(&p.Items[i])
	}
	return EventsPageResponseDTO{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}
}

package points

//go:generate mockgen -source=points.go -destination=mock_points.go -package=points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/dto"
	"github.com/GlebRadaev/pointledger/pkg/auth"
	"github.com/GlebRadaev/pointledger/pkg/utils"
	"github.com/GlebRadaev/pointledger/pkg/validate"
)

type Service interface {
	Earn(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error)
	Use(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error)
	Rollback(ctx context.Context, eventID int64) (*domain.Event, error)
	GetTotal(ctx context.Context, memberID int64) (int64, error)
	GetEvent(ctx context.Context, eventID int64) (*domain.Event, error)
	ListEvents(ctx context.Context, memberID int64, page, size int) (*domain.Page[domain.Event], error)
}

type PointsHandler struct {
	ledger Service
}

func New(ledger Service) *PointsHandler {
	return &PointsHandler{
		ledger: ledger,
	}
}

// Earn godoc
//
//	@Summary		Credit points to a member
//	@Description	Append an EARN event. The points stay spendable for the configured retention period.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Member ID"
//	@Param			request	body		dto.PointsRequestDTO	true	"Amount and optional order reference"
//	@Success		200		{object}	dto.EventResponseDTO	"Created event"
//	@Failure		400		{object}	utils.Response			"Invalid amount or reference"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		403		{object}	utils.Response			"Operator role required"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id}/points/earn [post]
func (h *PointsHandler) Earn(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledger.Earn)
}

// Use godoc
//
//	@Summary		Spend member points
//	@Description	Append a USE event consuming the oldest unexpired points first.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Member ID"
//	@Param			request	body		dto.PointsRequestDTO	true	"Amount and optional order reference"
//	@Success		200		{object}	dto.EventResponseDTO	"Created event"
//	@Failure		400		{object}	utils.Response			"Invalid amount or reference"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		403		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		429		{object}	utils.Response			"Another request for the member is in progress"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id}/points/use [post]
func (h *PointsHandler) Use(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledger.Use)
}

func (h *PointsHandler) move(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, memberID, amount int64, reference string) (*domain.Event, error)) {
	memberID, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	var req dto.PointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsReference(req.Reference) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order reference")
		return
	}

	event, err := op(r.Context(), memberID, req.Amount, req.Reference)
	if err != nil {
		RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

// GetTotal godoc
//
//	@Summary		Get member point total
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Member ID"
//	@Success		200	{object}	dto.TotalResponseDTO	"Spendable points"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		403	{object}	utils.Response			"Access to another member"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id}/points/total [get]
func (h *PointsHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	total, err := h.ledger.GetTotal(r.Context(), memberID)
	if err != nil {
		RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TotalResponseDTO{
		MemberID: memberID,
		Total:    total,
	})
}

// ListEvents godoc
//
//	@Summary		List member point events
//	@Description	Newest first. Page is zero-based, size defaults to 20 and is capped at 100.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int							true	"Member ID"
//	@Param			page	query		int							false	"Page number"
//	@Param			size	query		int							false	"Page size"
//	@Success		200		{object}	dto.EventsPageResponseDTO	"Events page"
//	@Failure		400		{object}	utils.Response				"Invalid paging parameters"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		403		{object}	utils.Response				"Access to another member"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/members/{id}/points [get]
func (h *PointsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	memberID, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	page, err := queryInt(r, "page")
	if err != nil || page < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid page")
		return
	}
	size, err := queryInt(r, "size")
	if err != nil || size < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid size")
		return
	}

	events, err := h.ledger.ListEvents(r.Context(), memberID, page, size)
	if err != nil {
		RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventsPageResponse(events))
}

// GetEvent godoc
//
//	@Summary		Get a point event
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			eventId	path		int						true	"Event ID"
//	@Success		200		{object}	dto.EventResponseDTO	"Event"
//	@Failure		400		{object}	utils.Response			"Invalid event id"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		404		{object}	utils.Response			"Event not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/points/events/{eventId} [get]
func (h *PointsHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.ledger.GetEvent(r.Context(), eventID)
	if err != nil {
		RespondWithLedgerError(w, err)
		return
	}
	if !auth.CanAccessMember(r.Context(), event.MemberID) {
		utils.RespondWithError(w, http.StatusNotFound, domain.ErrEventNotFound.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

// Rollback godoc
//
//	@Summary		Roll back a USE event
//	@Description	Appends a ROLLBACK event returning the consumed points to their original groups.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			eventId	path		int						true	"USE event ID"
//	@Success		200		{object}	dto.EventResponseDTO	"Rollback event"
//	@Failure		400		{object}	utils.Response			"Event is not a USE event"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		403		{object}	utils.Response			"Operator role required"
//	@Failure		404		{object}	utils.Response			"Event not found"
//	@Failure		409		{object}	utils.Response			"Event already rolled back"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/points/events/{eventId}/rollback [post]
func (h *PointsHandler) Rollback(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.ledger.Rollback(r.Context(), eventID)
	if err != nil {
		RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

// RespondWithLedgerError maps ledger errors to HTTP statuses. Integrity
// failures get a generic body.
func RespondWithLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrBadEventType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConcurrencyBusy):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrAlreadyRolledBack):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrMemberNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("point request failed", zap.Bool("integrity", domain.IsInternal(err)), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func memberIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return pathID(w, r, "id", "invalid member id")
}

func eventIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return pathID(w, r, "eventId", "invalid event id")
}

func pathID(w http.ResponseWriter, r *http.Request, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

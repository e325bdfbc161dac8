package operator

//go:generate mockgen -source=operator.go -destination=mock_operator.go -package=operator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/internal/dto"
	"github.com/GlebRadaev/pointledger/internal/handlers/points"
	"github.com/GlebRadaev/pointledger/internal/service/authservice"
	"github.com/GlebRadaev/pointledger/pkg/utils"
)

type Service interface {
	RunExpirySweep(ctx context.Context) (int, error)
	CheckConsistency(ctx context.Context, memberID int64) error
	OverrideExpiry(ctx context.Context, eventID int64, expireAt time.Time) error
}

type TokenService interface {
	IssueToken(ctx context.Context, key string, memberID int64) (string, error)
}

type OperatorHandler struct {
	ledger Service
	tokens TokenService
}

func New(ledger Service, tokens TokenService) *OperatorHandler {
	return &OperatorHandler{
		ledger: ledger,
		tokens: tokens,
	}
}

// IssueToken godoc
//
//	@Summary		Issue an access token
//	@Description	Exchange the operator key for an operator token, or for a member token when member_id is set.
//	@Tags			Operator
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO		true	"Operator key and optional member"
//	@Success		200		{object}	dto.TokenResponseDTO	"Signed token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/operator/token [post]
func (h *OperatorHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MemberID < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	token, err := h.tokens.IssueToken(r.Context(), req.Key, req.MemberID)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// Sweep godoc
//
//	@Summary		Run the expiry sweep now
//	@Description	Expire every group past its expiry date. Safe to repeat.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO	"Groups expired"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		403	{object}	utils.Response			"Operator role required"
//	@Failure		429	{object}	utils.Response			"Sweep already running"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/operator/sweep [post]
func (h *OperatorHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	processed, err := h.ledger.RunExpirySweep(r.Context())
	if err != nil {
		zap.L().Error("expiry sweep failed", zap.Int("processed", processed), zap.Error(err))
		points.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{Processed: processed})
}

// CheckConsistency godoc
//
//	@Summary		Verify a member's ledger
//	@Description	Checks that no group holds a negative remainder and that points were consumed oldest first.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Member ID"
//	@Success		200	{object}	dto.ConsistencyResponseDTO	"Check result"
//	@Failure		400	{object}	utils.Response				"Invalid member id"
//	@Failure		401	{object}	utils.Response				"Not authorized"
//	@Failure		403	{object}	utils.Response				"Operator role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/operator/members/{id}/consistency [get]
func (h *OperatorHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || memberID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	resp := dto.ConsistencyResponseDTO{MemberID: memberID, Consistent: true}
	err = h.ledger.CheckConsistency(r.Context(), memberID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFifoOrder):
		resp.Consistent = false
		resp.Problem = domain.ErrNotFifoOrder.Error()
	case errors.Is(err, domain.ErrAmountBroken):
		resp.Consistent = false
		resp.Problem = domain.ErrAmountBroken.Error()
	default:
		points.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// OverrideExpiry godoc
//
//	@Summary		Move the expiry of an EARN event
//	@Description	Maintenance operation. Rewrites the expiry of the event and every detail in its group.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Accept			json
//	@Param			eventId	path	int						true	"EARN event ID"
//	@Param			request	body	dto.ExpireAtRequestDTO	true	"New expiry"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request or not an EARN event"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Operator role required"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/operator/events/{eventId}/expire-at [put]
func (h *OperatorHandler) OverrideExpiry(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
	if err != nil || eventID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req dto.ExpireAtRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ExpireAt.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledger.OverrideExpiry(r.Context(), eventID, req.ExpireAt); err != nil {
		points.RespondWithLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

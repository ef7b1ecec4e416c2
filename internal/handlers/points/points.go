package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/pointsservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
)

type Service interface {
	Award(ctx context.Context, userID, points int, sourceType domain.PointsSource, sourceID int, note string) (*domain.User, error)
	Summary(ctx context.Context, userID int) (int, []domain.PointsEntry, error)
}

type PointsHandler struct {
	pointsService Service
}

func New(pointsService Service) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

// Award godoc
//
//	@Summary		Credit points to the current user
//	@Description	Appends a credit ledger entry and raises the cached balance together.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AwardPointsRequestDTO	true	"Points to credit"
//	@Success		200		{object}	dto.AwardPointsResponseDTO
//	@Failure		422		{object}	utils.Response	"Invalid points or source"
//	@Router			/api/points/award [post]
func (h *PointsHandler) Award(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AwardPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Points < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Points must be positive")
		return
	}

	user, err := h.pointsService.Award(r.Context(), userID, req.Points, domain.PointsSource(req.SourceType), req.SourceID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, pointsservice.ErrInvalidSource):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, pointsservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AwardPointsResponseDTO{
		User: dto.UserDTO{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Phone:  user.Phone,
			Role:   string(user.Role),
			Points: user.Points,
		},
	})
}

// Summary godoc
//
//	@Summary	Get the current user's balance and recent ledger entries
//	@Tags		Points
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.PointsSummaryResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/points/me [get]
func (h *PointsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, history, err := h.pointsService.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pointsservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	entries := make([]dto.PointsEntryDTO, 0, len(history))
	for _, entry := range history {
		entries = append(entries, dto.PointsEntryDTO{
			ID:         entry.ID,
			Points:     entry.Points,
			SourceType: string(entry.SourceType),
			SourceID:   entry.SourceID,
			Note:       entry.Note,
			Direction:  string(entry.Direction),
			CreatedAt:  entry.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsSummaryResponseDTO{
		Balance: balance,
		History: entries,
	})
}

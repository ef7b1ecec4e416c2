package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/rewardservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, id int, patch domain.RewardPatch) (*domain.Reward, error)
	Delete(ctx context.Context, id int) error
	Redeem(ctx context.Context, userID, rewardID int) (*domain.Reward, *domain.User, error)
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// List godoc
//
//	@Summary	List rewards
//	@Tags		Rewards
//	@Produce	json
//	@Success	200	{array}		dto.RewardDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rewards [get]
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.RewardDTO, 0, len(rewards))
	for i := range rewards {
		out = append(out, toRewardDTO(&rewards[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Create godoc
//
//	@Summary	Create a reward
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateRewardRequestDTO	true	"Reward to create"
//	@Success	201		{object}	dto.RewardDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/rewards [post]
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.PointsRequired < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Title is required and pointsRequired must be positive")
		return
	}
	if req.Inventory != nil && *req.Inventory < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Inventory must not be negative")
		return
	}

	reward := &domain.Reward{
		Title:          req.Title,
		Description:    req.Description,
		Image:          req.Image,
		PointsRequired: req.PointsRequired,
		IsActive:       true,
	}
	if req.Inventory != nil {
		reward.Inventory = *req.Inventory
	}
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}

	created, err := h.rewardService.Create(r.Context(), reward)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRewardDTO(created))
}

// Update godoc
//
//	@Summary	Partially update a reward
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Reward ID"
//	@Param		request	body		dto.UpdateRewardRequestDTO	true	"Fields to change"
//	@Success	200		{object}	dto.RewardDTO
//	@Failure	404		{object}	utils.Response	"Reward not found"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/rewards/{id} [patch]
func (h *RewardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reward not found")
		return
	}

	var req dto.UpdateRewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Inventory != nil && *req.Inventory < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Inventory must not be negative")
		return
	}
	if req.PointsRequired != nil && *req.PointsRequired < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "pointsRequired must be positive")
		return
	}

	reward, err := h.rewardService.Update(r.Context(), id, domain.RewardPatch{
		Title:          req.Title,
		Description:    req.Description,
		Image:          req.Image,
		PointsRequired: req.PointsRequired,
		Inventory:      req.Inventory,
		IsActive:       req.IsActive,
	})
	if err != nil {
		if errors.Is(err, rewardservice.ErrRewardNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRewardDTO(reward))
}

// Delete godoc
//
//	@Summary	Delete a reward
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Reward ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Reward not found"
//	@Router		/api/rewards/{id} [delete]
func (h *RewardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reward not found")
		return
	}

	if err := h.rewardService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, rewardservice.ErrRewardNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Status:  "success",
		Message: "Reward deleted successfully",
	})
}

// Redeem godoc
//
//	@Summary		Redeem a reward for points
//	@Description	Decrements inventory, debits the balance and writes a ledger entry in one transaction.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Reward to redeem"
//	@Success		200		{object}	dto.RedeemResponseDTO
//	@Failure		400		{object}	utils.Response	"Not enough points or out of stock"
//	@Failure		404		{object}	utils.Response	"Reward not available"
//	@Router			/api/rewards/redeem [post]
func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RewardID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "rewardId is required")
		return
	}

	reward, user, err := h.rewardService.Redeem(r.Context(), userID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrRewardNotFound), errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrNotEnoughPoints), errors.Is(err, rewardservice.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Message: "Reward redeemed successfully",
		Reward:  toRewardDTO(reward),
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

func toRewardDTO(reward *domain.Reward) dto.RewardDTO {
	return dto.RewardDTO{
		ID:             reward.ID,
		Title:          reward.Title,
		Description:    reward.Description,
		Image:          reward.Image,
		PointsRequired: reward.PointsRequired,
		Inventory:      reward.Inventory,
		IsActive:       reward.IsActive,
	}
}

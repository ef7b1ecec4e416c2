package foods

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/foodservice"
	"github.com/foodconnect/api/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error)
	Get(ctx context.Context, id int) (*domain.Food, error)
	Create(ctx context.Context, food *domain.Food) (*domain.Food, error)
	Update(ctx context.Context, id int, patch domain.FoodPatch) (*domain.Food, error)
	Delete(ctx context.Context, id int) error
}

type FoodHandler struct {
	foodService Service
}

func New(foodService Service) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
	}
}

// List godoc
//
//	@Summary		List foods
//	@Description	Browse the catalogue with optional search, category and price filters.
//	@Tags			Foods
//	@Produce		json
//	@Param			search		query	string	false	"Substring match on name"
//	@Param			category	query	string	false	"Exact category"
//	@Param			minPrice	query	number	false	"Minimum price"
//	@Param			maxPrice	query	number	false	"Maximum price"
//	@Success		200	{array}		dto.FoodDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/foods [get]
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.FoodFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}
	if raw := query.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	foods, err := h.foodService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.FoodDTO, 0, len(foods))
	for i := range foods {
		out = append(out, toFoodDTO(&foods[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Get godoc
//
//	@Summary	Get a food by id
//	@Tags		Foods
//	@Produce	json
//	@Param		id	path		int	true	"Food ID"
//	@Success	200	{object}	dto.FoodDTO
//	@Failure	404	{object}	utils.Response	"Food not found"
//	@Router		/api/foods/{id} [get]
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Food not found")
		return
	}

	food, err := h.foodService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, foodservice.ErrFoodNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFoodDTO(food))
}

// Create godoc
//
//	@Summary	Create a food
//	@Tags		Foods
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateFoodRequestDTO	true	"Food to create"
//	@Success	201		{object}	dto.FoodResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/foods [post]
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFoodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Price < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Name is required and price must not be negative")
		return
	}

	food, err := h.foodService.Create(r.Context(), &domain.Food{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.FoodResponseDTO{
		Status:  "success",
		Message: "Food created successfully",
		Food:    toFoodDTO(food),
	})
}

// Update godoc
//
//	@Summary	Partially update a food
//	@Tags		Foods
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Food ID"
//	@Param		request	body		dto.UpdateFoodRequestDTO	true	"Fields to change"
//	@Success	200		{object}	dto.FoodResponseDTO
//	@Failure	404		{object}	utils.Response	"Food not found"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/foods/{id} [patch]
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Food not found")
		return
	}

	var req dto.UpdateFoodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Price must not be negative")
		return
	}

	food, err := h.foodService.Update(r.Context(), id, domain.FoodPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, foodservice.ErrFoodNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FoodResponseDTO{
		Status: "success",
		Food:   toFoodDTO(food),
	})
}

// Delete godoc
//
//	@Summary	Delete a food
//	@Tags		Foods
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Food ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Food not found"
//	@Router		/api/foods/{id} [delete]
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Food not found")
		return
	}

	if err := h.foodService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, foodservice.ErrFoodNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Status:  "success",
		Message: "Food deleted successfully",
	})
}

func toFoodDTO(food *domain.Food) dto.FoodDTO {
	return dto.FoodDTO{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		Category:    food.Category,
		ImageURL:    food.ImageURL,
	}
}

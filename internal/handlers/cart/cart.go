package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/cartservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, userID, foodID, qty int) ([]domain.CartItem, error)
	Get(ctx context.Context, userID int) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID, foodID int) error
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Add godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adding a food already in the cart replaces its quantity.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCartItemRequestDTO	true	"Item to add"
//	@Success		200		{object}	dto.CartResponseDTO
//	@Failure		404		{object}	utils.Response	"Food not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/cart [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FoodID < 1 || req.Qty < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "foodId and qty must be positive")
		return
	}

	items, err := h.cartService.Add(r.Context(), userID, req.FoodID, req.Qty)
	if err != nil {
		if errors.Is(err, cartservice.ErrFoodNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CartResponseDTO{
		Status:  "success",
		Message: "Item added to cart",
		Cart:    toCartDTO(items),
	})
}

// Get godoc
//
//	@Summary	Get the current user's cart
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CartResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.cartService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CartResponseDTO{
		Status: "success",
		Cart:   toCartDTO(items),
	})
}

// Remove godoc
//
//	@Summary	Remove a food from the cart
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Param		foodId	path		int	true	"Food ID"
//	@Success	200		{object}	utils.Response
//	@Failure	404		{object}	utils.Response	"Cart item not found"
//	@Router		/api/cart/{foodId} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	foodID, err := strconv.Atoi(chi.URLParam(r, "foodId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cart item not found")
		return
	}

	if err := h.cartService.Remove(r.Context(), userID, foodID); err != nil {
		if errors.Is(err, cartservice.ErrItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Status:  "success",
		Message: "Item removed from cart",
	})
}

func toCartDTO(items []domain.CartItem) []dto.CartItemDTO {
	out := make([]dto.CartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CartItemDTO{
			FoodID:   item.FoodID,
			Qty:      item.Qty,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})
	}
	return out
}

package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/orderservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, items []orderservice.ItemInput) (*domain.Order, error)
	GetMy(ctx context.Context, userID int) ([]domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create godoc
//
//	@Summary		Place an order
//	@Description	Snapshots the current name and price of each food into the order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order items"
//	@Success		201		{object}	dto.CreateOrderResponseDTO
//	@Failure		422		{object}	utils.Response	"Empty order or invalid items"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]orderservice.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderservice.ItemInput{FoodID: item.FoodID, Qty: item.Qty})
	}

	order, err := h.orderService.Create(r.Context(), userID, items)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrEmptyOrder), errors.Is(err, orderservice.ErrInvalidItems):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		Status:      "success",
		Message:     "Order placed successfully",
		OrderID:     order.ID,
		OrderStatus: string(order.Status),
		Total:       order.Total,
		Items:       toItemDTOs(order.Items),
	})
}

// My godoc
//
//	@Summary	List the current user's orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.OrdersResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/orders/my [get]
func (h *OrderHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetMy(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrdersResponseDTO{
		Status: "success",
		Orders: toOrderDTOs(orders),
	})
}

// All godoc
//
//	@Summary	List all orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.OrdersResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/orders [get]
func (h *OrderHandler) All(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrdersResponseDTO{
		Status: "success",
		Orders: toOrderDTOs(orders),
	})
}

// UpdateStatus godoc
//
//	@Summary	Change an order's status
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Order ID"
//	@Param		request	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success	200		{object}	dto.UpdateOrderStatusResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	422		{object}	utils.Response	"Invalid status"
//	@Router		/api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateOrderStatusResponseDTO{
		Status:      "success",
		Message:     "Order status updated",
		Order:       toOrderDTO(order),
		OrderID:     order.ID,
		OrderStatus: string(order.Status),
	})
}

func toItemDTOs(items []domain.OrderItem) []dto.OrderItemDTO {
	out := make([]dto.OrderItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.OrderItemDTO{
			FoodID:    item.FoodID,
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
			LineTotal: item.LineTotal,
		})
	}
	return out
}

func toOrderDTO(order *domain.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         toItemDTOs(order.Items),
		Total:         order.Total,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
	}
}

func toOrderDTOs(orders []domain.Order) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	return out
}

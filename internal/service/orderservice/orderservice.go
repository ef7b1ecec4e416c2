package orderservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
}

type FoodRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Food, error)
}

type Service struct {
	orderRepo OrderRepo
	foodRepo  FoodRepo
}

func New(orderRepo OrderRepo, foodRepo FoodRepo) *Service {
	return &Service{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
	}
}

var (
	ErrEmptyOrder    = errors.New("items must be a non-empty array")
	ErrInvalidItems  = errors.New("one or more food items are invalid")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type ItemInput struct {
	FoodID int
	Qty    int
}

// Create snapshots each food's name and price into the order. The order's
// total is fixed at placement; later price edits never change it.
func (s *Service) Create(ctx context.Context, userID int, items []ItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	unique := make([]int, 0, len(items))
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.Qty < 1 {
			return nil, ErrInvalidItems
		}
		if !seen[item.FoodID] {
			seen[item.FoodID] = true
			unique = append(unique, item.FoodID)
		}
	}

	foods, err := s.foodRepo.FindByIDs(ctx, unique)
	if err != nil {
		zap.L().Error("can't fetch foods for order", zap.Error(err))
		return nil, err
	}
	if len(foods) != len(unique) {
		return nil, ErrInvalidItems
	}

	foodByID := make(map[int]domain.Food, len(foods))
	for _, food := range foods {
		foodByID[food.ID] = food
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		food := foodByID[item.FoodID]
		lineTotal := food.Price * float64(item.Qty)
		orderItems = append(orderItems, domain.OrderItem{
			FoodID:    food.ID,
			Name:      food.Name,
			Price:     food.Price,
			Qty:       item.Qty,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}

	order := &domain.Order{
		UserID: userID,
		Items:  orderItems,
		Total:  total,
		Status: domain.OrderStatusPlaced,
	}
	order, err = s.orderRepo.Create(ctx, order)
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}

	zap.L().Info("order placed", zap.Int("order_id", order.ID), zap.Int("user_id", userID))
	return order, nil
}

func (s *Service) GetMy(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

package service

import (
	authhandlers "github.com/foodconnect/api/internal/handlers/auth"
	carthandlers "github.com/foodconnect/api/internal/handlers/cart"
	donationhandlers "github.com/foodconnect/api/internal/handlers/donations"
	foodhandlers "github.com/foodconnect/api/internal/handlers/foods"
	gamehandlers "github.com/foodconnect/api/internal/handlers/games"
	orderhandlers "github.com/foodconnect/api/internal/handlers/orders"
	partnerhandlers "github.com/foodconnect/api/internal/handlers/partners"
	pointshandlers "github.com/foodconnect/api/internal/handlers/points"
	rewardhandlers "github.com/foodconnect/api/internal/handlers/rewards"
	userhandlers "github.com/foodconnect/api/internal/handlers/users"

	pkgauth "github.com/foodconnect/api/pkg/auth"

	"github.com/foodconnect/api/internal/pg"
	"github.com/foodconnect/api/internal/repo"
	"github.com/foodconnect/api/internal/service/authservice"
	"github.com/foodconnect/api/internal/service/cartservice"
	"github.com/foodconnect/api/internal/service/donationservice"
	"github.com/foodconnect/api/internal/service/foodservice"
	"github.com/foodconnect/api/internal/service/gameservice"
	"github.com/foodconnect/api/internal/service/orderservice"
	"github.com/foodconnect/api/internal/service/partnerservice"
	"github.com/foodconnect/api/internal/service/pointsservice"
	"github.com/foodconnect/api/internal/service/rewardservice"
	"github.com/foodconnect/api/internal/service/userservice"
)

type Services struct {
	AuthService     authhandlers.Service
	UserService     userhandlers.Service
	FoodService     foodhandlers.Service
	CartService     carthandlers.Service
	OrderService    orderhandlers.Service
	DonationService donationhandlers.Service
	PartnerService  partnerhandlers.Service
	RewardService   rewardhandlers.Service
	PointsService   pointshandlers.Service
	GameService     gamehandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface) *Services {
	return &Services{
		AuthService:     authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService),
		UserService:     userservice.New(repo.UserRepo),
		FoodService:     foodservice.New(repo.FoodRepo),
		CartService:     cartservice.New(repo.CartRepo, repo.FoodRepo),
		OrderService:    orderservice.New(repo.OrderRepo, repo.FoodRepo),
		DonationService: donationservice.New(repo.DonationRepo),
		PartnerService:  partnerservice.New(repo.PartnerRepo),
		RewardService:   rewardservice.New(repo.RewardRepo, repo.UserRepo, repo.PointsRepo, txManager),
		PointsService:   pointsservice.New(repo.PointsRepo, repo.UserRepo, txManager),
		GameService:     gameservice.New(repo.GameRepo),
	}
}

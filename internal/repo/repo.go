package repo

import (
	"github.com/foodconnect/api/internal/pg"
	cartrepo "github.com/foodconnect/api/internal/repo/cart-repo"
	donationrepo "github.com/foodconnect/api/internal/repo/donation-repo"
	foodrepo "github.com/foodconnect/api/internal/repo/food-repo"
	gamerepo "github.com/foodconnect/api/internal/repo/game-repo"
	orderrepo "github.com/foodconnect/api/internal/repo/order-repo"
	partnerrepo "github.com/foodconnect/api/internal/repo/partner-repo"
	pointsrepo "github.com/foodconnect/api/internal/repo/points-repo"
	rewardrepo "github.com/foodconnect/api/internal/repo/reward-repo"
	userrepo "github.com/foodconnect/api/internal/repo/user-repo"
)

// Repositories holds the concrete repos; each service narrows them to the
// interface it needs.
type Repositories struct {
	UserRepo     *userrepo.Repository
	FoodRepo     *foodrepo.Repository
	CartRepo     *cartrepo.Repository
	OrderRepo    *orderrepo.Repository
	DonationRepo *donationrepo.Repository
	PartnerRepo  *partnerrepo.Repository
	RewardRepo   *rewardrepo.Repository
	PointsRepo   *pointsrepo.Repository
	GameRepo     *gamerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		FoodRepo:     foodrepo.New(conn),
		CartRepo:     cartrepo.New(conn),
		OrderRepo:    orderrepo.New(conn, txManager),
		DonationRepo: donationrepo.New(conn),
		PartnerRepo:  partnerrepo.New(conn),
		RewardRepo:   rewardrepo.New(conn),
		PointsRepo:   pointsrepo.New(conn),
		GameRepo:     gamerepo.New(conn),
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/foodconnect/api/docs"
	"github.com/foodconnect/api/internal/domain"
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
	"github.com/foodconnect/api/internal/service"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
}

type FoodHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	Award(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

// Pinger is the slice of pgxpool.Pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler     AuthHandler
	UserHandler     UserHandler
	FoodHandler     FoodHandler
	CartHandler     CartHandler
	OrderHandler    OrderHandler
	DonationHandler DonationHandler
	PartnerHandler  PartnerHandler
	RewardHandler   RewardHandler
	GameHandler     GameHandler
	PointsHandler   PointsHandler

	jwtService auth.JWTServiceInterface
	db         Pinger
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, db Pinger) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		UserHandler:     userhandlers.New(s.UserService),
		FoodHandler:     foodhandlers.New(s.FoodService),
		CartHandler:     carthandlers.New(s.CartService),
		OrderHandler:    orderhandlers.New(s.OrderService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PartnerHandler:  partnerhandlers.New(s.PartnerService),
		RewardHandler:   rewardhandlers.New(s.RewardService),
		GameHandler:     gamehandlers.New(s.GameService),
		PointsHandler:   pointshandlers.New(s.PointsService),
		jwtService:      jwtService,
		db:              db,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.Health)

	authenticate := auth.Middleware(h.jwtService)
	donorOnly := auth.RequireRole(domain.RoleDonor)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.AuthHandler.Signup)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/refresh", h.AuthHandler.Refresh)
			r.With(authenticate).Get("/me", h.AuthHandler.Profile)
		})

		r.Route("/foods", func(r chi.Router) {
			r.Get("/", h.FoodHandler.List)
			r.Get("/{id}", h.FoodHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(authenticate, donorOnly)
				r.Post("/", h.FoodHandler.Create)
				r.Patch("/{id}", h.FoodHandler.Update)
				r.Delete("/{id}", h.FoodHandler.Delete)
			})
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", h.RewardHandler.List)
			r.With(authenticate).Post("/redeem", h.RewardHandler.Redeem)
			r.Group(func(r chi.Router) {
				r.Use(authenticate, donorOnly)
				r.Post("/", h.RewardHandler.Create)
				r.Patch("/{id}", h.RewardHandler.Update)
				r.Delete("/{id}", h.RewardHandler.Delete)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.GameHandler.List)
			r.Group(func(r chi.Router) {
				r.Use(authenticate, donorOnly)
				r.Post("/", h.GameHandler.Create)
				r.Patch("/{id}", h.GameHandler.Update)
				r.Delete("/{id}", h.GameHandler.Delete)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.CartHandler.Get)
				r.Post("/", h.CartHandler.Add)
				r.Delete("/{foodId}", h.CartHandler.Remove)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Create)
				r.Get("/my", h.OrderHandler.My)
				r.With(donorOnly).Get("/", h.OrderHandler.All)
				r.With(donorOnly).Patch("/{id}/status", h.OrderHandler.UpdateStatus)
			})

			r.Route("/donations", func(r chi.Router) {
				r.Post("/", h.DonationHandler.Create)
				r.Get("/my", h.DonationHandler.My)
				r.With(donorOnly).Get("/", h.DonationHandler.List)
				r.Get("/{id}", h.DonationHandler.Get)
				r.With(donorOnly).Patch("/{id}/status", h.DonationHandler.UpdateStatus)
			})

			r.Route("/partners", func(r chi.Router) {
				r.Post("/", h.PartnerHandler.Create)
				r.Get("/my", h.PartnerHandler.My)
				r.With(donorOnly).Get("/", h.PartnerHandler.List)
				r.Get("/{id}", h.PartnerHandler.Get)
				r.With(donorOnly).Patch("/{id}/status", h.PartnerHandler.UpdateStatus)
			})

			r.Route("/points", func(r chi.Router) {
				r.Post("/award", h.PointsHandler.Award)
				r.Get("/me", h.PointsHandler.Summary)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(donorOnly)
				r.Get("/", h.UserHandler.List)
				r.Patch("/{id}/role", h.UserHandler.UpdateRole)
			})
		})
	})

	return r
}

// Health godoc
//
//	@Summary	Service and database liveness
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	utils.Response	"Database unreachable"
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"db":     "up",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

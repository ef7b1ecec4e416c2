package games

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/gameservice"
	"github.com/foodconnect/api/pkg/utils"
	"github.com/foodconnect/api/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Update(ctx context.Context, id int, patch domain.GamePatch) (*domain.Game, error)
	Delete(ctx context.Context, id int) error
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// List godoc
//
//	@Summary	List active games
//	@Tags		Games
//	@Produce	json
//	@Success	200	{array}		dto.GameDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/games [get]
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.GameDTO, 0, len(games))
	for i := range games {
		out = append(out, toGameDTO(&games[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Create godoc
//
//	@Summary	Register a game
//	@Tags		Games
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateGameRequestDTO	true	"Game to register"
//	@Success	201		{object}	dto.GameDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/games [post]
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || !validate.IsURL(req.URL) || req.PointsPerPlay < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Title, a valid URL and a non-negative pointsPerPlay are required")
		return
	}

	game, err := h.gameService.Create(r.Context(), &domain.Game{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		IconURL:       req.IconURL,
		PointsPerPlay: req.PointsPerPlay,
		Tags:          req.Tags,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toGameDTO(game))
}

// Update godoc
//
//	@Summary	Partially update a game
//	@Tags		Games
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Game ID"
//	@Param		request	body		dto.UpdateGameRequestDTO	true	"Fields to change"
//	@Success	200		{object}	dto.GameDTO
//	@Failure	404		{object}	utils.Response	"Game not found"
//	@Router		/api/games/{id} [patch]
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Game not found")
		return
	}

	var req dto.UpdateGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL != nil && !validate.IsURL(*req.URL) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "URL must be valid")
		return
	}

	game, err := h.gameService.Update(r.Context(), id, domain.GamePatch{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		IconURL:       req.IconURL,
		PointsPerPlay: req.PointsPerPlay,
		Tags:          req.Tags,
		IsActive:      req.IsActive,
	})
	if err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGameDTO(game))
}

// Delete godoc
//
//	@Summary	Delete a game
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Game ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Router		/api/games/{id} [delete]
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Game not found")
		return
	}

	if err := h.gameService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Status:  "success",
		Message: "Game deleted successfully",
	})
}

func toGameDTO(game *domain.Game) dto.GameDTO {
	tags := game.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.GameDTO{
		ID:            game.ID,
		Title:         game.Title,
		Description:   game.Description,
		URL:           game.URL,
		IconURL:       game.IconURL,
		PointsPerPlay: game.PointsPerPlay,
		Tags:          tags,
		IsActive:      game.IsActive,
	}
}

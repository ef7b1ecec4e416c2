package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/authservice"
	pkgauth "github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
	"github.com/foodconnect/api/pkg/validate"
)

type Service interface {
	Signup(ctx context.Context, input authservice.SignupInput) (*domain.User, *pkgauth.TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *pkgauth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgauth.TokenPair, error)
	Profile(ctx context.Context, userID int) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup godoc
//
//	@Summary		Register a new account
//	@Description	Create a user with the donor or receiver role and return a token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"Signup request body"
//	@Success		201		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Email already registered"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role := domain.Role(req.Role)
	switch {
	case req.Name == "":
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Name is required")
		return
	case !validate.IsEmail(req.Email):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Valid email required")
		return
	case len(req.Password) < 6:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Password must be at least 6 characters")
		return
	case !role.Valid():
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Role must be donor or receiver")
		return
	}

	user, tokens, err := h.authService.Signup(r.Context(), authservice.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.AuthResponseDTO{
		Status:       "success",
		Message:      "Account created successfully",
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
		User:         ToUserDTO(user),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsEmail(req.Email) || req.Password == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Email and password are required")
		return
	}

	user, tokens, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Status:       "success",
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
		User:         ToUserDTO(user),
	})
}

// Refresh godoc
//
//	@Summary		Refresh token pair
//	@Description	Exchange a valid refresh token for a new access/refresh pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RefreshRequestDTO	true	"Refresh request body"
//	@Success		200		{object}	dto.TokenPairDTO
//	@Failure		400		{object}	utils.Response	"Refresh token missing"
//	@Failure		401		{object}	utils.Response	"Invalid refresh token"
//	@Router			/api/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Refresh token missing")
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidRefreshToken) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenPairDTO{
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
	})
}

// Profile godoc
//
//	@Summary		Get current user profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Status: "success",
		User:   ToUserDTO(user),
	})
}

// ToUserDTO strips the password hash; it is the only view of a user the API
// ever returns.
func ToUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   string(user.Role),
		Points: user.Points,
	}
}

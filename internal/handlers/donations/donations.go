package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/donationservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
	"github.com/foodconnect/api/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	List(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error)
	GetMy(ctx context.Context, userID int) ([]domain.Donation, error)
	Get(ctx context.Context, id int) (*domain.Donation, error)
	UpdateStatus(ctx context.Context, id int, status domain.DonationStatus, assignedVolunteer string) (*domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Create godoc
//
//	@Summary		Submit a donation pickup request
//	@Description	New donations always start in the pending status.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDonationRequestDTO	true	"Donation details"
//	@Success		201		{object}	dto.DonationDTO
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/donations [post]
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donorType := domain.DonorType(req.DonorType)
	switch {
	case !donorType.Valid():
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid donor type")
		return
	case req.ContactName == "" || !validate.IsPhone(req.ContactPhone):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Contact name and a valid phone are required")
		return
	case req.FoodType == "" || req.Quantity == "" || req.PickupAddress == "" || req.PickupWindow == "":
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Food type, quantity, pickup address and pickup window are required")
		return
	}

	donation, err := h.donationService.Create(r.Context(), &domain.Donation{
		UserID:        userID,
		DonorType:     donorType,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		FoodType:      req.FoodType,
		Quantity:      req.Quantity,
		PickupAddress: req.PickupAddress,
		PickupWindow:  req.PickupWindow,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDonationDTO(donation))
}

// List godoc
//
//	@Summary	List all donations
//	@Tags		Donations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Filter by status"
//	@Success	200		{array}		dto.DonationDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/donations [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.DonationStatus(r.URL.Query().Get("status"))

	donations, err := h.donationService.List(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTOs(donations))
}

// My godoc
//
//	@Summary	List the current user's donations
//	@Tags		Donations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.DonationDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/donations/my [get]
func (h *DonationHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	donations, err := h.donationService.GetMy(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTOs(donations))
}

// Get godoc
//
//	@Summary		Get a donation by id
//	@Description	Non-donor users can only view their own donations.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Donation ID"
//	@Success		200	{object}	dto.DonationDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Router			/api/donations/{id} [get]
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
		return
	}

	donation, err := h.donationService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(domain.Role)
	if role != domain.RoleDonor && donation.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(donation))
}

// UpdateStatus godoc
//
//	@Summary	Change a donation's status
//	@Tags		Donations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"Donation ID"
//	@Param		request	body		dto.UpdateDonationStatusRequestDTO	true	"New status"
//	@Success	200		{object}	dto.DonationDTO
//	@Failure	404		{object}	utils.Response	"Donation not found"
//	@Failure	422		{object}	utils.Response	"Invalid status"
//	@Router		/api/donations/{id}/status [patch]
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
		return
	}

	var req dto.UpdateDonationStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donation, err := h.donationService.UpdateStatus(r.Context(), id, domain.DonationStatus(req.Status), req.AssignedVolunteer)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(donation))
}

func toDonationDTO(d *domain.Donation) dto.DonationDTO {
	return dto.DonationDTO{
		ID:                d.ID,
		UserID:            d.UserID,
		DonorType:         string(d.DonorType),
		ContactName:       d.ContactName,
		ContactPhone:      d.ContactPhone,
		ContactEmail:      d.ContactEmail,
		FoodType:          d.FoodType,
		Quantity:          d.Quantity,
		PickupAddress:     d.PickupAddress,
		PickupWindow:      d.PickupWindow,
		Notes:             d.Notes,
		Status:            string(d.Status),
		AssignedVolunteer: d.AssignedVolunteer,
		CreatedAt:         d.CreatedAt,
		UserName:          d.UserName,
		UserEmail:         d.UserEmail,
	}
}

func toDonationDTOs(donations []domain.Donation) []dto.DonationDTO {
	out := make([]dto.DonationDTO, 0, len(donations))
	for i := range donations {
		out = append(out, toDonationDTO(&donations[i]))
	}
	return out
}

package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/partnerservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
	"github.com/foodconnect/api/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, partner *domain.Partner) (*domain.Partner, error)
	List(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error)
	GetMy(ctx context.Context, userID int) ([]domain.Partner, error)
	Get(ctx context.Context, id int) (*domain.Partner, error)
	UpdateStatus(ctx context.Context, id int, status domain.PartnerStatus, notes string) (*domain.Partner, error)
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// Create godoc
//
//	@Summary		Submit a partner application
//	@Description	New applications always start in the pending status.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePartnerRequestDTO	true	"Application details"
//	@Success		201		{object}	dto.PartnerDTO
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/partners [post]
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePartnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orgType := domain.OrganizationType(req.OrganizationType)
	switch {
	case req.OrganizationName == "" || !orgType.Valid():
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Organization name and a valid type are required")
		return
	case req.ContactPerson == "" || !validate.IsEmail(req.Email) || !validate.IsPhone(req.Phone):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Contact person, a valid email and phone are required")
		return
	case req.Website != "" && !validate.IsURL(req.Website):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Website must be a valid URL")
		return
	}

	partner, err := h.partnerService.Create(r.Context(), &domain.Partner{
		UserID:           userID,
		OrganizationName: req.OrganizationName,
		OrganizationType: orgType,
		ContactPerson:    req.ContactPerson,
		Email:            req.Email,
		Phone:            req.Phone,
		Location:         req.Location,
		Website:          req.Website,
		Message:          req.Message,
		DocumentURL:      req.DocumentURL,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPartnerDTO(partner))
}

// List godoc
//
//	@Summary	List all partner applications
//	@Tags		Partners
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Filter by status"
//	@Success	200		{array}		dto.PartnerDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/partners [get]
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.PartnerStatus(r.URL.Query().Get("status"))

	partners, err := h.partnerService.List(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPartnerDTOs(partners))
}

// My godoc
//
//	@Summary	List the current user's partner applications
//	@Tags		Partners
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PartnerDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/partners/my [get]
func (h *PartnerHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	partners, err := h.partnerService.GetMy(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPartnerDTOs(partners))
}

// Get godoc
//
//	@Summary		Get a partner application by id
//	@Description	Non-donor users can only view their own applications.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Partner ID"
//	@Success		200	{object}	dto.PartnerDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Partner application not found"
//	@Router			/api/partners/{id} [get]
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Partner application not found")
		return
	}

	partner, err := h.partnerService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, partnerservice.ErrPartnerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(domain.Role)
	if role != domain.RoleDonor && partner.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPartnerDTO(partner))
}

// UpdateStatus godoc
//
//	@Summary	Change a partner application's status
//	@Tags		Partners
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Partner ID"
//	@Param		request	body		dto.UpdatePartnerStatusRequestDTO	true	"New status"
//	@Success	200		{object}	dto.PartnerDTO
//	@Failure	404		{object}	utils.Response	"Partner application not found"
//	@Failure	422		{object}	utils.Response	"Invalid status"
//	@Router		/api/partners/{id}/status [patch]
func (h *PartnerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Partner application not found")
		return
	}

	var req dto.UpdatePartnerStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partner, err := h.partnerService.UpdateStatus(r.Context(), id, domain.PartnerStatus(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, partnerservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, partnerservice.ErrPartnerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPartnerDTO(partner))
}

func toPartnerDTO(p *domain.Partner) dto.PartnerDTO {
	return dto.PartnerDTO{
		ID:               p.ID,
		UserID:           p.UserID,
		OrganizationName: p.OrganizationName,
		OrganizationType: string(p.OrganizationType),
		ContactPerson:    p.ContactPerson,
		Email:            p.Email,
		Phone:            p.Phone,
		Location:         p.Location,
		Website:          p.Website,
		Message:          p.Message,
		DocumentURL:      p.DocumentURL,
		Status:           string(p.Status),
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UserName:         p.UserName,
		UserEmail:        p.UserEmail,
	}
}

func toPartnerDTOs(partners []domain.Partner) []dto.PartnerDTO {
	out := make([]dto.PartnerDTO, 0, len(partners))
	for i := range partners {
		out = append(out, toPartnerDTO(&partners[i]))
	}
	return out
}

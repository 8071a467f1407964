package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motor-kita.backend/internal/domain/entities"
	domainerrors "motor-kita.backend/internal/domain/errors"
	"motor-kita.backend/internal/interfaces/http/response"
	"motor-kita.backend/internal/usecases"
)

// The handler depends on narrow views of the usecases so tests can stub them.

type wizardService interface {
	StartSession(ctx context.Context) (*entities.OnboardingRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error)
	OpenSection(ctx context.Context, id uuid.UUID, target entities.Section) (*entities.OnboardingRecord, error)
	UpdatePersonal(ctx context.Context, id uuid.UUID, in usecases.PersonalUpdate) (*entities.OnboardingRecord, usecases.FieldErrors, error)
	SetIdentificationType(ctx context.Context, id uuid.UUID, t entities.IdentificationType) (*entities.OnboardingRecord, error)
	SavePersonal(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, usecases.FieldErrors, error)
	UpdateCar(ctx context.Context, id uuid.UUID, in usecases.CarUpdate) (*entities.OnboardingRecord, usecases.FieldErrors, error)
	SaveCar(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, usecases.FieldErrors, error)
}

type lookupService interface {
	VerifyPlate(ctx context.Context, id uuid.UUID, raw string) (*usecases.VerifyResult, error)
	ConfirmNew(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error)
	ConfirmOwnership(ctx context.Context, id uuid.UUID, last4 string) (*usecases.ChallengeResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error)
}

type submissionService interface {
	Submit(ctx context.Context, id uuid.UUID) (*entities.OnboardingRecord, error)
}

type OnboardingHandler struct {
	wizard     wizardService
	lookup     lookupService
	submission submissionService
}

func NewOnboardingHandler(wizard wizardService, lookup lookupService, submission submissionService) *OnboardingHandler {
	return &OnboardingHandler{wizard: wizard, lookup: lookup, submission: submission}
}

// StartSession creates a new onboarding session
// POST /api/v1/onboarding
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	rec, err := h.wizard.StartSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, recordView(rec))
}

// GetRecord returns the session record
// GET /api/v1/onboarding/:id
func (h *OnboardingHandler) GetRecord(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	rec, err := h.wizard.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

type openSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// OpenSection navigates the accordion
// POST /api/v1/onboarding/:id/open
func (h *OnboardingHandler) OpenSection(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req openSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	rec, err := h.wizard.OpenSection(c.Request.Context(), id, entities.Section(req.Section))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

type verifyPlateRequest struct {
	Plate string `json:"plate" binding:"required"`
}

// VerifyPlate starts a plate verification cycle
// POST /api/v1/onboarding/:id/plate/verify
func (h *OnboardingHandler) VerifyPlate(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req verifyPlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	result, err := h.lookup.VerifyPlate(c.Request.Context(), id, req.Plate)
	if err != nil {
		response.Error(c, err)
		return
	}
	body := recordView(result.Record)
	body["status"] = result.Status
	body["message"] = result.Message
	response.Success(c, http.StatusOK, body)
}

// ConfirmNew starts a fresh application for an unknown plate
// POST /api/v1/onboarding/:id/plate/confirm-new
func (h *OnboardingHandler) ConfirmNew(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	rec, err := h.lookup.ConfirmNew(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

type confirmOwnershipRequest struct {
	Last4 string `json:"last4" binding:"required,len=4,numeric"`
}

// ConfirmOwnership submits the last-4 secret for an open challenge
// POST /api/v1/onboarding/:id/plate/confirm-ownership
func (h *OnboardingHandler) ConfirmOwnership(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req confirmOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest("last4 must be exactly 4 digits"))
		return
	}
	result, err := h.lookup.ConfirmOwnership(c.Request.Context(), id, req.Last4)
	if err != nil {
		response.Error(c, err)
		return
	}
	body := recordView(result.Record)
	body["ok"] = result.OK
	body["attemptsRemaining"] = result.AttemptsRemaining
	body["exhausted"] = result.Exhausted
	body["message"] = result.Message
	response.Success(c, http.StatusOK, body)
}

// CancelLookup abandons a pending challenge or new-confirm
// POST /api/v1/onboarding/:id/plate/cancel
func (h *OnboardingHandler) CancelLookup(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	rec, err := h.lookup.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

type personalRequest struct {
	IDType       string `json:"idType"`
	IDValue      string `json:"idValue"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	Postcode     string `json:"postcode"`
	City         string `json:"city"`
	State        string `json:"state"`
	EHailing     bool   `json:"eHailing"`
	Note         string `json:"note"`
}

// UpdatePersonal applies a live edit of the personal section
// PUT /api/v1/onboarding/:id/personal
func (h *OnboardingHandler) UpdatePersonal(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req personalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	rec, errs, err := h.wizard.UpdatePersonal(c.Request.Context(), id, usecases.PersonalUpdate{
		IDType:       entities.IdentificationType(req.IDType),
		IDValue:      req.IDValue,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		Postcode:     req.Postcode,
		City:         req.City,
		State:        req.State,
		EHailing:     req.EHailing,
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	body := recordView(rec)
	body["errors"] = errs
	response.Success(c, http.StatusOK, body)
}

type idTypeRequest struct {
	IDType string `json:"idType" binding:"required"`
}

// SetIdentificationType switches the identification type without navigating
// POST /api/v1/onboarding/:id/personal/id-type
func (h *OnboardingHandler) SetIdentificationType(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req idTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	rec, err := h.wizard.SetIdentificationType(c.Request.Context(), id, entities.IdentificationType(req.IDType))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

// SavePersonal is save-and-continue for the personal section
// POST /api/v1/onboarding/:id/personal/save
func (h *OnboardingHandler) SavePersonal(c *gin.Context) {
	h.saveSection(c, h.wizard.SavePersonal)
}

type carRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
}

// UpdateCar applies a live edit of the car section
// PUT /api/v1/onboarding/:id/car
func (h *OnboardingHandler) UpdateCar(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	rec, errs, err := h.wizard.UpdateCar(c.Request.Context(), id, usecases.CarUpdate{
		Brand: req.Brand,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	body := recordView(rec)
	body["errors"] = errs
	response.Success(c, http.StatusOK, body)
}

// SaveCar is save-and-continue for the car section
// POST /api/v1/onboarding/:id/car/save
func (h *OnboardingHandler) SaveCar(c *gin.Context) {
	h.saveSection(c, h.wizard.SaveCar)
}

// Submit runs the submission pipeline
// POST /api/v1/onboarding/:id/submit
func (h *OnboardingHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	rec, err := h.submission.Submit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, recordView(rec))
}

func (h *OnboardingHandler) saveSection(c *gin.Context, save func(context.Context, uuid.UUID) (*entities.OnboardingRecord, usecases.FieldErrors, error)) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	rec, errs, err := save(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	body := recordView(rec)
	body["errors"] = errs
	response.Success(c, status, body)
}

func (h *OnboardingHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid session ID"))
		return uuid.Nil, false
	}
	return id, true
}

// recordView is the wire shape of a session record, with the progress step
// precomputed for the stepper display.
func recordView(rec *entities.OnboardingRecord) gin.H {
	return gin.H{
		"record": rec,
		"step":   rec.ActiveSection.StepIndex(),
		"steps":  len(entities.SectionOrder),
	}
}

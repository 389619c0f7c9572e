package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListByRegistrantEmail(ctx context.Context, email string) ([]*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID string, input domain.RegisterInput) (*domain.EventDetails, error)
}

type FeedbackSvc interface {
	Add(ctx context.Context, eventID, user, comment string) (*domain.EventDetails, error)
}

type AccountSvc interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.Account, error)
	SignUpFirstAdmin(ctx context.Context, input domain.SignUpInput) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	feedbackService     FeedbackSvc
	accountService      AccountSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	feedbackService FeedbackSvc,
	accountService AccountSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		feedbackService:     feedbackService,
		accountService:      accountService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid registration_deadline format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Heading:          req.Heading,
		Date:             domain.EventDate{Day: req.Date.Day, Month: req.Date.Month, Year: req.Date.Year},
		Time:             req.Time,
		Location:         req.Location,
		Description:      req.Description,
		Image:            req.Image,
		CollegeID:        req.CollegeID,
		Category:         domain.Category(req.Category),
		MaxRegistrations: req.MaxRegistrations,
		Organizer:        req.Organizer,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Deadline:         deadline,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	var filter domain.EventFilter

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
			return
		}
		filter.Year = year
	}
	filter.Category = domain.Category(c.Query("category"))
	filter.Search = c.Query("q")

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Registration

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.registrationService.Register(c.Request.Context(), eventID, domain.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationResponse{
		Success: true,
		Message: "successfully registered for the event",
		Event:   dto.ToEventDetailsResponse(details),
	})
}

// Feedback

func (h *Handler) AddFeedback(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.feedbackService.Add(c.Request.Context(), eventID, req.User, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

// ListRegistrantEvents returns the events an email has registered for. An
// email nobody registered with yields an empty list, not an error.
func (h *Handler) ListRegistrantEvents(c *ginext.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email is required"})
		return
	}

	events, err := h.eventService.ListByRegistrantEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Accounts

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountService.SignUp(c.Request.Context(), domain.SignUpInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		CollegeID: req.CollegeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) SignUpFirstAdmin(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountService.SignUpFirstAdmin(c.Request.Context(), domain.SignUpInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		CollegeID: req.CollegeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrantNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrRegistrationConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAdminExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "store unavailable, try again later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

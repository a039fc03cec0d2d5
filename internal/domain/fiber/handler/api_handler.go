package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/dto"
	"github.com/localwork/marketplace/internal/middleware"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/response"
	"github.com/localwork/marketplace/internal/usecase"
	"github.com/localwork/marketplace/internal/util"
)

// ApiHandler mirrors the listing and contact flows as JSON.
type ApiHandler struct {
	listings *usecase.ListingUsecase
	contacts *usecase.ContactUsecase
}

func NewApiHandler(listings *usecase.ListingUsecase, contacts *usecase.ContactUsecase) *ApiHandler {
	return &ApiHandler{listings: listings, contacts: contacts}
}

func (h *ApiHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/jobs", h.ListJobs)
	api.Get("/jobs/:id", h.GetJob)
	api.Post("/contact", middleware.RateLimiter(5, 1*time.Minute), h.CreateContact)
}

func (h *ApiHandler) ListJobs(c *fiber.Ctx) error {
	page, err := h.listings.Browse(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get job listings",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job listings",
		Data:    page.Results,
		Meta: response.ListMeta{
			Total:     len(page.Listings),
			Count:     len(page.Results),
			Locations: page.Locations,
			JobTypes:  page.JobTypes,
		},
	})
}

func (h *ApiHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.listings.Detail(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get job listing",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job listing",
		Data:    job,
	})
}

func (h *ApiHandler) CreateContact(c *fiber.Ctx) error {
	var form dto.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	sub, err := h.contacts.Submit(c.UserContext(), form)
	var ferr *util.FormError
	if errors.As(err, &ferr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: ferr.Message,
			Details: ferr.Errors,
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit contact message",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit contact message",
		Data:    sub,
	})
}

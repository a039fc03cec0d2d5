package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/dto"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/middleware"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/usecase"
	"github.com/localwork/marketplace/internal/util"
	"github.com/localwork/marketplace/internal/view"
	"github.com/localwork/marketplace/internal/web"
)

const PostJobSignInMessage = "Sign in to post a job listing"

type JobHandler struct {
	uc *usecase.ListingUsecase
}

func NewJobHandler(uc *usecase.ListingUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	protected := middleware.Protected(PostJobSignInMessage)

	app.Get("/find-jobs", h.FindJobs)
	app.Get("/job/:id", h.Detail)
	app.Post("/job/:id", middleware.RateLimiter(10, 1*time.Minute), h.Apply)
	app.Get("/post-job", protected, h.PostJobForm)
	app.Post("/post-job", protected, middleware.RateLimiter(10, 1*time.Minute), h.PostJob)
}

func filterFromQuery(c *fiber.Ctx) view.Filter {
	return view.Filter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		JobType:  c.Query("type"),
	}
}

func (h *JobHandler) FindJobs(c *fiber.Ctx) error {
	page, err := h.uc.Browse(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return err
	}
	return web.Render(c, fiber.StatusOK, "pages/find_jobs", fiber.Map{
		"Title": "Find Jobs",
		"Page":  page,
	})
}

func (h *JobHandler) Detail(c *fiber.Ctx) error {
	job, err := h.uc.Detail(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return jobNotFound(c)
	}
	if err != nil {
		return err
	}
	return web.Render(c, fiber.StatusOK, "pages/job_detail", fiber.Map{
		"Title":  job.JobTitle,
		"Job":    job,
		"Form":   dto.ApplyForm{},
		"Errors": map[string]string{},
	})
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	job, err := h.uc.Detail(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return jobNotFound(c)
	}
	if err != nil {
		return err
	}

	var form dto.ApplyForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}
	bind := fiber.Map{
		"Title":  job.JobTitle,
		"Job":    job,
		"Form":   form,
		"Errors": map[string]string{},
	}

	_, err = h.uc.Apply(c.UserContext(), identity.FromCtx(c).Member(), job.ID.String(), form)
	var ferr *util.FormError
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return web.Render(c, fiber.StatusUnauthorized, "pages/job_detail", bind)
	case errors.As(err, &ferr):
		bind["Errors"] = ferr.Errors
		return web.Render(c, fiber.StatusUnprocessableEntity, "pages/job_detail", bind)
	case err != nil:
		return err
	}
	bind["Applied"] = true
	return web.Render(c, fiber.StatusOK, "pages/job_detail", bind)
}

func (h *JobHandler) PostJobForm(c *fiber.Ctx) error {
	return renderPostJob(c, fiber.StatusOK, dto.PostJobForm{}, map[string]string{})
}

func (h *JobHandler) PostJob(c *fiber.Ctx) error {
	var form dto.PostJobForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	listing, err := h.uc.Post(c.UserContext(), form)
	var ferr *util.FormError
	if errors.As(err, &ferr) {
		return renderPostJob(c, fiber.StatusUnprocessableEntity, form, ferr.Errors)
	}
	if err != nil {
		return err
	}

	// the confirmation moves on to the listings by itself
	return web.Render(c, fiber.StatusOK, "pages/post_job", fiber.Map{
		"Title":   "Post a Job",
		"Posted":  listing,
		"Refresh": "3;url=/find-jobs",
	})
}

func renderPostJob(c *fiber.Ctx, status int, form dto.PostJobForm, errs map[string]string) error {
	return web.Render(c, status, "pages/post_job", fiber.Map{
		"Title":    "Post a Job",
		"Form":     form,
		"Errors":   errs,
		"JobTypes": dto.JobTypes,
	})
}

func jobNotFound(c *fiber.Ctx) error {
	return web.Render(c, fiber.StatusNotFound, "pages/job_not_found", fiber.Map{
		"Title": "Job not found",
	})
}

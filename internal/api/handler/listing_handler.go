package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sshuster/job-hero-dashboard/internal/api/metrics"
	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
	"github.com/sshuster/job-hero-dashboard/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// ListPublic handles GET /api/listings, the anonymous global collection.
//
// @Summary      List publicly visible listings
// @Tags         listings
// @Produce      json
// @Success      200  {object}  listingsResponse
// @Router       /api/listings [get]
func (h *ListingHandler) ListPublic(c echo.Context) error {
	listings, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listingsResponse{Listings: listings})
}

// ListByOwner handles GET /api/listings/user/:user_id. Unfiltered by status:
// an owner browsing their own collection must see drafts too.
//
// @Summary      List all listings owned by a user
// @Tags         listings
// @Produce      json
// @Param        user_id  path      string  true  "Owner user id"
// @Success      200      {object}  listingsResponse
// @Router       /api/listings/user/{user_id} [get]
func (h *ListingHandler) ListByOwner(c echo.Context) error {
	listings, err := h.service.ListByOwner(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listingsResponse{Listings: listings})
}

// Stats handles GET /api/listings/stats/:user_id.
//
// @Summary      Per-owner statistics report
// @Tags         listings
// @Produce      json
// @Param        user_id  path      string  true  "Owner user id"
// @Success      200      {object}  statsResponse
// @Router       /api/listings/stats/{user_id} [get]
func (h *ListingHandler) Stats(c echo.Context) error {
	start := time.Now()
	report, err := h.service.Stats(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}

	metrics.StatsRequestsTotal.Inc()
	metrics.StatsComputeDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, statsResponse{Stats: report})
}

// Get handles GET /api/listings/:id.
//
// @Summary      Get a listing by id
// @Tags         listings
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  listingResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	l, err := h.service.Get(c.Request().Context(), ctxOptionalActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listingResponse{Listing: l})
}

// Create handles POST /api/listings.
//
// @Summary      Create a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	l, err := h.service.Create(c.Request().Context(), actor, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(l.Category).Inc()
	return c.JSON(http.StatusCreated, listingResponse{Listing: l})
}

// Update handles PUT /api/listings/:id. Partial: only keys present in the
// payload overwrite stored values.
//
// @Summary      Update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Fields to update"
// @Success      200   {object}  listingResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	l, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateInput(req))
	if err != nil {
		countDenied(err)
		return err
	}

	return c.JSON(http.StatusOK, listingResponse{Listing: l})
}

// Delete handles DELETE /api/listings/:id. Hard delete, irreversible.
//
// @Summary      Delete a listing
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		countDenied(err)
		return err
	}

	metrics.ListingsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "listing deleted"})
}

func countDenied(err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		metrics.MutationsDeniedTotal.WithLabelValues("forbidden").Inc()
	case errors.Is(err, domain.ErrListingNotFound):
		metrics.MutationsDeniedTotal.WithLabelValues("not_found").Inc()
	}
}

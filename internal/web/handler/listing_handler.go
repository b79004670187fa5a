package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cuongbtq/workopia-be/internal/web/auth"
	"github.com/cuongbtq/workopia-be/internal/web/domain"
	"github.com/cuongbtq/workopia-be/internal/web/form"
	"github.com/cuongbtq/workopia-be/internal/web/model"
	"github.com/cuongbtq/workopia-be/shared/session"
	"github.com/gin-gonic/gin"
)

// Index handles GET /listings
// Shows all listings, newest first.
func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.store.ListListings(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	render(c, http.StatusOK, "listing_index.html", gin.H{
		"Listings": listings,
	})
}

// Show handles GET /listings/:id
func (h *ListingHandler) Show(c *gin.Context) {
	listing, ok := h.fetchListing(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "listing_show.html", gin.H{
		"Listing": listing,
	})
}

// New handles GET /listings/create
// Shows an empty create form.
func (h *ListingHandler) New(c *gin.Context) {
	render(c, http.StatusOK, "listing_create.html", gin.H{
		"Values": map[string]string{},
		"Errors": map[string]string{},
	})
}

// Create handles POST /listings
// Validates the submission and inserts a listing owned by the session
// user. On validation failure the form is re-rendered with the errors
// and the submitted values; nothing is persisted.
func (h *ListingHandler) Create(c *gin.Context) {
	sess := CurrentSession(c)

	f, err := h.parseForm(c)
	if err != nil {
		return
	}

	if errs := f.Validate(); len(errs) > 0 {
		render(c, http.StatusUnprocessableEntity, "listing_create.html", gin.H{
			"Values": f.Values(),
			"Errors": errs,
		})
		return
	}

	userID := sess.UserID()

	id, err := h.store.CreateListing(c.Request.Context(), f, userID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.publishEvent(c, domain.EventListingCreated, id, userID)

	sess.SetFlash(session.FlashSuccess, "Listing created successfully")
	c.Redirect(http.StatusSeeOther, "/listings")
}

// Edit handles GET /listings/:id/edit
// Only the owner may see the edit form.
func (h *ListingHandler) Edit(c *gin.Context) {
	listing, ok := h.fetchListing(c)
	if !ok {
		return
	}

	if !h.requireOwner(c, listing, "edit") {
		return
	}

	render(c, http.StatusOK, "listing_edit.html", gin.H{
		"ListingID": listing.ID,
		"Values":    listingValues(listing),
		"Errors":    map[string]string{},
	})
}

// Update handles PUT /listings/:id
// Existence is checked first, then ownership, then validation; the
// UPDATE touches exactly the submitted allow-listed fields.
func (h *ListingHandler) Update(c *gin.Context) {
	listing, ok := h.fetchListing(c)
	if !ok {
		return
	}

	if !h.requireOwner(c, listing, "update") {
		return
	}

	f, err := h.parseForm(c)
	if err != nil {
		return
	}

	if errs := f.Validate(); len(errs) > 0 {
		render(c, http.StatusUnprocessableEntity, "listing_edit.html", gin.H{
			"ListingID": listing.ID,
			"Values":    f.Values(),
			"Errors":    errs,
		})
		return
	}

	if err := h.store.UpdateListing(c.Request.Context(), listing.ID, f); err != nil {
		h.serverError(c, err)
		return
	}

	h.publishEvent(c, domain.EventListingUpdated, listing.ID, listing.UserID)

	CurrentSession(c).SetFlash(session.FlashSuccess, "Listing updated")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/listings/%d", listing.ID))
}

// Destroy handles DELETE /listings/:id
func (h *ListingHandler) Destroy(c *gin.Context) {
	listing, ok := h.fetchListing(c)
	if !ok {
		return
	}

	if !h.requireOwner(c, listing, "delete") {
		return
	}

	if err := h.store.DeleteListing(c.Request.Context(), listing.ID); err != nil {
		h.serverError(c, err)
		return
	}

	h.publishEvent(c, domain.EventListingDeleted, listing.ID, listing.UserID)

	CurrentSession(c).SetFlash(session.FlashSuccess, "Listing deleted successfully")
	c.Redirect(http.StatusSeeOther, "/listings")
}

// fetchListing resolves the :id path parameter to a listing, rendering
// the 404 page when the id is malformed or has no row. The not-found
// response always wins over authorization and validation.
func (h *ListingHandler) fetchListing(c *gin.Context) (*model.Listing, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c, "Listing not found")
		return nil, false
	}

	listing, err := h.store.GetListingByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrListingNotFound {
			h.notFound(c, "Listing not found")
		} else {
			h.serverError(c, err)
		}
		return nil, false
	}

	return listing, true
}

// requireOwner enforces the ownership check for mutations. On a
// mismatch it sets an error flash and redirects to the listing's page
// without touching the row.
func (h *ListingHandler) requireOwner(c *gin.Context, listing *model.Listing, action string) bool {
	sess := CurrentSession(c)

	if auth.IsOwner(sess.UserID(), listing.UserID) {
		return true
	}

	sess.SetFlash(session.FlashError, fmt.Sprintf("You are not authorized to %s this listing", action))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/listings/%d", listing.ID))
	return false
}

// parseForm parses the request body and filters it through the
// allow-list. Replies 400 on an unparseable body.
func (h *ListingHandler) parseForm(c *gin.Context) (*form.ListingForm, error) {
	if err := c.Request.ParseForm(); err != nil {
		render(c, http.StatusBadRequest, "error.html", gin.H{
			"Status":  http.StatusBadRequest,
			"Message": "Invalid form submission",
		})
		return nil, err
	}

	return form.ParseListing(c.Request.PostForm), nil
}

// publishEvent emits a listing event. Publishing is best effort: a
// broker failure is logged and the request still succeeds.
func (h *ListingHandler) publishEvent(c *gin.Context, eventType string, listingID, userID int64) {
	if h.events == nil {
		return
	}

	event := domain.ListingEvent{
		EventType:  eventType,
		ListingID:  listingID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}

	if err := h.events.PublishListingEvent(c.Request.Context(), event); err != nil {
		h.logger.Warn("Failed to publish listing event",
			slog.String("event_type", eventType),
			slog.Int64("listing_id", listingID),
			slog.String("error", err.Error()),
		)
	}
}

// listingValues flattens a listing into the template value map used by
// the edit form.
func listingValues(l *model.Listing) map[string]string {
	return map[string]string{
		"title":        l.Title,
		"description":  l.Description,
		"salary":       l.Salary,
		"requirements": l.Requirements.String,
		"benefits":     l.Benefits.String,
		"tags":         l.Tags.String,
		"company":      l.Company.String,
		"address":      l.Address.String,
		"city":         l.City,
		"state":        l.State,
		"phone":        l.Phone.String,
		"email":        l.Email,
	}
}

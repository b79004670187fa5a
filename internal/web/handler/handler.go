package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cuongbtq/workopia-be/internal/web/domain"
	"github.com/cuongbtq/workopia-be/internal/web/form"
	"github.com/cuongbtq/workopia-be/internal/web/model"
	"github.com/cuongbtq/workopia-be/shared/session"
	"github.com/gin-gonic/gin"
)

// ListingStore is the persistence gateway the handlers write through.
type ListingStore interface {
	ListListings(ctx context.Context) ([]model.Listing, error)
	GetListingByID(ctx context.Context, id int64) (*model.Listing, error)
	CreateListing(ctx context.Context, f *form.ListingForm, userID int64) (int64, error)
	UpdateListing(ctx context.Context, id int64, f *form.ListingForm) error
	DeleteListing(ctx context.Context, id int64) error
}

// EventPublisher emits listing events after successful mutations.
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, event domain.ListingEvent) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger   *slog.Logger
	Store    ListingStore
	Events   EventPublisher
	Sessions *session.Store
}

// ListingHandler handles the listing pages and mutations
type ListingHandler struct {
	logger *slog.Logger
	store  ListingStore
	events EventPublisher
}

// NewListingHandler creates a new ListingHandler instance
func NewListingHandler(deps *Dependencies) *ListingHandler {
	return &ListingHandler{
		logger: deps.Logger,
		store:  deps.Store,
		events: deps.Events,
	}
}

// CurrentSession returns the session the middleware attached to the
// request, or nil when none is present.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(session.ContextKey)
	if !ok {
		return nil
	}

	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}

	return sess
}

// render draws a page, folding in pending flashes and the signed-in
// user so every template can show them.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if sess := CurrentSession(c); sess != nil {
		data["Flashes"] = sess.PopFlashes()
		data["CurrentUserID"] = sess.UserID()
	}

	c.HTML(status, name, data)
}

// notFound renders the 404 page.
func (h *ListingHandler) notFound(c *gin.Context, message string) {
	render(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": message,
	})
}

// serverError logs the cause and renders a generic failure page. The
// underlying driver message never reaches the response.
func (h *ListingHandler) serverError(c *gin.Context, err error) {
	h.logger.Error("Request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)

	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again later.",
	})
}

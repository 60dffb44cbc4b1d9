package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"northern-forge-site/internal/contactform"
	"northern-forge-site/internal/delivery/http/middleware"
	"northern-forge-site/internal/delivery/http/response"
	"northern-forge-site/internal/domain"
	"northern-forge-site/pkg/apperror"
	"northern-forge-site/pkg/logger"
	"northern-forge-site/pkg/metrics"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	validate  *validator.Validate
}

// ContactAccepted is the payload of a successful submission
type ContactAccepted struct {
	ID string `json:"id"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public gin.IRouter, contactUC domain.ContactUsecase, validate *validator.Validate, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		validate:  validate,
	}

	if limiter != nil {
		public.POST("/contact", limiter, handler.SubmitContact)
		return
	}
	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send an enquiry through the contact form. Field errors come back under error as {field: message}.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactAccepted}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactForm
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ContactSubmissions.WithLabelValues("api", "bad_request").Inc()
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	form := contactform.New(h.validate, nil, "")
	form.Edit(req)

	sub, err := form.Submit(c.Request.Context(), h.contactUC)
	if err != nil {
		var fields domain.FieldErrors
		switch {
		case errors.As(err, &fields):
			metrics.ContactSubmissions.WithLabelValues("api", "rejected").Inc()
			_ = c.Error(apperror.Unprocessable("Validation failed", fields))
		case errors.Is(err, domain.ErrDeliveryUnavailable):
			metrics.ContactSubmissions.WithLabelValues("api", "unavailable").Inc()
			_ = c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
		case errors.Is(err, domain.ErrDeliveryFailed):
			metrics.ContactSubmissions.WithLabelValues("api", "failed").Inc()
			_ = c.Error(apperror.BadGateway("Failed to send message. Please try again later.", err))
		default:
			metrics.ContactSubmissions.WithLabelValues("api", "failed").Inc()
			_ = c.Error(err)
		}
		return
	}

	metrics.ContactSubmissions.WithLabelValues("api", "accepted").Inc()
	logger.Log.Info("contact submission accepted",
		"submission_id", sub.ID,
		"service", sub.ServiceInterest,
		"request_id", c.GetString(middleware.RequestIDKey),
	)
	response.Success(c, http.StatusOK, "Your message has been sent successfully!", ContactAccepted{ID: sub.ID})
}

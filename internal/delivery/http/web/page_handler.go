// Package web serves the server-rendered pages of the site.
package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	g "maragu.dev/gomponents"

	"northern-forge-site/internal/content"
	"northern-forge-site/internal/contactform"
	"northern-forge-site/internal/delivery/http/middleware"
	"northern-forge-site/internal/domain"
	"northern-forge-site/internal/modal"
	"northern-forge-site/internal/ogimage"
	"northern-forge-site/internal/web/components"
	"northern-forge-site/pkg/apperror"
	"northern-forge-site/pkg/flash"
	"northern-forge-site/pkg/logger"
	"northern-forge-site/pkg/metrics"
)

type PageDeps struct {
	Site      domain.SiteContent
	Offerings []string
	Validate  *validator.Validate
	ContactUC domain.ContactUsecase
	Flash     *flash.Codec
	OGImage   *ogimage.Renderer
	SiteURL   string
	// SecureCookies marks the flash cookie Secure
	SecureCookies bool
	// ContactLimiter guards POST /contact; nil disables it
	ContactLimiter gin.HandlerFunc
}

type PageHandler struct {
	deps PageDeps
	now  func() time.Time
}

// NewPageHandler registers the page routes
func NewPageHandler(r gin.IRouter, deps PageDeps) *PageHandler {
	h := &PageHandler{deps: deps, now: time.Now}

	r.GET("/", h.Home)
	contact := []gin.HandlerFunc{h.SubmitContact}
	if deps.ContactLimiter != nil {
		contact = append([]gin.HandlerFunc{deps.ContactLimiter}, contact...)
	}
	r.POST("/contact", contact...)
	r.GET("/blog/:slug", h.BlogPost)
	r.GET("/og-image.png", h.OGImage)

	return h
}

// Home renders the single page. ?contact=open mounts the contact modal and
// ?service= preselects its service interest.
func (h *PageHandler) Home(c *gin.Context) {
	doc := modal.NewDocument()
	ctrl := modal.NewController(doc)
	defer ctrl.Teardown()
	ctrl.OnOpen(func(category string) {
		metrics.ModalOpens.WithLabelValues(h.categoryLabel(category)).Inc()
	})

	if c.Query("contact") == "open" {
		ctrl.Open(c.Query("service"))
	}

	props := h.homeProps(doc)
	props.Notice = h.popFlash(c)

	if ctrl.IsOpen() {
		form := contactform.New(h.deps.Validate, ctrl, ctrl.PreselectedCategory())
		props.Modal = h.modalProps(c, form)
	}

	h.render(c, http.StatusOK, components.HomePage(props))
}

// SubmitContact handles the modal's form post. Accepted submissions redirect
// back to the page with a one-shot notice; anything else re-renders the page
// with the modal open.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var in domain.ContactForm
	if err := c.ShouldBind(&in); err != nil {
		metrics.ContactSubmissions.WithLabelValues("form", "bad_request").Inc()
		_ = c.Error(apperror.New(http.StatusBadRequest, "Invalid form submission", err))
		return
	}

	doc := modal.NewDocument()
	ctrl := modal.NewController(doc)
	defer ctrl.Teardown()

	// The form was posted from an open modal
	ctrl.Open(in.ServiceInterest)
	form := contactform.New(h.deps.Validate, ctrl, "")
	form.Edit(in)

	sub, err := form.Submit(c.Request.Context(), h.deps.ContactUC)
	if err == nil {
		metrics.ContactSubmissions.WithLabelValues("form", "accepted").Inc()
		logger.Log.Info("contact submission accepted",
			"submission_id", sub.ID,
			"service", sub.ServiceInterest,
			"request_id", c.GetString(middleware.RequestIDKey),
		)
		h.setFlash(c, flash.Message{Kind: flash.KindSuccess, Text: content.SuccessNotice})
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}

	status := http.StatusBadGateway
	outcome := "failed"
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
		outcome = "rejected"
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		status = http.StatusServiceUnavailable
		outcome = "unavailable"
	default:
		logger.Log.Error("contact delivery failed",
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
	}
	metrics.ContactSubmissions.WithLabelValues("form", outcome).Inc()

	props := h.homeProps(doc)
	props.Modal = h.modalProps(c, form)
	h.render(c, status, components.HomePage(props))
}

func (h *PageHandler) BlogPost(c *gin.Context) {
	post, err := content.Post(c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		h.render(c, http.StatusNotFound, components.NotFoundPage(h.deps.Site, h.now().Year()))
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	body, err := content.RenderPost(post)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.render(c, http.StatusOK, components.PostPage(components.PostProps{
		Config: components.PageConfig{
			Title:       post.Title + " - " + h.deps.Site.CompanyName,
			Description: post.Summary,
			URL:         h.deps.SiteURL,
		},
		Site: h.deps.Site,
		Post: post,
		HTML: body,
		Year: h.now().Year(),
	}))
}

func (h *PageHandler) OGImage(c *gin.Context) {
	data, err := h.deps.OGImage.PNG()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", data)
}

// homeProps snapshots the scroll lock, so call it after the controller has
// reached its final state for this render
func (h *PageHandler) homeProps(doc *modal.Document) components.HomeProps {
	return components.HomeProps{
		Config: components.PageConfig{
			URL:       h.deps.SiteURL,
			BodyClass: doc.BodyClass(),
		},
		Site:          h.deps.Site,
		QuoteCategory: content.QuoteCategory,
		Year:          h.now().Year(),
	}
}

func (h *PageHandler) modalProps(c *gin.Context, form *contactform.Form) *components.ContactModalProps {
	return &components.ContactModalProps{
		Values:    form.Values(),
		Errors:    form.Errors(),
		Failure:   form.Failure(),
		Offerings: h.deps.Offerings,
		CSRFToken: c.GetString(middleware.CSRFTokenKey),
	}
}

// categoryLabel keeps the modal metric's label set bounded
func (h *PageHandler) categoryLabel(category string) string {
	switch category {
	case "":
		return "none"
	case content.QuoteCategory:
		return category
	}
	for _, o := range h.deps.Offerings {
		if o == category {
			return category
		}
	}
	return "other"
}

func (h *PageHandler) setFlash(c *gin.Context, m flash.Message) {
	token, err := h.deps.Flash.Encode(m)
	if err != nil {
		logger.Log.Error("encode flash", "error", err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flash.CookieName, token, int(h.deps.Flash.TTL().Seconds()), "/", "", h.deps.SecureCookies, true)
}

// popFlash reads and clears the flash cookie. Invalid or expired cookies are
// dropped silently.
func (h *PageHandler) popFlash(c *gin.Context) *components.Notice {
	raw, err := c.Cookie(flash.CookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flash.CookieName, "", -1, "/", "", h.deps.SecureCookies, true)

	m, err := h.deps.Flash.Decode(raw)
	if err != nil {
		logger.Log.Debug("discarding flash cookie", "error", err)
		return nil
	}
	return &components.Notice{Kind: m.Kind, Text: m.Text}
}

func (h *PageHandler) render(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		logger.Log.Error("render page",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
	}
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, components.NotFoundPage(h.deps.Site, h.now().Year()))
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"northern-forge-site/internal/delivery/http/response"
	"northern-forge-site/internal/domain"
)

type ContentHandler struct {
	site      domain.SiteContent
	offerings []string
}

func NewContentHandler(public gin.IRouter, site domain.SiteContent, offerings []string) {
	handler := &ContentHandler{site: site, offerings: offerings}

	public.GET("/services", handler.ListServices)
	public.GET("/content", handler.GetContent)
}

// ListServices godoc
// @Summary      List Service Offerings
// @Description  The values accepted for serviceInterest
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /services [get]
func (h *ContentHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "Service offerings", h.offerings)
}

// GetContent godoc
// @Summary      Get Page Content
// @Description  Pricing tiers, narrative sections, blog teasers and contact details
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SiteContent}
// @Router       /content [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	response.Success(c, http.StatusOK, "Site content", h.site)
}

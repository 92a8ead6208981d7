package api

import (
	"errors"
	"net/http"

	resdto "retreat-api/internal/handler/dto/response"
	"retreat-api/internal/handler/httperr"
	"retreat-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	q queries.ContentQueries
}

func NewContentHandler(q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{q: q}
}

// @Summary Site content
// @Description Every section of the site copy
// @Tags content
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/content [get]
func (h *ContentHandler) GetSite(c *gin.Context) {
	site, err := h.q.GetSite(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, site)
}

// @Summary Content section
// @Description One top-level section of the site copy, e.g. packages or trips
// @Tags content
// @Produce json
// @Param section path string true "Section name"
// @Success 200 {object} resdto.SectionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/content/{section} [get]
func (h *ContentHandler) GetSection(c *gin.Context) {
	name := c.Param("section")
	section, err := h.q.GetSection(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, queries.ErrContentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Content section not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SectionResponse{Name: name, Content: section})
}

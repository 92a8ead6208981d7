package api

import (
	"net/http"

	resdto "retreat-api/internal/handler/dto/response"
	"retreat-api/internal/handler/httperr"
	"retreat-api/internal/handler/middleware"
	"retreat-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	gate usecase.SpamGate
}

func NewFormHandler(gate usecase.SpamGate) *FormHandler {
	return &FormHandler{gate: gate}
}

// @Summary Record form start
// @Description Called when a visitor first focuses a form; later calls keep the first time
// @Tags forms
// @Success 204 "No Content"
// @Failure 500 {object} httperr.Response
// @Router /api/forms/start [post]
func (h *FormHandler) Start(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, msgSessionRequired, nil)
		return
	}
	if err := h.gate.RecordFormStart(c.Request.Context(), clientID.String()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Honeypot field
// @Description Props for the hidden input every form must render and leave empty
// @Tags forms
// @Produce json
// @Success 200 {object} resdto.HoneypotFieldResponse
// @Router /api/forms/honeypot [get]
func (h *FormHandler) Honeypot(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewHoneypotFieldResponse())
}

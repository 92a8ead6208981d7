package api

import (
	"errors"
	"net/http"

	reqdto "retreat-api/internal/handler/dto/request"
	resdto "retreat-api/internal/handler/dto/response"
	"retreat-api/internal/handler/httperr"
	"retreat-api/internal/handler/middleware"
	"retreat-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest  = "Invalid request"
	msgFixFields       = "Please correct the highlighted fields."
	msgInternalError   = "Internal server error"
	msgSessionRequired = "Session required"
)

var errMissingSession = errors.New("client session missing from context")

type InquiryHandler struct {
	cmds commands.InquiryCommands
}

func NewInquiryHandler(cmds commands.InquiryCommands) *InquiryHandler {
	return &InquiryHandler{cmds: cmds}
}

// @Summary Submit booking request
// @Description Runs the anti-spam gate, validates, sanitizes and emails a booking request
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [post]
func (h *InquiryHandler) SubmitBooking(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, msgSessionRequired, nil)
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.SubmitBooking(c.Request.Context(), clientID.String(), input)
	if err != nil {
		abortSubmit(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

// @Summary Submit contact message
// @Description Runs the anti-spam gate, validates, sanitizes and emails a contact message
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/contact [post]
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, msgSessionRequired, nil)
		return
	}

	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.SubmitContact(c.Request.Context(), clientID.String(), input)
	if err != nil {
		abortSubmit(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

func abortSubmit(c *gin.Context, err error) {
	var (
		spamErr       *commands.SpamRejectedError
		validationErr *commands.ValidationError
		deliveryErr   *commands.DeliveryError
	)
	switch {
	case errors.As(err, &spamErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, spamErr.Message, nil)
	case errors.As(err, &validationErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgFixFields,
			resdto.ValidationDetail{Fields: validationErr.Fields})
	case errors.As(err, &deliveryErr):
		httperr.AbortWithError(c, http.StatusBadGateway, err, deliveryErr.Message, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
	}
}

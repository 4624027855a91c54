package api

import (
	"net/http"

	reqdto "meetslot/internal/handler/dto/request"
	resdto "meetslot/internal/handler/dto/response"
	"meetslot/internal/handler/httperr"
	"meetslot/internal/pkg/errs"
	"meetslot/internal/usecase/commands"
	"meetslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking link. The token in the path is
// the only credential an invitee holds.
type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.MeetingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.MeetingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Booking page
// @Description Meeting behind a booking link with its AVAILABLE slots
// @Tags booking
// @Produce json
// @Param token path string true "Booking token"
// @Success 200 {object} resdto.BookingViewResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /book/{token} [get]
func (h *BookingHandler) View(c *gin.Context) {
	view, err := h.q.GetBookingView(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidToken) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid booking link", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Description Pick one slot. The first successful confirmation wins; later ones get 409.
// @Tags booking
// @Accept json
// @Produce json
// @Param token path string true "Booking token"
// @Param request body reqdto.ConfirmBookingRequest true "Selected slot"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /book/{token}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	receipt, err := h.cmds.ConfirmBooking(c.Request.Context(), c.Param("token"), req.SlotID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errs.Is(err, commands.ErrAlreadyConfirmedOrInvalid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Meeting already confirmed or invalid", nil)
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot not available", nil)
		case errs.Is(err, commands.ErrPersistenceFailure):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking could not be completed, try again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingReceipt(receipt))
}

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
	"github.com/google/uuid"
)

type MeetingHandler struct {
	cmds commands.MeetingCommands
	q    queries.MeetingQueries
}

func NewMeetingHandler(cmds commands.MeetingCommands, q queries.MeetingQueries) *MeetingHandler {
	return &MeetingHandler{cmds: cmds, q: q}
}

// @Summary Create meeting
// @Description Create an OPEN meeting and return its booking link. The link is only shown once.
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMeetingRequest true "Create meeting request"
// @Success 201 {object} resdto.CreateMeetingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	var req reqdto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateMeeting(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		case errs.Is(err, commands.ErrOwnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.Header("Location", "/api/meetings/"+result.Meeting.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateMeetingResult(result))
}

// @Summary List meetings
// @Description List meetings together with their organizer
// @Tags meetings
// @Produce json
// @Success 200 {array} resdto.MeetingListItemResponse
// @Failure 500 {object} httperr.Response
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	items, err := h.q.ListMeetings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetingList(items))
}

// @Summary Get meeting
// @Description Organizer view of a meeting with every slot
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.MeetingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/meetings/{id} [get]
func (h *MeetingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetMeeting(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrMeetingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetingView(view))
}

// @Summary Add slots
// @Description Offer candidate time slots for an OPEN meeting. Each slot is stored on its own; 207 reports which ones failed.
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body reqdto.AddSlotsRequest true "Slots"
// @Success 201 {object} resdto.AddSlotsResponse
// @Success 207 {object} resdto.AddSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/meetings/{id}/slots [post]
func (h *MeetingHandler) AddSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AddSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddSlots(c.Request.Context(), id, req.ToInputs())
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, resdto.FromAddSlotsResult(result))
	case errs.Is(err, commands.ErrPartialSlotBatch) && result != nil:
		c.JSON(http.StatusMultiStatus, resdto.FromAddSlotsResult(result))
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, commands.ErrMeetingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, commands.ErrMeetingNotOpen):
		httperr.AbortWithError(c, http.StatusConflict, err, "Meeting is not open", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

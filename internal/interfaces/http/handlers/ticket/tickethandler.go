package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/ticket/usecases"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

// Handler handles ticket HTTP requests. All routes are nested under a
// product prefix; tickets are addressed by their per-product number,
// never by the database id.
type Handler struct {
	createTicket      usecases.CreateTicketExecutor
	updateTicket      usecases.UpdateTicketExecutor
	deleteTicket      usecases.DeleteTicketExecutor
	getTicket         usecases.GetTicketExecutor
	listTickets       usecases.ListTicketsExecutor
	listTicketChanges usecases.ListTicketChangesExecutor
	listChanges       usecases.ListChangesExecutor
	getChange         usecases.GetChangeExecutor
	renderTicket      usecases.RenderTicketExecutor
	logger            logger.Interface
}

// NewHandler creates a new ticket handler.
func NewHandler(
	createTicket usecases.CreateTicketExecutor,
	updateTicket usecases.UpdateTicketExecutor,
	deleteTicket usecases.DeleteTicketExecutor,
	getTicket usecases.GetTicketExecutor,
	listTickets usecases.ListTicketsExecutor,
	listTicketChanges usecases.ListTicketChangesExecutor,
	listChanges usecases.ListChangesExecutor,
	getChange usecases.GetChangeExecutor,
	renderTicket usecases.RenderTicketExecutor,
) *Handler {
	return &Handler{
		createTicket:      createTicket,
		updateTicket:      updateTicket,
		deleteTicket:      deleteTicket,
		getTicket:         getTicket,
		listTickets:       listTickets,
		listTicketChanges: listTicketChanges,
		listChanges:       listChanges,
		getChange:         getChange,
		renderTicket:      renderTicket,
		logger:            logger.NewLogger().Named("ticket-handler"),
	}
}

// ticketNumber parses the :tid path parameter. It reports false after
// writing the error response when the parameter is not a valid number.
func (h *Handler) ticketNumber(c *gin.Context) (int, bool) {
	raw := c.Param("tid")
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket number: "+raw)
		return 0, false
	}
	return number, true
}

// CreateTicket handles POST /products/:prefix/tickets.
func (h *Handler) CreateTicket(c *gin.Context) {
	prefix := c.Param("prefix")

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "product", prefix, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createTicket.Execute(c.Request.Context(), req.ToCommand(prefix))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

// UpdateTicket handles PUT /products/:prefix/tickets/:tid.
func (h *Handler) UpdateTicket(c *gin.Context) {
	prefix := c.Param("prefix")

	number, ok := h.ticketNumber(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update ticket request", "product", prefix, "ticket", number, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateTicket.Execute(c.Request.Context(), req.ToCommand(prefix, number))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", result)
}

// DeleteTicket handles DELETE /products/:prefix/tickets/:tid.
func (h *Handler) DeleteTicket(c *gin.Context) {
	prefix := c.Param("prefix")

	number, ok := h.ticketNumber(c)
	if !ok {
		return
	}

	cmd := usecases.DeleteTicketCommand{Product: prefix, Number: number}
	if _, err := h.deleteTicket.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetTicket handles GET /products/:prefix/tickets/:tid.
func (h *Handler) GetTicket(c *gin.Context) {
	prefix := c.Param("prefix")

	number, ok := h.ticketNumber(c)
	if !ok {
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Product: prefix,
		Number:  number,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /products/:prefix/tickets.
func (h *Handler) ListTickets(c *gin.Context) {
	prefix := c.Param("prefix")
	pagination := utils.ParsePagination(c)

	result, err := h.listTickets.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Product:  prefix,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, pagination.Page, pagination.PageSize)
}

// ListChanges handles GET /products/:prefix/tickets/:tid/changes.
func (h *Handler) ListChanges(c *gin.Context) {
	prefix := c.Param("prefix")

	number, ok := h.ticketNumber(c)
	if !ok {
		return
	}

	result, err := h.listTicketChanges.Execute(c.Request.Context(), usecases.ListTicketChangesQuery{
		Product: prefix,
		Number:  number,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Changes)
}

// ListProductChanges handles GET /products/:prefix/changes. It returns
// the change history across all tickets of the product in append order.
func (h *Handler) ListProductChanges(c *gin.Context) {
	prefix := c.Param("prefix")
	pagination := utils.ParsePagination(c)

	result, err := h.listChanges.Execute(c.Request.Context(), usecases.ListChangesQuery{
		Product:  prefix,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Changes, result.Total, pagination.Page, pagination.PageSize)
}

// GetChange handles GET /products/:prefix/changes/:time. Change entries
// are addressed by their millisecond timestamp within the product.
func (h *Handler) GetChange(c *gin.Context) {
	prefix := c.Param("prefix")

	raw := c.Param("time")
	timeMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || timeMillis < 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid change time: "+raw)
		return
	}

	result, err := h.getChange.Execute(c.Request.Context(), usecases.GetChangeQuery{
		Product: prefix,
		Time:    timeMillis,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RenderDescription handles GET /products/:prefix/tickets/:tid/render.
// It returns the ticket description rendered from markdown to sanitized
// HTML.
func (h *Handler) RenderDescription(c *gin.Context) {
	prefix := c.Param("prefix")

	number, ok := h.ticketNumber(c)
	if !ok {
		return
	}

	result, err := h.renderTicket.Execute(c.Request.Context(), usecases.RenderTicketQuery{
		Product: prefix,
		Number:  number,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/request"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/response"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	ticketdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/ticket"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/ticket"
)

type TicketHandler struct {
	ticketUsecase ticket.TicketUsecase
}

func NewTicketHandler(ticketUsecase ticket.TicketUsecase) *TicketHandler {
	return &TicketHandler{ticketUsecase: ticketUsecase}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req request.CreateTicket
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.UserID == "" || req.EventID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "userId and eventId are required"})
		return
	}

	output, err := h.ticketUsecase.CreateTicket(&ticketdto.CreateTicketInput{
		UserID:  req.UserID,
		EventID: req.EventID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTicketResponse(output))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	referenceCode := c.Param("referenceCode")

	output, err := h.ticketUsecase.GetTicketByReferenceCode(referenceCode)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(output))
}

func toTicketResponse(output *ticketdto.TicketOutput) response.Ticket {
	return response.Ticket{
		ID:            output.Ticket.ID,
		UserID:        output.Ticket.UserID,
		EventID:       output.Ticket.EventID,
		EventTitle:    output.EventTitle,
		ReferenceCode: output.Ticket.ReferenceCode,
		Status:        string(output.Ticket.Status),
		PaymentID:     output.Ticket.PaymentID,
		Amount:        output.Ticket.Amount,
	}
}

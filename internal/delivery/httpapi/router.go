package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kiamaikocoders/wya-payment-service/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all HTTP routes. CORS is open to the configured SPA
// origins; the gateway callback is exempt from CORS concerns since it is
// a server-to-server call.
func NewRouter(
	cfg *config.WYAConfig,
	paymentHandler *PaymentHandler,
	ticketHandler *TicketHandler,
	notificationHandler *NotificationHandler,
) *gin.Engine {
	r := gin.Default()

	allowedOrigins := cfg.HTTPServer.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/payments/initiate", paymentHandler.InitiatePayment)
		v1.POST("/payments/mpesa/callback", paymentHandler.MpesaCallback)
		v1.GET("/payments/:checkoutRequestId", paymentHandler.GetPaymentStatus)

		v1.POST("/tickets", ticketHandler.CreateTicket)
		v1.GET("/tickets/:referenceCode", ticketHandler.GetTicket)

		v1.GET("/users/:userId/notifications", notificationHandler.ListNotifications)
		v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
		v1.POST("/users/:userId/notifications/read-all", notificationHandler.MarkAllRead)
	}

	return r
}

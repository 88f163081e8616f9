package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kiamaikocoders/wya-payment-service/internal/app/background"
	"github.com/kiamaikocoders/wya-payment-service/internal/app/setup"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	usecases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to initialize usecases: %v", err)
	}

	paymentHandler := httpapi.NewPaymentHandler(usecases.PaymentUsecase)
	ticketHandler := httpapi.NewTicketHandler(usecases.TicketUsecase)
	notificationHandler := httpapi.NewNotificationHandler(usecases.NotificationUsecase)

	router := httpapi.NewRouter(deps.Config, paymentHandler, ticketHandler, notificationHandler)

	tasks := background.NewBackgroundTasks(usecases.PaymentUsecase)
	tasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"quickbite/config"
	httpapi "quickbite/internal/api/http"
	"quickbite/internal/catalog"
	"quickbite/internal/service"
	"quickbite/internal/storage"
	"quickbite/internal/store"
)

const orderEventsTopic = "order-events"

func main() {
	st := store.New(catalog.Seed())

	var promoCache service.PromoCache
	if os.Getenv("REDIS_HOST") != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		promoCache = storage.NewRedisCache(rdb, 7*24*time.Hour)
	} else {
		log.Println("REDIS_HOST not set, promo redemption tracking disabled")
	}

	var publisher *service.Publisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter(orderEventsTopic)
		defer writer.Close()
		publisher = service.NewPublisher(writer)

		reader := config.NewKafkaReader(orderEventsTopic, "quickbite-dispatch")
		defer reader.Close()
		dispatcher := service.NewDispatcher(reader, st)
		go dispatcher.Start(context.Background())
	} else {
		log.Println("KAFKA_BROKER not set, dispatch simulation disabled")
	}

	checkout := service.NewCheckoutService(promoCache, store.DeliveryFee)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	qr := service.DefaultQRGenerator{BaseURL: baseURL}

	handler := httpapi.NewHandler(st, checkout, publisher, qr)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}

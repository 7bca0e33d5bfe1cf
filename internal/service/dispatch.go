package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"quickbite/internal/domain"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderPlaced  = "order_placed"
	EventOrderAdvance = "order_advance"
)

// OrderEvent is the wire format on the order-events topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StatusAdvancer moves an order one lifecycle step.
type StatusAdvancer interface {
	AdvanceOrder(orderID string) (domain.OrderStatus, error)
}

type Publisher struct {
	Writer EventWriter
}

func NewPublisher(writer EventWriter) *Publisher {
	return &Publisher{Writer: writer}
}

// OrderPlaced emits the event that starts an order's delivery lifecycle.
// With no writer configured the publish is skipped, not failed: the order
// already exists in the store.
func (p *Publisher) OrderPlaced(ctx context.Context, order domain.Order) error {
	if p == nil || p.Writer == nil {
		log.Printf("Warning: event writer is nil, skipping publish for order %s", order.ID)
		return nil
	}

	event := OrderEvent{
		Type:         EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.Restaurant.ID,
		TotalAmount:  order.TotalAmount,
		Timestamp:    order.OrderTime,
	}
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
}

// Dispatcher consumes order events and drives the status lifecycle. Each
// event advances the referenced order exactly one step, so the full
// placed-to-delivered progression needs one trigger per step.
type Dispatcher struct {
	Reader *kafka.Reader
	Orders StatusAdvancer
}

func NewDispatcher(reader *kafka.Reader, orders StatusAdvancer) *Dispatcher {
	return &Dispatcher{Reader: reader, Orders: orders}
}

func (d *Dispatcher) Start(ctx context.Context) {
	log.Println("Starting dispatch consumer...")
	for {
		message, err := d.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		d.ProcessEvent(event)
	}
}

func (d *Dispatcher) ProcessEvent(event OrderEvent) {
	if event.Type != EventOrderPlaced && event.Type != EventOrderAdvance {
		return
	}

	status, err := d.Orders.AdvanceOrder(event.OrderID)
	if err != nil {
		log.Printf("Error advancing order %s: %v", event.OrderID, err)
		return
	}
	if status == "" {
		log.Printf("Ignoring event for unknown order %s", event.OrderID)
		return
	}
	log.Printf("Order %s advanced to %s", event.OrderID, status)
}

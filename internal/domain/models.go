package domain

import "time"

type FoodItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	OriginalPrice   float64  `json:"original_price,omitempty"`
	ImageURL        string   `json:"image_url"`
	Category        string   `json:"category"`
	IsVeg           bool     `json:"is_veg"`
	Rating          float64  `json:"rating"`
	PreparationTime int      `json:"preparation_time"`
	IsAvailable     bool     `json:"is_available"`
	Customizations  []string `json:"customizations,omitempty"`
}

type Restaurant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	CoverImageURL string     `json:"cover_image_url"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"review_count"`
	DeliveryTime  string     `json:"delivery_time"`
	DeliveryFee   float64    `json:"delivery_fee"`
	MinOrder      float64    `json:"min_order"`
	Cuisine       []string   `json:"cuisine"`
	IsOpen        bool       `json:"is_open"`
	Distance      float64    `json:"distance"`
	Offers        []string   `json:"offers"`
	Menu          []FoodItem `json:"menu"`
}

// CartItem holds an independent snapshot of its food item and restaurant;
// a later catalog replacement does not reach into existing lines.
type CartItem struct {
	ID             string     `json:"id"`
	FoodItem       FoodItem   `json:"food_item"`
	Restaurant     Restaurant `json:"restaurant"`
	Quantity       int        `json:"quantity"`
	Customizations []string   `json:"customizations"`
	TotalPrice     float64    `json:"total_price"`
}

type Order struct {
	ID                string      `json:"id"`
	Restaurant        Restaurant  `json:"restaurant"`
	Items             []CartItem  `json:"items"`
	TotalAmount       float64     `json:"total_amount"`
	DeliveryAddress   string      `json:"delivery_address"`
	Status            OrderStatus `json:"status"`
	OrderTime         time.Time   `json:"order_time"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

var statusRank = map[OrderStatus]int{
	StatusPlaced:         0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

var statusOrder = []OrderStatus{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to next keeps the lifecycle
// strictly forward. Delivered is terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Next returns the direct successor status, or false when s is terminal
// or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	rank, ok := statusRank[s]
	if !ok || rank == len(statusOrder)-1 {
		return s, false
	}
	return statusOrder[rank+1], true
}

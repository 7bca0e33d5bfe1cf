package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"quickbite/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRestaurantMismatch = errors.New("cart holds items from another restaurant")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)

// DeliveryFee is the flat fee added to every order total.
const DeliveryFee = 2.99

const deliveryEstimate = 30 * time.Minute

// Session holds presentation-preference state. The store only keeps the
// latest values; no behavior derives from them.
type Session struct {
	SearchQuery      string `json:"search_query"`
	SelectedCategory string `json:"selected_category"`
	SortBy           string `json:"sort_by"`
	CurrentLocation  string `json:"current_location"`
	IsLoading        bool   `json:"is_loading"`
}

// Store is the single authoritative container for the restaurant catalog,
// the active cart and the order history. Every mutation runs under one
// lock and leaves the derived aggregates consistent before returning.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	restaurants []domain.Restaurant
	cart        []domain.CartItem
	orders      []domain.Order

	cartTotal float64
	cartCount int

	session Session
}

func New(restaurants []domain.Restaurant) *Store {
	return NewWithClock(restaurants, time.Now)
}

// NewWithClock injects the time source used for line/order identifiers and
// order timestamps.
func NewWithClock(restaurants []domain.Restaurant, now func() time.Time) *Store {
	return &Store{
		now:         now,
		restaurants: restaurants,
		session: Session{
			SortBy:          "rating",
			CurrentLocation: "New York, NY",
		},
	}
}

// SetRestaurants replaces the catalog wholesale. Existing cart lines and
// orders keep their own snapshots and are not touched.
func (s *Store) SetRestaurants(restaurants []domain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = restaurants
}

func (s *Store) Restaurants() []domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Restaurant(nil), s.restaurants...)
}

func (s *Store) Restaurant(id string) (domain.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Restaurant{}, false
}

// FindMenuItem resolves a menu entry within a restaurant.
func (s *Store) FindMenuItem(restaurantID, itemID string) (domain.FoodItem, domain.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.ID != restaurantID {
			continue
		}
		for _, item := range r.Menu {
			if item.ID == itemID {
				return item, r, true
			}
		}
	}
	return domain.FoodItem{}, domain.Restaurant{}, false
}

// AddToCart merges into an existing line when food item, restaurant and the
// exact customization sequence match; otherwise it appends a new line. The
// cart only ever holds lines from a single restaurant: a mismatched add is
// rejected with ErrRestaurantMismatch. A quantity below 1 counts as 1.
func (s *Store) AddToCart(item domain.FoodItem, restaurant domain.Restaurant, quantity int, customizations []string) (string, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) > 0 && s.cart[0].Restaurant.ID != restaurant.ID {
		return "", ErrRestaurantMismatch
	}

	for i := range s.cart {
		line := &s.cart[i]
		if line.FoodItem.ID == item.ID && line.Restaurant.ID == restaurant.ID &&
			customizationsEqual(line.Customizations, customizations) {
			line.Quantity += quantity
			line.TotalPrice = float64(line.Quantity) * line.FoodItem.Price
			s.recomputeTotals()
			return line.ID, nil
		}
	}

	line := domain.CartItem{
		ID:             fmt.Sprintf("%s-%s-%d", item.ID, restaurant.ID, s.now().UnixMilli()),
		FoodItem:       item,
		Restaurant:     restaurant,
		Quantity:       quantity,
		Customizations: append([]string(nil), customizations...),
		TotalPrice:     float64(quantity) * item.Price,
	}
	s.cart = append(s.cart, line)
	s.recomputeTotals()
	return line.ID, nil
}

// RemoveFromCart deletes the line with the given id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(itemID)
}

// UpdateCartQuantity sets a line's quantity. A quantity of zero or below
// removes the line. Unknown ids are a silent no-op.
func (s *Store) UpdateCartQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(itemID)
		return
	}

	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart[i].Quantity = quantity
			s.cart[i].TotalPrice = float64(quantity) * s.cart[i].FoodItem.Price
			s.recomputeTotals()
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.recomputeTotals()
}

func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.cart)
}

func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotal
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartCount
}

// PlaceOrder snapshots the cart into a new order at the front of the
// history and empties the cart. An empty cart yields ErrEmptyCart and no
// mutation.
func (s *Store) PlaceOrder(deliveryAddress string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return "", ErrEmptyCart
	}

	now := s.now()
	order := domain.Order{
		ID:                fmt.Sprintf("order-%d", now.UnixMilli()),
		Restaurant:        s.cart[0].Restaurant,
		Items:             copyLines(s.cart),
		TotalAmount:       s.cartTotal + DeliveryFee,
		DeliveryAddress:   deliveryAddress,
		Status:            domain.StatusPlaced,
		OrderTime:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.cart = nil
	s.recomputeTotals()
	return order.ID, nil
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = copyLines(o.Items)
		orders[i] = o
	}
	return orders
}

func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			o.Items = copyLines(o.Items)
			return o, true
		}
	}
	return domain.Order{}, false
}

// UpdateOrderStatus replaces the status of the matching order. The
// lifecycle only moves forward; anything else is ErrInvalidTransition.
// Unknown order ids are a silent no-op.
func (s *Store) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}
		s.orders[i].Status = status
		return nil
	}
	return nil
}

// AdvanceOrder moves an order one lifecycle step and returns the new
// status. Delivered orders stay delivered; unknown ids return an empty
// status.
func (s *Store) AdvanceOrder(orderID string) (domain.OrderStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		next, ok := s.orders[i].Status.Next()
		if !ok {
			return s.orders[i].Status, nil
		}
		s.orders[i].Status = next
		return next, nil
	}
	return "", nil
}

func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SearchQuery = query
}

func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedCategory = category
}

func (s *Store) SetSortBy(sortBy string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SortBy = sortBy
}

func (s *Store) SetCurrentLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CurrentLocation = location
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.IsLoading = loading
}

// removeLine and recomputeTotals assume the caller holds the lock.
func (s *Store) removeLine(itemID string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ID != itemID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
	s.recomputeTotals()
}

func (s *Store) recomputeTotals() {
	var total float64
	var count int
	for _, line := range s.cart {
		total += line.TotalPrice
		count += line.Quantity
	}
	s.cartTotal = total
	s.cartCount = count
}

// Customization equality is order-sensitive: ["no onion","extra cheese"]
// and ["extra cheese","no onion"] are distinct lines.
func customizationsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyLines(lines []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(lines))
	for i, line := range lines {
		line.Customizations = append([]string(nil), line.Customizations...)
		out[i] = line
	}
	return out
}

package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"quickbite/internal/catalog"
	"quickbite/internal/domain"
	"quickbite/internal/service"
	"quickbite/internal/store"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store    *store.Store
	Checkout *service.CheckoutService
	Events   *service.Publisher
	QR       service.QRGenerator
}

func NewHandler(st *store.Store, checkout *service.CheckoutService, events *service.Publisher, qr service.QRGenerator) *Handler {
	return &Handler{
		Store:    st,
		Checkout: checkout,
		Events:   events,
		QR:       qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/quote", h.quoteCart).Methods("POST")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/session", h.updateSession).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "quickbite",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	sortKey := r.URL.Query().Get("sort")

	restaurants := catalog.Filter(h.Store.Restaurants(), query, category)
	if sortKey != "" {
		restaurants = catalog.SortBy(restaurants, sortKey)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	restaurant, ok := h.Store.Restaurant(id)
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	restaurant, ok := h.Store.Restaurant(id)
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant.Menu)
}

type cartResponse struct {
	Items       []domain.CartItem `json:"items"`
	CartTotal   float64           `json:"cart_total"`
	CartCount   int               `json:"cart_count"`
	DeliveryFee float64           `json:"delivery_fee"`
}

func (h *Handler) writeCart(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(cartResponse{
		Items:       h.Store.Cart(),
		CartTotal:   h.Store.CartTotal(),
		CartCount:   h.Store.CartCount(),
		DeliveryFee: store.DeliveryFee,
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID   string   `json:"restaurant_id"`
		ItemID         string   `json:"item_id"`
		Quantity       int      `json:"quantity"`
		Customizations []string `json:"customizations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, restaurant, ok := h.Store.FindMenuItem(payload.RestaurantID, payload.ItemID)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	if _, err := h.Store.AddToCart(item, restaurant, payload.Quantity, payload.Customizations); err != nil {
		if errors.Is(err, store.ErrRestaurantMismatch) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeCart(w, http.StatusCreated)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.Store.UpdateCartQuantity(id, payload.Quantity)
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Store.RemoveFromCart(mux.Vars(r)["id"])
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearCart()
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) quoteCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PromoCode string `json:"promo_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if h.Store.CartCount() == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	quote, err := h.Checkout.Quote(h.Store.CartTotal(), payload.PromoCode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DeliveryAddress string `json:"delivery_address"`
		PromoCode       string `json:"promo_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.DeliveryAddress == "" {
		http.Error(w, "Missing delivery_address", http.StatusBadRequest)
		return
	}
	if h.Store.CartCount() == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	quote, err := h.Checkout.Quote(h.Store.CartTotal(), payload.PromoCode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.Checkout.RedeemPromo(r.Context(), payload.PromoCode, payload.DeliveryAddress); err != nil {
		if errors.Is(err, service.ErrPromoAlreadyUsed) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderID, err := h.Store.PlaceOrder(payload.DeliveryAddress)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, _ := h.Store.Order(orderID)
	if err := h.Events.OrderPlaced(r.Context(), order); err != nil {
		// The order is already committed to the store; a publish failure
		// degrades the lifecycle simulation, not the placement.
		log.Printf("Warning: failed to publish event for order %s: %v", orderID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":   order,
		"pricing": quote,
	})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.Orders()
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := []domain.Order{}
		for _, o := range orders {
			if o.Status == domain.OrderStatus(status) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Store.Order(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !payload.Status.Valid() {
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}
	if _, ok := h.Store.Order(id); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := h.Store.UpdateOrderStatus(id, payload.Status); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	order, _ := h.Store.Order(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.Store.Order(id); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	status, err := h.Store.AdvanceOrder(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"order_id": id,
		"status":   string(status),
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.Store.Order(id); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	qrCode, err := h.QR.Generate(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Store.Session())
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	session := h.Store.Session()
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.Store.SetSearchQuery(session.SearchQuery)
	h.Store.SetSelectedCategory(session.SelectedCategory)
	h.Store.SetSortBy(session.SortBy)
	h.Store.SetCurrentLocation(session.CurrentLocation)
	h.Store.SetLoading(session.IsLoading)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Store.Session())
}

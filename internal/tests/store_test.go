package tests

import (
	"testing"
	"time"

	"quickbite/internal/catalog"
	"quickbite/internal/domain"
	"quickbite/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock returns a deterministic time source that moves forward one
// millisecond per call, so generated ids never collide.
func testClock() func() time.Time {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
}

func newTestStore() *store.Store {
	return store.NewWithClock(catalog.Seed(), testClock())
}

func pizzaPalace(t *testing.T, st *store.Store) (domain.FoodItem, domain.Restaurant) {
	t.Helper()
	item, restaurant, ok := st.FindMenuItem("1", "1")
	require.True(t, ok)
	return item, restaurant
}

func checkAggregates(t *testing.T, st *store.Store) {
	t.Helper()
	var total float64
	var count int
	for _, line := range st.Cart() {
		total += line.TotalPrice
		count += line.Quantity
	}
	assert.InDelta(t, total, st.CartTotal(), 1e-9)
	assert.Equal(t, count, st.CartCount())
}

func TestAddToCart_MergesIdenticalLines(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)

	firstID, err := st.AddToCart(item, restaurant, 1, nil)
	require.NoError(t, err)
	assert.InDelta(t, 12.99, st.CartTotal(), 1e-9)
	assert.Equal(t, 1, st.CartCount())

	secondID, err := st.AddToCart(item, restaurant, 2, nil)
	require.NoError(t, err)

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, firstID, secondID)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.InDelta(t, 38.97, st.CartTotal(), 1e-9)
	assert.Equal(t, 3, st.CartCount())
	checkAggregates(t, st)
}

func TestAddToCart_CustomizationsSplitLines(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)

	_, err := st.AddToCart(item, restaurant, 1, []string{"Extra Cheese"})
	require.NoError(t, err)
	_, err = st.AddToCart(item, restaurant, 1, []string{"Thin Crust"})
	require.NoError(t, err)
	// Order-sensitive: same labels, different sequence, distinct line.
	_, err = st.AddToCart(item, restaurant, 1, []string{"Thin Crust", "Extra Cheese"})
	require.NoError(t, err)
	_, err = st.AddToCart(item, restaurant, 1, []string{"Extra Cheese", "Thin Crust"})
	require.NoError(t, err)

	assert.Len(t, st.Cart(), 4)
	assert.Equal(t, 4, st.CartCount())
	checkAggregates(t, st)
}

func TestAddToCart_RejectsSecondRestaurant(t *testing.T) {
	st := newTestStore()
	pizza, pizzeria := pizzaPalace(t, st)
	burger, junction, ok := st.FindMenuItem("2", "3")
	require.True(t, ok)

	_, err := st.AddToCart(pizza, pizzeria, 1, nil)
	require.NoError(t, err)

	_, err = st.AddToCart(burger, junction, 1, nil)
	assert.ErrorIs(t, err, store.ErrRestaurantMismatch)
	assert.Len(t, st.Cart(), 1)
	checkAggregates(t, st)
}

func TestAddToCart_ClampsQuantityToOne(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)

	_, err := st.AddToCart(item, restaurant, 0, nil)
	require.NoError(t, err)

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	checkAggregates(t, st)
}

func TestUpdateCartQuantity(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		wantLines   int
		wantCount   int
		wantTotal   float64
		unknownLine bool
	}{
		{name: "reduce to one", quantity: 1, wantLines: 1, wantCount: 1, wantTotal: 12.99},
		{name: "increase", quantity: 5, wantLines: 1, wantCount: 5, wantTotal: 64.95},
		{name: "zero removes line", quantity: 0, wantLines: 0, wantCount: 0, wantTotal: 0},
		{name: "negative removes line", quantity: -2, wantLines: 0, wantCount: 0, wantTotal: 0},
		{name: "unknown id is a no-op", quantity: 9, wantLines: 1, wantCount: 3, wantTotal: 38.97, unknownLine: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			st := newTestStore()
			item, restaurant := pizzaPalace(t, st)
			lineID, err := st.AddToCart(item, restaurant, 3, nil)
			require.NoError(t, err)

			if testCase.unknownLine {
				lineID = "missing"
			}
			st.UpdateCartQuantity(lineID, testCase.quantity)

			assert.Len(t, st.Cart(), testCase.wantLines)
			assert.Equal(t, testCase.wantCount, st.CartCount())
			assert.InDelta(t, testCase.wantTotal, st.CartTotal(), 1e-9)
			checkAggregates(t, st)
		})
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	byUpdate := newTestStore()
	byRemove := newTestStore()

	for _, st := range []*store.Store{byUpdate, byRemove} {
		item, restaurant := pizzaPalace(t, st)
		_, err := st.AddToCart(item, restaurant, 2, []string{"Extra Cheese"})
		require.NoError(t, err)
	}

	updateTarget := byUpdate.Cart()[0].ID
	removeTarget := byRemove.Cart()[0].ID

	byUpdate.UpdateCartQuantity(updateTarget, 0)
	byRemove.RemoveFromCart(removeTarget)

	assert.Equal(t, byRemove.Cart(), byUpdate.Cart())
	assert.Equal(t, byRemove.CartCount(), byUpdate.CartCount())
	assert.InDelta(t, byRemove.CartTotal(), byUpdate.CartTotal(), 1e-9)
}

func TestRemoveFromCart_UnknownIDIsNoop(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 2, nil)
	require.NoError(t, err)

	st.RemoveFromCart("missing")

	assert.Len(t, st.Cart(), 1)
	assert.Equal(t, 2, st.CartCount())
	checkAggregates(t, st)
}

func TestClearCart(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 3, nil)
	require.NoError(t, err)

	st.ClearCart()

	assert.Empty(t, st.Cart())
	assert.Zero(t, st.CartCount())
	assert.Zero(t, st.CartTotal())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	st := newTestStore()

	orderID, err := st.PlaceOrder("123 Main St")

	assert.ErrorIs(t, err, store.ErrEmptyCart)
	assert.Empty(t, orderID)
	assert.Empty(t, st.Orders())
	assert.Zero(t, st.CartCount())
	assert.Zero(t, st.CartTotal())
}

func TestPlaceOrder(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 3, nil)
	require.NoError(t, err)
	subtotal := st.CartTotal()

	orderID, err := st.PlaceOrder("123 Main St, New York, NY")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	order, ok := st.Order(orderID)
	require.True(t, ok)
	assert.Equal(t, restaurant.ID, order.Restaurant.ID)
	assert.InDelta(t, subtotal+store.DeliveryFee, order.TotalAmount, 1e-9)
	assert.Equal(t, domain.StatusPlaced, order.Status)
	assert.Equal(t, "123 Main St, New York, NY", order.DeliveryAddress)
	assert.Equal(t, 30*time.Minute, order.EstimatedDelivery.Sub(order.OrderTime))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)

	assert.Empty(t, st.Cart())
	assert.Zero(t, st.CartCount())
	assert.Zero(t, st.CartTotal())
}

func TestPlaceOrder_PrependsHistory(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)

	_, err := st.AddToCart(item, restaurant, 1, nil)
	require.NoError(t, err)
	firstID, err := st.PlaceOrder("addr")
	require.NoError(t, err)

	_, err = st.AddToCart(item, restaurant, 2, nil)
	require.NoError(t, err)
	secondID, err := st.PlaceOrder("addr")
	require.NoError(t, err)

	orders := st.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, secondID, orders[0].ID)
	assert.Equal(t, firstID, orders[1].ID)
}

func TestPlaceOrder_SnapshotIsIndependent(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 2, []string{"Extra Cheese"})
	require.NoError(t, err)

	orderID, err := st.PlaceOrder("addr")
	require.NoError(t, err)

	order, ok := st.Order(orderID)
	require.True(t, ok)
	order.Items[0].Customizations[0] = "mutated"
	order.Items[0].Quantity = 99

	fresh, ok := st.Order(orderID)
	require.True(t, ok)
	assert.Equal(t, "Extra Cheese", fresh.Items[0].Customizations[0])
	assert.Equal(t, 2, fresh.Items[0].Quantity)
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.OrderStatus
		to         domain.OrderStatus
		wantErr    error
		wantStatus domain.OrderStatus
	}{
		{name: "forward one step", from: domain.StatusPlaced, to: domain.StatusConfirmed, wantStatus: domain.StatusConfirmed},
		{name: "forward skipping steps", from: domain.StatusPlaced, to: domain.StatusOutForDelivery, wantStatus: domain.StatusOutForDelivery},
		{name: "same status rejected", from: domain.StatusConfirmed, to: domain.StatusConfirmed, wantErr: store.ErrInvalidTransition, wantStatus: domain.StatusConfirmed},
		{name: "backward rejected", from: domain.StatusPreparing, to: domain.StatusPlaced, wantErr: store.ErrInvalidTransition, wantStatus: domain.StatusPreparing},
		{name: "delivered is terminal", from: domain.StatusDelivered, to: domain.StatusPlaced, wantErr: store.ErrInvalidTransition, wantStatus: domain.StatusDelivered},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			st := newTestStore()
			item, restaurant := pizzaPalace(t, st)
			_, err := st.AddToCart(item, restaurant, 1, nil)
			require.NoError(t, err)
			orderID, err := st.PlaceOrder("addr")
			require.NoError(t, err)

			if testCase.from != domain.StatusPlaced {
				require.NoError(t, st.UpdateOrderStatus(orderID, testCase.from))
			}

			err = st.UpdateOrderStatus(orderID, testCase.to)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			order, ok := st.Order(orderID)
			require.True(t, ok)
			assert.Equal(t, testCase.wantStatus, order.Status)
		})
	}
}

func TestUpdateOrderStatus_UnknownOrderIsNoop(t *testing.T) {
	st := newTestStore()
	assert.NoError(t, st.UpdateOrderStatus("missing", domain.StatusDelivered))
	assert.Empty(t, st.Orders())
}

func TestAdvanceOrder_WalksFullLifecycle(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 1, nil)
	require.NoError(t, err)
	orderID, err := st.PlaceOrder("addr")
	require.NoError(t, err)

	want := []domain.OrderStatus{
		domain.StatusConfirmed,
		domain.StatusPreparing,
		domain.StatusOutForDelivery,
		domain.StatusDelivered,
	}
	for _, expected := range want {
		status, err := st.AdvanceOrder(orderID)
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	// Terminal: further advances stay delivered.
	status, err := st.AdvanceOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, status)
}

func TestAdvanceOrder_UnknownOrder(t *testing.T) {
	st := newTestStore()
	status, err := st.AdvanceOrder("missing")
	assert.NoError(t, err)
	assert.Empty(t, status)
}

func TestSetRestaurants_LeavesCartSnapshots(t *testing.T) {
	st := newTestStore()
	item, restaurant := pizzaPalace(t, st)
	_, err := st.AddToCart(item, restaurant, 1, nil)
	require.NoError(t, err)

	st.SetRestaurants(nil)

	assert.Empty(t, st.Restaurants())
	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "Pizza Palace", cart[0].Restaurant.Name)
}

func TestSessionPreferences(t *testing.T) {
	st := newTestStore()

	session := st.Session()
	assert.Equal(t, "rating", session.SortBy)
	assert.Equal(t, "New York, NY", session.CurrentLocation)

	st.SetSearchQuery("pizza")
	st.SetSelectedCategory("Pizza")
	st.SetSortBy("distance")
	st.SetCurrentLocation("Brooklyn, NY")
	st.SetLoading(true)

	session = st.Session()
	assert.Equal(t, "pizza", session.SearchQuery)
	assert.Equal(t, "Pizza", session.SelectedCategory)
	assert.Equal(t, "distance", session.SortBy)
	assert.Equal(t, "Brooklyn, NY", session.CurrentLocation)
	assert.True(t, session.IsLoading)
}

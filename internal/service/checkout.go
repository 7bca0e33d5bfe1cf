package service

import (
	"context"
	"errors"
	"log"
	"strings"
)

// TaxRate is applied to the cart subtotal at quote time only; the stored
// order total never includes tax.
const TaxRate = 0.08

var promoCodes = map[string]float64{
	"SAVE10":    10,
	"WELCOME20": 20,
	"FIRST15":   15,
}

var (
	ErrInvalidPromo     = errors.New("invalid promo code")
	ErrPromoAlreadyUsed = errors.New("promo code already used for this address")
)

// PromoCache tracks single-use promo redemptions.
type PromoCache interface {
	PromoMarkerKey(code, address string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

// Quote is the presentation-side price breakdown. Tax and discount live
// here and are never written back into an order.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	PromoCode   string  `json:"promo_code,omitempty"`
}

type CheckoutService struct {
	cache       PromoCache // nil disables redemption tracking
	deliveryFee float64
}

func NewCheckoutService(cache PromoCache, deliveryFee float64) *CheckoutService {
	return &CheckoutService{cache: cache, deliveryFee: deliveryFee}
}

// PromoDiscount resolves a code to its flat dollar discount. Codes are
// case-insensitive; an empty code means no promo.
func (s *CheckoutService) PromoDiscount(code string) (float64, error) {
	if code == "" {
		return 0, nil
	}
	discount, ok := promoCodes[strings.ToUpper(code)]
	if !ok {
		return 0, ErrInvalidPromo
	}
	return discount, nil
}

func (s *CheckoutService) Quote(subtotal float64, code string) (Quote, error) {
	discount, err := s.PromoDiscount(code)
	if err != nil {
		return Quote{}, err
	}
	tax := subtotal * TaxRate
	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: s.deliveryFee,
		Discount:    discount,
		Total:       subtotal + tax + s.deliveryFee - discount,
		PromoCode:   strings.ToUpper(code),
	}, nil
}

// RedeemPromo resolves the discount and burns the code for the given
// delivery address. A cache failure is logged and treated as unused, so
// checkout keeps working when redis is down.
func (s *CheckoutService) RedeemPromo(ctx context.Context, code, address string) (float64, error) {
	discount, err := s.PromoDiscount(code)
	if err != nil {
		return 0, err
	}
	if code == "" || s.cache == nil {
		return discount, nil
	}

	key := s.cache.PromoMarkerKey(strings.ToUpper(code), address)
	used, err := s.cache.Exists(ctx, key)
	if err != nil {
		log.Printf("Warning: failed to check promo marker: %v", err)
	} else if used {
		return 0, ErrPromoAlreadyUsed
	}

	if err := s.cache.SetMarker(ctx, key); err != nil {
		log.Printf("Warning: failed to set promo marker: %v", err)
	}
	return discount, nil
}

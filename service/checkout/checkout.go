// Package checkout simulates order placement. There is no payment
// processor behind it: a fixed delay stands in for the gateway call, and
// a successful "payment" clears the session cart.
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront.GO/service/analytics"
	"storefront.GO/service/cart"
	"storefront.GO/service/forms"
)

// ErrEmptyCart rejects checkout of a cart with no line items.
var ErrEmptyCart = errors.New("cart is empty")

var expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Form carries the shipping and payment fields of the checkout dialog.
type Form struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVC        string `json:"cvc"`
	NameOnCard string `json:"nameOnCard"`
}

// Validate checks every field and returns the per-field messages, empty
// when the form is acceptable.
func (f Form) Validate() map[string]string {
	errs := map[string]string{}
	if !forms.ValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email"
	}
	required := map[string]string{
		"firstName":  f.FirstName,
		"lastName":   f.LastName,
		"address":    f.Address,
		"city":       f.City,
		"postalCode": f.PostalCode,
		"country":    f.Country,
		"nameOnCard": f.NameOnCard,
	}
	labels := map[string]string{
		"firstName":  "First name",
		"lastName":   "Last name",
		"address":    "Address",
		"city":       "City",
		"postalCode": "Postal code",
		"country":    "Country",
		"nameOnCard": "Name on card",
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = labels[field] + " is required"
		}
	}
	if len(digits(f.CardNumber)) < 16 {
		errs["cardNumber"] = "Card number must be 16 digits"
	}
	if !expiryRe.MatchString(f.ExpiryDate) {
		errs["expiryDate"] = "Format: MM/YY"
	}
	if len(digits(f.CVC)) < 3 {
		errs["cvc"] = "CVC must be 3-4 digits"
	}
	return errs
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Order confirms a completed (simulated) purchase.
type Order struct {
	ID        string    `json:"order_id"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	PlacedAt  time.Time `json:"placed_at"`
}

// Service places orders against per-session carts.
type Service struct {
	delay     time.Duration
	analytics *analytics.Tracker
	newID     func() string
}

// NewService returns a checkout service. delay is the simulated payment
// processing time; tracker may be nil.
func NewService(delay time.Duration, tracker *analytics.Tracker) *Service {
	return &Service{
		delay:     delay,
		analytics: tracker,
		newID:     func() string { return uuid.NewString() },
	}
}

// Place validates the form, simulates payment processing, clears the cart
// and returns the order confirmation. The cart is untouched on any error.
func (s *Service) Place(ctx context.Context, store *cart.Store, form Form) (*Order, error) {
	if fields := form.Validate(); len(fields) > 0 {
		return nil, &forms.ValidationError{Fields: fields}
	}

	itemCount := store.TotalItems()
	if itemCount == 0 {
		return nil, ErrEmptyCart
	}
	total := store.TotalPrice()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	order := &Order{
		ID:        s.newID(),
		Total:     total,
		ItemCount: itemCount,
		PlacedAt:  time.Now(),
	}
	store.Clear()

	if s.analytics != nil {
		s.analytics.Track("purchase", map[string]interface{}{
			"transaction_id": order.ID,
			"value":          order.Total,
			"currency":       "USD",
			"items":          order.ItemCount,
		})
	}
	return order, nil
}

// File: cinequest/services/booking/payment.go
package booking

import (
	"fmt"
	"net/url"
	"time"

	"cinequest/models"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// PaymentProcessor turns a pending booking into a payment redirect. The
// returned reference identifies the checkout session for webhook
// correlation.
type PaymentProcessor interface {
	CreateCheckoutSession(b *models.Booking) (ref string, checkoutURL string, err error)
}

// StripeCheckoutProcessor creates a hosted Stripe Checkout session
// carrying the booking identifiers as metadata so the webhook can flip
// the booking to confirmed.
type StripeCheckoutProcessor struct {
	SiteURL string
}

func NewStripeCheckoutProcessor(siteURL string) *StripeCheckoutProcessor {
	return &StripeCheckoutProcessor{SiteURL: siteURL}
}

func (p *StripeCheckoutProcessor) CreateCheckoutSession(b *models.Booking) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("php"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Cinema Booking - %d Seat(s)", len(b.Seats))),
						Description: stripe.String(fmt.Sprintf("Movie ID: %d, Cinema ID: %d, Showtime: %s", b.MovieID, b.CinemaID, b.Showtime)),
					},
					UnitAmount: stripe.Int64(b.TotalAmount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SiteURL + "/booking-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL: stripe.String(fmt.Sprintf("%s/seats/%d/%d?time=%s",
			p.SiteURL, b.MovieID, b.CinemaID, url.QueryEscape(b.Showtime))),
	}
	params.AddMetadata("booking_id", b.ID)
	params.AddMetadata("movie_id", fmt.Sprint(b.MovieID))
	params.AddMetadata("cinema_id", fmt.Sprint(b.CinemaID))
	params.AddMetadata("showtime", b.Showtime)

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", "", NewBookingError(ErrCodePaymentFailed, "failed to create checkout session: %v", err)
	}
	return sess.ID, sess.URL, nil
}

// LocalCheckoutProcessor stands in when no Stripe key is configured: the
// booking flow stays functional and redirects straight to the success
// page with a mock reference.
type LocalCheckoutProcessor struct {
	SiteURL string
}

func NewLocalCheckoutProcessor(siteURL string) *LocalCheckoutProcessor {
	return &LocalCheckoutProcessor{SiteURL: siteURL}
}

func (p *LocalCheckoutProcessor) CreateCheckoutSession(b *models.Booking) (string, string, error) {
	ref := fmt.Sprintf("mock_%d", time.Now().UnixMilli())
	return ref, p.SiteURL + "/booking-success?session_id=" + ref, nil
}

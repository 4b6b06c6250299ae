package booking

import (
	"context"
	"math"
	"strings"

	"tutorhive/models"
	"tutorhive/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates a payment intent for a submitted session request and
// returns the client secret the caller completes checkout with.
type PaymentHandler interface {
	CreatePaymentIntent(ctx context.Context, req models.SessionRequest) (clientSecret, paymentID string, err error)
}

// StripePaymentHandler implements PaymentHandler on Stripe payment intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler() *StripePaymentHandler {
	return &StripePaymentHandler{logger: utils.GetLogger()}
}

func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, req models.SessionRequest) (string, string, error) {
	amountCents := int64(math.Round(req.Amount * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("sessionId", req.ID)
	params.AddMetadata("tutorId", req.TutorID)

	intent, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("stripe payment intent failed",
			zap.String("sessionRequestID", req.ID),
			zap.Int64("amountCents", amountCents),
			zap.Error(err))
		return "", "", err
	}

	h.logger.Info("payment intent created",
		zap.String("sessionRequestID", req.ID),
		zap.String("paymentIntentID", intent.ID))
	return intent.ClientSecret, intent.ID, nil
}

package agent

import (
	"context"

	"cinequest/models"
)

// Resolver maps (transcript, booking context) to a natural-language reply
// plus zero or more validated actions. Implementations either call the
// remote model or run the deterministic local matcher; the mode is fixed
// at construction time, never per call.
type Resolver interface {
	Resolve(ctx context.Context, transcript []models.Message, bctx *models.BookingContext) (string, []models.Action, error)
}

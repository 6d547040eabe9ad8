// File: cinequest/services/booking/seats.go
package booking

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"cinequest/models"
)

var seatRows = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

const seatsPerRow = 12

// tierForRow prices the auditorium back to front: the last rows are VIP,
// the middle premium, the front regular.
func tierForRow(rowIndex int) (string, int64) {
	switch {
	case rowIndex >= 5:
		return "vip", 450
	case rowIndex >= 3:
		return "premium", 350
	default:
		return "regular", 250
	}
}

// GenerateSeatMap builds the seat map for one showtime. Taken seats are
// derived from a hash of (movie, cinema, showtime) so the same showtime
// always yields the same map.
func GenerateSeatMap(movieID, cinemaID int, showtime string) []models.Seat {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%s", movieID, cinemaID, showtime)
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	seats := make([]models.Seat, 0, len(seatRows)*seatsPerRow)
	for rowIndex, row := range seatRows {
		tier, price := tierForRow(rowIndex)
		for n := 1; n <= seatsPerRow; n++ {
			status := models.SeatAvailable
			if rng.Float64() > 0.7 {
				status = models.SeatTaken
			}
			seats = append(seats, models.Seat{
				ID:     fmt.Sprintf("%s%d", row, n),
				Row:    row,
				Number: n,
				Tier:   tier,
				Status: status,
				Price:  price,
			})
		}
	}
	return seats
}

// ApplySeatIntent resolves a pending select_seats intent against a live
// seat map. Explicit seat ids win over quantity/tier; for the latter the
// picker prefers a contiguous run in a single row before falling back to
// the first available seats of the tier.
func ApplySeatIntent(seats []models.Seat, intent models.SeatIntent) ([]string, error) {
	if len(intent.SeatIDs) > 0 {
		return pickExplicitSeats(seats, intent.SeatIDs)
	}
	if intent.Quantity <= 0 {
		return nil, NewBookingError(ErrCodeSeatUnavailable, "seat intent carries neither seat ids nor a quantity")
	}
	return pickSeatsByTier(seats, intent.Quantity, intent.Tier)
}

func pickExplicitSeats(seats []models.Seat, ids []string) ([]string, error) {
	byID := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	selected := make([]string, 0, len(ids))
	for _, id := range ids {
		seat, ok := byID[strings.ToUpper(strings.TrimSpace(id))]
		if !ok {
			return nil, NewBookingError(ErrCodeNotFound, "seat %q does not exist", id)
		}
		if seat.Status == models.SeatTaken {
			return nil, NewBookingError(ErrCodeSeatUnavailable, "seat %s is already taken", seat.ID)
		}
		selected = append(selected, seat.ID)
	}
	return selected, nil
}

func pickSeatsByTier(seats []models.Seat, quantity int, tier string) ([]string, error) {
	matches := func(s models.Seat) bool {
		if s.Status != models.SeatAvailable {
			return false
		}
		return tier == "" || s.Tier == tier
	}

	// Contiguous run in a single row first.
	for _, row := range seatRows {
		var run []string
		for _, s := range seats {
			if s.Row != row {
				continue
			}
			if matches(s) {
				run = append(run, s.ID)
				if len(run) == quantity {
					return run, nil
				}
			} else {
				run = nil
			}
		}
	}

	// Fall back to the first available seats of the tier.
	var picked []string
	for _, s := range seats {
		if matches(s) {
			picked = append(picked, s.ID)
			if len(picked) == quantity {
				return picked, nil
			}
		}
	}

	label := tier
	if label == "" {
		label = "any"
	}
	return nil, NewBookingError(ErrCodeSeatUnavailable, "not enough available seats (wanted %d, tier %s)", quantity, label)
}

// ComputeTotal prices a seat selection against the map, rejecting ids
// that do not exist or are already taken.
func ComputeTotal(seats []models.Seat, ids []string) (int64, error) {
	byID := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	var total int64
	for _, id := range ids {
		seat, ok := byID[strings.ToUpper(strings.TrimSpace(id))]
		if !ok {
			return 0, NewBookingError(ErrCodeNotFound, "seat %q does not exist", id)
		}
		if seat.Status == models.SeatTaken {
			return 0, NewBookingError(ErrCodeSeatUnavailable, "seat %s is already taken", seat.ID)
		}
		total += seat.Price
	}
	return total, nil
}

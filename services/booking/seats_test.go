// File: cinequest/services/booking/seats_test.go
package booking

import (
	"testing"

	"cinequest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeatMapIsDeterministic(t *testing.T) {
	a := GenerateSeatMap(1, 1, "7:30 PM")
	b := GenerateSeatMap(1, 1, "7:30 PM")
	other := GenerateSeatMap(1, 2, "7:30 PM")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
}

func TestGenerateSeatMapLayout(t *testing.T) {
	seats := GenerateSeatMap(3, 2, "8:00 PM")

	require.Len(t, seats, len(seatRows)*seatsPerRow)

	byID := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	// Front rows regular, middle premium, back VIP.
	assert.Equal(t, "regular", byID["A1"].Tier)
	assert.Equal(t, int64(250), byID["A1"].Price)
	assert.Equal(t, "premium", byID["D6"].Tier)
	assert.Equal(t, int64(350), byID["D6"].Price)
	assert.Equal(t, "vip", byID["H12"].Tier)
	assert.Equal(t, int64(450), byID["H12"].Price)
}

func firstAvailable(seats []models.Seat, tier string, n int) []string {
	var ids []string
	for _, s := range seats {
		if s.Status != models.SeatAvailable {
			continue
		}
		if tier != "" && s.Tier != tier {
			continue
		}
		ids = append(ids, s.ID)
		if len(ids) == n {
			break
		}
	}
	return ids
}

func firstTaken(seats []models.Seat) string {
	for _, s := range seats {
		if s.Status == models.SeatTaken {
			return s.ID
		}
	}
	return ""
}

func TestApplySeatIntentExplicitSeats(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")
	want := firstAvailable(seats, "", 2)
	require.Len(t, want, 2)

	selected, err := ApplySeatIntent(seats, models.SeatIntent{SeatIDs: want})

	require.NoError(t, err)
	assert.Equal(t, want, selected)
}

func TestApplySeatIntentNormalizesSeatIDs(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")
	want := firstAvailable(seats, "", 1)
	require.Len(t, want, 1)

	selected, err := ApplySeatIntent(seats, models.SeatIntent{
		SeatIDs: []string{" " + want[0] + " "},
	})

	require.NoError(t, err)
	assert.Equal(t, want, selected)
}

func TestApplySeatIntentTakenSeat(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")
	taken := firstTaken(seats)
	require.NotEmpty(t, taken)

	_, err := ApplySeatIntent(seats, models.SeatIntent{SeatIDs: []string{taken}})

	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeSeatUnavailable, berr.Code)
}

func TestApplySeatIntentUnknownSeat(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")

	_, err := ApplySeatIntent(seats, models.SeatIntent{SeatIDs: []string{"Z99"}})

	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeNotFound, berr.Code)
}

func TestApplySeatIntentByTier(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")
	byID := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	selected, err := ApplySeatIntent(seats, models.SeatIntent{Quantity: 2, Tier: "vip"})

	require.NoError(t, err)
	require.Len(t, selected, 2)
	for _, id := range selected {
		seat := byID[id]
		assert.Equal(t, "vip", seat.Tier)
		assert.Equal(t, models.SeatAvailable, seat.Status)
	}
}

func TestApplySeatIntentPrefersContiguousRun(t *testing.T) {
	seats := []models.Seat{
		{ID: "F1", Row: "F", Number: 1, Tier: "vip", Status: models.SeatAvailable, Price: 450},
		{ID: "F2", Row: "F", Number: 2, Tier: "vip", Status: models.SeatTaken, Price: 450},
		{ID: "F3", Row: "F", Number: 3, Tier: "vip", Status: models.SeatAvailable, Price: 450},
		{ID: "F4", Row: "F", Number: 4, Tier: "vip", Status: models.SeatAvailable, Price: 450},
	}

	selected, err := ApplySeatIntent(seats, models.SeatIntent{Quantity: 2, Tier: "vip"})

	require.NoError(t, err)
	// F1 is available but has no available neighbor; the run restarts at F3.
	assert.Equal(t, []string{"F3", "F4"}, selected)
}

func TestApplySeatIntentEmptyIntent(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")

	_, err := ApplySeatIntent(seats, models.SeatIntent{})

	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeSeatUnavailable, berr.Code)
}

func TestApplySeatIntentNotEnoughSeats(t *testing.T) {
	seats := GenerateSeatMap(1, 1, "7:30 PM")

	_, err := ApplySeatIntent(seats, models.SeatIntent{Quantity: 200})

	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeSeatUnavailable, berr.Code)
}

func TestComputeTotal(t *testing.T) {
	seats := []models.Seat{
		{ID: "A1", Tier: "regular", Status: models.SeatAvailable, Price: 250},
		{ID: "F3", Tier: "vip", Status: models.SeatAvailable, Price: 450},
		{ID: "F4", Tier: "vip", Status: models.SeatTaken, Price: 450},
	}

	total, err := ComputeTotal(seats, []string{"A1", "F3"})
	require.NoError(t, err)
	assert.Equal(t, int64(700), total)

	_, err = ComputeTotal(seats, []string{"F4"})
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeSeatUnavailable, berr.Code)

	_, err = ComputeTotal(seats, []string{"Z1"})
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, ErrCodeNotFound, berr.Code)
}

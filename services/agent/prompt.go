package agent

import (
	"fmt"
	"strings"

	"cinequest/models"
)

// buildPrompt serializes the booking context and the conversation into the
// single text prompt sent to the model alongside the function declarations.
func buildPrompt(transcript []models.Message, bctx *models.BookingContext) string {
	var sb strings.Builder

	sb.WriteString("You are an intelligent cinema booking assistant with the ability to TAKE ACTIONS.\n\n")
	sb.WriteString("CURRENT CONTEXT:\n")
	fmt.Fprintf(&sb, "- Current page: %s\n", bctx.CurrentPage)
	if bctx.CurrentMovieID != nil {
		fmt.Fprintf(&sb, "- Current movie: Movie #%d\n", *bctx.CurrentMovieID)
	} else {
		sb.WriteString("- Current movie: None\n")
	}
	if bctx.CurrentCinemaID != nil {
		fmt.Fprintf(&sb, "- Current cinema: Cinema #%d\n", *bctx.CurrentCinemaID)
	} else {
		sb.WriteString("- Current cinema: None\n")
	}
	if bctx.SelectedShowtime != "" {
		fmt.Fprintf(&sb, "- Selected showtime: %s\n", bctx.SelectedShowtime)
	} else {
		sb.WriteString("- Selected showtime: None\n")
	}
	if len(bctx.SelectedSeats) > 0 {
		fmt.Fprintf(&sb, "- Selected seats: %s\n", strings.Join(bctx.SelectedSeats, ", "))
	} else {
		sb.WriteString("- Selected seats: None\n")
	}

	sb.WriteString("\nAVAILABLE MOVIES:\n")
	for _, m := range bctx.AvailableMovies {
		fmt.Fprintf(&sb, "- %s (ID: %d) - %s\n", m.Title, m.ID, m.Genre)
	}

	if len(bctx.AvailableCinemas) > 0 {
		sb.WriteString("\nAVAILABLE CINEMAS:\n")
		for _, c := range bctx.AvailableCinemas {
			fmt.Fprintf(&sb, "- %s (ID: %d) - %s, %s away\n", c.Name, c.ID, c.Location, c.Distance)
		}
	}

	sb.WriteString(`
YOUR CAPABILITIES:
You can autonomously navigate the app, filter content, and perform actions. When users ask you to do something:
1. Understand their intent
2. Call the appropriate function to take action
3. Confirm what you did in your response

IMPORTANT RULES:
- Always take action when asked (don't just describe what to do)
- Navigate users through the booking flow: Movies -> Cinemas -> Seats
- If a user mentions a movie title, find it and select it
- If asked to find cinemas or showtimes, navigate to the cinemas page
- If asked to book or reserve seats, navigate through the entire flow
- Be proactive and anticipate next steps

Be conversational, helpful, and ALWAYS take action when possible.
`)

	sb.WriteString("\nConversation:\n")
	for _, m := range transcript {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}

	return sb.String()
}

// File: cinequest/services/agent/local.go
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cinequest/models"
)

const localHelpText = `Hi! I'm your cinema assistant. I can't reach the AI service right now, but I can still help you navigate. Try: "Show me action movies" or "Take me to Inside Out 2".`

// localPattern is one row of the fallback matcher: a pattern over the
// lowercased utterance plus a constructor for the reply and actions.
type localPattern struct {
	re    *regexp.Regexp
	build func(match []string) (string, []models.Action)
}

// Evaluated in order, first match wins. New intents are added as rows,
// not as new control flow.
var localPatterns = []localPattern{
	{
		re: regexp.MustCompile(`take me to (.+)`),
		build: func(match []string) (string, []models.Action) {
			title := strings.TrimSpace(match[1])
			reply := fmt.Sprintf("Okay, taking you to cinemas showing %q.", title)
			return reply, []models.Action{{
				Type:   models.ActionSelectMovie,
				Params: map[string]any{"movieTitle": title},
			}}
		},
	},
	{
		re: regexp.MustCompile(`show me (.+) movies`),
		build: func(match []string) (string, []models.Action) {
			genre := strings.TrimSpace(match[1])
			reply := fmt.Sprintf("Showing movies in the %q genre.", genre)
			return reply, []models.Action{{
				Type:   models.ActionFilterMovies,
				Params: map[string]any{"genre": genre},
			}}
		},
	},
	{
		re: regexp.MustCompile(`book\s+(\d+)\s*(vip|premium|regular)?`),
		build: func(match []string) (string, []models.Action) {
			quantity, err := strconv.Atoi(match[1])
			if err != nil {
				return localHelpText, nil
			}
			tier := match[2]
			reply := fmt.Sprintf("I will select %d %s seat(s) for you.", quantity, tier)
			reply = strings.Join(strings.Fields(reply), " ")
			params := map[string]any{"quantity": quantity}
			if tier != "" {
				params["tier"] = tier
			}
			return reply, []models.Action{{
				Type:   models.ActionSelectSeats,
				Params: params,
			}}
		},
	},
}

// LocalResolver is the deterministic, network-free fallback used when no
// remote credential is configured. Given the same utterance and catalog
// it always produces the same reply and action set.
type LocalResolver struct{}

func NewLocalResolver() *LocalResolver {
	return &LocalResolver{}
}

func (r *LocalResolver) Resolve(_ context.Context, transcript []models.Message, _ *models.BookingContext) (string, []models.Action, error) {
	utterance := latestUserUtterance(transcript)
	lower := strings.ToLower(utterance)

	for _, p := range localPatterns {
		if match := p.re.FindStringSubmatch(lower); match != nil {
			reply, actions := p.build(match)
			return reply, actions, nil
		}
	}

	return localHelpText, nil, nil
}

func latestUserUtterance(transcript []models.Message) string {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == "user" {
			return transcript[i].Content
		}
	}
	if len(transcript) > 0 {
		return transcript[len(transcript)-1].Content
	}
	return ""
}

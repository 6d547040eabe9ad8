// File: cinequest/services/agent/gemini.go
package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cinequest/models"
	"cinequest/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiResolver resolves intents through the Gemini API, configured with
// the closed action vocabulary as a constrained function-call interface.
type GeminiResolver struct {
	model *genai.GenerativeModel
}

func NewGeminiResolver(ctx context.Context, apiKey, modelName string) (*GeminiResolver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.Tools = []*genai.Tool{{FunctionDeclarations: actionDeclarations()}}

	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(500)

	return &GeminiResolver{model: model}, nil
}

// Resolve sends the serialized context plus transcript and consumes at
// most one function call from the response. The caller bounds the call
// with a deadline on ctx; expiry maps to service_unavailable.
func (g *GeminiResolver) Resolve(ctx context.Context, transcript []models.Message, bctx *models.BookingContext) (string, []models.Action, error) {
	prompt := buildPrompt(transcript, bctx)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		rerr := classifyRemoteError(err)
		utils.GetLogger().Warn("Gemini call failed", zap.Error(err), zap.String("code", rerr.Code))
		return "", nil, rerr
	}

	return parseModelResponse(resp)
}

// parseModelResponse extracts the free-text reply and at most one
// validated action from a model response.
func parseModelResponse(resp *genai.GenerateContentResponse) (string, []models.Action, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil, NewResolverError(ErrCodeMalformedResponse, "no candidate in model response")
	}

	var actions []models.Action
	var text strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			if len(actions) == 0 {
				actions = append(actions, SanitizeAction(p.Name, p.Args))
			}
		}
	}

	reply := strings.TrimSpace(text.String())
	if reply == "" && len(actions) == 0 {
		return "", nil, NewResolverError(ErrCodeMalformedResponse, "model response carried neither text nor a function call")
	}
	if reply == "" {
		reply = actionConfirmation(actions)
	}
	return reply, actions, nil
}

// actionConfirmation synthesizes a reply when the model returned a
// function call with no accompanying text.
func actionConfirmation(actions []models.Action) string {
	if len(actions) == 0 {
		return ""
	}
	a := actions[0]
	switch a.Type {
	case models.ActionSelectMovie:
		return "Navigating to cinemas showing this movie..."
	case models.ActionSelectShowtime:
		return "Taking you to seat selection..."
	case models.ActionSelectSeats:
		qty, _ := intParam(a.Params, "quantity")
		tier := stringParam(a.Params, "tier")
		return strings.TrimSpace(fmt.Sprintf("Selecting %d %s seat(s) for you...", qty, tier))
	case models.ActionFilterMovies:
		return "Filtering movies..."
	default:
		return "Action executed."
	}
}

// classifyRemoteError maps transport failures onto the resolver taxonomy.
func classifyRemoteError(err error) *ResolverError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ResolverError{Code: ErrCodeServiceUnavailable, Message: "model call timed out"}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return &ResolverError{Code: ErrCodeRateLimited, Message: "model endpoint is rate limiting requests"}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &ResolverError{Code: ErrCodeUnauthorized, Message: "model endpoint rejected the credential"}
		}
	}

	return &ResolverError{Code: ErrCodeServiceUnavailable, Message: err.Error()}
}

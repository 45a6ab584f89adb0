package sequence

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/outreach-cli/internal/config"
	"github.com/sells-group/outreach-cli/internal/resilience"
	"github.com/sells-group/outreach-cli/pkg/anthropic"
)

// Generator produces email copy from a prompt. Implementations may fail or
// time out; the builder degrades to static templates per stage.
type Generator interface {
	GenerateCopy(ctx context.Context, prompt string) (string, error)
}

// ClaudeGenerator generates copy via the Anthropic API with a per-call
// timeout, transient-error retry, and client-side rate limiting.
type ClaudeGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	limiter   *rate.Limiter
	retry     resilience.RetryConfig
}

// NewClaudeGenerator creates a generator from config.
func NewClaudeGenerator(client anthropic.Client, cfg config.AnthropicConfig) *ClaudeGenerator {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2.0
	}

	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.OnRetry = resilience.RetryLogger("anthropic", "generate_copy")

	return &ClaudeGenerator{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		retry:     retryCfg,
	}
}

// GenerateCopy runs one bounded generation call and returns the text verbatim.
func (g *ClaudeGenerator) GenerateCopy(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "sequence: rate limit wait")
	}

	resp, err := resilience.DoVal(ctx, g.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		callCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}
		return g.client.CreateMessage(callCtx, anthropic.MessageRequest{
			Model:     g.model,
			MaxTokens: g.maxTokens,
			System:    systemPrompt,
			Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
		})
	})
	if err != nil {
		return "", eris.Wrap(err, "sequence: generate copy")
	}

	resp.Usage.LogCost(g.model, "stage_copy")

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", eris.New("sequence: generation returned empty copy")
	}
	return text, nil
}

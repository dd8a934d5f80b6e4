package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/ai"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/logger"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/matching"
	"github.com/SUDHERSAN-K/AI-Automation-Procurement/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// cachingGenerator is implemented by generators that can pin the project
// rules in a server-side content cache.
type cachingGenerator interface {
	EnsureRulesCache(ctx context.Context, projectID, displayName, rulesPayload string) (string, error)
	GenerateContentWithCache(ctx context.Context, prompt, cacheName string) (string, error)
}

//go:embed justify_prompt.md
var justifyPromptTemplate string

//go:embed scope_prompt.md
var scopePromptTemplate string

const (
	defaultMaxLogLength = 200
	retryBaseDelay      = 500 * time.Millisecond
)

// Narrator implements ai.Narrator and ai.ScopeComposer on top of Gemini.
type Narrator struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

func NewNarrator(generator contentGenerator, logger *zap.Logger, maxRetries, maxLogLength int) *Narrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Narrator{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// Justify renders the justification facts into prose via the embedded
// prompt template.
func (n *Narrator) Justify(ctx context.Context, facts *matching.JustificationFacts) (string, error) {
	if facts == nil {
		return "", fmt.Errorf("justification facts are required")
	}

	factsJSON, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal justification facts: %w", err)
	}

	prompt := strings.ReplaceAll(justifyPromptTemplate, "{{FACTS_JSON}}", string(factsJSON))

	n.logger.Debug("gemini justification request",
		zap.String("item_id", facts.ItemID),
		zap.String("vendor_id", facts.VendorID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generateWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}

	n.logger.Debug("gemini justification response",
		zap.String("item_id", facts.ItemID),
		zap.String("vendor_id", facts.VendorID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, n.maxLogLen)),
	)

	return stripFences(raw), nil
}

// ComposeScope produces the full markdown scope document. When the
// underlying generator supports content caching and the request names a
// project, the project rules are pinned server-side and omitted from the
// prompt body.
func (n *Narrator) ComposeScope(ctx context.Context, req *ai.ScopeRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("scope request is required")
	}

	rules := req.ProjectRules
	cacheName := ""

	if cacher, ok := n.generator.(cachingGenerator); ok && strings.TrimSpace(req.ProjectID) != "" && strings.TrimSpace(rules) != "" {
		name, err := cacher.EnsureRulesCache(ctx, req.ProjectID, "", rules)
		if err != nil {
			n.logger.Warn("project rules cache unavailable; sending rules inline", zap.Error(err))
		} else {
			cacheName = name
			rules = "(provided via cached content)"
		}
	}

	prompt := strings.NewReplacer(
		"{{PROJECT_RULES}}", rules,
		"{{USER_PROMPT}}", req.Prompt,
		"{{SUMMARY}}", req.Summary,
		"{{ROWS}}", req.Rows,
	).Replace(scopePromptTemplate)

	n.logger.Debug("gemini scope request",
		zap.String("project_id", req.ProjectID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, n.maxLogLen)),
	)

	var raw string
	var err error
	if cacheName != "" {
		if cacher, ok := n.generator.(cachingGenerator); ok {
			raw, err = cacher.GenerateContentWithCache(ctx, prompt, cacheName)
		}
	} else {
		raw, err = n.generateWithRetry(ctx, prompt)
	}
	if err != nil {
		return "", err
	}

	return stripFences(raw), nil
}

func (n *Narrator) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		if attempt > 0 {
			n.logger.Debug("retrying generation",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, time.Duration(attempt)*retryBaseDelay); err != nil {
				return "", err
			}
		}

		raw, err := n.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("generate content after %d attempts: %w", n.maxRetries+1, lastErr)
}

// stripFences removes a surrounding markdown code fence when the model
// wraps its answer in one.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```markdown")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}

// Package report builds the analysis prompt and issues the single
// generative request that produces the procurement risk report. The
// request runs once per invocation: no retries, no caching, no local
// deadline. Service failures surface as one opaque error; the real cause
// only ever reaches the report category log.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

var (
	// ErrAnalysisFailed is the only error callers see for transport,
	// authentication, or service-side failures.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrWinnerNotFound reports a declared winning-bidder name that does
	// not match any entry in the supplied bidder list.
	ErrWinnerNotFound = errors.New("winning bidder not found among entered bidders")
)

// Request carries everything the analysis prompt embeds.
type Request struct {
	Project    types.Project
	Bidders    []types.Bidder
	WinnerName string
	Reasoning  string
	Members    []types.BACMember
}

// Validate enforces the lookup precondition: the declared winner must match
// the name of at least one bidder, by exact string equality. Runs before
// any network activity.
func (r Request) Validate() error {
	for _, b := range r.Bidders {
		if b.Name == r.WinnerName {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrWinnerNotFound, r.WinnerName)
}

// Requester produces a risk report for one analysis request.
type Requester interface {
	Analyze(ctx context.Context, req Request) (*types.ReportResult, error)
}

// GeminiRequester implements Requester against the Gemini API with the
// Google Search retrieval tool enabled.
type GeminiRequester struct {
	client *genai.Client
	model  string
}

// NewGeminiRequester constructs the production requester. The API key must
// already be resolved; config startup validation guarantees it.
func NewGeminiRequester(ctx context.Context, apiKey, model string) (*GeminiRequester, error) {
	if apiKey == "" {
		return nil, errors.New("gemini requester: api key required")
	}
	if model == "" {
		return nil, errors.New("gemini requester: model required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiRequester{client: client, model: model}, nil
}

// Analyze validates the request, sends exactly one grounded generation
// call, and extracts the report text plus citation sources.
func (g *GeminiRequester) Analyze(ctx context.Context, req Request) (*types.ReportResult, error) {
	if err := req.Validate(); err != nil {
		logging.ReportWarn("analysis rejected before request: %v", err)
		return nil, err
	}

	prompt := BuildPrompt(req)
	logging.Report("requesting analysis project=%q bidders=%d members=%d prompt_len=%d",
		req.Project.Name, len(req.Bidders), len(req.Members), len(prompt))

	timer := logging.StartTimer(logging.CategoryReport, "analysis request")
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		})
	timer.StopWithInfo()
	if err != nil {
		// Cause stays in the log; callers get the opaque error only.
		logging.ReportError("generation request failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	text, ok := responseText(resp)
	if !ok {
		logging.ReportError("generation response contained no candidates")
		return nil, ErrAnalysisFailed
	}

	sources := extractSources(resp)
	logging.Report("analysis completed response_len=%d grounding_sources=%d", len(text), len(sources))
	return &types.ReportResult{Text: text, Sources: sources}, nil
}

// responseText joins the text parts of the first candidate. A response
// with no candidates reports false so the caller can treat it as a
// service failure.
func responseText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", true
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), true
}

// extractSources pulls citation entries out of the grounding metadata.
// Absent metadata means an ungrounded answer, not a failure: the result
// is simply an empty list. Chunks without a web part or URI are skipped.
func extractSources(resp *genai.GenerateContentResponse) []types.GroundingSource {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil
	}

	var sources []types.GroundingSource
	for _, chunk := range gm.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, types.GroundingSource{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return sources
}

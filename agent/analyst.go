// Package agent produces FX analyses locally with Gemini, for when the
// dashboard backend cannot.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/fxdash"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrNoAPIKey is returned by NewAnalyst without an API key.
var ErrNoAPIKey = errors.New("no Gemini API key")

// generator is the part of genai.Models used by the Analyst.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Analyst asks a Gemini model for FX analyses.
type Analyst struct {
	ModelName string
	models    generator
}

// NewAnalyst creates an Analyst on the Gemini API.
func NewAnalyst(ctx context.Context, apiKey, model string) (*Analyst, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Analyst{ModelName: model, models: client.Models}, nil
}

const systemInstruction = `You are a professional FX analyst writing for a corporate treasury desk.
You always answer with a single JSON object and nothing else.`

// config returns the generation config for preset.
//
// Search grounding cannot be combined with a JSON response type: with web
// search the JSON is extracted from the text reply instead.
func config(preset fxdash.AnalysisPreset) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	if preset.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	} else {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

// Analyze returns the model's analysis of the market context m.
func (a *Analyst) Analyze(ctx context.Context, m fxdash.MarketContext, preset fxdash.AnalysisPreset) (fxdash.Analysis, error) {
	preset = preset.Normalize()
	log.Debug().Str("model", a.ModelName).Str("pair", m.Pair.String()).Bool("web", preset.WebSearch).Msg("analyze")
	resp, err := a.models.GenerateContent(ctx, a.ModelName, genai.Text(preset.Prompt(m)), config(preset))
	if err != nil {
		return fxdash.Analysis{}, fmt.Errorf("cannot generate %s analysis: %w", m.Pair, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fxdash.Analysis{}, fmt.Errorf("no response from %s", a.ModelName)
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	var analysis fxdash.Analysis
	if err := json.Unmarshal([]byte(ExtractJSON(text.String())), &analysis); err != nil {
		return fxdash.Analysis{}, fmt.Errorf("cannot decode %s analysis: %w", m.Pair, err)
	}
	analysis.Origin = a.ModelName
	return analysis, nil
}

// ExtractJSON returns the JSON object embedded in a model reply: the content
// of the first fenced code block if any, or the text between the first '{'
// and the last '}'.
func ExtractJSON(text string) string {
	if _, after, ok := strings.Cut(text, "```"); ok {
		after = strings.TrimPrefix(after, "json")
		if block, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(block)
		}
	}
	start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/fxdash"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels answers every request with reply, and records the last request.
type fakeModels struct {
	reply    []string
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	parts := make([]*genai.Part, len(f.reply))
	for i, text := range f.reply {
		parts[i] = &genai.Part{Text: text}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}, nil
}

var market = fxdash.MarketContext{
	Pair:              fxdash.MustPair("EUR", "USD"),
	Rate:              decimal.RequireFromString("1.0842"),
	BaseInterestRate:  decimal.RequireFromString("2.75"),
	QuoteInterestRate: decimal.RequireFromString("4.25"),
}

const reply = `{"shortTerm":{"trend":"Bearish","summary":"down","details":"d","sources":[]},"longTerm":{"trend":"Bullish","summary":"up","details":"d","sources":[{"name":"ECB","url":"https://www.ecb.europa.eu"}]}}`

func TestAnalyst_Analyze(t *testing.T) {
	models := &fakeModels{reply: []string{reply[:40], reply[40:]}}
	a := &Analyst{ModelName: DefaultModel, models: models}

	got, err := a.Analyze(context.Background(), market, fxdash.DefaultPreset())

	require.NoError(t, err)
	assert.Equal(t, fxdash.Bearish, got.ShortTerm.Trend)
	assert.Equal(t, "ECB", got.LongTerm.Sources[0].Name)
	assert.Equal(t, DefaultModel, got.Origin)
	assert.Equal(t, DefaultModel, models.model)
	assert.Equal(t, "application/json", models.config.ResponseMIMEType)
	assert.Empty(t, models.config.Tools)
	require.Len(t, models.contents, 1)
	assert.Contains(t, models.contents[0].Parts[0].Text, "Analyze the EUR/USD currency pair.")
}

func TestAnalyst_AnalyzeWithSearch(t *testing.T) {
	models := &fakeModels{reply: []string{"Here is my analysis:\n```json\n" + reply + "\n```\nHope it helps."}}
	a := &Analyst{ModelName: "gemini-test", models: models}
	preset := fxdash.DefaultPreset()
	preset.WebSearch = true

	got, err := a.Analyze(context.Background(), market, preset)

	require.NoError(t, err)
	assert.Equal(t, fxdash.Bullish, got.LongTerm.Trend)
	assert.Empty(t, models.config.ResponseMIMEType)
	require.Len(t, models.config.Tools, 1)
	assert.NotNil(t, models.config.Tools[0].GoogleSearch)
}

func TestAnalyst_Errors(t *testing.T) {
	boom := errors.New("quota exceeded")
	a := &Analyst{ModelName: DefaultModel, models: &fakeModels{err: boom}}
	_, err := a.Analyze(context.Background(), market, fxdash.DefaultPreset())
	assert.ErrorIs(t, err, boom)

	a = &Analyst{ModelName: DefaultModel, models: &fakeModels{}}
	_, err = a.Analyze(context.Background(), market, fxdash.DefaultPreset())
	assert.ErrorContains(t, err, "no response")

	a = &Analyst{ModelName: DefaultModel, models: &fakeModels{reply: []string{"I cannot help with that."}}}
	_, err = a.Analyze(context.Background(), market, fxdash.DefaultPreset())
	assert.ErrorContains(t, err, "cannot decode")
}

func TestNewAnalyst_NoKey(t *testing.T) {
	_, err := NewAnalyst(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "see\n```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Sure! {"a":{"b":2}} Done.`, `{"a":{"b":2}}`},
		{"no json", "  nothing  ", "nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}

func TestDemoAnalysis(t *testing.T) {
	a := DemoAnalysis()
	assert.Equal(t, fxdash.Neutral, a.ShortTerm.Trend)
	assert.Equal(t, fxdash.Neutral, a.LongTerm.Trend)
	assert.Equal(t, "demo", a.Origin)
}

package perceiver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyapi/internal/compliance"
	"complyapi/internal/config"
	"complyapi/internal/model"
)

type reply struct {
	content string
	err     error
}

type fakeCompleter struct {
	replies  []reply
	requests []openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if len(f.replies) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("no reply queued")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	if r.err != nil {
		return openai.ChatCompletionResponse{}, r.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: r.content}}},
	}, nil
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{Model: "gpt-test", Timeout: time.Second, MaxAttempts: 2, RetryWait: time.Millisecond}
}

// validReply builds a schema-conforming answer where every field passes.
func validReply(t *testing.T, guidelines []*compliance.Guideline) string {
	t.Helper()
	items := map[string]any{}
	for _, g := range guidelines {
		for _, f := range g.Fields() {
			items[g.Key(f.Name)] = map[string]any{"value": true, "confidence": 0.75, "evidence": "seen"}
		}
	}
	b, err := json.Marshal(map[string]any{
		"is_advertisement": true,
		"detected_items":   items,
		"improvements":     []string{},
		"anomalies":        []string{},
		"what_is_right":    []string{"clear"},
	})
	require.NoError(t, err)
	return string(b)
}

func TestPerceive_Schema(t *testing.T) {
	guidelines := []*compliance.Guideline{compliance.ASCI}
	fc := &fakeCompleter{replies: []reply{{content: validReply(t, guidelines)}}}
	p := newOpenAI(fc, testConfig(), nil)

	out, err := p.Perceive(context.Background(), "Invest today", guidelines)
	require.NoError(t, err)

	assert.Equal(t, compliance.OriginSchema, out.Origin)
	require.Contains(t, out.DetectedItems, "asci_not_misleading")
	assert.True(t, *out.DetectedItems["asci_not_misleading"].Value)
	assert.Equal(t, []string{"clear"}, out.WhatIsRight)

	require.Len(t, fc.requests, 1)
	req := fc.requests[0]
	assert.Equal(t, "gpt-test", req.Model)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, "CompliancePerception", req.ResponseFormat.JSONSchema.Name)
	assert.True(t, req.ResponseFormat.JSONSchema.Strict)
	assert.Equal(t, "Invest today", req.Messages[1].Content)
}

func TestPerceive_RetriesThenSucceeds(t *testing.T) {
	guidelines := []*compliance.Guideline{compliance.ASCI}
	fc := &fakeCompleter{replies: []reply{
		{err: errors.New("rate limited")},
		{content: validReply(t, guidelines)},
	}}
	p := newOpenAI(fc, testConfig(), nil)

	out, err := p.Perceive(context.Background(), "x", guidelines)
	require.NoError(t, err)
	assert.Equal(t, compliance.OriginSchema, out.Origin)
	assert.Len(t, fc.requests, 2)
}

func TestPerceive_InvalidSchemaFallsBack(t *testing.T) {
	guidelines := []*compliance.Guideline{compliance.ASCI}
	fc := &fakeCompleter{replies: []reply{
		{content: `{"is_advertisement": "yes"}`},
		{content: `{"is_advertisement": "yes"}`},
		{content: "Sure! Here it is: {\"is_advertisement\": true, \"detected_items\": {\"asci_not_misleading\": {\"value\": false, \"confidence\": 1.7, \"evidence\": \"100%\"}}} hope it helps"},
	}}
	p := newOpenAI(fc, testConfig(), nil)

	out, err := p.Perceive(context.Background(), "x", guidelines)
	require.NoError(t, err)

	assert.Equal(t, compliance.OriginFallback, out.Origin)
	item := out.DetectedItems["asci_not_misleading"]
	assert.False(t, *item.Value)
	assert.Equal(t, 1.0, item.Confidence, "confidence is clamped")

	require.Len(t, fc.requests, 3)
	assert.Nil(t, fc.requests[2].ResponseFormat)
}

func TestPerceive_AllFailuresUseDefault(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{
		{err: errors.New("down")},
		{err: errors.New("down")},
		{content: "I cannot help with that"},
	}}
	p := newOpenAI(fc, testConfig(), nil)

	out, err := p.Perceive(context.Background(), "x", []*compliance.Guideline{compliance.ASCI})
	require.NoError(t, err)
	assert.Equal(t, compliance.OriginDefault, out.Origin)
	assert.Empty(t, out.DetectedItems)
	assert.True(t, out.IsAdvertisement)
}

func TestPerceive_CanceledContext(t *testing.T) {
	fc := &fakeCompleter{}
	p := newOpenAI(fc, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Perceive(ctx, "x", []*compliance.Guideline{compliance.ASCI})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply reply
		want  model.AdType
	}{
		{"valid", reply{content: `{"detected_type":"ipo"}`}, model.AdTypeIPO},
		{"unknown type", reply{content: `{"detected_type":"crypto"}`}, model.AdTypeOther},
		{"garbage", reply{content: `nope`}, model.AdTypeOther},
		{"error", reply{err: errors.New("down")}, model.AdTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{replies: []reply{tt.reply}}
			p := newOpenAI(fc, testConfig(), nil)

			got, err := p.Classify(context.Background(), "IPO opens Monday")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, fc.requests, 1)
			assert.Equal(t, "Classification", fc.requests[0].ResponseFormat.JSONSchema.Name)
		})
	}
}

func TestDisabled(t *testing.T) {
	p := NewDisabled()
	assert.False(t, p.Enabled())

	out, err := p.Perceive(context.Background(), "x", nil)
	require.NoError(t, err)
	assert.Equal(t, compliance.OriginDisabled, out.Origin)

	got, err := p.Classify(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, model.AdTypeOther, got)
}

func TestExtractObject(t *testing.T) {
	obj, ok := extractObject("prefix {\"a\": {\"b\": 1}} suffix")
	assert.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, obj)

	_, ok = extractObject("} no object {")
	assert.False(t, ok)
}

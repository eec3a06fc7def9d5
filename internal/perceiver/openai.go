package perceiver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sashabaranov/go-openai"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"complyapi/internal/compliance"
	"complyapi/internal/config"
	"complyapi/internal/model"
)

const maxCompletionTokens = 1500

var errEmptyCompletion = errors.New("empty completion")

// chatCompleter is the subset of the OpenAI client used here.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI perceives chunks through the chat completions API.
type OpenAI struct {
	client      chatCompleter
	model       string
	timeout     time.Duration
	maxAttempts uint
	retryWait   time.Duration
	log         *zap.Logger
}

// NewOpenAI builds a perceiver from cfg. Outgoing requests are traced.
func NewOpenAI(cfg config.LLMConfig, log *zap.Logger) *OpenAI {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	return newOpenAI(openai.NewClientWithConfig(oc), cfg, log)
}

func newOpenAI(client chatCompleter, cfg config.LLMConfig, log *zap.Logger) *OpenAI {
	if log == nil {
		log = zap.NewNop()
	}
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &OpenAI{
		client:      client,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxAttempts: attempts,
		retryWait:   cfg.RetryWait,
		log:         log,
	}
}

func (o *OpenAI) Enabled() bool { return true }

// Perceive asks the model for a schema-conforming perception of chunk.
// Schema calls are retried; after that one unstructured call is tried and
// any JSON object found in its reply is used. If both fail the default
// perception is returned.
func (o *OpenAI) Perceive(ctx context.Context, chunk string, guidelines []*compliance.Guideline) (*compliance.LLMPerception, error) {
	schema := compliance.BuildSchema(guidelines)
	prompt := compliance.BuildSystemPrompt(guidelines)

	out, err := backoff.Retry(ctx, func() (*compliance.LLMPerception, error) {
		raw, err := o.complete(ctx, prompt, chunk, &schema)
		if err != nil {
			return nil, err
		}
		if err := validate(schema, raw); err != nil {
			return nil, err
		}
		var p compliance.LLMPerception
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		return &p, nil
	}, backoff.WithBackOff(backoff.NewConstantBackOff(o.retryWait)), backoff.WithMaxTries(o.maxAttempts))
	if err == nil {
		out.Origin = compliance.OriginSchema
		return normalize(out), nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	o.log.Warn("llm_schema_call_failed", zap.Error(err), zap.Uint("attempts", o.maxAttempts))

	raw, err := o.complete(ctx, prompt, chunk, nil)
	if err == nil {
		var p compliance.LLMPerception
		if obj, ok := extractObject(raw); ok && json.Unmarshal([]byte(obj), &p) == nil {
			p.Origin = compliance.OriginFallback
			return normalize(&p), nil
		}
		err = fmt.Errorf("no JSON object in reply")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	o.log.Warn("llm_fallback_failed", zap.Error(err))
	return compliance.DefaultLLMPerception(compliance.OriginDefault), nil
}

// Classify asks the model which ad type chunk belongs to.
// Any failure classifies the chunk as other.
func (o *OpenAI) Classify(ctx context.Context, chunk string) (model.AdType, error) {
	schema := compliance.ClassificationSchema()
	raw, err := o.complete(ctx, compliance.ClassificationPrompt, chunk, &schema)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		o.log.Warn("llm_classify_failed", zap.Error(err))
		return model.AdTypeOther, nil
	}

	var c model.Classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil || !c.DetectedType.Valid() {
		o.log.Warn("llm_classify_unparsable", zap.String("reply", raw))
		return model.AdTypeOther, nil
	}
	return c.DetectedType, nil
}

func (o *OpenAI) complete(ctx context.Context, system, chunk string, schema *compliance.Schema) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: chunk},
		},
		Temperature: 0,
		MaxTokens:   maxCompletionTokens,
	}
	if schema != nil {
		body, err := json.Marshal(schema.Body)
		if err != nil {
			return "", backoff.Permanent(fmt.Errorf("marshal schema: %w", err))
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: json.RawMessage(body),
				Strict: schema.Strict,
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// validate checks raw against the schema body.
func validate(schema compliance.Schema, raw string) error {
	res, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema.Body), gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("validate reply: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("reply does not match schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// extractObject returns the text between the first '{' and the last '}'.
func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func normalize(p *compliance.LLMPerception) *compliance.LLMPerception {
	if p.DetectedItems == nil {
		p.DetectedItems = map[string]compliance.LLMItem{}
	}
	for k, item := range p.DetectedItems {
		item.Confidence = min(max(item.Confidence, 0), 1)
		p.DetectedItems[k] = item
	}
	return p
}

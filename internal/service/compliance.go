// Package service implements the compliance use cases on top of the pure
// engine, the perceiver and the optional history backends.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"complyapi/internal/cache"
	"complyapi/internal/compliance"
	"complyapi/internal/extract"
	"complyapi/internal/metrics"
	"complyapi/internal/model"
	"complyapi/internal/perceiver"
	"complyapi/internal/repository"
	"complyapi/internal/storage"
)

var tracer = otel.Tracer("complyapi/internal/service")

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("compliance check not found")
	ErrHistoryDisabled = errors.New("check history is not configured")
	ErrNoSource        = errors.New("no archived source for this check")
	ErrContentTooLarge = errors.New("content too large")
	// ErrUnsupportedFormat is returned for uploads whose text cannot be extracted.
	ErrUnsupportedFormat = extract.ErrUnsupportedFormat
)

const (
	defaultListLimit     = 10
	maxListLimit         = 100
	defaultPresignExpiry = 15 * time.Minute
	textSourceName       = "text"
)

// Submission is the content handed in for a check or a classification.
// When a file is present its text is used and Text is ignored.
type Submission struct {
	Text        string
	Filename    string
	ContentType string
	Data        []byte
}

func (s Submission) hasFile() bool {
	return s.Filename != "" || len(s.Data) > 0
}

// Empty reports whether neither a file nor text was submitted.
func (s Submission) Empty() bool {
	return !s.hasFile() && s.Text == ""
}

// CheckListResult is the service-level DTO for paginated checks.
type CheckListResult struct {
	Items []model.ComplianceCheck `json:"data"`
	Total int                     `json:"total"`
}

// ComplianceService defines the compliance use cases.
type ComplianceService interface {
	// Check evaluates a submission against the guidelines selected by adTypes
	// and records it in history when a database is configured.
	Check(ctx context.Context, sub Submission, adTypes []string) (*model.Report, error)

	// Classify detects the ad type of a submission by majority vote over chunks.
	Classify(ctx context.Context, sub Submission) (*model.Classification, error)

	// Guidelines returns the guideline catalogue.
	Guidelines() []*compliance.Guideline

	// List returns recorded checks using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*CheckListResult, error)

	// Get returns a single recorded check.
	Get(ctx context.Context, id string) (*model.ComplianceCheck, error)

	// Delete removes a recorded check and its archived source.
	Delete(ctx context.Context, id string) error

	// SourceURL returns a time-limited download URL for the archived submission.
	SourceURL(ctx context.Context, id string) (string, error)
}

// Options tunes chunking, concurrency and retention.
type Options struct {
	ChunkSize         int
	ChunkOverlap      int
	ClassifyChunkSize int
	MaxUploadBytes    int64
	Workers           int
	CacheTTL          time.Duration
	PresignExpiry     time.Duration
}

// Dependencies are the collaborators of the compliance service.
// Repo, Store, Cache and Metrics are optional.
type Dependencies struct {
	Perceiver perceiver.Perceiver
	Repo      repository.CheckRepository
	Store     storage.Storage
	Cache     cache.Cache
	Metrics   *metrics.Compliance
	Log       *zap.Logger
}

type complianceService struct {
	perceiver perceiver.Perceiver
	repo      repository.CheckRepository
	store     storage.Storage
	cache     cache.Cache
	metrics   *metrics.Compliance
	log       *zap.Logger
	opt       Options
}

// NewComplianceService constructs a new ComplianceService.
func NewComplianceService(deps Dependencies, opt Options) ComplianceService {
	if deps.Perceiver == nil {
		deps.Perceiver = perceiver.NewDisabled()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewNoop()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if opt.Workers <= 0 {
		opt.Workers = 1
	}
	if opt.PresignExpiry <= 0 {
		opt.PresignExpiry = defaultPresignExpiry
	}
	return &complianceService{
		perceiver: deps.Perceiver,
		repo:      deps.Repo,
		store:     deps.Store,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		log:       deps.Log,
		opt:       opt,
	}
}

func (s *complianceService) Check(ctx context.Context, sub Submission, adTypes []string) (*model.Report, error) {
	ctx, span := tracer.Start(ctx, "ComplianceService.Check")
	defer span.End()
	start := time.Now()

	guidelines := compliance.SelectGuidelines(adTypes)
	codeList := compliance.Codes(guidelines)
	span.SetAttributes(attribute.StringSlice("compliance.guidelines", codeList))

	if sub.Empty() {
		report := compliance.Aggregate(nil)
		s.metrics.ObserveCheck(string(report.OverallStatus), time.Since(start))
		return report, nil
	}

	text, err := s.resolveText(sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	key := cache.Key(codeList, text)
	report, hit := s.cached(ctx, key)
	span.SetAttributes(attribute.Bool("compliance.cache_hit", hit))
	if !hit {
		report, err = s.evaluate(ctx, text, guidelines)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		s.remember(ctx, key, report)
	}

	s.metrics.ObserveCheck(string(report.OverallStatus), time.Since(start))
	s.record(ctx, sub, text, codeList, report)

	s.log.Info("compliance_checked",
		zap.String("check_id", report.ID),
		zap.Strings("guidelines", codeList),
		zap.Float64("overall_percentage", report.OverallAccuracyPercentage),
		zap.String("overall_status", string(report.OverallStatus)),
		zap.Bool("cache_hit", hit),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return report, nil
}

// resolveText returns the text to evaluate. Files that fail to parse are
// evaluated as empty text; only unsupported formats and oversize uploads fail.
func (s *complianceService) resolveText(sub Submission) (string, error) {
	if !sub.hasFile() {
		return sub.Text, nil
	}
	if s.opt.MaxUploadBytes > 0 && int64(len(sub.Data)) > s.opt.MaxUploadBytes {
		return "", ErrContentTooLarge
	}
	text, err := extract.Text(sub.Filename, sub.Data)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return "", err
	}
	if err != nil {
		s.log.Warn("text_extraction_failed", zap.String("filename", sub.Filename), zap.Error(err))
		return "", nil
	}
	return text, nil
}

func (s *complianceService) evaluate(ctx context.Context, text string, guidelines []*compliance.Guideline) (*model.Report, error) {
	chunks := compliance.ChunkText(text, s.opt.ChunkSize, s.opt.ChunkOverlap)
	perChunk := make([]model.Perceptions, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opt.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			llm, err := s.perceiver.Perceive(gctx, chunk, guidelines)
			if err != nil {
				return fmt.Errorf("perceive chunk %d: %w", i, err)
			}
			s.metrics.ObservePerception(llm.Origin)
			perChunk[i] = compliance.Merge(compliance.Deterministic(guidelines, chunk), llm)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	final := compliance.Reduce(perChunk)
	evals := make([]model.GuidelineEvaluation, 0, len(guidelines))
	for _, gl := range guidelines {
		evals = append(evals, compliance.Evaluate(gl, final))
	}
	return compliance.Aggregate(evals), nil
}

func (s *complianceService) cached(ctx context.Context, key string) (*model.Report, bool) {
	b, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cache_get_failed", zap.Error(err))
		}
		s.metrics.ObserveCache(false)
		return nil, false
	}
	var report model.Report
	if err := json.Unmarshal(b, &report); err != nil {
		s.log.Warn("cache_entry_invalid", zap.Error(err))
		s.metrics.ObserveCache(false)
		return nil, false
	}
	s.metrics.ObserveCache(true)
	return &report, true
}

func (s *complianceService) remember(ctx context.Context, key string, report *model.Report) {
	b, err := json.Marshal(report)
	if err != nil {
		s.log.Warn("cache_encode_failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, b, s.opt.CacheTTL); err != nil {
		s.log.Warn("cache_set_failed", zap.Error(err))
	}
}

// record persists the check and archives its source. Failures are logged and
// leave report.ID empty; the caller still gets the report.
func (s *complianceService) record(ctx context.Context, sub Submission, text string, guidelineCodes []string, report *model.Report) {
	if s.repo == nil {
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		s.log.Error("persist_check_failed", zap.Error(err))
		return
	}

	check := &model.ComplianceCheck{
		ID:                uuid.NewString(),
		SourceName:        textSourceName,
		ContentType:       "text/plain; charset=utf-8",
		Guidelines:        guidelineCodes,
		OverallPercentage: report.OverallAccuracyPercentage,
		OverallStatus:     report.OverallStatus,
		Report:            body,
		CreatedAt:         time.Now().UTC(),
	}
	data, name := []byte(text), "submission.txt"
	if sub.hasFile() {
		check.SourceName = sub.Filename
		check.ContentType = sub.ContentType
		if check.ContentType == "" {
			check.ContentType = "application/octet-stream"
		}
		data, name = sub.Data, sub.Filename
	}

	if s.store != nil {
		key := storage.SubmissionKey(check.ID, name)
		_, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: check.ContentType,
			Metadata:    map[string]string{"original-filename": check.SourceName},
		})
		if err != nil {
			s.log.Warn("archive_source_failed", zap.String("check_id", check.ID), zap.Error(err))
		} else {
			check.StoragePath = key
		}
	}

	if _, err := s.repo.Create(ctx, check); err != nil {
		s.log.Error("persist_check_failed", zap.String("check_id", check.ID), zap.Error(err))
		if check.StoragePath != "" {
			// Rollback: delete the archived object
			if delErr := s.store.Delete(ctx, check.StoragePath); delErr != nil {
				s.log.Error("archive_rollback_failed", zap.String("check_id", check.ID), zap.Error(delErr))
			}
		}
		return
	}
	report.ID = check.ID
}

func (s *complianceService) Classify(ctx context.Context, sub Submission) (*model.Classification, error) {
	ctx, span := tracer.Start(ctx, "ComplianceService.Classify")
	defer span.End()

	if sub.Empty() {
		return &model.Classification{DetectedType: model.AdTypeOther}, nil
	}
	text, err := s.resolveText(sub)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	chunks := compliance.ChunkText(text, s.opt.ClassifyChunkSize, s.opt.ChunkOverlap)
	types := make([]model.AdType, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opt.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			t, err := s.perceiver.Classify(gctx, chunk)
			if err != nil {
				return fmt.Errorf("classify chunk %d: %w", i, err)
			}
			types[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detected := compliance.MajorityType(types)
	span.SetAttributes(attribute.String("compliance.ad_type", string(detected)))
	return &model.Classification{DetectedType: detected}, nil
}

func (s *complianceService) Guidelines() []*compliance.Guideline {
	return compliance.All()
}

// List returns paginated checks without exposing repository types.
func (s *complianceService) List(ctx context.Context, limit, offset int) (*CheckListResult, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &CheckListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *complianceService) Get(ctx context.Context, id string) (*model.ComplianceCheck, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	check, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return check, nil
}

// Delete removes the archived object first, then the record; if the object
// cannot be removed the record is kept so the reference is not lost.
func (s *complianceService) Delete(ctx context.Context, id string) error {
	check, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if check.StoragePath != "" && s.store != nil {
		if err := s.store.Delete(ctx, check.StoragePath); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *complianceService) SourceURL(ctx context.Context, id string) (string, error) {
	check, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if check.StoragePath == "" || s.store == nil {
		return "", ErrNoSource
	}
	u, err := s.store.PresignGet(ctx, check.StoragePath, s.opt.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign source: %w", err)
	}
	return u, nil
}

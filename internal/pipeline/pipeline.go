// Package pipeline runs one resume upload end to end: extract text, build the
// prompt, call the completion service, recover and normalize the JSON, then
// reconcile the profile into the store. Stages are strictly sequential per
// request; the upsert is the single commit point and is never reached after a
// failed or cancelled stage.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/cv-profiler/constants"
	"github.com/joseph-ayodele/cv-profiler/internal/common"
	"github.com/joseph-ayodele/cv-profiler/internal/entity"
	"github.com/joseph-ayodele/cv-profiler/internal/extract"
	"github.com/joseph-ayodele/cv-profiler/internal/llm"
	"github.com/joseph-ayodele/cv-profiler/internal/repository"
)

type Processor struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Completer llm.CompletionClient
	Profiles  repository.ProfileRepository

	profileSchema map[string]any
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	completer llm.CompletionClient,
	profiles repository.ProfileRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:        logger,
		Extractor:     extractor,
		Completer:     completer,
		Profiles:      profiles,
		profileSchema: llm.BuildProfileJSONSchema(),
	}
}

// ProcessResume runs the full extraction pipeline for one uploaded document
// and returns the persisted profile. Format errors fail before any completion
// call; empty extracted text likewise short-circuits before the model is hit.
func (p *Processor) ProcessResume(ctx context.Context, userID, filename string, content []byte) (*entity.StoredProfile, error) {
	start := time.Now()
	ext := filepath.Ext(filename)

	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, common.Ef(common.KindUnsupportedFormat, "unsupported file extension: %q", ext)
	}

	p.Logger.Info("pipeline.start",
		"user_id", userID,
		"filename", filename,
		"format", format,
		"bytes", len(content),
	)

	res, err := p.Extractor.Extract(ctx, format, content)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "user_id", userID, "format", format, "error", err)
		return nil, err
	}
	if strings.TrimSpace(res.Text) == "" {
		p.Logger.Warn("pipeline.extract.empty", "user_id", userID, "format", format, "pages", res.Pages)
		return nil, common.Ef(common.KindEmptyDocument, "document contains no extractable text")
	}
	p.Logger.Info("pipeline.extract.ok",
		"user_id", userID, "format", format,
		"pages", res.Pages, "text_len", len(res.Text),
	)

	prompt := llm.BuildExtractionPrompt(res.Text)

	raw, err := p.Completer.Complete(ctx, prompt)
	if err != nil {
		p.Logger.Error("pipeline.complete.failed", "user_id", userID, "error", err)
		return nil, err
	}

	doc, err := llm.RecoverJSON(raw)
	if err != nil {
		p.Logger.Error("pipeline.recover.failed",
			"user_id", userID, "error", err,
			"raw_len", len(common.RawOf(err)),
		)
		return nil, err
	}

	profile, err := llm.NormalizeProfile(doc)
	if err != nil {
		p.Logger.Error("pipeline.normalize.failed", "user_id", userID, "error", err)
		return nil, err
	}
	p.checkInvariants(userID, profile)

	// Nothing may be persisted for a cancelled request.
	if err := ctx.Err(); err != nil {
		p.Logger.Warn("pipeline.cancelled", "user_id", userID, "error", err)
		return nil, err
	}

	stored, err := p.Profiles.Upsert(ctx, userID, profile)
	if err != nil {
		p.Logger.Error("pipeline.reconcile.failed", "user_id", userID, "error", err)
		return nil, err
	}

	p.Logger.Info("pipeline.ok",
		"user_id", userID,
		"profile_id", stored.ID,
		"education", len(profile.Education),
		"experience", len(profile.Experience),
		"skills", len(profile.Skills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stored, nil
}

// checkInvariants validates the normalized profile against the canonical
// schema. The normalizer guarantees the no-null invariant, so a violation
// here is a bug in our own mapping, not bad model output — log, don't fail.
func (p *Processor) checkInvariants(userID string, profile entity.Profile) {
	b, err := json.Marshal(profile)
	if err != nil {
		p.Logger.Error("pipeline.invariant.marshal_failed", "user_id", userID, "error", err)
		return
	}
	if err := llm.ValidateJSONAgainstSchema(p.profileSchema, b); err != nil {
		p.Logger.Error("pipeline.invariant.schema_violation", "user_id", userID, "error", err)
	}
}

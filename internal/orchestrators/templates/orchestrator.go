// Package templates implements the template orchestrator. It composes the
// in-process registry with snapshot storage, the Edgar processing service
// and the generator.
package templates

//go:generate mockgen -destination=mock/mock_service.go -package=templatesmock github.com/KirkDiggler/rpg-rooms/internal/orchestrators/templates Service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-rooms/internal/clients/edgar"
	"github.com/KirkDiggler/rpg-rooms/internal/clients/llm"
	"github.com/KirkDiggler/rpg-rooms/internal/decoder"
	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/registry"
	templaterepo "github.com/KirkDiggler/rpg-rooms/internal/repositories/templates"
)

// DefaultCollection is used when neither the config nor the request names one
const DefaultCollection = "default"

// Service defines the interface for template operations
type Service interface {
	// Registry
	AddTemplate(ctx context.Context, input *AddTemplateInput) (*AddTemplateOutput, error)
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)
	UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error)
	RemoveTemplate(ctx context.Context, input *RemoveTemplateInput) (*RemoveTemplateOutput, error)
	ImportTemplates(ctx context.Context, input *ImportTemplatesInput) (*ImportTemplatesOutput, error)

	// External services
	SyncToEdgar(ctx context.Context, input *SyncToEdgarInput) (*SyncToEdgarOutput, error)
	PullFromEdgar(ctx context.Context, input *PullFromEdgarInput) (*PullFromEdgarOutput, error)
	GenerateFromPrompt(ctx context.Context, input *GenerateFromPromptInput) (*GenerateFromPromptOutput, error)

	// Snapshots
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)
}

// Config holds the dependencies for the template orchestrator
type Config struct {
	Registry   *registry.Registry
	Repository templaterepo.Repository

	// Optional
	EdgarClient edgar.Client
	LLMClient   llm.Client
	Decoder     *decoder.Decoder
	Collection  string
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

type orchestrator struct {
	registry   *registry.Registry
	repo       templaterepo.Repository
	edgar      edgar.Client
	llm        llm.Client
	decoder    *decoder.Decoder
	collection string
	logger     *zap.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new template orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dec := cfg.Decoder
	if dec == nil {
		dec = decoder.New(&decoder.Config{Logger: logger})
	}
	collection := cfg.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	return &orchestrator{
		registry:   cfg.Registry,
		repo:       cfg.Repository,
		edgar:      cfg.EdgarClient,
		llm:        cfg.LLMClient,
		decoder:    dec,
		collection: collection,
		logger:     logger.Named("templates"),
	}, nil
}

// AddTemplate stores a new template
func (o *orchestrator) AddTemplate(_ context.Context, input *AddTemplateInput) (*AddTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	if err := o.registry.Add(input.Template); err != nil {
		return nil, errors.Wrapf(err, "failed to add template %q", input.Template.Name)
	}

	stored, err := o.registry.FindByName(input.Template.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back template")
	}
	return &AddTemplateOutput{Template: stored}, nil
}

// GetTemplate returns a template by name
func (o *orchestrator) GetTemplate(_ context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.registry.FindByName(input.Name)
	if err != nil {
		return nil, err
	}
	return &GetTemplateOutput{Template: t}, nil
}

// ListTemplates returns every template in insertion order
func (o *orchestrator) ListTemplates(_ context.Context, _ *ListTemplatesInput) (*ListTemplatesOutput, error) {
	return &ListTemplatesOutput{Templates: o.registry.ListAll()}, nil
}

// UpdateTemplate changes the set fields of an existing template
func (o *orchestrator) UpdateTemplate(_ context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.registry.Update(input.Name, registry.UpdateInput{
		Size:        input.Size,
		AssetRef:    input.AssetRef,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateTemplateOutput{Template: t}, nil
}

// RemoveTemplate deletes a template by name
func (o *orchestrator) RemoveTemplate(_ context.Context, input *RemoveTemplateInput) (*RemoveTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.registry.Remove(input.Name); err != nil {
		return nil, err
	}
	return &RemoveTemplateOutput{}, nil
}

// ImportTemplates merges templates into the registry, all or nothing
func (o *orchestrator) ImportTemplates(_ context.Context, input *ImportTemplatesInput) (*ImportTemplatesOutput, error) {
	if input == nil || len(input.Templates) == 0 {
		return nil, errors.InvalidArgument("at least one template is required")
	}

	result, err := o.registry.Import(input.Templates)
	if err != nil {
		return nil, err
	}
	return &ImportTemplatesOutput{Result: result}, nil
}

// SyncToEdgar sends the whole registry to Edgar
func (o *orchestrator) SyncToEdgar(ctx context.Context, input *SyncToEdgarInput) (*SyncToEdgarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.edgar == nil {
		return nil, errors.FailedPrecondition("edgar client is not configured")
	}

	exported := o.registry.Export()
	if len(exported) == 0 {
		return nil, errors.FailedPrecondition("registry is empty, nothing to sync")
	}

	wire := make([]*edgar.Template, 0, len(exported))
	for _, t := range exported {
		wire = append(wire, edgar.FromEntity(t))
	}

	resp, err := o.edgar.SendTemplates(ctx, wire)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sync templates to edgar")
	}

	processed, skipped := o.convertProcessed(resp.ProcessedTemplates)
	output := &SyncToEdgarOutput{
		Sent:      len(wire),
		Processed: processed,
		Skipped:   skipped,
	}

	o.logger.Info("templates synced to edgar",
		zap.Int("sent", len(wire)),
		zap.Int("processed", len(processed)),
		zap.Int("skipped", len(skipped)),
	)

	if input.ApplyProcessed && len(processed) > 0 {
		result, err := o.registry.Import(processed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to apply processed templates")
		}
		output.Result = result
	}
	return output, nil
}

// PullFromEdgar merges Edgar's processed templates into the registry
func (o *orchestrator) PullFromEdgar(ctx context.Context, _ *PullFromEdgarInput) (*PullFromEdgarOutput, error) {
	if o.edgar == nil {
		return nil, errors.FailedPrecondition("edgar client is not configured")
	}

	fetched, err := o.edgar.FetchProcessedTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch processed templates")
	}

	processed, skipped := o.convertProcessed(fetched)
	output := &PullFromEdgarOutput{
		Result:  &registry.ImportResult{},
		Skipped: skipped,
	}
	if len(processed) == 0 {
		return output, nil
	}

	result, err := o.registry.Import(processed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import processed templates")
	}
	output.Result = result
	return output, nil
}

// convertProcessed drops invalid wire templates, keeping the rest in order.
// A later duplicate name wins.
func (o *orchestrator) convertProcessed(wire []*edgar.Template) ([]*entities.RoomTemplate, []string) {
	var (
		out     []*entities.RoomTemplate
		skipped []string
		index   = make(map[string]int)
	)
	for _, w := range wire {
		t, err := w.ToEntity()
		if err != nil {
			name := ""
			if w != nil {
				name = w.Name
			}
			o.logger.Warn("skipping invalid processed template", zap.String("name", name), zap.Error(err))
			skipped = append(skipped, name)
			continue
		}
		if i, ok := index[t.Name]; ok {
			out[i] = t
			continue
		}
		index[t.Name] = len(out)
		out = append(out, t)
	}
	return out, skipped
}

// GenerateFromPrompt asks the generator for a template and decodes it
func (o *orchestrator) GenerateFromPrompt(ctx context.Context, input *GenerateFromPromptInput) (*GenerateFromPromptOutput, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}
	if o.llm == nil {
		return nil, errors.FailedPrecondition("generator client is not configured")
	}

	raw, err := o.llm.GenerateRoomTemplate(ctx, input.Prompt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate room template")
	}

	t, err := o.decoder.DecodeTemplate(raw)
	if err != nil {
		o.logger.Warn("rejected generated template", zap.Error(err))
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "generated template was rejected")
	}

	if !input.Add {
		return &GenerateFromPromptOutput{Template: t}, nil
	}

	if err := o.registry.Add(t); err != nil {
		return nil, errors.Wrapf(err, "failed to add generated template %q", t.Name)
	}
	stored, err := o.registry.FindByName(t.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back template")
	}
	return &GenerateFromPromptOutput{Template: stored, Added: true}, nil
}

// SaveSnapshot writes the registry to storage
func (o *orchestrator) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	collection := o.collectionOrDefault(input.Collection)

	saved, err := o.repo.Save(ctx, &templaterepo.SaveInput{
		Collection: collection,
		Templates:  o.registry.Export(),
		TTL:        input.TTL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %q", collection)
	}

	o.logger.Info("snapshot saved",
		zap.String("collection", collection),
		zap.Int("count", len(saved.Snapshot.Templates)),
	)
	return &SaveSnapshotOutput{
		Collection: collection,
		Count:      len(saved.Snapshot.Templates),
		SavedAt:    saved.Snapshot.SavedAt,
	}, nil
}

// LoadSnapshot merges a stored snapshot into the registry
func (o *orchestrator) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	collection := o.collectionOrDefault(input.Collection)

	loaded, err := o.repo.Load(ctx, &templaterepo.LoadInput{Collection: collection})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshot %q", collection)
	}

	output := &LoadSnapshotOutput{
		Collection: collection,
		SavedAt:    loaded.Snapshot.SavedAt,
		Result:     &registry.ImportResult{},
	}
	if len(loaded.Snapshot.Templates) == 0 {
		return output, nil
	}

	result, err := o.registry.Import(loaded.Snapshot.Templates)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %q is not importable", collection)
	}
	output.Result = result
	return output, nil
}

// ListSnapshots returns the saved collection names
func (o *orchestrator) ListSnapshots(ctx context.Context, _ *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	listed, err := o.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list snapshots")
	}
	return &ListSnapshotsOutput{Collections: listed.Collections}, nil
}

func (o *orchestrator) collectionOrDefault(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return o.collection
}

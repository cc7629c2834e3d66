package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/cache"
	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/observability"
	"github.com/dotforge/dotforge/pkg/solid"
	"github.com/dotforge/dotforge/pkg/solid/mesh"
	"github.com/dotforge/dotforge/pkg/solid/sink"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. The layout engine is deterministic, so cached artifacts
// keyed by the full input set never go stale.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the computed placement plan. Always set, even when empty.
	Plan *layout.Plan

	// Artifacts contains rendered outputs keyed by format. Empty when the
	// plan is empty.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CellCount     int
	DotCount      int
	TriangleCount int
	LayoutTime    time.Duration
	BuildTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	// Hits counts artifacts served from cache.
	Hits int
}

// Execute runs the complete layout → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(opts.Text))
	plan := layout.Layout(opts.Text, opts.Config)
	result.Plan = plan
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CellCount = len(plan.Cells)
	result.Stats.DotCount = len(plan.Dots)
	observability.Pipeline().OnLayoutComplete(ctx, len(plan.Cells), len(plan.Dots), result.Stats.LayoutTime)

	for _, u := range plan.Unmapped {
		logger.Warn("no braille pattern for character, emitting blank cell", "char", string(u))
	}

	if plan.Empty() {
		logger.Warn("nothing to place, skipping model generation")
		return result, nil
	}

	logger.Info("computed layout",
		"cells", len(plan.Cells),
		"dots", len(plan.Dots),
		"lines", plan.Lines,
		"duration", result.Stats.LayoutTime)

	// Check the artifact cache before building anything.
	missing := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := artifactKey(opts, format)
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			result.Artifacts[format] = data
			result.CacheInfo.Hits++
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		logger.Debug("all artifacts cached", "formats", opts.Formats)
		return result, nil
	}

	// Stage 2: Build (only for mesh formats)
	var model *mesh.Mesh
	if needsMesh(missing) {
		buildStart := time.Now()
		observability.Pipeline().OnBuildStart(ctx, len(plan.Dots))

		backend := mesh.NewBackend(opts.Segments)
		handle, err := solid.Build(backend, plan)
		if err != nil {
			observability.Pipeline().OnBuildComplete(ctx, 0, time.Since(buildStart), err)
			return nil, err
		}
		m, ok := backend.Object(handle)
		if !ok {
			err := errors.New(errors.ErrCodeInternal, "backend lost merged object %s", handle)
			observability.Pipeline().OnBuildComplete(ctx, 0, time.Since(buildStart), err)
			return nil, err
		}
		model = m

		result.Stats.BuildTime = time.Since(buildStart)
		result.Stats.TriangleCount = model.TriangleCount()
		observability.Pipeline().OnBuildComplete(ctx, model.TriangleCount(), result.Stats.BuildTime, nil)

		logger.Info("built mesh",
			"triangles", model.TriangleCount(),
			"segments", opts.Segments,
			"duration", result.Stats.BuildTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, missing)

	for _, format := range missing {
		data, err := r.renderFormat(plan, model, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(renderStart), err)
			return nil, err
		}
		result.Artifacts[format] = data

		key := artifactKey(opts, format)
		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			logger.Debug("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, missing, result.Stats.RenderTime, nil)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderFormat serializes one output format from the plan or the built mesh.
func (r *Runner) renderFormat(plan *layout.Plan, model *mesh.Mesh, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSTL:
		return sink.RenderSTL(model, sink.WithSTLName(opts.Name)), nil
	case FormatSTLASCII:
		return sink.RenderSTL(model, sink.WithSTLName(opts.Name), sink.WithSTLASCII()), nil
	case FormatOBJ:
		return sink.RenderOBJ(model, sink.WithOBJName(opts.Name)), nil
	case FormatSCAD:
		return sink.RenderSCAD(plan), nil
	case FormatJSON:
		return sink.RenderJSON(plan, sink.WithJSONText(opts.Text))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// needsMesh reports whether any of formats requires the build stage.
func needsMesh(formats []string) bool {
	for _, f := range formats {
		if meshFormats[f] {
			return true
		}
	}
	return false
}

// artifactKey derives the cache key for one rendered artifact. The key
// covers every input that affects the bytes: text, spacing configuration,
// tessellation, solid name, and format.
func artifactKey(opts Options, format string) string {
	return cache.Key("artifact", opts.Text, opts.Config, opts.Segments, opts.Name, format)
}

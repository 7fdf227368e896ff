// Package pipeline provides the high-level orchestration for the resume analysis process.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/normalize"
	"github.com/jonathan/resume-analyzer/internal/quality"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/segment"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Stage identifies where an analysis run currently is. Stages advance
// strictly forward; a run that errors out reports StageFailed and stops.
type Stage string

const (
	StageReceived    Stage = "received"
	StageNormalizing Stage = "normalizing"
	StageSegmenting  Stage = "segmenting"
	StageExtracting  Stage = "extracting"
	StageScoring     Stage = "scoring"
	StageSuggesting  Stage = "suggesting"
	StageAssembled   Stage = "assembled"
	StageFailed      Stage = "failed"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the analysis pipeline.
type Options struct {
	Dictionary  *dictionary.Dictionary
	Scoring     scoring.Config
	Proficiency extract.ProficiencyThresholds
	Suggester   *suggest.Orchestrator
	Now         func() time.Time
	OnProgress  ProgressCallback
	TargetRole  string
}

// extractBranchResult holds the outputs of the structured extraction branch.
type extractBranchResult struct {
	Contact   extract.Contact
	Skills    []types.Skill
	Education []types.EducationEntry
}

// Coordinator drives a resume analysis run through its stages.
type Coordinator struct {
	opts Options
}

// New builds a Coordinator, filling in defaults for anything unset.
func New(opts Options) *Coordinator {
	if opts.Dictionary == nil {
		opts.Dictionary = dictionary.MustLoadDefaults()
	}
	if opts.Scoring.Weights == (scoring.Weights{}) {
		opts.Scoring = scoring.DefaultConfig()
	}
	if opts.Proficiency == (extract.ProficiencyThresholds{}) {
		opts.Proficiency = extract.DefaultProficiencyThresholds()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Coordinator{opts: opts}
}

// WithProgress returns a Coordinator sharing this one's configuration
// but delivering progress events to cb. The receiver is unchanged, so
// concurrent runs can each stream to their own listener.
func (c *Coordinator) WithProgress(cb ProgressCallback) *Coordinator {
	opts := c.opts
	opts.OnProgress = cb
	return &Coordinator{opts: opts}
}

// emit calls the progress callback if configured
func (c *Coordinator) emit(stage Stage, message string, content any) {
	if c.opts.OnProgress != nil {
		c.opts.OnProgress(ProgressEvent{
			Stage:   stage,
			Message: message,
			Content: content,
		})
	}
}

// checkpoint returns the context error, reporting StageFailed first.
// Called between stages so cancellation never interrupts a stage midway.
func (c *Coordinator) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		c.emit(StageFailed, fmt.Sprintf("analysis cancelled: %v", err), nil)
		return err
	}
	return nil
}

// Analyze runs the full pipeline over one resume and returns the assembled result.
// The same input, dictionary, and configuration always produce the same scores,
// skills, and ordering; only the AI suggestions depend on an external service.
func (c *Coordinator) Analyze(ctx context.Context, in types.AnalysisInput) (*types.AnalysisResult, error) {
	start := c.opts.Now()
	c.emit(StageReceived, "analysis request received", nil)

	// Stage: normalizing
	c.emit(StageNormalizing, "normalizing document text", nil)
	doc, err := normalize.Normalize(in.Text, in.Metadata)
	if err != nil {
		c.emit(StageFailed, fmt.Sprintf("normalization failed: %v", err), nil)
		return nil, err
	}
	if err := c.checkpoint(ctx); err != nil {
		return nil, err
	}

	// Stage: segmenting
	c.emit(StageSegmenting, "segmenting document into sections", nil)
	segs := segment.Split(doc, c.opts.Dictionary)
	if err := c.checkpoint(ctx); err != nil {
		return nil, err
	}

	// Stage: extracting. The three analysis branches only read the
	// segmented document, so they run concurrently.
	c.emit(StageExtracting, "extracting structure and measuring content", nil)

	g, gCtx := errgroup.WithContext(ctx)

	var (
		extracted extractBranchResult
		expResult experience.Result
		metrics   types.ContentMetrics
		extMu     sync.Mutex
		expMu     sync.Mutex
		qualMu    sync.Mutex
	)

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		res := extractBranchResult{
			Contact:   extract.ExtractContact(segs),
			Skills:    extract.ExtractSkills(doc.Text, c.opts.Dictionary, c.opts.Proficiency),
			Education: extract.ExtractEducation(segs, c.opts.Dictionary),
		}
		extMu.Lock()
		extracted = res
		extMu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		region, _ := segs.RegionOrFull(segment.KindExperience)
		res := experience.Parse(region, start)
		expMu.Lock()
		expResult = res
		expMu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		m := quality.Analyze(doc, c.opts.Dictionary)
		qualMu.Lock()
		metrics = m
		qualMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		c.emit(StageFailed, fmt.Sprintf("extraction failed: %v", err), nil)
		return nil, err
	}

	// Experience duration feeds the metrics; the quality branch cannot
	// compute it because it never sees parsed entries.
	metrics.TotalExperienceYears = float64(experience.TotalMonths(expResult.Entries)) / 12.0

	if err := c.checkpoint(ctx); err != nil {
		return nil, err
	}

	// Stage: scoring
	c.emit(StageScoring, "scoring resume sections", nil)
	scores := scoring.Score(scoring.Input{
		Contact:            extracted.Contact,
		Skills:             extracted.Skills,
		Experience:         expResult.Entries,
		Education:          extracted.Education,
		Metrics:            metrics,
		ExperienceIssues:   expResult.Issues,
		RecognizedHeadings: segs.Headings(),
		StandardHeadings:   c.opts.Dictionary.StandardHeadings,
		DegradedSegments:   segs.Degraded(),
	}, c.opts.Scoring)

	c.emit(StageScoring, fmt.Sprintf("scored resume: overall %.0f (%s), ATS %.0f",
		scores.Overall, scores.Label, scores.ATS), scores)

	if err := c.checkpoint(ctx); err != nil {
		return nil, err
	}

	// Stage: suggesting. Deterministic output is already complete at this
	// point; suggestions are additive and fall back locally on any failure.
	c.emit(StageSuggesting, "generating improvement suggestions", nil)
	groups := types.GroupSkills(extracted.Skills)
	facts := suggest.Facts{
		OverallScore:    scores.Overall,
		ATSScore:        scores.ATS,
		Metrics:         metrics,
		Skills:          extracted.Skills,
		ExperienceCount: len(expResult.Entries),
		MissingSections: missingSections(segs),
		TargetRole:      c.opts.TargetRole,
	}

	var suggestions []types.Suggestion
	source := "rule-based fallback"
	if c.opts.Suggester != nil {
		sres, err := c.opts.Suggester.Generate(ctx, facts)
		if err != nil {
			c.emit(StageFailed, fmt.Sprintf("suggestion generation cancelled: %v", err), nil)
			return nil, err
		}
		suggestions = sres.Suggestions
		if sres.FromService {
			source = "AI service"
		}
	} else {
		suggestions = suggest.FallbackSuggestions(facts)
	}
	c.emit(StageSuggesting, fmt.Sprintf("generated %d suggestions (%s)", len(suggestions), source), nil)

	// Stage: assembled
	result := types.NewAnalysisResult()
	result.OverallScore = scores.Overall
	result.ATSScore = scores.ATS
	result.ScoreLabel = scores.Label
	result.Sections = scores.Sections
	result.Skills = groups
	result.Experience = expResult.Entries
	result.Education = extracted.Education
	result.Suggestions = suggestions
	result.ATSRecommendations = scores.ATSRecommendations
	result.Metrics = metrics
	result.ProcessingTime = c.opts.Now().Sub(start).Seconds()

	c.emit(StageAssembled, fmt.Sprintf("analysis %s complete in %.2fs",
		result.AnalysisID, result.ProcessingTime), nil)

	return result, nil
}

// missingSections lists the canonical sections the segmenter did not find.
func missingSections(segs *segment.Segments) []string {
	wanted := []struct {
		kind segment.Kind
		name string
	}{
		{segment.KindExperience, types.SectionExperience},
		{segment.KindEducation, types.SectionEducation},
		{segment.KindSkills, types.SectionSkills},
	}
	found := segs.Kinds()
	var missing []string
	for _, w := range wanted {
		if !found[w.kind] {
			missing = append(missing, w.name)
		}
	}
	return missing
}

package pipeline

import (
	"context"
	"fmt"

	"fingerprint-matcher/internal/models"
	"fingerprint-matcher/internal/timing"

	"golang.org/x/sync/errgroup"
)

// Stage names recorded in Result.Timings.
const (
	StageLoad      = "load"
	StageHistogram = "histogram"
	StageScore     = "score"
)

// Comparator runs the load, normalize, histogram and score stages for a pair
// of images. It holds no per-comparison state and is safe for concurrent use.
type Comparator struct {
	source       Source
	threshold    float64
	parallelLoad bool
	logger       Logger
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithThreshold sets the score a pair must exceed to match.
func WithThreshold(threshold float64) Option {
	return func(c *Comparator) {
		c.threshold = threshold
	}
}

// WithParallelLoad loads both images concurrently.
func WithParallelLoad(enabled bool) Option {
	return func(c *Comparator) {
		c.parallelLoad = enabled
	}
}

func NewComparator(source Source, logger Logger, opts ...Option) *Comparator {
	c := &Comparator{
		source:    source,
		threshold: models.DefaultThreshold,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Threshold returns the configured decision threshold.
func (c *Comparator) Threshold() float64 {
	return c.threshold
}

// Compare reports whether the fingerprints at path1 and path2 likely match.
// A missing, unreadable or undecodable file yields a *models.LoadError.
func (c *Comparator) Compare(ctx context.Context, path1, path2 string) (models.Result, error) {
	tracker := timing.NewTracker()

	img1, img2, err := c.loadPair(ctx, tracker, path1, path2)
	if err != nil {
		c.logger.Error("Comparator", err, map[string]interface{}{
			"path1": path1,
			"path2": path2,
		})
		return models.Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.Result{}, err
	}
	span := tracker.StartTiming(StageHistogram)
	hist1 := BuildHistogram(img1.Gray)
	hist2 := BuildHistogram(img2.Gray)
	span.End()

	span = tracker.StartTiming(StageScore)
	score := Correlate(hist1, hist2)
	span.End()

	result := models.Result{
		Score:     score,
		Match:     IsMatch(score, c.threshold),
		Threshold: c.threshold,
		Timings:   tracker.Totals(),
	}

	c.logger.Info("Comparator", "comparison finished", map[string]interface{}{
		"backend": c.source.Name(),
		"score":   score,
		"match":   result.Match,
	})
	c.logger.Debug("Comparator", "stage timings", map[string]interface{}{
		"load_ms":      result.Timings[StageLoad].Milliseconds(),
		"load_avg_ms":  tracker.GetAverageTime(StageLoad).Milliseconds(),
		"histogram_us": result.Timings[StageHistogram].Microseconds(),
		"score_us":     result.Timings[StageScore].Microseconds(),
	})

	return result, nil
}

func (c *Comparator) loadPair(ctx context.Context, tracker *timing.Tracker, path1, path2 string) (*models.Image, *models.Image, error) {
	if !c.parallelLoad {
		img1, err := c.load(ctx, tracker, path1)
		if err != nil {
			return nil, nil, err
		}
		img2, err := c.load(ctx, tracker, path2)
		if err != nil {
			return nil, nil, err
		}
		return img1, img2, nil
	}

	var img1, img2 *models.Image
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		img1, err = c.load(groupCtx, tracker, path1)
		return err
	})
	group.Go(func() error {
		var err error
		img2, err = c.load(groupCtx, tracker, path2)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return img1, img2, nil
}

func (c *Comparator) load(ctx context.Context, tracker *timing.Tracker, path string) (*models.Image, error) {
	span := tracker.StartTiming(StageLoad)
	defer span.End()

	img, err := c.source.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if img.Width() != models.NormalizedSize || img.Height() != models.NormalizedSize {
		return nil, fmt.Errorf("%s source returned %dx%d image for %s", c.source.Name(), img.Width(), img.Height(), path)
	}
	return img, nil
}

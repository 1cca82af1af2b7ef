package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/allisson/mediavault/internal/errors"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	"github.com/allisson/mediavault/internal/metrics"
)

// Resolver discovers the category of an asset by probing candidate categories in order.
type Resolver struct {
	prober       Prober
	candidates   []mediaDomain.Category
	probeTimeout time.Duration
	metrics      metrics.BusinessMetrics
}

// NewResolver creates a Resolver over mediaDomain.DefaultCandidates. Each probe is bounded
// by probeTimeout; zero leaves probes bounded only by the caller's context.
func NewResolver(
	prober Prober,
	probeTimeout time.Duration,
	businessMetrics metrics.BusinessMetrics,
) *Resolver {
	return NewResolverWithCandidates(prober, probeTimeout, businessMetrics, mediaDomain.DefaultCandidates)
}

// NewResolverWithCandidates creates a Resolver with an explicit probe order. The first
// candidate is the fallback.
func NewResolverWithCandidates(
	prober Prober,
	probeTimeout time.Duration,
	businessMetrics metrics.BusinessMetrics,
	candidates []mediaDomain.Category,
) *Resolver {
	if businessMetrics == nil {
		businessMetrics = metrics.NewNoOpBusinessMetrics()
	}
	return &Resolver{
		prober:       prober,
		candidates:   append([]mediaDomain.Category(nil), candidates...),
		probeTimeout: probeTimeout,
		metrics:      businessMetrics,
	}
}

// Resolve probes the candidates one at a time and returns the first that matches.
// A probe error aborts resolution and is returned unchanged; only a "not in category"
// answer moves on to the next candidate. When every candidate misses, the fallback
// category is returned with Resolved set to false.
func (r *Resolver) Resolve(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
) (mediaDomain.Resolution, error) {
	if len(r.candidates) == 0 {
		return mediaDomain.Resolution{}, errors.New("resolver has no candidate categories")
	}

	probes := 0
	for _, category := range r.candidates {
		probes++
		result, err := r.probe(ctx, cfg, publicID, category)
		if err != nil {
			r.metrics.RecordProbe(ctx, category.String(), "error")
			return mediaDomain.Resolution{Category: category, Probes: probes}, err
		}
		r.metrics.RecordProbe(ctx, category.String(), result.String())

		switch result {
		case mediaDomain.ProbeMatched:
			return mediaDomain.Resolution{Category: category, Resolved: true, Probes: probes}, nil
		case mediaDomain.ProbeNotInCategory:
			continue
		default:
			return mediaDomain.Resolution{Category: category, Probes: probes},
				fmt.Errorf("unexpected probe result %d for category %s", result, category)
		}
	}

	return mediaDomain.Resolution{Category: r.candidates[0], Resolved: false, Probes: probes}, nil
}

// ResolveStrict behaves like Resolve but reports an exhausted candidate list as
// mediaDomain.ErrAssetTypeUnresolved instead of falling back.
func (r *Resolver) ResolveStrict(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
) (mediaDomain.Resolution, error) {
	resolution, err := r.Resolve(ctx, cfg, publicID)
	if err != nil {
		return resolution, err
	}
	if !resolution.Resolved {
		return resolution, apperrors.Wrapf(mediaDomain.ErrAssetTypeUnresolved, "public id %q", publicID)
	}
	return resolution, nil
}

func (r *Resolver) probe(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
	category mediaDomain.Category,
) (mediaDomain.ProbeResult, error) {
	probeCtx := ctx
	if r.probeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
	}

	result, err := r.prober.Probe(probeCtx, cfg, publicID, category)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !apperrors.IsRetryable(err) {
		return result, fmt.Errorf("%w: probe %s timed out: %w", mediaDomain.ErrMediaUnavailable, category, err)
	}
	return result, err
}

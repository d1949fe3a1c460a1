package processor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/notifyhub/apprise-node/internal/domain"
	"github.com/notifyhub/apprise-node/internal/provider"
)

// MetricHooks carries the metric callback functions injected by main.
// Using a struct keeps the processor constructor signature clean.
type MetricHooks struct {
	OnSent    func(t domain.NotifyType, latency time.Duration)
	OnFailed  func(t domain.NotifyType)
	OnInvalid func()
	OnBatch   func(policy domain.Policy, aborted bool)
}

// Processor turns each input item into exactly one Apprise call.
// Items are handled strictly one at a time, in input order.
type Processor struct {
	prov   provider.Provider
	logger *zap.Logger

	onSent    func(domain.NotifyType, time.Duration)
	onFailed  func(domain.NotifyType)
	onInvalid func()
	onBatch   func(domain.Policy, bool)
}

// New constructs a processor. Nil hooks are no-ops.
func New(prov provider.Provider, logger *zap.Logger, hooks MetricHooks) *Processor {
	p := &Processor{
		prov:      prov,
		logger:    logger,
		onSent:    hooks.OnSent,
		onFailed:  hooks.OnFailed,
		onInvalid: hooks.OnInvalid,
		onBatch:   hooks.OnBatch,
	}
	if p.onSent == nil {
		p.onSent = func(domain.NotifyType, time.Duration) {}
	}
	if p.onFailed == nil {
		p.onFailed = func(domain.NotifyType) {}
	}
	if p.onInvalid == nil {
		p.onInvalid = func() {}
	}
	if p.onBatch == nil {
		p.onBatch = func(domain.Policy, bool) {}
	}
	return p
}

// Execute runs the batch. The returned slice has one Result per item and
// results[i] always belongs to items[i].
//
// Under PolicyCollectErrors a failing item gets its error recorded on its
// Result and the batch continues. Under PolicyFailFast the first failure
// stops the batch: no results are returned and the error carries the index
// of the failing item.
func (p *Processor) Execute(
	ctx context.Context,
	cred domain.Credential,
	node domain.RawParams,
	items []domain.Item,
	policy domain.Policy,
) ([]domain.Result, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}

	results := make([]domain.Result, len(items))
	failed := 0

	for i, item := range items {
		results[i] = domain.Result{Index: i, JSON: item.JSON}

		err := ctx.Err()
		if err == nil {
			err = p.processItem(ctx, cred, node, i, item)
		}
		if err == nil {
			continue
		}

		if policy == domain.PolicyFailFast {
			err = domain.WithItemIndex(err, i)
			p.logger.Warn("batch aborted", zap.Int("item_index", i), zap.Int("items", len(items)), zap.Error(err))
			p.onBatch(policy, true)
			return nil, err
		}
		// A fresh tag per result: the same ItemError may come back for
		// several items and must not carry the last index for all of them.
		results[i].Err = domain.TagItemIndex(err, i)
		failed++
	}

	p.onBatch(policy, false)
	p.logger.Info("batch finished",
		zap.String("policy", string(policy)),
		zap.Int("items", len(items)),
		zap.Int("failed", failed),
	)
	return results, nil
}

func (p *Processor) processItem(
	ctx context.Context,
	cred domain.Credential,
	node domain.RawParams,
	index int,
	item domain.Item,
) error {
	log := p.logger.With(zap.Int("item_index", index))

	params, err := domain.ResolveParams(node, item)
	if err != nil {
		log.Warn("invalid item parameters", zap.Error(err))
		p.onInvalid()
		return err
	}

	log = log.With(
		zap.String("notify_type", string(params.Type)),
		zap.Bool("use_key", params.UseKey),
	)

	start := time.Now()
	err = p.prov.Notify(ctx, cred, params)
	elapsed := time.Since(start)

	if err != nil {
		log.Warn("apprise notify failed", zap.Error(err), zap.Duration("latency", elapsed))
		p.onFailed(params.Type)
		return err
	}

	p.onSent(params.Type, elapsed)
	log.Debug("notification sent", zap.Duration("latency", elapsed))
	return nil
}

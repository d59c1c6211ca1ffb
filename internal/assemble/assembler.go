package assemble

import (
	"errors"
	"fmt"
	"log/slog"

	"order-mapper/internal/coerce"
	"order-mapper/internal/domain"
	"order-mapper/internal/keys"
	"order-mapper/internal/schema"
)

const (
	envelopeKey     = "order_detail"
	rewardPointsKey = "order_reward_points"
)

// ErrNilRecord is returned when an entry point is handed no record at all.
var ErrNilRecord = errors.New("nil order record")

// Step is one named business rule.
type Step[T any] struct {
	Name  string
	Apply func(T) T
}

// Assembler runs the order pipelines. It keeps no per-call state and is safe
// for concurrent use.
type Assembler struct {
	logger *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger used for step-level debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New returns an Assembler. Logging is discarded unless WithLogger is given.
func New(opts ...Option) *Assembler {
	a := &Assembler{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// OrderDetail maps raw and runs the detail steps. raw may be the order record
// itself or an envelope holding it under "order_detail".
func (a *Assembler) OrderDetail(raw map[string]any) (domain.OrderDetail, error) {
	rec, err := unwrapEnvelope(raw)
	if err != nil {
		return domain.OrderDetail{}, err
	}

	detail := schema.OrderDetail().MapCase(rec, keys.Lower)
	detail = run(a.logger, detail.OrderID, detail, DetailSteps(rec))

	a.logger.Debug("order detail assembled",
		slog.Int64("order_id", detail.OrderID),
		slog.Int("lines", len(detail.OrderLines)),
		slog.String("vip_discount", detail.VipDiscount.String()))

	return detail, nil
}

// OrderSummary maps raw with the order-history schema and runs the summary steps.
func (a *Assembler) OrderSummary(raw map[string]any) (domain.OrderSummary, error) {
	if raw == nil {
		return domain.OrderSummary{}, fmt.Errorf("order summary: %w", ErrNilRecord)
	}

	summary := schema.OrderSummary().MapCase(raw, keys.Upper)
	summary = run(a.logger, summary.OrderID, summary, SummarySteps())

	a.logger.Debug("order summary assembled",
		slog.Int64("order_id", summary.OrderID),
		slog.Int("lines", len(summary.OrderLines)))

	return summary, nil
}

// DetailSteps returns the detail pipeline in execution order. rec is the
// unwrapped raw order record the reward points are read from.
func DetailSteps(rec map[string]any) []Step[domain.OrderDetail] {
	return []Step[domain.OrderDetail]{
		{Name: "copy_reward_points", Apply: CopyRewardPoints(rec)},
		{Name: "inject_membership_cost", Apply: InjectMembershipCost},
		{Name: "aggregate_vip_discount", Apply: AggregateVIPDiscount},
		{Name: "net_shipping", Apply: NetShipping},
		{Name: "regroup_bundles", Apply: RegroupBundles},
	}
}

// SummarySteps returns the summary pipeline in execution order.
func SummarySteps() []Step[domain.OrderSummary] {
	return []Step[domain.OrderSummary]{
		{Name: "inject_membership_cost", Apply: InjectSummaryMembershipCost},
		{Name: "net_tariff_surcharge", Apply: NetTariffSurcharge},
	}
}

func run[T any](logger *slog.Logger, orderID int64, v T, steps []Step[T]) T {
	for _, step := range steps {
		v = step.Apply(v)
		logger.Debug("order step applied", slog.String("step", step.Name), slog.Int64("order_id", orderID))
	}

	return v
}

func unwrapEnvelope(raw map[string]any) (map[string]any, error) {
	if raw == nil {
		return nil, fmt.Errorf("order detail: %w", ErrNilRecord)
	}

	inner, ok := raw[envelopeKey]
	if !ok {
		return raw, nil
	}

	rec, ok := coerce.AsRecord(coerce.UnwrapSingle(inner))
	if !ok {
		return nil, fmt.Errorf("order detail: envelope %q holds no record: %w", envelopeKey, ErrNilRecord)
	}

	return rec, nil
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry instruments for action steps.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AttributeEnricher adds contextual attributes (event, repository) to the
// base attributes of a recorded step.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

// Steps records how often each action step ran, whether it succeeded and
// how long it took. A nil *Steps records nothing.
type Steps struct {
	runs         metric.Int64Counter
	duration     metric.Float64Histogram
	attrEnricher AttributeEnricher
}

// NewSteps creates the step instruments on the global meter provider.
func NewSteps(meterName string) *Steps {
	return NewStepsFromProvider(otel.GetMeterProvider(), meterName)
}

// NewStepsFromProvider creates the step instruments on mp. Instruments that
// fail to initialize are replaced by no-ops with a warning.
func NewStepsFromProvider(mp metric.MeterProvider, meterName string) *Steps {
	meter := mp.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	runs, err := meter.Int64Counter("action.step.runs",
		metric.WithDescription("The number of action steps executed"),
		metric.WithUnit("{steps}"))
	if err != nil {
		slog.Warn("Failed to create step counter, metrics will be disabled", "error", err, "meter", meterName)
		runs = noop.Int64Counter{}
	}

	duration, err := meter.Float64Histogram("action.step.duration",
		metric.WithDescription("The wall time of an action step"),
		metric.WithUnit("s"))
	if err != nil {
		slog.Warn("Failed to create step duration histogram, metrics will be disabled", "error", err, "meter", meterName)
		duration = noop.Float64Histogram{}
	}

	return &Steps{
		runs:     runs,
		duration: duration,
	}
}

// SetAttributeEnricher sets the enricher consulted on every recording.
func (m *Steps) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

// RecordStep records one finished step of action. A non-nil err marks the
// step as failed.
func (m *Steps) RecordStep(ctx context.Context, action, step string, elapsed time.Duration, err error, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	baseAttrs := []attribute.KeyValue{
		attribute.String("action", action),
		attribute.String("step", step),
		attribute.String("outcome", outcome),
	}

	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	baseAttrs = append(baseAttrs, attrs...)

	m.runs.Add(ctx, 1, metric.WithAttributes(baseAttrs...))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(baseAttrs...))
}

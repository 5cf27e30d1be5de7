/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chainguard.dev/dongyo/actions/metrics"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordStep(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m := metrics.NewStepsFromProvider(mp, "test")
	m.SetAttributeEnricher(func(_ context.Context, base []attribute.KeyValue) []attribute.KeyValue {
		return append(base, attribute.String("repository", "octo/repo"))
	})

	m.RecordStep(ctx, "amp-setup", "node", 10*time.Millisecond, nil)
	m.RecordStep(ctx, "amp-setup", "amp", 20*time.Millisecond, errors.New("boom"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	outcomes := map[string]int64{}
	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "action.step.runs" {
				continue
			}
			found = true
			sum, ok := md.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected data type %T", md.Data)
			for _, dp := range sum.DataPoints {
				step, _ := dp.Attributes.Value("step")
				outcome, _ := dp.Attributes.Value("outcome")
				repo, _ := dp.Attributes.Value("repository")
				if repo.AsString() != "octo/repo" {
					t.Errorf("repository attribute: got %q", repo.AsString())
				}
				outcomes[step.AsString()+"/"+outcome.AsString()] += dp.Value
			}
		}
	}
	require.True(t, found, "action.step.runs not collected")

	want := map[string]int64{"node/success": 1, "amp/failure": 1}
	for k, v := range want {
		if outcomes[k] != v {
			t.Errorf("%s: got %d, want %d", k, outcomes[k], v)
		}
	}
}

func TestRecordStepNil(t *testing.T) {
	var m *metrics.Steps
	// Must not panic.
	m.RecordStep(context.Background(), "amp-setup", "node", time.Second, nil)
}

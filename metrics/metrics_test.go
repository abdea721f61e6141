// Copyright 2025 Certen Protocol
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/certen/threshold-ballot/ids"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	if err := vec.WithLabelValues(labels...).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestObserveSuccessAndFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSuccess(ids.Vote)
	m.ObserveSuccess(ids.Vote)
	m.ObserveFailure(ids.PartialDecryption, "PartialDecryptionProofFailed")

	if got := counterValue(t, m.ValidationsTotal, "vote", "ok"); got != 2 {
		t.Fatalf("expected 2 successful vote validations, got %v", got)
	}
	if got := counterValue(t, m.ValidationsTotal, "partial_decryption", "error"); got != 1 {
		t.Fatalf("expected 1 failed partial_decryption validation, got %v", got)
	}
	if got := counterValue(t, m.ValidationErrors, "partial_decryption", "PartialDecryptionProofFailed"); got != 1 {
		t.Fatalf("expected 1 tagged error, got %v", got)
	}
}

func TestSetStoreSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.SetStoreSize(ids.Vote, 42)

	var out dto.Metric
	if err := m.StoreSize.WithLabelValues("vote").Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.GetGauge().GetValue() != 42 {
		t.Fatalf("expected gauge 42, got %v", out.GetGauge().GetValue())
	}
}

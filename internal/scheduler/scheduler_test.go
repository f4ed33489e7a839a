package scheduler

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/technova/inventory-service/internal/store"
)

func TestLogSnapshot(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	inventory := store.NewInventoryStore()
	inventory.Add("Laptop", 10)
	inventory.Add("Mouse", 50)

	s := NewScheduler("0 * * * *", inventory, zap.New(core))
	s.logSnapshot()

	entries := logs.FilterMessage("inventory snapshot").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 snapshot entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["items"] != int64(2) {
		t.Errorf("items = %v, want 2", fields["items"])
	}
	if fields["total_stock"] != int64(60) {
		t.Errorf("total_stock = %v, want 60", fields["total_stock"])
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := NewScheduler("not a schedule", store.NewInventoryStore(), zap.New(core))

	s.Start()
	defer s.Stop()

	if logs.FilterMessage("failed to schedule inventory snapshot").Len() != 1 {
		t.Error("expected scheduling failure to be logged")
	}
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler("@hourly", store.NewInventoryStore(), zap.NewNop())
	s.Start()
	s.Stop()
}

package stats

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeRepo struct {
	item   *Stats
	writes int
}

func (f *fakeRepo) GetOrCreate(ctx context.Context, now time.Time) (Stats, error) {
	if f.item == nil {
		f.item = &Stats{ID: "global", CreatedAt: now, UpdatedAt: now}
	}
	return *f.item, nil
}

func (f *fakeRepo) Update(ctx context.Context, set bson.M) (Stats, error) {
	f.writes++
	if f.item == nil {
		f.item = &Stats{ID: "global"}
	}
	if visits, ok := set["visits"].(int64); ok {
		f.item.Visits = visits
	}
	if profit, ok := set["total_profit"].(float64); ok {
		f.item.TotalProfit = profit
	}
	if repairs, ok := set["total_repairs"].(int64); ok {
		f.item.TotalRepairs = repairs
	}
	if ts, ok := set["updated_at"].(time.Time); ok {
		f.item.UpdatedAt = ts
	}
	return *f.item, nil
}

func (f *fakeRepo) IncrementVisits(ctx context.Context, now time.Time) (Stats, error) {
	if f.item == nil {
		f.item = &Stats{ID: "global", CreatedAt: now}
	}
	f.item.Visits++
	f.item.UpdatedAt = now
	return *f.item, nil
}

func TestGetCreatesCountersDocument(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)

	item, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if item.ID != "global" {
		t.Fatalf("got id %q, want global", item.ID)
	}
	if item.Visits != 0 || item.TotalOrders != 0 {
		t.Fatalf("fresh counters should be zero: %+v", item)
	}
}

func TestRecordVisitIncrements(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	for i := int64(1); i <= 3; i++ {
		item, err := svc.RecordVisit(context.Background())
		if err != nil {
			t.Fatalf("RecordVisit error: %v", err)
		}
		if item.Visits != i {
			t.Fatalf("after %d visits got %d", i, item.Visits)
		}
	}
}

func TestUpdateTouchesOnlySuppliedCounters(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	if _, err := svc.RecordVisit(context.Background()); err != nil {
		t.Fatalf("RecordVisit error: %v", err)
	}

	repairs := int64(12)
	item, err := svc.Update(context.Background(), UpdateRequest{TotalRepairs: &repairs})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if item.TotalRepairs != 12 {
		t.Fatalf("total_repairs not updated: %+v", item)
	}
	if item.Visits != 1 {
		t.Fatalf("visits changed unexpectedly: %+v", item)
	}
	if repo.writes != 1 {
		t.Fatalf("expected one write, got %d", repo.writes)
	}
}

package billing

import (
	"context"
	"sync"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
)

// fakeSettingRepo backs CalendarPolicy in tests without a database.
type fakeSettingRepo struct {
	mu     sync.Mutex
	values map[string]int
	gets   int
}

func newFakeSettingRepo(values map[string]int) *fakeSettingRepo {
	if values == nil {
		values = make(map[string]int)
	}
	return &fakeSettingRepo{values: values}
}

func (f *fakeSettingRepo) GetByName(ctx context.Context, name string) (setting.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	v, ok := f.values[name]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return setting.Setting{ID: "1", Name: name, Value: v}, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[s.Name] = s.Value
	return s, nil
}

// fakeBillRepo backs duration reconciliation and lock-ordering tests. Only
// the methods those paths touch are implemented; the rest panic through the
// embedded nil interface if reached.
type fakeBillRepo struct {
	billing.BillRepository
	groupHours map[string]float64

	// Successive GetByID results; the last entry repeats once exhausted.
	bills []billing.Bill
	reads int
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id string) (billing.Bill, error) {
	if len(f.bills) == 0 {
		return billing.Bill{}, billing.ErrBillNotFound
	}
	i := f.reads
	if i >= len(f.bills) {
		i = len(f.bills) - 1
	}
	f.reads++
	return f.bills[i], nil
}

func (f *fakeBillRepo) SumGroupHours(ctx context.Context, operationID string) (float64, error) {
	var sum float64
	for _, h := range f.groupHours {
		sum += h
	}
	return sum, nil
}

type fakeOperationRepo struct {
	operation.OperationRepository
	durations map[string]float64
}

func (f *fakeOperationRepo) UpdateDuration(ctx context.Context, operationID string, hours float64) error {
	f.durations[operationID] = hours
	return nil
}

package setting

import (
	"context"
	"testing"

	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
	billingsvc "github.com/harborops/stevedoring-backend-go/internal/service/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingRepo struct {
	values map[string]int
}

func (f *fakeSettingRepo) GetByName(ctx context.Context, name string) (setting.Setting, error) {
	v, ok := f.values[name]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return setting.Setting{ID: "1", Name: name, Value: v}, nil
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	f.values[s.Name] = s.Value
	return s, nil
}

func newTestService() (setting.SettingService, *fakeSettingRepo, *billingsvc.CalendarPolicy) {
	repo := &fakeSettingRepo{values: make(map[string]int)}
	cal := billingsvc.NewCalendarPolicy(repo)
	return NewSettingService(repo, cal), repo, cal
}

func TestSettingService_Get_StoredValue(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.values[setting.NameWeeklyHours] = 40

	got, err := svc.Get(context.Background(), setting.NameWeeklyHours)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Value)
}

func TestSettingService_Get_KnownNameFallsBackToDefault(t *testing.T) {
	svc, _, _ := newTestService()

	got, err := svc.Get(context.Background(), setting.NameWeeklyHours)
	require.NoError(t, err)
	assert.Equal(t, setting.DefaultWeeklyHours, got.Value)

	got, err = svc.Get(context.Background(), setting.NameWeeklyHoursSunday)
	require.NoError(t, err)
	assert.Equal(t, setting.DefaultWeeklyHoursSunday, got.Value)
}

func TestSettingService_Get_UnknownNameNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), "SOME_OTHER_SETTING")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestSettingService_Update_PersistsAndInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, repo, cal := newTestService()
	repo.values[setting.NameWeeklyHours] = 44

	// Warm the calendar cache.
	assert.Equal(t, 44.0, cal.WeeklyCap(ctx, false))

	got, err := svc.Update(ctx, setting.UpdateSettingRequest{Name: setting.NameWeeklyHours, Value: 36})
	require.NoError(t, err)
	assert.Equal(t, 36, got.Value)

	// The write must be visible to the billing engine immediately.
	assert.Equal(t, 36.0, cal.WeeklyCap(ctx, false))
}

func TestSettingService_Update_RejectsInvalidInput(t *testing.T) {
	svc, _, _ := newTestService()

	var validationErrs validator.ValidationErrors

	_, err := svc.Update(context.Background(), setting.UpdateSettingRequest{Name: "lowercase", Value: 10})
	assert.ErrorAs(t, err, &validationErrs)

	_, err = svc.Update(context.Background(), setting.UpdateSettingRequest{Name: setting.NameWeeklyHours, Value: 0})
	assert.ErrorAs(t, err, &validationErrs)
}

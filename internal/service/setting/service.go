package setting

import (
	"context"
	"errors"

	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
	billingsvc "github.com/harborops/stevedoring-backend-go/internal/service/billing"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
	cal         *billingsvc.CalendarPolicy
}

func NewSettingService(settingRepo setting.SettingRepository, cal *billingsvc.CalendarPolicy) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo, cal: cal}
}

// defaults for names the billing engine reads; an unstored name still
// resolves instead of 404ing.
var defaults = map[string]int{
	setting.NameWeeklyHours:       setting.DefaultWeeklyHours,
	setting.NameWeeklyHoursSunday: setting.DefaultWeeklyHoursSunday,
}

func (s *SettingServiceImpl) Get(ctx context.Context, name string) (setting.SettingResponse, error) {
	stored, err := s.settingRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			if v, ok := defaults[name]; ok {
				return setting.SettingResponse{Name: name, Value: v}, nil
			}
		}
		return setting.SettingResponse{}, err
	}

	return setting.SettingResponse{Name: stored.Name, Value: stored.Value}, nil
}

func (s *SettingServiceImpl) Update(ctx context.Context, req setting.UpdateSettingRequest) (setting.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingResponse{}, err
	}

	saved, err := s.settingRepo.Upsert(ctx, setting.Setting{Name: req.Name, Value: req.Value})
	if err != nil {
		return setting.SettingResponse{}, err
	}

	// Cached caps go stale on every write.
	s.cal.Invalidate()

	return setting.SettingResponse{Name: saved.Name, Value: saved.Value}, nil
}

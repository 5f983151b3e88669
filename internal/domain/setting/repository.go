package setting

import "context"

// SettingRepository defines data access for named configuration values.
type SettingRepository interface {
	GetByName(ctx context.Context, name string) (Setting, error)
	Upsert(ctx context.Context, s Setting) (Setting, error)
}

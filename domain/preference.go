package domain

import "context"

// Preference is a single scoped key-value flag. The preference store lives
// in its own database file, outside the relational schema, but shares its
// durability guarantees.
type Preference struct {
	Name  string `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Value string `gorm:"type:text" json:"value"`
}

func (Preference) TableName() string {
	return "preferences"
}

const (
	PrefOnboardingComplete = "onboarding_complete"
	PrefTheme              = "theme"
)

type PreferenceRepo interface {
	OnboardingComplete(ctx context.Context) (bool, error)
	SetOnboardingComplete(ctx context.Context, done bool) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type PreferenceUseCase interface {
	OnboardingComplete(ctx context.Context) (bool, error)
	SetOnboardingComplete(ctx context.Context, done bool) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gmls/domain"
)

// preferenceRepository backs the two scoped flags (onboarding completion,
// theme choice) with their own database file, injected at boot rather than
// reached through process-wide globals.
type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) domain.PreferenceRepo {
	return &preferenceRepository{db: database}
}

func (pr *preferenceRepository) get(ctx context.Context, name string) (string, bool, error) {
	var pref domain.Preference

	err := pr.db.WithContext(ctx).Where("name = ?", name).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read preference %s: %v", name, err)
	}

	return pref.Value, true, nil
}

func (pr *preferenceRepository) set(ctx context.Context, name, value string) error {
	err := pr.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&domain.Preference{Name: name, Value: value}).Error
	if err != nil {
		return fmt.Errorf("could not write preference %s: %v", name, err)
	}

	return nil
}

func (pr *preferenceRepository) OnboardingComplete(ctx context.Context) (bool, error) {
	value, ok, err := pr.get(ctx, domain.PrefOnboardingComplete)
	if err != nil || !ok {
		return false, err
	}

	done, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return done, nil
}

func (pr *preferenceRepository) SetOnboardingComplete(ctx context.Context, done bool) error {
	return pr.set(ctx, domain.PrefOnboardingComplete, strconv.FormatBool(done))
}

func (pr *preferenceRepository) Theme(ctx context.Context) (string, error) {
	value, ok, err := pr.get(ctx, domain.PrefTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return "system", nil
	}
	return value, nil
}

func (pr *preferenceRepository) SetTheme(ctx context.Context, theme string) error {
	return pr.set(ctx, domain.PrefTheme, theme)
}

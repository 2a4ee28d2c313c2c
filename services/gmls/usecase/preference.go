package usecase

import (
	"context"
	"time"

	"gmls/domain"
)

type preferenceUC struct {
	prefRepo domain.PreferenceRepo
	TimeOut  time.Duration
}

func NewPreferenceUseCase(repo domain.PreferenceRepo, timeOut time.Duration) domain.PreferenceUseCase {
	return &preferenceUC{
		prefRepo: repo,
		TimeOut:  timeOut,
	}
}

func (p *preferenceUC) OnboardingComplete(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.TimeOut)
	defer cancel()

	return p.prefRepo.OnboardingComplete(ctx)
}

func (p *preferenceUC) SetOnboardingComplete(ctx context.Context, done bool) error {
	ctx, cancel := context.WithTimeout(ctx, p.TimeOut)
	defer cancel()

	return p.prefRepo.SetOnboardingComplete(ctx, done)
}

func (p *preferenceUC) Theme(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.TimeOut)
	defer cancel()

	return p.prefRepo.Theme(ctx)
}

func (p *preferenceUC) SetTheme(ctx context.Context, theme string) error {
	ctx, cancel := context.WithTimeout(ctx, p.TimeOut)
	defer cancel()

	return p.prefRepo.SetTheme(ctx, theme)
}

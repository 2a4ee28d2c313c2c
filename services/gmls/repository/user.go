package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gmls/domain"
)

type userRepository struct {
	db             *gorm.DB
	profileChanges *notifier
	memberChanges  *notifier
}

func NewUserRepository(database *gorm.DB) domain.UserRepo {
	return &userRepository{
		db:             database,
		profileChanges: newNotifier(),
		memberChanges:  newNotifier(),
	}
}

func (ur *userRepository) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile

	err := ur.db.WithContext(ctx).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not read profile: %v", err)
	}

	return &profile, nil
}

func (ur *userRepository) WatchProfile(ctx context.Context) (<-chan *domain.UserProfile, error) {
	out := make(chan *domain.UserProfile, 1)
	id, signal := ur.profileChanges.subscribe()

	go func() {
		defer close(out)
		defer ur.profileChanges.unsubscribe(id)

		for {
			profile, err := ur.GetProfile(ctx)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return
			}

			// absence is emitted as nil
			select {
			case out <- profile:
			case <-ctx.Done():
				return
			}

			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (ur *userRepository) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	err := ur.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("could not upsert profile: %v", err)
	}

	ur.profileChanges.broadcast()
	return nil
}

// DeleteProfile removes the single profile row. Child cleanup is the
// cascade rule's job, not this function's.
func (ur *userRepository) DeleteProfile(ctx context.Context) error {
	err := ur.db.WithContext(ctx).Exec("DELETE FROM user_profiles").Error
	if err != nil {
		return fmt.Errorf("could not delete profile: %v", err)
	}

	ur.profileChanges.broadcast()
	ur.memberChanges.broadcast()
	return nil
}

func (ur *userRepository) UpsertHouseholdMembers(ctx context.Context, rows []domain.HouseholdMemberRow) error {
	if len(rows) == 0 {
		return nil
	}

	err := ur.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("could not upsert household members: %v", err)
	}

	ur.memberChanges.broadcast()
	return nil
}

func (ur *userRepository) UpdateHouseholdMember(ctx context.Context, row *domain.HouseholdMemberRow) error {
	err := ur.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("could not update household member: %v", err)
	}

	ur.memberChanges.broadcast()
	return nil
}

func (ur *userRepository) DeleteHouseholdMember(ctx context.Context, memberID string) error {
	err := ur.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&domain.HouseholdMemberRow{}).Error
	if err != nil {
		return fmt.Errorf("could not delete household member: %v", err)
	}

	ur.memberChanges.broadcast()
	return nil
}

func (ur *userRepository) GetHouseholdMembers(ctx context.Context, userID string) ([]domain.HouseholdMemberRow, error) {
	var rows []domain.HouseholdMemberRow

	err := ur.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not read household members: %v", err)
	}

	return rows, nil
}

func (ur *userRepository) WatchHouseholdMembers(ctx context.Context, userID string) (<-chan []domain.HouseholdMemberRow, error) {
	out := make(chan []domain.HouseholdMemberRow, 1)
	id, signal := ur.memberChanges.subscribe()

	go func() {
		defer close(out)
		defer ur.memberChanges.unsubscribe(id)

		for {
			rows, err := ur.GetHouseholdMembers(ctx, userID)
			if err != nil {
				return
			}

			select {
			case out <- rows:
			case <-ctx.Done():
				return
			}

			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (ur *userRepository) DeleteAllHouseholdMembers(ctx context.Context, userID string) error {
	err := ur.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.HouseholdMemberRow{}).Error
	if err != nil {
		return fmt.Errorf("could not delete household members: %v", err)
	}

	ur.memberChanges.broadcast()
	return nil
}

// SaveUserWithHouseholdMembers is the replace-all-children transaction:
// upsert the profile, drop every existing child of that user, bulk-insert
// the supplied replacement set. The caller always hands over the complete
// authoritative member list; nothing is merged or diffed. All three steps
// commit together or not at all, so no reader ever sees a stale child next
// to a new parent. The denormalized member count on the profile row is
// recomputed here from the supplied list.
func (ur *userRepository) SaveUserWithHouseholdMembers(ctx context.Context, profile *domain.UserProfile, rows []domain.HouseholdMemberRow) error {
	tx := ur.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %v", err)
	}

	// recompute on a copy so the caller's struct is left untouched
	row := *profile
	row.FamilyMemberCount = len(rows)

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not upsert profile: %v", err)
	}

	if err := tx.Where("user_id = ?", row.UserID).Delete(&domain.HouseholdMemberRow{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear household members: %v", err)
	}

	if len(rows) > 0 {
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("could not insert household members: %v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %v", err)
	}

	ur.profileChanges.broadcast()
	ur.memberChanges.broadcast()
	return nil
}

func (ur *userRepository) GetUserWithHouseholdMembers(ctx context.Context, userID string) (*domain.UserWithHouseholdMembers, error) {
	var profile domain.UserProfile

	err := ur.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not read profile: %v", err)
	}

	rows, err := ur.GetHouseholdMembers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserWithHouseholdMembers{Profile: profile, Members: rows}, nil
}

func (ur *userRepository) WatchUserWithHouseholdMembers(ctx context.Context, userID string) (<-chan *domain.UserWithHouseholdMembers, error) {
	out := make(chan *domain.UserWithHouseholdMembers, 1)
	profileID, profileSignal := ur.profileChanges.subscribe()
	memberID, memberSignal := ur.memberChanges.subscribe()

	go func() {
		defer close(out)
		defer ur.profileChanges.unsubscribe(profileID)
		defer ur.memberChanges.unsubscribe(memberID)

		for {
			composite, err := ur.GetUserWithHouseholdMembers(ctx, userID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return
			}

			select {
			case out <- composite:
			case <-ctx.Done():
				return
			}

			select {
			case <-profileSignal:
			case <-memberSignal:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

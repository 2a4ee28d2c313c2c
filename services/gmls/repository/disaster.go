package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gmls/domain"
)

type disasterRepository struct {
	db      *gorm.DB
	changes *notifier
}

func NewDisasterRepository(database *gorm.DB) domain.DisasterRepo {
	return &disasterRepository{
		db:      database,
		changes: newNotifier(),
	}
}

func (dr *disasterRepository) GetAll(ctx context.Context) ([]domain.DisasterRecord, error) {
	var rows []domain.DisasterRecord

	err := dr.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not read disaster records: %v", err)
	}

	return rows, nil
}

func (dr *disasterRepository) InsertAll(ctx context.Context, rows []domain.DisasterRecord) error {
	if len(rows) == 0 {
		return nil
	}

	err := dr.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("could not insert disaster records: %v", err)
	}

	dr.changes.broadcast()
	return nil
}

func (dr *disasterRepository) Clear(ctx context.Context) error {
	err := dr.db.WithContext(ctx).Exec("DELETE FROM disaster_records").Error
	if err != nil {
		return fmt.Errorf("could not clear disaster records: %v", err)
	}

	dr.changes.broadcast()
	return nil
}

// ReplaceAll refreshes the whole cache from an authoritative remote list.
// Clear and bulk insert run in one transaction so an offline reader never
// observes the table mid-refresh.
func (dr *disasterRepository) ReplaceAll(ctx context.Context, rows []domain.DisasterRecord) error {
	tx := dr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %v", err)
	}

	if err := tx.Exec("DELETE FROM disaster_records").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear disaster records: %v", err)
	}

	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("could not insert disaster records: %v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %v", err)
	}

	dr.changes.broadcast()
	return nil
}

func (dr *disasterRepository) Watch(ctx context.Context) (<-chan []domain.DisasterRecord, error) {
	out := make(chan []domain.DisasterRecord, 1)
	id, signal := dr.changes.subscribe()

	go func() {
		defer close(out)
		defer dr.changes.unsubscribe(id)

		for {
			rows, err := dr.GetAll(ctx)
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

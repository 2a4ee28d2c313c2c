package usecase

import (
	"context"
	"fmt"
	"time"

	"gmls/domain"
	"gmls/services/gmls/mapper"
)

type disasterUC struct {
	disasterRepo domain.DisasterRepo
	remote       domain.RemoteStore
	TimeOut      time.Duration
}

func NewDisasterUseCase(repo domain.DisasterRepo, remote domain.RemoteStore, timeOut time.Duration) domain.DisasterUseCase {
	return &disasterUC{
		disasterRepo: repo,
		remote:       remote,
		TimeOut:      timeOut,
	}
}

// SyncDisasters replaces the whole cache with the remote list. The remote
// source is authoritative; the cache only serves the last-known list when
// offline.
func (d *disasterUC) SyncDisasters(ctx context.Context) ([]domain.Disaster, error) {
	ctx, cancel := context.WithTimeout(ctx, d.TimeOut)
	defer cancel()

	docs, err := d.remote.GetAll(ctx, domain.CollectionDisasters)
	if err != nil {
		return nil, fmt.Errorf("could not fetch remote disasters: %v", err)
	}

	rows := make([]domain.DisasterRecord, 0, len(docs))
	disasters := make([]domain.Disaster, 0, len(docs))
	for id, doc := range docs {
		// the store key backs any payload without an embedded id
		disaster := mapper.DisasterFromDocument(id, doc)
		disasters = append(disasters, disaster)
		rows = append(rows, mapper.DisasterToRecord(disaster))
	}

	if err := d.disasterRepo.ReplaceAll(ctx, rows); err != nil {
		return nil, err
	}

	return disasters, nil
}

func (d *disasterUC) GetDisasters(ctx context.Context) ([]domain.Disaster, error) {
	ctx, cancel := context.WithTimeout(ctx, d.TimeOut)
	defer cancel()

	rows, err := d.disasterRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapper.DisastersFromRecords(rows), nil
}

func (d *disasterUC) WatchDisasters(ctx context.Context) (<-chan []domain.Disaster, error) {
	records, err := d.disasterRepo.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []domain.Disaster, 1)
	go func() {
		defer close(out)
		for rows := range records {
			select {
			case out <- mapper.DisastersFromRecords(rows):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

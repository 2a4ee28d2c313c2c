package domain

import (
	"context"
	"time"
)

// DisasterRecord is the flat cache row mirroring a remote disaster report.
// The whole table is replaced on every successful sync; the cache only
// exists to serve the last-known list while offline.
type DisasterRecord struct {
	ID            string  `gorm:"primaryKey;type:varchar(128)" json:"id"`
	Title         string  `gorm:"type:varchar(255)" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Location      string  `gorm:"type:varchar(255)" json:"location"`
	Type          string  `gorm:"type:varchar(50)" json:"type"`
	Timestamp     int64   `gorm:"index" json:"timestamp"`
	AffectedCount int     `json:"affected_count"`
	ImageURLs     string  `gorm:"type:text" json:"image_urls"`
	Status        string  `gorm:"type:varchar(30)" json:"status"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ReporterID    string  `gorm:"type:varchar(128)" json:"reporter_id"`
	UpdatedAt     int64   `json:"updated_at"`
}

func (DisasterRecord) TableName() string {
	return "disaster_records"
}

// Disaster is the domain form of a disaster report.
type Disaster struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AffectedCount int       `json:"affected_count"`
	ImageURLs     []string  `json:"image_urls"`
	Status        string    `json:"status"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ReporterID    string    `json:"reporter_id"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DisasterRepo interface {
	GetAll(ctx context.Context) ([]DisasterRecord, error)
	InsertAll(ctx context.Context, rows []DisasterRecord) error
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, rows []DisasterRecord) error
	Watch(ctx context.Context) (<-chan []DisasterRecord, error)
}

type DisasterUseCase interface {
	SyncDisasters(ctx context.Context) ([]Disaster, error)
	GetDisasters(ctx context.Context) ([]Disaster, error)
	WatchDisasters(ctx context.Context) (<-chan []Disaster, error)
}

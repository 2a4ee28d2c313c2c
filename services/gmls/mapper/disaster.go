package mapper

import (
	"time"

	"gmls/domain"
)

// DisasterFromDocument coerces one remote disaster report. Same totality
// guarantee as the user mapping: malformed fields become defaults, never
// errors.
func DisasterFromDocument(id string, doc domain.Document) domain.Disaster {
	now := time.Now()

	return domain.Disaster{
		ID:            stringField(doc, "id", id),
		Title:         stringField(doc, "title", ""),
		Description:   stringField(doc, "description", ""),
		Location:      stringField(doc, "location", ""),
		Type:          stringField(doc, "type", ""),
		Timestamp:     timeField(doc, "timestamp", now),
		AffectedCount: intField(doc, "affectedCount", 0),
		ImageURLs:     stringListField(doc, "imageUrls"),
		Status:        stringField(doc, "status", "active"),
		Latitude:      numberField(doc, "latitude", 0),
		Longitude:     numberField(doc, "longitude", 0),
		ReporterID:    stringField(doc, "reporterId", ""),
		UpdatedAt:     timeField(doc, "updatedAt", now),
	}
}

func DisasterToRecord(d domain.Disaster) domain.DisasterRecord {
	return domain.DisasterRecord{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Location:      d.Location,
		Type:          d.Type,
		Timestamp:     d.Timestamp.UnixMilli(),
		AffectedCount: d.AffectedCount,
		ImageURLs:     EncodeList(d.ImageURLs),
		Status:        d.Status,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		ReporterID:    d.ReporterID,
		UpdatedAt:     d.UpdatedAt.UnixMilli(),
	}
}

func DisasterFromRecord(r domain.DisasterRecord) domain.Disaster {
	return domain.Disaster{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		Type:          r.Type,
		Timestamp:     time.UnixMilli(r.Timestamp),
		AffectedCount: r.AffectedCount,
		ImageURLs:     DecodeList(r.ImageURLs),
		Status:        r.Status,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		ReporterID:    r.ReporterID,
		UpdatedAt:     time.UnixMilli(r.UpdatedAt),
	}
}

func DisastersFromRecords(rows []domain.DisasterRecord) []domain.Disaster {
	out := make([]domain.Disaster, 0, len(rows))
	for _, r := range rows {
		out = append(out, DisasterFromRecord(r))
	}
	return out
}

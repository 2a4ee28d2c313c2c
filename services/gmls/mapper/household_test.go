package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gmls/domain"
)

func TestMemberToRowGeneratesIdentifier(t *testing.T) {
	member := domain.HouseholdMember{Name: "Ani"}

	row := MemberToRow("uid-1", member)
	assert.NotEmpty(t, row.MemberID)
	assert.Equal(t, "uid-1", row.UserID)
	assert.NotZero(t, row.CreatedAt)
	assert.NotZero(t, row.UpdatedAt)
}

func TestMemberToRowKeepsExistingIdentifier(t *testing.T) {
	created := time.UnixMilli(1700000000000)
	member := domain.HouseholdMember{
		ID:        "m-1",
		Name:      "Ani",
		CreatedAt: created,
	}

	row := MemberToRow("uid-1", member)
	assert.Equal(t, "m-1", row.MemberID, "assigned identifiers stay stable across edits")
	assert.Equal(t, created.UnixMilli(), row.CreatedAt)
	assert.GreaterOrEqual(t, row.UpdatedAt, created.UnixMilli(), "update stamp taken at write time")
}

func TestMemberRowRoundTrip(t *testing.T) {
	member := domain.HouseholdMember{
		ID:                "m-1",
		Name:              "Ani",
		Relationship:      "child",
		Age:               9,
		SpecialNeeds:      "needs inhaler nearby",
		Gender:            "female",
		BloodType:         "A",
		MedicalConditions: []string{"asthma", "allergy"},
		Disabilities:      []string{},
		CreatedAt:         time.UnixMilli(1700000000000),
	}

	got := MemberFromRow(MemberToRow("uid-1", member))
	assert.Equal(t, member.ID, got.ID)
	assert.Equal(t, member.Name, got.Name)
	assert.Equal(t, member.Relationship, got.Relationship)
	assert.Equal(t, member.Age, got.Age)
	assert.Equal(t, member.SpecialNeeds, got.SpecialNeeds)
	assert.Equal(t, member.MedicalConditions, got.MedicalConditions)
	assert.Equal(t, member.Disabilities, got.Disabilities)
}

func TestMemberFromDocumentDefaults(t *testing.T) {
	member := MemberFromDocument(domain.Document{})

	assert.Empty(t, member.ID)
	assert.Empty(t, member.Name)
	assert.Zero(t, member.Age)
	assert.Equal(t, []string{}, member.MedicalConditions)
	assert.False(t, member.CreatedAt.IsZero())
}

func TestDisasterDocumentAndRecordMapping(t *testing.T) {
	doc := domain.Document{
		"id":            "d-1",
		"title":         "Flood",
		"description":   "Rising water levels",
		"location":      "Jakarta Utara",
		"type":          "flood",
		"timestamp":     float64(1700000000000),
		"affectedCount": float64(120),
		"imageUrls":     []interface{}{"https://cdn.example.com/a.jpg", 7, "https://cdn.example.com/b.jpg"},
		"latitude":      -6.12,
		"longitude":     106.77,
		"reporterId":    "uid-1",
	}

	disaster := DisasterFromDocument("", doc)
	assert.Equal(t, "d-1", disaster.ID)
	assert.Equal(t, int64(1700000000000), disaster.Timestamp.UnixMilli())
	assert.Equal(t, 120, disaster.AffectedCount)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, disaster.ImageURLs)
	assert.Equal(t, "active", disaster.Status, "missing status defaults to active")

	got := DisasterFromRecord(DisasterToRecord(disaster))
	assert.Equal(t, disaster.ID, got.ID)
	assert.Equal(t, disaster.Title, got.Title)
	assert.Equal(t, disaster.ImageURLs, got.ImageURLs)
	assert.Equal(t, disaster.Timestamp.UnixMilli(), got.Timestamp.UnixMilli())
	assert.Equal(t, disaster.Latitude, got.Latitude)
}

func TestDisasterFromDocumentFallbackIdentifier(t *testing.T) {
	disaster := DisasterFromDocument("doc-7", domain.Document{"title": "Quake"})
	assert.Equal(t, "doc-7", disaster.ID, "document key used when the payload has no id")
}

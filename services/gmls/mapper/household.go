package mapper

import (
	"time"

	"github.com/google/uuid"

	"gmls/domain"
)

// MemberFromDocument coerces one nested household-member map with the same
// cast-with-default rules as the parent document.
func MemberFromDocument(doc domain.Document) domain.HouseholdMember {
	now := time.Now()

	return domain.HouseholdMember{
		ID:                stringField(doc, "id", ""),
		Name:              stringField(doc, "name", ""),
		Relationship:      stringField(doc, "relationship", ""),
		Age:               intField(doc, "age", 0),
		SpecialNeeds:      stringField(doc, "specialNeeds", ""),
		Gender:            stringField(doc, "gender", ""),
		BloodType:         stringField(doc, "bloodType", ""),
		MedicalConditions: stringListField(doc, "medicalConditions"),
		Disabilities:      stringListField(doc, "disabilities"),
		CreatedAt:         timeField(doc, "createdAt", now),
		UpdatedAt:         timeField(doc, "updatedAt", now),
	}
}

func MemberToDocument(m domain.HouseholdMember) domain.Document {
	return domain.Document{
		"id":                m.ID,
		"name":              m.Name,
		"relationship":      m.Relationship,
		"age":               m.Age,
		"specialNeeds":      m.SpecialNeeds,
		"gender":            m.Gender,
		"bloodType":         m.BloodType,
		"medicalConditions": stringsToList(m.MedicalConditions),
		"disabilities":      stringsToList(m.Disabilities),
		"createdAt":         m.CreatedAt.UnixMilli(),
		"updatedAt":         m.UpdatedAt.UnixMilli(),
	}
}

// MemberToRow converts one domain member into its relational row. A member
// without an identifier gets a generated one, stable across later edits
// once assigned. The update stamp is always taken at write time; the
// creation stamp is kept when the member already carries one.
func MemberToRow(userID string, m domain.HouseholdMember) domain.HouseholdMemberRow {
	now := time.Now()

	id := m.ID
	if id == "" {
		id = uuid.NewString()
	}

	created := m.CreatedAt
	if created.IsZero() {
		created = now
	}

	return domain.HouseholdMemberRow{
		MemberID:          id,
		UserID:            userID,
		Name:              m.Name,
		Relationship:      m.Relationship,
		Age:               m.Age,
		SpecialNeeds:      m.SpecialNeeds,
		Gender:            m.Gender,
		BloodType:         m.BloodType,
		MedicalConditions: EncodeList(m.MedicalConditions),
		Disabilities:      EncodeList(m.Disabilities),
		CreatedAt:         created.UnixMilli(),
		UpdatedAt:         now.UnixMilli(),
	}
}

func MembersToRows(userID string, members []domain.HouseholdMember) []domain.HouseholdMemberRow {
	rows := make([]domain.HouseholdMemberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, MemberToRow(userID, m))
	}
	return rows
}

func MemberFromRow(row domain.HouseholdMemberRow) domain.HouseholdMember {
	return domain.HouseholdMember{
		ID:                row.MemberID,
		Name:              row.Name,
		Relationship:      row.Relationship,
		Age:               row.Age,
		SpecialNeeds:      row.SpecialNeeds,
		Gender:            row.Gender,
		BloodType:         row.BloodType,
		MedicalConditions: DecodeList(row.MedicalConditions),
		Disabilities:      DecodeList(row.Disabilities),
		CreatedAt:         time.UnixMilli(row.CreatedAt),
		UpdatedAt:         time.UnixMilli(row.UpdatedAt),
	}
}

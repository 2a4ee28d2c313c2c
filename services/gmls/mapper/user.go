package mapper

import (
	"time"

	"gmls/domain"
)

// UserFromDocument coerces an untrusted remote field map into a fully-typed
// domain user. It never fails: every field falls back to its documented
// default on a missing or ill-typed value. Note the asymmetric boolean
// defaults — isVerified and createdByAdmin default to false while isActive
// defaults to true; existing remote documents depend on exactly these.
func UserFromDocument(uid string, doc domain.Document) *domain.User {
	now := time.Now()

	user := &domain.User{
		UID:               uid,
		Email:             stringField(doc, "email", ""),
		FullName:          stringField(doc, "fullName", ""),
		PhoneNumber:       stringField(doc, "phoneNumber", ""),
		DateOfBirth:       timePtrField(doc, "dateOfBirth"),
		Gender:            stringField(doc, "gender", ""),
		NIK:               stringField(doc, "nik", ""),
		FamilyCardNumber:  stringField(doc, "familyCardNumber", ""),
		Address:           stringField(doc, "address", ""),
		Religion:          stringField(doc, "religion", ""),
		MaritalStatus:     stringField(doc, "maritalStatus", ""),
		EconomicStatus:    stringField(doc, "economicStatus", ""),
		BloodType:         stringField(doc, "bloodType", ""),
		Latitude:          numberField(doc, "latitude", 0),
		Longitude:         numberField(doc, "longitude", 0),
		MedicalConditions: stringListField(doc, "medicalConditions"),
		Disabilities:      stringListField(doc, "disabilities"),
		FamilyMemberCount: intField(doc, "familyMemberCount", 0),
		ProfilePictureURL: stringField(doc, "profilePictureUrl", ""),
		Role:              stringField(doc, "role", "user"),
		FCMToken:          stringField(doc, "fcmToken", ""),
		IsActive:          boolField(doc, "isActive", true),
		IsVerified:        boolField(doc, "isVerified", false),
		CreatedByAdmin:    boolField(doc, "createdByAdmin", false),
		CreatedAt:         timeField(doc, "createdAt", now),
		UpdatedAt:         timeField(doc, "updatedAt", now),
	}

	contact := subDocument(doc, "emergencyContact")
	user.EmergencyContact = domain.EmergencyContact{
		Name:         stringField(contact, "name", ""),
		Relationship: stringField(contact, "relationship", ""),
		Phone:        stringField(contact, "phone", ""),
	}

	members := []domain.HouseholdMember{}
	for _, sub := range documentList(doc, "householdMembers") {
		members = append(members, MemberFromDocument(sub))
	}
	user.HouseholdMembers = members

	return user
}

// UserToDocument is the structural inverse of UserFromDocument. Explicit
// nulls are meaningful at the remote boundary, so a nil date of birth is
// written out as nil rather than omitted.
func UserToDocument(user *domain.User) domain.Document {
	var dob interface{}
	if user.DateOfBirth != nil {
		dob = user.DateOfBirth.UnixMilli()
	}

	members := make([]interface{}, 0, len(user.HouseholdMembers))
	for _, m := range user.HouseholdMembers {
		members = append(members, MemberToDocument(m))
	}

	return domain.Document{
		"email":             user.Email,
		"fullName":          user.FullName,
		"phoneNumber":       user.PhoneNumber,
		"dateOfBirth":       dob,
		"gender":            user.Gender,
		"nik":               user.NIK,
		"familyCardNumber":  user.FamilyCardNumber,
		"address":           user.Address,
		"religion":          user.Religion,
		"maritalStatus":     user.MaritalStatus,
		"economicStatus":    user.EconomicStatus,
		"bloodType":         user.BloodType,
		"latitude":          user.Latitude,
		"longitude":         user.Longitude,
		"medicalConditions": stringsToList(user.MedicalConditions),
		"disabilities":      stringsToList(user.Disabilities),
		"emergencyContact": map[string]interface{}{
			"name":         user.EmergencyContact.Name,
			"relationship": user.EmergencyContact.Relationship,
			"phone":        user.EmergencyContact.Phone,
		},
		"householdMembers":  members,
		"familyMemberCount": user.FamilyMemberCount,
		"profilePictureUrl": user.ProfilePictureURL,
		"role":              user.Role,
		"fcmToken":          user.FCMToken,
		"isActive":          user.IsActive,
		"isVerified":        user.IsVerified,
		"createdByAdmin":    user.CreatedByAdmin,
		"createdAt":         user.CreatedAt.UnixMilli(),
		"updatedAt":         user.UpdatedAt.UnixMilli(),
	}
}

// UserToProfileRow projects a domain user onto the relational profile row.
// Lossy by design: family card, religion, marital/economic status,
// geolocation, role, activity flag and push token have no columns, and the
// household member list is dropped — children are persisted separately
// through the replace-all-children transaction.
func UserToProfileRow(user *domain.User) *domain.UserProfile {
	var dob *int64
	if user.DateOfBirth != nil {
		ms := user.DateOfBirth.UnixMilli()
		dob = &ms
	}

	return &domain.UserProfile{
		UserID:                user.UID,
		Email:                 user.Email,
		FullName:              user.FullName,
		PhoneNumber:           user.PhoneNumber,
		DateOfBirth:           dob,
		Gender:                user.Gender,
		NIK:                   user.NIK,
		Address:               user.Address,
		BloodType:             user.BloodType,
		MedicalConditions:     EncodeList(user.MedicalConditions),
		Disabilities:          EncodeList(user.Disabilities),
		EmergencyName:         user.EmergencyContact.Name,
		EmergencyRelationship: user.EmergencyContact.Relationship,
		EmergencyPhone:        user.EmergencyContact.Phone,
		FamilyMemberCount:     len(user.HouseholdMembers),
		ProfilePictureURL:     user.ProfilePictureURL,
		IsVerified:            user.IsVerified,
		CreatedByAdmin:        user.CreatedByAdmin,
	}
}

// UserFromProfileRow is the profile-only projection: it inverts
// UserToProfileRow but leaves the member list empty. Use UserFromJoin for
// the full reconstruction.
func UserFromProfileRow(row *domain.UserProfile) *domain.User {
	var dob *time.Time
	if row.DateOfBirth != nil {
		t := time.UnixMilli(*row.DateOfBirth)
		dob = &t
	}

	return &domain.User{
		UID:               row.UserID,
		Email:             row.Email,
		FullName:          row.FullName,
		PhoneNumber:       row.PhoneNumber,
		DateOfBirth:       dob,
		Gender:            row.Gender,
		NIK:               row.NIK,
		Address:           row.Address,
		BloodType:         row.BloodType,
		MedicalConditions: DecodeList(row.MedicalConditions),
		Disabilities:      DecodeList(row.Disabilities),
		EmergencyContact: domain.EmergencyContact{
			Name:         row.EmergencyName,
			Relationship: row.EmergencyRelationship,
			Phone:        row.EmergencyPhone,
		},
		HouseholdMembers:  []domain.HouseholdMember{},
		FamilyMemberCount: row.FamilyMemberCount,
		ProfilePictureURL: row.ProfilePictureURL,
		IsActive:          true,
		IsVerified:        row.IsVerified,
		CreatedByAdmin:    row.CreatedByAdmin,
	}
}

// UserFromJoin assembles the profile row and its current child rows into
// one fully-populated domain user.
func UserFromJoin(join *domain.UserWithHouseholdMembers) *domain.User {
	user := UserFromProfileRow(&join.Profile)

	members := make([]domain.HouseholdMember, 0, len(join.Members))
	for _, row := range join.Members {
		members = append(members, MemberFromRow(row))
	}
	user.HouseholdMembers = members

	return user
}

func stringsToList(items []string) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, s := range items {
		out = append(out, s)
	}
	return out
}

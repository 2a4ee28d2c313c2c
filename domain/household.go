package domain

import "time"

// HouseholdMemberRow is the relational child of UserProfile. Rows are only
// ever written through the replace-all-children transaction or the single
// row operations on UserRepo; the cascade on user_id is the one mechanism
// allowed to remove rows as a side effect.
type HouseholdMemberRow struct {
	MemberID          string      `gorm:"primaryKey;type:varchar(64)" json:"member_id"`
	UserID            string      `gorm:"type:varchar(128);index;not null" json:"user_id"`
	User              UserProfile `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name              string      `gorm:"type:varchar(150)" json:"name"`
	Relationship      string      `gorm:"type:varchar(50)" json:"relationship"`
	Age               int         `json:"age"`
	SpecialNeeds      string      `gorm:"type:text" json:"special_needs"`
	Gender            string      `gorm:"type:varchar(20)" json:"gender"`
	BloodType         string      `gorm:"type:varchar(3)" json:"blood_type"`
	MedicalConditions string      `gorm:"type:text" json:"medical_conditions"`
	Disabilities      string      `gorm:"type:text" json:"disabilities"`
	CreatedAt         int64       `json:"created_at"`
	UpdatedAt         int64       `json:"updated_at"`
}

func (HouseholdMemberRow) TableName() string {
	return "household_members"
}

// HouseholdMember is the domain form of a household member.
type HouseholdMember struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" valid:"required~Name is required"`
	Relationship      string    `json:"relationship"`
	Age               int       `json:"age"`
	SpecialNeeds      string    `json:"special_needs"`
	Gender            string    `json:"gender"`
	BloodType         string    `json:"blood_type"`
	MedicalConditions []string  `json:"medical_conditions"`
	Disabilities      []string  `json:"disabilities"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

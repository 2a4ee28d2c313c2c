package domain

import (
	"context"
	"time"
)

// UserProfile is the relational form of the signed-in user: one row per
// device, keyed by the identifier issued by the auth collaborator. It is a
// lossy projection of User — see the mapper package for what gets dropped.
type UserProfile struct {
	UserID                string `gorm:"primaryKey;type:varchar(128)" json:"user_id" valid:"required~User ID is required"`
	Email                 string `gorm:"type:varchar(255)" json:"email"`
	FullName              string `gorm:"type:varchar(150)" json:"full_name"`
	PhoneNumber           string `gorm:"type:varchar(20)" json:"phone_number"`
	DateOfBirth           *int64 `json:"date_of_birth"`
	Gender                string `gorm:"type:varchar(20)" json:"gender"`
	NIK                   string `gorm:"type:varchar(32)" json:"nik"`
	Address               string `gorm:"type:text" json:"address"`
	BloodType             string `gorm:"type:varchar(3)" json:"blood_type"`
	MedicalConditions     string `gorm:"type:text" json:"medical_conditions"`
	Disabilities          string `gorm:"type:text" json:"disabilities"`
	EmergencyName         string `gorm:"type:varchar(150)" json:"emergency_name"`
	EmergencyRelationship string `gorm:"type:varchar(50)" json:"emergency_relationship"`
	EmergencyPhone        string `gorm:"type:varchar(20)" json:"emergency_phone"`
	FamilyMemberCount     int    `json:"family_member_count"`
	ProfilePictureURL     string `gorm:"type:text" json:"profile_picture_url"`
	IsVerified            bool   `json:"is_verified"`
	CreatedByAdmin        bool   `json:"created_by_admin"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// EmergencyContact is stored flattened on the profile row and nested in the
// remote document.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// User is the in-memory domain form. It carries fields that exist only in
// the remote document (family card, religion, marital/economic status,
// geolocation, role, activity flag, push token) on top of everything the
// profile row retains.
type User struct {
	UID               string            `json:"uid" valid:"required~UID is required"`
	Email             string            `json:"email"`
	FullName          string            `json:"full_name"`
	PhoneNumber       string            `json:"phone_number"`
	DateOfBirth       *time.Time        `json:"date_of_birth"`
	Gender            string            `json:"gender"`
	NIK               string            `json:"nik"`
	FamilyCardNumber  string            `json:"family_card_number"`
	Address           string            `json:"address"`
	Religion          string            `json:"religion"`
	MaritalStatus     string            `json:"marital_status"`
	EconomicStatus    string            `json:"economic_status"`
	BloodType         string            `json:"blood_type"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	MedicalConditions []string          `json:"medical_conditions"`
	Disabilities      []string          `json:"disabilities"`
	EmergencyContact  EmergencyContact  `json:"emergency_contact"`
	HouseholdMembers  []HouseholdMember `json:"household_members"`
	FamilyMemberCount int               `json:"family_member_count"`
	ProfilePictureURL string            `json:"profile_picture_url"`
	Role              string            `json:"role"`
	FCMToken          string            `json:"fcm_token"`
	IsActive          bool              `json:"is_active"`
	IsVerified        bool              `json:"is_verified"`
	CreatedByAdmin    bool              `json:"created_by_admin"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// UserWithHouseholdMembers is the composite returned by the join read: the
// profile row together with its current child rows in insertion order.
type UserWithHouseholdMembers struct {
	Profile UserProfile          `json:"profile"`
	Members []HouseholdMemberRow `json:"members"`
}

type UserRepo interface {
	GetProfile(ctx context.Context) (*UserProfile, error)
	WatchProfile(ctx context.Context) (<-chan *UserProfile, error)
	UpsertProfile(ctx context.Context, profile *UserProfile) error
	DeleteProfile(ctx context.Context) error

	UpsertHouseholdMembers(ctx context.Context, rows []HouseholdMemberRow) error
	UpdateHouseholdMember(ctx context.Context, row *HouseholdMemberRow) error
	DeleteHouseholdMember(ctx context.Context, memberID string) error
	GetHouseholdMembers(ctx context.Context, userID string) ([]HouseholdMemberRow, error)
	WatchHouseholdMembers(ctx context.Context, userID string) (<-chan []HouseholdMemberRow, error)
	DeleteAllHouseholdMembers(ctx context.Context, userID string) error

	SaveUserWithHouseholdMembers(ctx context.Context, profile *UserProfile, rows []HouseholdMemberRow) error
	GetUserWithHouseholdMembers(ctx context.Context, userID string) (*UserWithHouseholdMembers, error)
	WatchUserWithHouseholdMembers(ctx context.Context, userID string) (<-chan *UserWithHouseholdMembers, error)
}

type UserUseCase interface {
	SyncProfile(ctx context.Context) (*User, error)
	SaveProfile(ctx context.Context, user *User) error
	GetUser(ctx context.Context) (*User, error)
	WatchUser(ctx context.Context) (<-chan *User, error)
	UpdatePushToken(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

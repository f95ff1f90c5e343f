package domain

import "time"

// Teacher is the stored account record for a teacher.
type Teacher struct {
	ID              string
	Name            string
	LastName        string
	Email           string
	PasswordHash    string
	TeachingStage   *string
	SchoolType      *string
	SchoolLocation  *string
	Gender          *string
	ExperienceYears *string
	Community       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile is the attribute set exposed to the account owner. It never
// carries the account id or the password hash.
type Profile struct {
	Name            string
	LastName        string
	Email           string
	TeachingStage   *string
	SchoolType      *string
	SchoolLocation  *string
	Gender          *string
	ExperienceYears *string
	Community       *string
}

// ProfileUpdate carries a partial update: nil fields preserve the stored
// column value, non-nil fields replace it.
type ProfileUpdate struct {
	Name            *string
	LastName        *string
	Email           *string
	TeachingStage   *string
	SchoolType      *string
	SchoolLocation  *string
	Gender          *string
	ExperienceYears *string
	Community       *string
}

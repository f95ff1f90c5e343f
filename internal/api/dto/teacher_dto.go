package dto

// RegisterTeacherRequest payload for new accounts. Profile attributes are
// optional and stored as provided.
type RegisterTeacherRequest struct {
	Name            string  `json:"name"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	TeachingStage   *string `json:"teachingStage"`
	SchoolType      *string `json:"schoolType"`
	SchoolLocation  *string `json:"schoolLocation"`
	Gender          *string `json:"gender"`
	ExperienceYears *string `json:"experienceYears"`
	Community       *string `json:"community"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the minted token pair and display name.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name"`
}

// ProfileResponse is the attribute set returned to the account owner.
type ProfileResponse struct {
	Name            string  `json:"name"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	TeachingStage   *string `json:"teachingStage"`
	SchoolType      *string `json:"schoolType"`
	SchoolLocation  *string `json:"schoolLocation"`
	Gender          *string `json:"gender"`
	ExperienceYears *string `json:"experienceYears"`
	Community       *string `json:"community"`
}

// UpdateProfileRequest payload for partial profile updates. Omitted fields
// arrive as nil and preserve the stored column value.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	TeachingStage   *string `json:"teachingStage"`
	SchoolType      *string `json:"schoolType"`
	SchoolLocation  *string `json:"schoolLocation"`
	Gender          *string `json:"gender"`
	ExperienceYears *string `json:"experienceYears"`
	Community       *string `json:"community"`
}

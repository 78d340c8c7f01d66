package types

import "github.com/go-playground/validator/v10"

// Location is a geographic location attached to contact, education, or work
// entries.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// ContactInfo holds the resume owner's contact details.
type ContactInfo struct {
	FullName  string    `json:"full_name" validate:"required"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	Website   string    `json:"website,omitempty" validate:"omitempty,url"`
	Location  *Location `json:"location,omitempty"`
}

// WorkExperience is one employment entry.
type WorkExperience struct {
	JobTitle    string    `json:"job_title" validate:"required"`
	Employer    string    `json:"employer" validate:"required"`
	Location    *Location `json:"location,omitempty"`
	StartDate   string    `json:"start_date,omitempty"` // YYYY-MM
	EndDate     string    `json:"end_date,omitempty"`   // YYYY-MM or "current"
	IsCurrent   bool      `json:"is_current,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Education is one educational background entry.
type Education struct {
	SchoolName     string    `json:"school_name,omitempty"`
	DegreeName     string    `json:"degree_name,omitempty"`
	FieldOfStudy   string    `json:"field_of_study,omitempty"`
	Location       *Location `json:"location,omitempty"`
	GraduationDate string    `json:"graduation_date,omitempty"` // YYYY-MM
	GPA            string    `json:"gpa,omitempty"`
}

// Skill is one skill entry with optional categorization.
type Skill struct {
	Name             string `json:"name" validate:"required"`
	Category         string `json:"category,omitempty"`
	ProficiencyLevel string `json:"proficiency_level,omitempty"`
}

// Certification is one professional certification entry.
type Certification struct {
	Name         string `json:"name" validate:"required"`
	Issuer       string `json:"issuer,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// LanguageProficiency pairs a spoken language with a proficiency level.
type LanguageProficiency struct {
	Language    string `json:"language" validate:"required"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ResumeProfile is the structured record produced by the downstream profile
// extraction step from a ParsedDocument.
type ResumeProfile struct {
	Contact        ContactInfo           `json:"contact" validate:"required"`
	Summary        string                `json:"summary,omitempty"`
	Experience     []WorkExperience      `json:"experience" validate:"dive"`
	Education      []Education           `json:"education" validate:"dive"`
	Skills         []Skill               `json:"skills" validate:"dive"`
	Certifications []Certification       `json:"certifications,omitempty" validate:"dive"`
	Languages      []LanguageProficiency `json:"languages,omitempty" validate:"dive"`
}

// Validate validates the ResumeProfile using the validator.
func (p *ResumeProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

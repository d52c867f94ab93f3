package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Caste represents a reservation category
type Caste string

const (
	CasteGeneral Caste = "General"
	CasteOBC     Caste = "OBC"
	CasteSC      Caste = "SC"
	CasteST      Caste = "ST"
)

// Castes lists all valid caste values
var Castes = []Caste{CasteGeneral, CasteOBC, CasteSC, CasteST}

// IsValid reports whether the caste is a known value
func (c Caste) IsValid() bool {
	for _, v := range Castes {
		if c == v {
			return true
		}
	}
	return false
}

// Education represents the highest completed education level, ordered low to high
type Education string

const (
	EducationNone            Education = "Primary or Below"
	EducationSecondary       Education = "Secondary (10th)"
	EducationHigherSecondary Education = "Higher Secondary (12th)"
	EducationGraduate        Education = "Graduate"
	EducationPostGraduate    Education = "Post Graduate"
)

// EducationLevels lists all valid education values in ascending order
var EducationLevels = []Education{
	EducationNone,
	EducationSecondary,
	EducationHigherSecondary,
	EducationGraduate,
	EducationPostGraduate,
}

// IsValid reports whether the education level is a known value
func (e Education) IsValid() bool {
	for _, v := range EducationLevels {
		if e == v {
			return true
		}
	}
	return false
}

// Rank returns the ordinal position of the education level (0 = lowest)
func (e Education) Rank() int {
	for i, v := range EducationLevels {
		if e == v {
			return i
		}
	}
	return -1
}

// Sector represents the occupation sector of a citizen
type Sector string

const (
	SectorAgriculture  Sector = "Agriculture / Farmer"
	SectorCorporate    Sector = "Corporate / Private Job"
	SectorStudent      Sector = "Student"
	SectorLaborer      Sector = "Laborer / Construction"
	SectorSelfEmployed Sector = "Self-Employed / Business"
	SectorGovernment   Sector = "Government Employee"
	SectorUnemployed   Sector = "Unemployed"
)

// Sectors lists all valid sector values
var Sectors = []Sector{
	SectorAgriculture,
	SectorCorporate,
	SectorStudent,
	SectorLaborer,
	SectorSelfEmployed,
	SectorGovernment,
	SectorUnemployed,
}

// IsValid reports whether the sector is a known value
func (s Sector) IsValid() bool {
	for _, v := range Sectors {
		if s == v {
			return true
		}
	}
	return false
}

// SectorDetails is the open per-sector attribute bag. None of these fields
// participate in eligibility matching; they feed the advisory prompt only.
type SectorDetails struct {
	LandSize           null.Float64 `json:"landSize,omitempty"`
	CropType           null.String  `json:"cropType,omitempty"`
	IrrigationStatus   null.String  `json:"irrigationStatus,omitempty"`
	CurrentCourse      null.String  `json:"currentCourse,omitempty"`
	Institute          null.String  `json:"institute,omitempty"`
	JobRole            null.String  `json:"jobRole,omitempty"`
	CompanyType        null.String  `json:"companyType,omitempty"`
	SkillSet           null.String  `json:"skillSet,omitempty"`
	IsRegisteredWorker null.Bool    `json:"isRegisteredWorker,omitempty"`
}

// UserProfile is the canonical, validated citizen profile.
// ID and Phone never change after registration.
type UserProfile struct {
	ID            uuid.UUID     `json:"id"`
	FullName      string        `json:"fullName"`
	Phone         string        `json:"phone"`
	PasswordHash  string        `json:"-"`
	Age           int           `json:"age"`
	Income        int           `json:"income"`
	Caste         Caste         `json:"caste"`
	Education     Education     `json:"education"`
	District      string        `json:"district"`
	Block         string        `json:"block"`
	Sector        Sector        `json:"sector"`
	SectorDetails SectorDetails `json:"sectorDetails"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// RegisterInput represents raw registration form input
type RegisterInput struct {
	FullName      string        `json:"fullName" binding:"required"`
	Phone         string        `json:"phone" binding:"required"`
	Password      string        `json:"password" binding:"required,min=6"`
	Age           int           `json:"age"`
	Income        int           `json:"income"`
	Caste         string        `json:"caste" binding:"required"`
	Education     string        `json:"education" binding:"required"`
	District      string        `json:"district" binding:"required"`
	Block         string        `json:"block" binding:"required"`
	Sector        string        `json:"sector" binding:"required"`
	SectorDetails SectorDetails `json:"sectorDetails"`
}

// UpdateProfileInput carries the mutable profile fields. Pointer fields are
// only applied when present so a partial update leaves the rest untouched.
type UpdateProfileInput struct {
	Income        *int           `json:"income"`
	Education     *string        `json:"education"`
	Sector        *string        `json:"sector"`
	SectorDetails *SectorDetails `json:"sectorDetails"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user"`
}

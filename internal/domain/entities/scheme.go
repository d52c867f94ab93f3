package entities

import (
	"time"

	"github.com/google/uuid"
)

// SchemeCategory represents the welfare category of a scheme
type SchemeCategory string

const (
	CategoryHealth      SchemeCategory = "Health"
	CategoryEducation   SchemeCategory = "Education"
	CategoryAgriculture SchemeCategory = "Agriculture"
	CategoryHousing     SchemeCategory = "Housing"
	CategoryEmployment  SchemeCategory = "Employment"
	CategoryBusiness    SchemeCategory = "Business"
)

// SchemeCategories lists all valid categories
var SchemeCategories = []SchemeCategory{
	CategoryHealth,
	CategoryEducation,
	CategoryAgriculture,
	CategoryHousing,
	CategoryEmployment,
	CategoryBusiness,
}

// Rule bound defaults. MaxIncome's default mirrors the catalog convention of
// an effectively unbounded ceiling.
const (
	DefaultMinAge    = 0
	DefaultMaxAge    = 100
	DefaultMaxIncome = 99999999
)

// SchemeRule holds the eligibility bounds a scheme imposes on applicants.
// An empty AllowedCastes or TargetSectors set means "no restriction on that
// dimension", never "matches nothing".
type SchemeRule struct {
	MinAge        int       `json:"minAge"`
	MaxAge        int       `json:"maxAge"`
	MaxIncome     int       `json:"maxIncome"`
	AllowedCastes []Caste   `json:"allowedCastes"`
	MinEducation  Education `json:"minEducation,omitempty"`
	TargetSectors []Sector  `json:"targetSectors"`
}

// NewSchemeRule returns a rule with the default-allow bounds
func NewSchemeRule() SchemeRule {
	return SchemeRule{
		MinAge:    DefaultMinAge,
		MaxAge:    DefaultMaxAge,
		MaxIncome: DefaultMaxIncome,
	}
}

// Allows reports whether a profile satisfies every dimension of the rule.
// All bounds are inclusive. Pure and total: it never fails for any
// well-formed profile.
func (r SchemeRule) Allows(p *UserProfile) bool {
	if p.Age < r.MinAge || p.Age > r.MaxAge {
		return false
	}
	if p.Income > r.MaxIncome {
		return false
	}
	if len(r.AllowedCastes) > 0 && !containsCaste(r.AllowedCastes, p.Caste) {
		return false
	}
	if len(r.TargetSectors) > 0 && !containsSector(r.TargetSectors, p.Sector) {
		return false
	}
	return true
}

func containsCaste(set []Caste, c Caste) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsSector(set []Sector, s Sector) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Scheme is a welfare offering with a benefit and an eligibility rule.
// Schemes are seeded once at catalog bootstrap and read-mostly afterwards.
type Scheme struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Benefit     string         `json:"benefit"`
	Category    SchemeCategory `json:"category"`
	Icon        string         `json:"icon"`
	Rule        SchemeRule     `json:"rule"`
	Position    int            `json:"-"`
	CreatedAt   time.Time      `json:"createdAt"`
}

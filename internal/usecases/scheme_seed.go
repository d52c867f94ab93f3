package usecases

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
)

var seedCategories = []entities.SchemeCategory{
	entities.CategoryEducation,
	entities.CategoryAgriculture,
	entities.CategoryHealth,
	entities.CategoryHousing,
	entities.CategoryEmployment,
	entities.CategoryBusiness,
}

var categoryIcons = map[entities.SchemeCategory]string{
	entities.CategoryEducation:   "🎓",
	entities.CategoryAgriculture: "🚜",
	entities.CategoryHealth:      "🏥",
	entities.CategoryHousing:     "🏠",
	entities.CategoryEmployment:  "💼",
	entities.CategoryBusiness:    "🏢",
}

var generatedTargetSectors = []entities.Sector{
	entities.SectorStudent,
	entities.SectorAgriculture,
	entities.SectorUnemployed,
	entities.SectorLaborer,
	entities.SectorSelfEmployed,
}

// namedSchemes returns the fixed, real-world-style seed schemes
func namedSchemes() []*entities.Scheme {
	studentCC := entities.NewSchemeRule()
	studentCC.MaxAge = 25
	studentCC.TargetSectors = []entities.Sector{entities.SectorStudent}

	kanyaUtthan := entities.NewSchemeRule()
	kanyaUtthan.MaxAge = 23
	kanyaUtthan.TargetSectors = []entities.Sector{entities.SectorStudent}

	dieselSubsidy := entities.NewSchemeRule()
	dieselSubsidy.TargetSectors = []entities.Sector{entities.SectorAgriculture}

	return []*entities.Scheme{
		{
			ID:          uuid.New(),
			Title:       "Bihar Student Credit Card",
			Description: "Loan up to 4 Lakh for higher studies.",
			Benefit:     "₹4,00,000 Loan",
			Category:    entities.CategoryEducation,
			Icon:        "🎓",
			Rule:        studentCC,
		},
		{
			ID:          uuid.New(),
			Title:       "Kanya Utthan Yojana",
			Description: "Incentive for girls from birth to graduation.",
			Benefit:     "₹50,000 Total",
			Category:    entities.CategoryHealth,
			Icon:        "👧",
			Rule:        kanyaUtthan,
		},
		{
			ID:          uuid.New(),
			Title:       "Diesel Subsidy",
			Description: "Agricultural fuel subsidy.",
			Benefit:     "₹60/liter",
			Category:    entities.CategoryAgriculture,
			Icon:        "🚜",
			Rule:        dieselSubsidy,
		},
	}
}

// generateSchemes produces count regional welfare scheme variations with
// bounded-random rule parameters from an explicit seed, so two runs with the
// same seed generate the same catalog.
func generateSchemes(seed int64, count int) []*entities.Scheme {
	rng := rand.New(rand.NewSource(seed))

	schemes := make([]*entities.Scheme, 0, count)
	for i := 1; i <= count; i++ {
		cat := seedCategories[i%len(seedCategories)]

		rule := entities.SchemeRule{
			MinAge:        rng.Intn(18),
			MaxAge:        40 + rng.Intn(30),
			MaxIncome:     (rng.Intn(5) + 2) * 100000,
			TargetSectors: []entities.Sector{generatedTargetSectors[i%len(generatedTargetSectors)]},
		}
		if i%5 == 0 {
			rule.AllowedCastes = []entities.Caste{entities.CasteSC, entities.CasteST}
		}

		schemes = append(schemes, &entities.Scheme{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("%s Support Scheme - Phase %d", cat, i),
			Description: fmt.Sprintf("Welfare initiative targeted at regional development and individual empowerment in sector phase %d.", i),
			Benefit:     fmt.Sprintf("₹%d Grant/Subsidy", (rng.Intn(50)+1)*1000),
			Category:    cat,
			Icon:        categoryIcons[cat],
			Rule:        rule,
		})
	}
	return schemes
}

// buildSeedCatalog assembles the full seed set in catalog order
func buildSeedCatalog(seed int64, generatedCount int) []*entities.Scheme {
	schemes := append(namedSchemes(), generateSchemes(seed, generatedCount)...)
	now := time.Now()
	for i, s := range schemes {
		s.Position = i
		s.CreatedAt = now
	}
	return schemes
}

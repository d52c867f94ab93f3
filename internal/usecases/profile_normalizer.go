package usecases

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/domain/geo"
)

// NormalizeProfile validates raw registration input and produces a canonical
// profile record. It has no side effects: on any validation failure the
// caller gets an error and no partial profile.
func NormalizeProfile(input *entities.RegisterInput) (*entities.UserProfile, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.BadRequest("Full name is required")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, domainerrors.BadRequest("Phone number is required")
	}

	if input.Age < 0 {
		return nil, domainerrors.BadRequest("Age must be zero or positive")
	}
	if input.Income < 0 {
		return nil, domainerrors.BadRequest("Income must be zero or positive")
	}

	caste := entities.Caste(input.Caste)
	if !caste.IsValid() {
		return nil, domainerrors.BadRequest("Unknown caste category: " + input.Caste)
	}

	education := entities.Education(input.Education)
	if !education.IsValid() {
		return nil, domainerrors.BadRequest("Unknown education level: " + input.Education)
	}

	sector := entities.Sector(input.Sector)
	if !sector.IsValid() {
		return nil, domainerrors.BadRequest("Unknown sector: " + input.Sector)
	}

	district := strings.TrimSpace(input.District)
	if !geo.IsDistrict(district) {
		return nil, domainerrors.BadRequest("Unsupported district: " + input.District)
	}

	block := strings.TrimSpace(input.Block)
	if !geo.IsBlockInDistrict(district, block) {
		return nil, domainerrors.BadRequest("Block does not belong to district " + district)
	}

	now := time.Now()
	return &entities.UserProfile{
		ID:            uuid.New(),
		FullName:      fullName,
		Phone:         phone,
		Age:           input.Age,
		Income:        input.Income,
		Caste:         caste,
		Education:     education,
		District:      district,
		Block:         block,
		Sector:        sector,
		SectorDetails: input.SectorDetails,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
)

func validRegisterInput() *entities.RegisterInput {
	return &entities.RegisterInput{
		FullName:  "Asha Kumari",
		Phone:     "9876543210",
		Password:  "secret1",
		Age:       20,
		Income:    50000,
		Caste:     "General",
		Education: "Graduate",
		District:  "Patna",
		Block:     "Patna Block 1",
		Sector:    "Student",
	}
}

func TestNormalizeProfile_Valid(t *testing.T) {
	input := validRegisterInput()
	input.FullName = "  Asha Kumari  "
	input.District = " Patna "

	profile, err := NormalizeProfile(input)
	require.NoError(t, err)

	assert.Equal(t, "Asha Kumari", profile.FullName)
	assert.Equal(t, "Patna", profile.District)
	assert.Equal(t, entities.CasteGeneral, profile.Caste)
	assert.Equal(t, entities.EducationGraduate, profile.Education)
	assert.Equal(t, entities.SectorStudent, profile.Sector)
	assert.NotEqual(t, profile.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestNormalizeProfile_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.RegisterInput)
	}{
		{"blank name", func(i *entities.RegisterInput) { i.FullName = "   " }},
		{"blank phone", func(i *entities.RegisterInput) { i.Phone = "" }},
		{"negative age", func(i *entities.RegisterInput) { i.Age = -1 }},
		{"negative income", func(i *entities.RegisterInput) { i.Income = -100 }},
		{"unknown caste", func(i *entities.RegisterInput) { i.Caste = "EWS" }},
		{"unknown education", func(i *entities.RegisterInput) { i.Education = "Doctorate" }},
		{"unknown sector", func(i *entities.RegisterInput) { i.Sector = "Farmer" }},
		{"unknown district", func(i *entities.RegisterInput) { i.District = "Mumbai" }},
		{"block from other district", func(i *entities.RegisterInput) { i.Block = "Gaya Block 1" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := validRegisterInput()
			c.mutate(input)

			profile, err := NormalizeProfile(input)
			assert.Nil(t, profile)
			require.Error(t, err)

			var appErr *domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.CodeBadRequest, appErr.Code)
		})
	}
}

func TestNormalizeProfile_ZeroAgeAndIncomeAllowed(t *testing.T) {
	input := validRegisterInput()
	input.Age = 0
	input.Income = 0

	profile, err := NormalizeProfile(input)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Age)
	assert.Equal(t, 0, profile.Income)
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
)

func testProfile() *entities.UserProfile {
	now := time.Now()
	return &entities.UserProfile{
		ID:           uuid.New(),
		FullName:     "Asha Kumari",
		Phone:        "9876543210",
		PasswordHash: "hash",
		Age:          20,
		Income:       50000,
		Caste:        entities.CasteGeneral,
		Education:    entities.EducationGraduate,
		District:     "Patna",
		Block:        "Patna Block 1",
		Sector:       entities.SectorStudent,
		SectorDetails: entities.SectorDetails{
			CurrentCourse: null.StringFrom("B.Sc"),
			Institute:     null.StringFrom("Patna University"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := testProfile()
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Phone, byID.Phone)
	require.Equal(t, entities.SectorStudent, byID.Sector)
	require.Equal(t, "B.Sc", byID.SectorDetails.CurrentCourse.String)

	byPhone, err := repo.GetByPhone(ctx, u.Phone)
	require.NoError(t, err)
	require.Equal(t, u.ID, byPhone.ID)
}

func TestUserRepository_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := testProfile()
	require.NoError(t, repo.Create(ctx, first))

	second := testProfile()
	second.ID = uuid.New()
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	// Only the first record exists.
	got, err := repo.GetByPhone(ctx, first.Phone)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestUserRepository_UpdateMutableFields(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := testProfile()
	require.NoError(t, repo.Create(ctx, u))

	u.Income = 120000
	u.Education = entities.EducationPostGraduate
	u.Sector = entities.SectorCorporate
	u.SectorDetails = entities.SectorDetails{JobRole: null.StringFrom("Analyst")}
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 120000, got.Income)
	require.Equal(t, entities.EducationPostGraduate, got.Education)
	require.Equal(t, entities.SectorCorporate, got.Sector)
	require.Equal(t, "Analyst", got.SectorDetails.JobRole.String)

	// Immutable fields stay put.
	require.Equal(t, "9876543210", got.Phone)
	require.Equal(t, "Asha Kumari", got.FullName)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByPhone(ctx, "0000000000")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, testProfile())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

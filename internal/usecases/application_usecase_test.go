package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/usecases"
)

func TestApplicationUsecase_Apply(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	userID := uuid.New()
	scheme := studentScheme()

	mockSchemeRepo.On("GetByID", context.Background(), scheme.ID).Return(scheme, nil).Once()
	mockAppRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.SchemeApplication")).Return(nil).Once()

	app, err := uc.Apply(context.Background(), userID, &entities.ApplyInput{
		SchemeID:    scheme.ID.String(),
		SchemeTitle: scheme.Title,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ApplicationPending, app.Status)
	assert.Equal(t, userID, app.UserID)
	assert.Equal(t, scheme.ID, app.SchemeID)
	assert.Equal(t, scheme.Title, app.SchemeTitle)
	assert.WithinDuration(t, time.Now(), app.AppliedAt, 5*time.Second)
}

func TestApplicationUsecase_Apply_MalformedSchemeID(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	_, err := uc.Apply(context.Background(), uuid.New(), &entities.ApplyInput{
		SchemeID:    "not-a-uuid",
		SchemeTitle: "X",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	mockSchemeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationUsecase_Apply_UnknownScheme(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	schemeID := uuid.New()
	mockSchemeRepo.On("GetByID", context.Background(), schemeID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Apply(context.Background(), uuid.New(), &entities.ApplyInput{
		SchemeID:    schemeID.String(),
		SchemeTitle: "X",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationUsecase_ListByUser(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	userID := uuid.New()
	newest := &entities.SchemeApplication{ID: uuid.New(), AppliedAt: time.Now()}
	oldest := &entities.SchemeApplication{ID: uuid.New(), AppliedAt: time.Now().Add(-time.Hour)}

	mockAppRepo.On("ListByUser", context.Background(), userID, 20, 0).
		Return([]*entities.SchemeApplication{newest, oldest}, 2, nil).Once()

	apps, total, err := uc.ListByUser(context.Background(), userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, apps, 2)
	assert.True(t, apps[0].AppliedAt.After(apps[1].AppliedAt))
}

func TestApplicationUsecase_UpdateStatus_PendingToApproved(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	appID := uuid.New()
	pending := &entities.SchemeApplication{ID: appID, Status: entities.ApplicationPending}

	mockAppRepo.On("GetByID", context.Background(), appID).Return(pending, nil).Once()
	mockAppRepo.On("UpdateStatus", context.Background(), appID, entities.ApplicationApproved).Return(nil).Once()

	updated, err := uc.UpdateStatus(context.Background(), appID, &entities.UpdateApplicationStatusInput{Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicationApproved, updated.Status)
}

func TestApplicationUsecase_UpdateStatus_TerminalStateIsFinal(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	appID := uuid.New()
	approved := &entities.SchemeApplication{ID: appID, Status: entities.ApplicationApproved}
	mockAppRepo.On("GetByID", context.Background(), appID).Return(approved, nil)

	for _, next := range []string{"Rejected", "Pending", "Approved"} {
		_, err := uc.UpdateStatus(context.Background(), appID, &entities.UpdateApplicationStatusInput{Status: next})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition, "transition to %s", next)
	}
	mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	mockAppRepo := new(MockApplicationRepository)
	mockSchemeRepo := new(MockSchemeRepository)
	uc := usecases.NewApplicationUsecase(mockAppRepo, mockSchemeRepo)

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), &entities.UpdateApplicationStatusInput{Status: "Withdrawn"})
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeBadRequest, appErr.Code)
	mockAppRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

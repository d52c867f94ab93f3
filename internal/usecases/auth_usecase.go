package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/domain/repositories"
	"scheme-sense.backend/pkg/crypto"
	"scheme-sense.backend/pkg/jwt"
	"scheme-sense.backend/pkg/logger"
)

// AuthUsecase handles registration and authentication
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	matchCache MatchCache
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, matchCache MatchCache) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		matchCache: matchCache,
	}
}

// Register validates raw registration input, creates the profile and returns
// the authenticated response. A duplicate phone creates no record.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	profile, err := NormalizeProfile(input)
	if err != nil {
		return nil, err
	}

	_, err = u.userRepo.GetByPhone(ctx, profile.Phone)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	profile.PasswordHash = passwordHash

	// The unique index on phone backs the check above, so two concurrent
	// registrations for the same phone cannot both commit.
	if err := u.userRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(profile.ID, profile.Phone)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Citizen registered", zap.String("district", profile.District))
	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         profile,
	}, nil
}

// Login authenticates a user by phone and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Phone)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Phone)
}

// GetProfile returns the profile for a user ID
func (u *AuthUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies the mutable profile fields and invalidates any
// cached eligibility matches, since matching attributes may have changed.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileInput) (*entities.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Income != nil {
		if *input.Income < 0 {
			return nil, domainerrors.BadRequest("Income must be zero or positive")
		}
		user.Income = *input.Income
	}
	if input.Education != nil {
		education := entities.Education(*input.Education)
		if !education.IsValid() {
			return nil, domainerrors.BadRequest("Unknown education level: " + *input.Education)
		}
		user.Education = education
	}
	if input.Sector != nil {
		sector := entities.Sector(*input.Sector)
		if !sector.IsValid() {
			return nil, domainerrors.BadRequest("Unknown sector: " + *input.Sector)
		}
		user.Sector = sector
	}
	if input.SectorDetails != nil {
		user.SectorDetails = *input.SectorDetails
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if u.matchCache != nil {
		if err := u.matchCache.Invalidate(ctx, id); err != nil {
			logger.Warn(ctx, "Failed to invalidate match cache", zap.Error(err))
		}
	}

	return user, nil
}

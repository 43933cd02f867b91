package usecase

import (
	"context"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
}

func NewAuthUseCase(userRepo repository.UserRepository, itemRepo repository.ItemRepository, hasher service.PasswordHasher, tokens service.TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		itemRepo: itemRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
	City        string
	Province    string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	registered, err := uc.IsEmailRegistered(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, errors.Conflict("Email already in use")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		PhoneNumber:  input.PhoneNumber,
		City:         input.City,
		Province:     input.Province,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, errors.Unauthorized("Invalid credentials", err)
	}
	if !uc.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// RefreshToken issues a fresh session token for an already authenticated
// user. The user must still exist.
func (uc *AuthUseCase) RefreshToken(ctx context.Context, userID int) (*AuthResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// IsEmailRegistered reports whether any user already owns the email,
// case-insensitively.
func (uc *AuthUseCase) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, "NOT_FOUND") {
		return false, nil
	}
	return false, err
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// GetProfile builds the public view of a user with privacy settings applied
// and item counts attached. Count failures degrade to zero rather than
// failing the profile read.
func (uc *AuthUseCase) GetProfile(ctx context.Context, id int) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		ID:             user.ID,
		DisplayName:    user.DisplayName,
		ProfilePicture: user.ProfilePicture,
		Bio:            user.Bio,
		CreatedAt:      user.CreatedAt,
		City:           user.City,
		Province:       user.Province,
	}
	if user.ShowEmail {
		profile.Email = user.Email
	}
	if user.ShowPhoneNumber {
		profile.PhoneNumber = user.PhoneNumber
	}

	if posted, err := uc.itemRepo.GetByUserID(ctx, id); err == nil {
		profile.PostedItemsCount = len(posted)
	} else {
		logger.Error("Failed to count posted items for user %d: %v", id, err)
	}
	if favorites, err := uc.itemRepo.ListFavoritedBy(ctx, id); err == nil {
		profile.FavoriteItemsCount = len(favorites)
	} else {
		logger.Error("Failed to count favorite items for user %d: %v", id, err)
	}
	return profile, nil
}

type UpdateProfileInput struct {
	DisplayName    *string
	Bio            *string
	ProfilePicture *string
	PhoneNumber    *string
	City           *string
	Province       *string
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Province != nil {
		user.Province = *input.Province
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePrivacy toggles the visibility of email and phone number on the
// public profile.
func (uc *AuthUseCase) UpdatePrivacy(ctx context.Context, userID int, showEmail, showPhoneNumber bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.ShowEmail = showEmail
	user.ShowPhoneNumber = showPhoneNumber
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !uc.hasher.Check(currentPassword, user.PasswordHash) {
		return errors.Unauthorized("Current password is incorrect", nil)
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}
	user.PasswordHash = hash
	return uc.userRepo.Update(ctx, user)
}

// ResetPassword sets a new password without knowing the old one. Callers must
// have validated a password-reset token first.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, userID int, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}
	user.PasswordHash = hash
	return uc.userRepo.Update(ctx, user)
}

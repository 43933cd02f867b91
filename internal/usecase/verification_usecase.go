package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/pkg/errors"
)

const tokenTTL = 24 * time.Hour

type VerificationUseCase struct {
	tokenRepo repository.TokenRepository
	userRepo  repository.UserRepository
	email     service.EmailSender
}

func NewVerificationUseCase(tokenRepo repository.TokenRepository, userRepo repository.UserRepository, email service.EmailSender) *VerificationUseCase {
	return &VerificationUseCase{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		email:     email,
	}
}

// GenerateToken mints a single-use token for the user valid for 24 hours.
func (uc *VerificationUseCase) GenerateToken(ctx context.Context, userID int, tokenType entity.VerificationType) (*entity.VerificationToken, error) {
	opaque, err := randomToken()
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}

	now := time.Now().UTC()
	token := &entity.VerificationToken{
		UserID:    userID,
		Token:     opaque,
		Type:      tokenType,
		CreatedAt: now,
		ExpiresAt: now.Add(tokenTTL),
	}
	if err := uc.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// SendVerificationEmail mints an email-verification token and mails it.
func (uc *VerificationUseCase) SendVerificationEmail(ctx context.Context, userID int) (*entity.VerificationToken, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := uc.GenerateToken(ctx, userID, entity.VerificationEmail)
	if err != nil {
		return nil, err
	}
	if err := uc.email.SendVerificationEmail(ctx, user.Email, token.Token); err != nil {
		return nil, errors.Internal("Failed to send verification email", err)
	}
	return token, nil
}

// RequestPasswordReset mints a password-reset token for the email's owner
// and mails it. An unknown email is reported as success to avoid leaking
// which addresses are registered.
func (uc *VerificationUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}
	token, err := uc.GenerateToken(ctx, user.ID, entity.VerificationPasswordReset)
	if err != nil {
		return err
	}
	if err := uc.email.SendVerificationEmail(ctx, user.Email, token.Token); err != nil {
		return errors.Internal("Failed to send password reset email", err)
	}
	return nil
}

// Validate looks up the token and checks expiry and single-use. The token is
// not consumed; call MarkUsed after the protected action succeeds.
func (uc *VerificationUseCase) Validate(ctx context.Context, opaque string, tokenType entity.VerificationType) (*entity.VerificationToken, error) {
	token, err := uc.tokenRepo.GetByToken(ctx, opaque)
	if err != nil {
		return nil, errors.Unauthorized("Invalid verification token", err)
	}
	if token.Type != tokenType {
		return nil, errors.Unauthorized("Invalid verification token", nil)
	}
	if token.IsUsed {
		return nil, errors.Unauthorized("Verification token already used", nil)
	}
	if time.Now().UTC().After(token.ExpiresAt) {
		return nil, errors.Unauthorized("Verification token expired", nil)
	}
	return token, nil
}

func (uc *VerificationUseCase) MarkUsed(ctx context.Context, token *entity.VerificationToken) error {
	token.IsUsed = true
	return uc.tokenRepo.Update(ctx, token)
}

// ConfirmEmail consumes an email-verification token and marks the user's
// email verified.
func (uc *VerificationUseCase) ConfirmEmail(ctx context.Context, opaque string) (*entity.User, error) {
	token, err := uc.Validate(ctx, opaque, entity.VerificationEmail)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user.IsEmailVerified = true
	user.EmailVerifiedAt = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.MarkUsed(ctx, token); err != nil {
		return nil, err
	}
	return user, nil
}

// randomToken returns 32 bytes of entropy as unpadded URL-safe base64, so the
// token survives being pasted into a URL path or query string.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

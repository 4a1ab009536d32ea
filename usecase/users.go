package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"go.mongodb.org/mongo-driver/mongo"

	"notekeep/apperror"
	"notekeep/model"
	"notekeep/services"
	"notekeep/utils"
)

// ErrTwoFactorRequired signals that the credentials were accepted but a TOTP
// code is still needed. The login handler turns this into its own response
// shape rather than a failure.
var ErrTwoFactorRequired = errors.New("two-factor code required")

type UserService struct {
	Users  UserStore
	Issuer string
}

func NewUserService(users UserStore, issuer string) *UserService {
	return &UserService{Users: users, Issuer: issuer}
}

// Register creates an account. The password is hashed before it ever reaches
// the store and is never part of any returned value.
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (*model.User, error) {
	if username == "" {
		return nil, apperror.MissingField("username")
	}
	if password == "" {
		return nil, apperror.MissingField("password")
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, apperror.New(apperror.InternalError, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Password:  hashed,
		Fullname:  fullname,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("auth", "duplicate_username")
			return nil, apperror.Conflict("username already exists")
		}
		return nil, apperror.Store("failed to create user", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair, plus a TOTP code when the
// account has two-factor enabled. Unknown username and wrong password produce
// the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password, twoFactorCode string) (*model.User, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Store("failed to look up user", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "unknown_user")
		return nil, apperror.Unauthorized("invalid credentials")
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "invalid_password")
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if user.TwoFactorEnabled {
		if twoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			return nil, ErrTwoFactorRequired
		}
		if !totp.Validate(twoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			return nil, apperror.Unauthorized("invalid two-factor code")
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Store("failed to read user", err)
	}
	if user == nil {
		return nil, apperror.NotFound()
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperror.MissingField("newPassword")
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := services.VerifyPassword(user.Password, currentPassword)
	if err != nil || !ok {
		return apperror.Unauthorized("current password is incorrect")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return apperror.New(apperror.InternalError, "failed to hash password", err)
	}

	if _, err := s.Users.UpdatePassword(ctx, userID, hashed); err != nil {
		return apperror.Store("failed to update password", err)
	}
	return nil
}

// EnableTwoFactor generates a TOTP secret and stores it enabled, returning
// the otpauth URL for the client to provision an authenticator with.
func (s *UserService) EnableTwoFactor(ctx context.Context, userID string) (string, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.TwoFactorEnabled {
		return "", apperror.Conflict("two-factor authentication is already enabled")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
	})
	if err != nil {
		return "", apperror.New(apperror.InternalError, "failed to generate two-factor secret", err)
	}

	matched, err := s.Users.SetTwoFactor(ctx, userID, key.Secret(), true)
	if err != nil {
		return "", apperror.Store("failed to enable two-factor", err)
	}
	if matched == 0 {
		return "", apperror.NotFound()
	}

	return key.URL(), nil
}

// DisableTwoFactor requires a valid current code before clearing the secret.
func (s *UserService) DisableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return apperror.Conflict("two-factor authentication is not enabled")
	}
	if !totp.Validate(code, user.TwoFactorSecret) {
		return apperror.Unauthorized("invalid two-factor code")
	}

	if _, err := s.Users.SetTwoFactor(ctx, userID, "", false); err != nil {
		return apperror.Store("failed to disable two-factor", err)
	}
	return nil
}

// DeleteAccount removes the user record. Notes, folders and tags are left
// behind; they are unreachable without the owner identity.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	deleted, err := s.Users.Delete(ctx, userID)
	if err != nil {
		return apperror.Store("failed to delete user", err)
	}
	if deleted == 0 {
		return apperror.NotFound()
	}
	return nil
}

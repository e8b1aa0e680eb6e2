package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/config"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/mailer"
)

const (
	sessionKeyPrefix = "session:"
	verifyKeyPrefix  = "verify:"
	resetKeyPrefix   = "reset:"

	verifyTokenTTL = 30 * time.Minute
	resetTokenTTL  = 10 * time.Minute
)

// EmailQueue publishes email jobs for the background worker.
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// TokenStore keeps server-side sessions and one-shot tokens with a TTL.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type UserService struct {
	users    repository.UserRepository
	guard    *ModerationGuard
	tokens   TokenStore
	jwt      *helpers.JWTManager
	queue    EmailQueue
	uploader Uploader
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewUserService(
	users repository.UserRepository,
	guard *ModerationGuard,
	tokens TokenStore,
	jwt *helpers.JWTManager,
	queue EmailQueue,
	uploader Uploader,
	cfg *config.Config,
	logger *logrus.Logger,
) *UserService {
	return &UserService{
		users:    users,
		guard:    guard,
		tokens:   tokens,
		jwt:      jwt,
		queue:    queue,
		uploader: uploader,
		cfg:      cfg,
		logger:   logger,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,plainname"`
	LastName  string `json:"lastName" binding:"required,plainname"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required,plainname"`
	LastName  string `json:"lastName" binding:"required,plainname"`
	Email     string `json:"email" binding:"required,email"`
	Bio       string `json:"bio" binding:"max=500"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	Password    string `json:"password" binding:"required,pwd"`
}

type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

type LoginResult struct {
	User      *entity.User
	SessionID string
	Tokens    TokenPair
}

// Register creates a new account and queues the verification email.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*entity.User, error) {
	if err := s.guard.ScreenInjection(map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"password":  req.Password,
	}); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, strings.ToLower(req.Email)); err == nil {
		return nil, NewValidationError("User already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        uuid.NewString(),
		FirstName: capitalize(req.FirstName),
		LastName:  capitalize(req.LastName),
		Email:     strings.ToLower(req.Email),
		Password:  hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.SendVerificationEmail(ctx, user.ID); err != nil {
		// Account exists either way; the user can request a new link.
		s.logger.WithError(err).WithField("user_id", user.ID).Error("queue verification email")
	}
	return user, nil
}

// Login authenticates a user. The blocked check runs before the password is
// compared, a failed compare records a login strike, and a successful login
// clears the strike counter and opens a server-side session.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.guard.ScreenInjection(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUnauthorizedError(MsgInvalidCredentials)
		}
		return nil, err
	}

	if user.IsBlocked {
		return nil, NewPolicyError(MsgLoginBlocked)
	}

	if !helpers.CompareHashAndPassword(user.Password, req.Password) {
		return nil, s.guard.RecordLoginFailure(ctx, user.ID)
	}

	if err := s.users.ResetLoginWarnings(ctx, user.ID); err != nil {
		return nil, err
	}
	user.LoginWarningsCount = 0

	sessionID := uuid.NewString()
	tokens, err := s.issueTokens(ctx, user.ID, sessionID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, SessionID: sessionID, Tokens: *tokens}, nil
}

func (s *UserService) issueTokens(ctx context.Context, userID, sessionID string) (*TokenPair, error) {
	access, aexp, err := s.jwt.GenerateAccessToken(userID, sessionID)
	if err != nil {
		return nil, err
	}
	refresh, rexp, err := s.jwt.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Set(ctx, sessionKeyPrefix+sessionID, userID, s.jwt.RefreshTTL); err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  aexp,
		RefreshToken:     refresh,
		RefreshExpiresAt: rexp,
	}, nil
}

// Logout drops the server-side session.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	return s.tokens.Del(ctx, sessionKeyPrefix+sessionID)
}

// Refresh validates the refresh token against the live session and rotates the
// token pair under the same session id.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, NewUnauthorizedError("Invalid refresh token")
	}
	userID, err := s.tokens.Get(ctx, sessionKeyPrefix+claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil, NewUnauthorizedError("Session expired")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, NewUnauthorizedError("Session expired")
	}
	tokens, err := s.issueTokens(ctx, userID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, SessionID: claims.SessionID, Tokens: *tokens}, nil
}

// SendVerificationEmail stores a one-shot token and queues the email.
func (s *UserService) SendVerificationEmail(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAccountVerified {
		return NewValidationError("Account is already verified")
	}

	token := uuid.NewString()
	if err := s.tokens.Set(ctx, verifyKeyPrefix+token, user.ID, verifyTokenTTL); err != nil {
		return err
	}
	return s.queue.PublishJSON(ctx, mailer.EmailJob{
		Kind:      mailer.JobVerifyAccount,
		To:        user.Email,
		Name:      user.FirstName,
		ActionURL: fmt.Sprintf("%s/%s", s.cfg.VerifyAccountURL, token),
	})
}

// VerifyAccount consumes the token and marks the account verified.
func (s *UserService) VerifyAccount(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.tokens.Get(ctx, verifyKeyPrefix+token)
	if err != nil {
		return nil, NewValidationError("Token expired, try again later")
	}
	if err := s.users.SetVerified(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.tokens.Del(ctx, verifyKeyPrefix+token); err != nil {
		s.logger.WithError(err).Warn("delete verification token")
	}
	return s.users.GetByID(ctx, userID)
}

// ForgotPassword queues a reset email when the address is known. Unknown
// addresses return the not-found error so the handler can report it, matching
// the existing frontend contract.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	if err := s.guard.ScreenInjection(map[string]string{"email": email}); err != nil {
		return err
	}
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	token := uuid.NewString()
	if err := s.tokens.Set(ctx, resetKeyPrefix+token, user.ID, resetTokenTTL); err != nil {
		return err
	}
	return s.queue.PublishJSON(ctx, mailer.EmailJob{
		Kind:      mailer.JobResetPassword,
		To:        user.Email,
		Name:      user.FirstName,
		ActionURL: fmt.Sprintf("%s/%s", s.cfg.ResetPasswordURL, token),
	})
}

// ResetPassword consumes the reset token and stores the new password hash.
func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if err := s.guard.ScreenInjection(map[string]string{"password": password}); err != nil {
		return err
	}
	userID, err := s.tokens.Get(ctx, resetKeyPrefix+token)
	if err != nil {
		return NewValidationError("Token expired, try again later")
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	if err := s.tokens.Del(ctx, resetKeyPrefix+token); err != nil {
		s.logger.WithError(err).Warn("delete reset token")
	}
	return nil
}

// GetProfile returns the full profile and records the viewer when someone
// else's profile is opened.
func (s *UserService) GetProfile(ctx context.Context, id, viewerID string) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewerID != "" && viewerID != id {
		if err := s.users.AddProfileViewer(ctx, id, viewerID); err != nil {
			s.logger.WithError(err).WithField("user_id", id).Warn("record profile viewer")
		}
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile screens the submitted fields and saves the profile.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*entity.User, error) {
	if err := s.guard.ScreenInjection(map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"bio":       req.Bio,
	}); err != nil {
		return nil, err
	}
	if err := s.guard.ScreenProfanity(ctx, id, map[string]string{"bio": req.Bio}); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(req.Email)
	if email != user.Email {
		if _, err := s.users.GetByEmail(ctx, email); err == nil {
			return nil, NewValidationError("User already exists")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	user.FirstName = capitalize(req.FirstName)
	user.LastName = capitalize(req.LastName)
	user.Email = email
	user.Bio = req.Bio
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the old password before storing the new hash.
func (s *UserService) UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error {
	if err := s.guard.ScreenInjection(map[string]string{
		"oldPassword": req.OldPassword,
		"password":    req.Password,
	}); err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !helpers.CompareHashAndPassword(user.Password, req.OldPassword) {
		return NewUnauthorizedError("Old password is incorrect")
	}
	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

// UploadProfilePhoto stores the image and saves its public URL.
func (s *UserService) UploadProfilePhoto(ctx context.Context, id, filename, contentType string, r io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, objectPath("profile", id, filename), contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.users.SetProfilePhoto(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// UploadCoverPhoto stores the image and saves its public URL.
func (s *UserService) UploadCoverPhoto(ctx context.Context, id, filename, contentType string, r io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, objectPath("cover", id, filename), contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.users.SetCoverPhoto(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// Follow adds followerID to the target's followers and the target to the
// follower's following list.
func (s *UserService) Follow(ctx context.Context, targetID, followerID string) error {
	if targetID == followerID {
		return NewValidationError("You cannot follow yourself")
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.users.Follow(ctx, targetID, followerID)
}

func (s *UserService) Unfollow(ctx context.Context, targetID, followerID string) error {
	if targetID == followerID {
		return NewValidationError("You cannot unfollow yourself")
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.users.Unfollow(ctx, targetID, followerID)
}

// Block flags the account; moderated endpoints reject blocked users.
func (s *UserService) Block(ctx context.Context, id string) error {
	return s.users.Block(ctx, id)
}

// Unblock clears the flag and both strike counters so the user starts fresh.
func (s *UserService) Unblock(ctx context.Context, id string) error {
	return s.users.Unblock(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func objectPath(kind, userID, filename string) string {
	return fmt.Sprintf("%s/%s/%d-%s", kind, userID, time.Now().UnixNano(), filename)
}

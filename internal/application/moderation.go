package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/profanity"
)

// User-facing moderation messages.
const (
	MsgCrossSiteScripting = "You have been warned for using cross site scripting"
	MsgThirdWarningBlock  = "You reached your third warning, you have been blocked! Contact the administrator to unblock you."
	MsgLoginBlocked       = "Can't login. You are blocked"
	MsgInvalidCredentials = "Invalid email or password!"
)

// ModerationGuard screens user-submitted content before it is persisted.
// Injection screening is stateless; profanity screening records a strike
// against the author and blocks the account once the strike limit is reached.
// Failed logins feed a separate counter with its own limit.
type ModerationGuard struct {
	users      repository.UserRepository
	classifier profanity.Classifier
	logger     *logrus.Logger
}

func NewModerationGuard(users repository.UserRepository, classifier profanity.Classifier, logger *logrus.Logger) *ModerationGuard {
	return &ModerationGuard{users: users, classifier: classifier, logger: logger}
}

// ScreenInjection rejects any field value containing an angle bracket. It
// inspects values only and never mutates user state.
func (g *ModerationGuard) ScreenInjection(fields map[string]string) error {
	for _, v := range fields {
		if strings.ContainsAny(v, "<>") {
			return NewPolicyError(MsgCrossSiteScripting)
		}
	}
	return nil
}

// ScreenProfanity checks the given fields against the profanity classifier.
// A hit on any field counts as a single strike for the author; the strike is
// recorded and the request rejected. Reaching the strike limit blocks the
// account in the same write.
func (g *ModerationGuard) ScreenProfanity(ctx context.Context, userID string, fields map[string]string) error {
	hit := false
	for _, v := range fields {
		if v != "" && g.classifier.IsProfane(v) {
			hit = true
			break
		}
	}
	if !hit {
		return nil
	}

	count, blocked, err := g.users.IncrementWarnings(ctx, userID)
	if err != nil {
		return err
	}
	g.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"warnings": count,
		"blocked":  blocked,
	}).Warn("profanity strike recorded")

	if blocked {
		return NewPolicyError(MsgThirdWarningBlock)
	}
	return NewPolicyError(fmt.Sprintf(
		"You have been warned for using profane words in your post. You have %d warnings left",
		entity.WarningLimit-count,
	))
}

// RecordLoginFailure bumps the failed-login counter for the account and
// returns the error the caller should surface. The fourth consecutive failure
// blocks the account.
func (g *ModerationGuard) RecordLoginFailure(ctx context.Context, userID string) error {
	count, blocked, err := g.users.IncrementLoginWarnings(ctx, userID)
	if err != nil {
		return err
	}
	g.logger.WithFields(logrus.Fields{
		"user_id":        userID,
		"login_warnings": count,
		"blocked":        blocked,
	}).Warn("failed login recorded")

	if blocked {
		return NewPolicyError(MsgThirdWarningBlock)
	}
	return NewUnauthorizedError(fmt.Sprintf(
		"Invalid email or password! Login attempts left - %d",
		entity.LoginAttemptLimit-count,
	))
}

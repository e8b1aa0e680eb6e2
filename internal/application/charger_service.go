package application

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type ChargerService struct {
	chargers repository.ChargerRepository
	users    repository.UserRepository
	guard    *ModerationGuard
	logger   *logrus.Logger
}

func NewChargerService(
	chargers repository.ChargerRepository,
	users repository.UserRepository,
	guard *ModerationGuard,
	logger *logrus.Logger,
) *ChargerService {
	return &ChargerService{chargers: chargers, users: users, guard: guard, logger: logger}
}

type ChargerRequest struct {
	Title          string          `json:"title" binding:"required,min=3,max=100"`
	Description    string          `json:"description" binding:"max=500"`
	Rating         float64         `json:"rating" binding:"gte=0,lte=5"`
	ChargerInfo    json.RawMessage `json:"chargerInfo" binding:"required"`
	BatteryLevel   float64         `json:"batteryLevel" binding:"gte=0,lte=100"`
	AvgConsumption float64         `json:"avgConsumption" binding:"gte=0"`
}

func (s *ChargerService) screen(ctx context.Context, userID string, req ChargerRequest) error {
	if err := s.guard.ScreenInjection(map[string]string{
		"title":       req.Title,
		"description": req.Description,
	}); err != nil {
		return err
	}
	return s.guard.ScreenProfanity(ctx, userID, map[string]string{
		"title":       req.Title,
		"description": req.Description,
	})
}

// Create stores a new charger recommendation. The creator's account must be
// verified; the charger stays unassigned until a post picks it up.
func (s *ChargerService) Create(ctx context.Context, userID string, req ChargerRequest) (*entity.EvCharger, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot create new charger.")
	}
	if err := s.screen(ctx, userID, req); err != nil {
		return nil, err
	}
	charger := &entity.EvCharger{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Rating:         req.Rating,
		ChargerInfo:    req.ChargerInfo,
		BatteryLevel:   req.BatteryLevel,
		AvgConsumption: req.AvgConsumption,
	}
	if err := s.chargers.Create(ctx, charger); err != nil {
		return nil, err
	}
	return charger, nil
}

func (s *ChargerService) Get(ctx context.Context, id string) (*entity.EvCharger, error) {
	return s.chargers.GetByID(ctx, id)
}

func (s *ChargerService) ListByPost(ctx context.Context, postID string) ([]*entity.EvCharger, error) {
	return s.chargers.ListByPost(ctx, postID)
}

// Update replaces the charger details. Only the owner or an admin may update.
func (s *ChargerService) Update(ctx context.Context, id, actorID string, req ChargerRequest) (*entity.EvCharger, error) {
	if err := s.screen(ctx, actorID, req); err != nil {
		return nil, err
	}
	charger, err := s.chargers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if charger.UserID != actorID && !user.IsAdmin {
		return nil, NewUnauthorizedError("You are not allowed to update this charger")
	}
	charger.Title = req.Title
	charger.Description = req.Description
	charger.Rating = req.Rating
	charger.ChargerInfo = req.ChargerInfo
	charger.BatteryLevel = req.BatteryLevel
	charger.AvgConsumption = req.AvgConsumption
	if err := s.chargers.Update(ctx, charger); err != nil {
		return nil, err
	}
	return charger, nil
}

// Delete removes the charger. Only the owner or an admin may delete.
func (s *ChargerService) Delete(ctx context.Context, id, actorID string) error {
	charger, err := s.chargers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if charger.UserID != actorID && !user.IsAdmin {
		return NewUnauthorizedError("You are not allowed to delete this charger")
	}
	return s.chargers.Delete(ctx, id)
}

// PurgeUnassigned deletes chargers never attached to a post. Admin only.
func (s *ChargerService) PurgeUnassigned(ctx context.Context, actorID string) (int64, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return 0, err
	}
	if !user.IsAdmin {
		return 0, NewUnauthorizedError("Only admins can purge chargers")
	}
	n, err := s.chargers.DeleteUnassigned(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.WithField("deleted", n).Info("purged unassigned chargers")
	return n, nil
}

package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
	users      repository.UserRepository
	guard      *ModerationGuard
	logger     *logrus.Logger
}

func NewCategoryService(
	categories repository.CategoryRepository,
	users repository.UserRepository,
	guard *ModerationGuard,
	logger *logrus.Logger,
) *CategoryService {
	return &CategoryService{categories: categories, users: users, guard: guard, logger: logger}
}

type CategoryRequest struct {
	Title string `json:"title" binding:"required,min=2,max=50"`
}

// Create stores a new category. Titles are unique across the platform and the
// creator's account must be verified.
func (s *CategoryService) Create(ctx context.Context, userID string, req CategoryRequest) (*entity.Category, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot create a category.")
	}
	if err := s.guard.ScreenInjection(map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}
	if err := s.guard.ScreenProfanity(ctx, userID, map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByTitle(ctx, req.Title); err == nil {
		return nil, NewValidationError("Category already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	category := &entity.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  req.Title,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.categories.List(ctx)
}

// Update renames the category. Only the creator or an admin may update, and
// the actor's account must be verified.
func (s *CategoryService) Update(ctx context.Context, id, actorID string, req CategoryRequest) (*entity.Category, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot update category.")
	}
	if err := s.guard.ScreenInjection(map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}
	if err := s.guard.ScreenProfanity(ctx, actorID, map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.UserID != actorID && !user.IsAdmin {
		return nil, NewUnauthorizedError("You are not allowed to update this category")
	}
	if existing, err := s.categories.GetByTitle(ctx, req.Title); err == nil && existing.ID != id {
		return nil, NewValidationError("Category already exists")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	category.Title = req.Title
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Only the creator or an admin may delete, and
// the actor's account must be verified.
func (s *CategoryService) Delete(ctx context.Context, id, actorID string) error {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !user.IsAccountVerified {
		return NewPolicyError("Your account is not verified! You cannot delete category.")
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category.UserID != actorID && !user.IsAdmin {
		return NewUnauthorizedError("You are not allowed to delete this category")
	}
	return s.categories.Delete(ctx, id)
}

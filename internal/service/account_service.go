package service

import (
	"context"
	"log/slog"

	"devconnect/internal/middleware"
	"devconnect/internal/repository"
)

// AccountService owns account-wide operations that span repositories.
type AccountService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
}

// NewAccountService returns a new AccountService.
func NewAccountService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
	}
}

// DeleteAccount removes the caller's posts, then their profile, then
// the user record. The order is fixed: under partial failure, posts
// disappear before the identity they reference.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	middleware.Logger.InfoContext(ctx, "account deleted", slog.Any("user_id", userID))
	return nil
}

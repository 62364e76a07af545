package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// StatsCache abstracts the TTL'd statistics cache (Redis). A nil cache is
// valid: the service then aggregates on every request.
type StatsCache interface {
	Get(ctx context.Context) (*ports.UserStats, error)
	Set(ctx context.Context, stats *ports.UserStats) error
	Invalidate(ctx context.Context) error
}

// UserService implements CRUD, listing, and statistics over the user resource.
type UserService struct {
	repo   ports.UserRepository
	cache  StatsCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache StatsCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new user after ensuring the email is not already taken.
// The pre-check yields the friendly conflict; the unique index on email is
// the backstop against concurrent creates.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Age:       input.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	s.invalidateStats(ctx)

	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		AgeMin:    input.AgeMin,
		AgeMax:    input.AgeMax,
		Search:    input.Search,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Page:      input.Page,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(input.Limit) - 1) / int64(input.Limit))

	return &ports.ListUsersResult{
		Users: users,
		Pagination: ports.Pagination{
			CurrentPage: input.Page,
			TotalPages:  totalPages,
			TotalUsers:  total,
			HasNextPage: input.Page < totalPages,
			HasPrevPage: input.Page > 1,
			Limit:       input.Limit,
		},
	}, nil
}

// Update applies a partial update: nil fields keep their current value.
// When the email changes, uniqueness is re-checked against other users.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, *input.Email); err == nil && existing != nil {
			return nil, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	s.invalidateStats(ctx)

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*ports.DeletedUser, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user deleted")
	s.invalidateStats(ctx)

	return &ports.DeletedUser{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Stats serves the cached aggregation when fresh, otherwise recomputes and
// caches. Cache failures degrade to a direct aggregation.
func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, aggregating directly")
		} else if cached != nil {
			return cached, nil
		}
	}

	overview, distribution, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if distribution == nil {
		distribution = []ports.AgeBucket{}
	}

	stats := &ports.UserStats{Overview: *overview, AgeDistribution: distribution}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, nil
}

func (s *UserService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/whatsapp-ledger/internal/domain/port/persistence"
)

// maxCategoryMatches bounds the category probe; only "none", "one" and "several" matter
const maxCategoryMatches = 10

// Resolution holds the records a command message refers to
type Resolution struct {
	User        *entity.User
	Category    *entity.Category
	UserCreated bool
}

// Resolver looks up or lazily creates users and looks up categories
type Resolver struct {
	userRepo     persistence.UserRepository
	categoryRepo persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewResolver creates a new entity resolver
func NewResolver(
	userRepo persistence.UserRepository,
	categoryRepo persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Resolver {
	return &Resolver{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Resolve resolves the sender first and the category second
func (r *Resolver) Resolve(ctx context.Context, identifier, categoryToken string) (*Resolution, error) {
	user, created, err := r.ResolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}

	category, err := r.ResolveCategory(ctx, categoryToken)
	if err != nil {
		return &Resolution{User: user, UserCreated: created}, err
	}

	return &Resolution{User: user, Category: category, UserCreated: created}, nil
}

// ResolveUser returns the user owning identifier, creating it on first contact.
// Concurrent first contacts converge on a single row through the unique phone
// number: the losing insert is skipped and the winner is read back.
func (r *Resolver) ResolveUser(ctx context.Context, identifier string) (*entity.User, bool, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, false, fmt.Errorf("%w: empty contact identifier", errs.ErrInvalidRequest)
	}

	user, err := r.userRepo.GetByPhoneNumber(ctx, identifier)
	if err == nil {
		return user, false, nil
	}
	if !errs.IsUserNotFoundError(err) {
		r.logger.Error("Failed to look up user", map[string]any{
			"phone_number": identifier,
			"error":        err.Error(),
		})
		return nil, false, fmt.Errorf("%w: lookup: %s", errs.ErrUserCreationFailed, err.Error())
	}

	candidate := entity.NewUser(identifier, r.timeProvider)
	inserted, err := r.userRepo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		r.logger.Error("Failed to create user", map[string]any{
			"phone_number": identifier,
			"username":     candidate.Username,
			"error":        err.Error(),
		})
		return nil, false, fmt.Errorf("%w: %s", errs.ErrUserCreationFailed, err.Error())
	}

	if inserted {
		r.logger.Info("User created on first contact", map[string]any{
			"user_id":      candidate.ID.String(),
			"phone_number": identifier,
			"username":     candidate.Username,
		})
		return candidate, true, nil
	}

	r.logger.Debug("User created concurrently, reading it back", map[string]any{
		"phone_number": identifier,
	})

	user, err = r.userRepo.GetByPhoneNumber(ctx, identifier)
	if err != nil {
		return nil, false, fmt.Errorf("%w: re-query after conflict: %s", errs.ErrUserCreationFailed, err.Error())
	}

	return user, false, nil
}

// ResolveCategory returns the only category whose name contains token
func (r *Resolver) ResolveCategory(ctx context.Context, token string) (*entity.Category, error) {
	categories, err := r.categoryRepo.FindByNameContaining(ctx, token, maxCategoryMatches)
	if err != nil {
		r.logger.Error("Failed to look up category", map[string]any{
			"category_token": token,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("%w: category lookup: %s", errs.ErrPersistence, err.Error())
	}

	switch len(categories) {
	case 1:
		return categories[0], nil
	case 0:
		r.logger.Info("No category matches token", map[string]any{
			"category_token": token,
			"matches":        0,
		})
		return nil, errs.NewCategoryNotFoundError(token)
	default:
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}
		r.logger.Warn("Category token is ambiguous", map[string]any{
			"category_token": token,
			"matches":        len(categories),
			"candidates":     names,
		})
		return nil, errs.NewCategoryAmbiguousError(token, len(categories))
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// maxLinkPasses bounds how often a sign-in restarts after losing a race on
// the (provider, account id) unique index.
const maxLinkPasses = 3

// errRetryLink signals that a concurrent writer won a uniqueness race and the
// pass must start over from the identity lookup.
var errRetryLink = errors.New("concurrent link, retry")

type linkService struct {
	users      store.UserRepository
	identities store.IdentityRepository
	providers  store.ProviderRepository
	tx         store.Transactor
	guard      Guard
	ids        utils.IDGenerator
	now        func() time.Time

	// autoLinkByEmail attaches a new identity to the account holding the
	// same email address.
	autoLinkByEmail bool
}

// LinkOptions configures a LinkService.
type LinkOptions struct {
	AutoLinkByEmail bool
}

func NewLinkService(repos *store.Repositories, guard Guard, ids utils.IDGenerator, now func() time.Time, opts LinkOptions) LinkService {
	return &linkService{
		users:           repos.Users,
		identities:      repos.Identities,
		providers:       repos.Providers,
		tx:              repos.Tx,
		guard:           guard,
		ids:             ids,
		now:             now,
		autoLinkByEmail: opts.AutoLinkByEmail,
	}
}

func (s *linkService) LinkOrCreateUser(ctx context.Context, profile models.NormalizedProfile, provider string) (models.User, error) {
	log := logger.FromContext(ctx)

	if profile.ExternalID == "" || provider == "" {
		return models.User{}, ErrInvalidRequest
	}
	email := s.profileEmail(ctx, profile)

	for pass := 1; pass <= maxLinkPasses; pass++ {
		var user models.User
		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			user, err = s.linkOrCreate(ctx, profile, provider, email)
			return err
		})

		switch {
		case err == nil:
			now := s.now()
			if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
				log.Err(err).Str("func", "*linkService.LinkOrCreateUser").Str("user_id", user.ID).Msg("error updating last login")
				return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
			}
			user.LastLoginAt = &now
			return user, nil
		case errors.Is(err, errRetryLink):
			log.Debug().Str("func", "*linkService.LinkOrCreateUser").Str("provider", provider).Int("pass", pass).Msg("lost linking race, retrying")
			continue
		case isServiceError(err):
			return models.User{}, err
		default:
			log.Err(err).Str("func", "*linkService.LinkOrCreateUser").Str("provider", provider).Msg("error linking identity")
			return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	log.Warn().Str("func", "*linkService.LinkOrCreateUser").Str("provider", provider).Msg("linking did not settle")
	return models.User{}, ErrIdentityConflict
}

// linkOrCreate runs one pass inside a transaction:
//  1. an existing identity resolves to its owner;
//  2. otherwise an account with the profile email gets the identity attached;
//  3. otherwise a new user and identity are created.
func (s *linkService) linkOrCreate(ctx context.Context, profile models.NormalizedProfile, provider string, email *string) (models.User, error) {
	identity, err := s.identities.FindByProviderAccount(ctx, provider, profile.ExternalID)
	switch {
	case err == nil:
		user, err := s.users.FindByID(ctx, identity.UserID)
		if err != nil {
			return models.User{}, err
		}
		if !user.IsActive {
			return models.User{}, ErrAccountDisabled
		}
		if err := s.refreshTokens(ctx, identity, profile); err != nil {
			return models.User{}, err
		}
		return user, nil
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, err
	}

	if email != nil {
		user, err := s.users.FindByEmail(ctx, *email)
		switch {
		case err == nil:
			if !user.IsActive {
				return models.User{}, ErrAccountDisabled
			}
			if !s.autoLinkByEmail {
				return models.User{}, ErrEmailTaken
			}
			if _, err := s.createIdentity(ctx, user.ID, provider, profile); err != nil {
				return models.User{}, err
			}
			return user, nil
		case !errors.Is(err, store.ErrNotFound):
			return models.User{}, err
		}
	}

	now := s.now()
	user := models.User{
		ID:          s.ids.Generate(),
		Email:       email,
		DisplayName: profile.DisplayName,
		Avatar:      profile.Avatar,
		Role:        models.RoleAuthor,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return models.User{}, errRetryLink
		}
		return models.User{}, err
	}
	if _, err := s.createIdentity(ctx, user.ID, provider, profile); err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "*linkService.linkOrCreate").
		Str("user_id", user.ID).Str("provider", provider).Msg("created user from provider identity")
	return user, nil
}

// createIdentity inserts a new identity, translating index violations.
func (s *linkService) createIdentity(ctx context.Context, userID, provider string, profile models.NormalizedProfile) (models.LinkedIdentity, error) {
	identity := models.LinkedIdentity{
		ID:                s.ids.Generate(),
		UserID:            userID,
		ProviderName:      provider,
		ProviderAccountID: profile.ExternalID,
		AccessToken:       models.StringPtr(profile.AccessToken),
		RefreshToken:      models.StringPtr(profile.RefreshToken),
		CreatedAt:         s.now(),
	}

	created, err := s.identities.Create(ctx, identity)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, store.ErrIdentityTaken):
		return models.LinkedIdentity{}, errRetryLink
	case errors.Is(err, store.ErrProviderAlreadyLinked):
		return models.LinkedIdentity{}, ErrIdentityConflict
	default:
		return models.LinkedIdentity{}, err
	}
}

func (s *linkService) refreshTokens(ctx context.Context, identity models.LinkedIdentity, profile models.NormalizedProfile) error {
	if profile.AccessToken == "" {
		return nil
	}
	refresh := models.StringPtr(profile.RefreshToken)
	if refresh == nil {
		refresh = identity.RefreshToken
	}
	return s.identities.UpdateTokens(ctx, identity.ID, models.StringPtr(profile.AccessToken), refresh)
}

// profileEmail returns the normalized profile email, or nil when the
// provider sent none or an unusable one.
func (s *linkService) profileEmail(ctx context.Context, profile models.NormalizedProfile) *string {
	if profile.Email == nil {
		return nil
	}
	email := security.NormalizeEmail(*profile.Email)
	if !s.guard.ValidateEmailShape(email) {
		logger.FromContext(ctx).Warn().Str("func", "*linkService.profileEmail").Msg("ignoring malformed provider email")
		return nil
	}
	return &email
}

func (s *linkService) LinkIdentity(ctx context.Context, userID, provider string, profile models.NormalizedProfile) (models.LinkedIdentity, error) {
	log := logger.FromContext(ctx)

	if profile.ExternalID == "" || provider == "" || userID == "" {
		return models.LinkedIdentity{}, ErrInvalidRequest
	}

	var linked models.LinkedIdentity
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// the link may complete long after it was started; the owner has to
		// still be active, and the row lock orders it against unlinks
		owner, err := s.users.FindByIDForUpdate(ctx, userID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrNotFound
		case err != nil:
			return err
		case !owner.IsActive:
			return ErrAccountDisabled
		}

		existing, err := s.identities.FindByProviderAccount(ctx, provider, profile.ExternalID)
		switch {
		case err == nil:
			if existing.UserID == userID {
				return ErrDuplicateLink
			}
			return ErrIdentityConflict
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if _, err := s.identities.FindByUserAndProvider(ctx, userID, provider); err == nil {
			return ErrDuplicateLink
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		linked, err = s.createIdentity(ctx, userID, provider, profile)
		switch {
		case errors.Is(err, errRetryLink):
			return ErrIdentityConflict
		case errors.Is(err, ErrIdentityConflict):
			return ErrDuplicateLink
		}
		return err
	})
	if err != nil {
		if isServiceError(err) {
			return models.LinkedIdentity{}, err
		}
		log.Err(err).Str("func", "*linkService.LinkIdentity").Str("provider", provider).Msg("error linking identity")
		return models.LinkedIdentity{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*linkService.LinkIdentity").Str("user_id", userID).Str("provider", provider).Msg("identity linked")
	return linked, nil
}

func (s *linkService) UnlinkIdentity(ctx context.Context, userID, provider string) error {
	log := logger.FromContext(ctx)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// the row lock serializes concurrent unlinks of the same user
		user, err := s.users.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		identities, err := s.identities.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		found := false
		for _, identity := range identities {
			if identity.ProviderName == provider {
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}
		if !user.HasPassword() && len(identities) == 1 {
			return ErrLastSignInMethod
		}

		return s.identities.Delete(ctx, userID, provider)
	})
	if err != nil {
		if isServiceError(err) {
			return err
		}
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("func", "*linkService.UnlinkIdentity").Str("provider", provider).Msg("error unlinking identity")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*linkService.UnlinkIdentity").Str("user_id", userID).Str("provider", provider).Msg("identity unlinked")
	return nil
}

func (s *linkService) ListLinkedIdentities(ctx context.Context, userID string) ([]models.LinkedIdentityView, error) {
	log := logger.FromContext(ctx)

	identities, err := s.identities.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*linkService.ListLinkedIdentities").Msg("error listing identities")
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	configs, err := s.providers.ListAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*linkService.ListLinkedIdentities").Msg("error listing providers")
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	byName := make(map[string]models.ProviderConfig, len(configs))
	for _, c := range configs {
		byName[c.Name] = c
	}

	views := make([]models.LinkedIdentityView, 0, len(identities))
	for _, identity := range identities {
		view := models.LinkedIdentityView{
			ProviderName:      identity.ProviderName,
			ProviderAccountID: identity.ProviderAccountID,
			DisplayName:       identity.ProviderName,
			LinkedAt:          identity.CreatedAt,
		}
		if cfg, ok := byName[identity.ProviderName]; ok {
			if cfg.DisplayName != "" {
				view.DisplayName = cfg.DisplayName
			}
			view.Icon = cfg.Icon
			view.Color = cfg.Color
		}
		views = append(views, view)
	}
	return views, nil
}

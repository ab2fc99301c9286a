package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/state"
)

// AccountService manages the four user-class account pools and keeps the
// mirror's known-id sets in lockstep with the store.
type AccountService struct {
	repo   ports.AccountRepository
	notes  ports.NoteRepository
	mirror *state.Mirror
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, notes ports.NoteRepository, mirror *state.Mirror, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, notes: notes, mirror: mirror, log: log}
}

func (s *AccountService) List(ctx context.Context, class domain.UserClass) ([]domain.UserRecord, error) {
	return s.repo.List(ctx, class)
}

// Add creates an account. A duplicate id is swallowed: the existing record
// is retained untouched and no error is returned.
func (s *AccountService) Add(ctx context.Context, input ports.AddAccountInput) error {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return domain.ErrMalformedInput
	}

	credential, err := s.storedCredential(input.Class, input.Credential)
	if err != nil {
		return err
	}

	rec := domain.UserRecord{
		ID:         id,
		Credential: credential,
		Equity:     strings.TrimSpace(input.Equity),
	}
	autoOrder := input.SortOrder == nil
	if !autoOrder {
		rec.SortOrder = *input.SortOrder
	}

	if err := s.repo.Create(ctx, input.Class, rec, autoOrder); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			s.log.Debug().Str("class", string(input.Class)).Str("id", id).Msg("duplicate account add ignored")
			return nil
		}
		return fmt.Errorf("add account: %w", err)
	}

	s.mirror.RegisterUser(input.Class, id)
	if input.Class == domain.ClassMember {
		// members carry an empty note from the moment they exist
		if err := s.notes.Upsert(ctx, id, domain.Note{}); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("failed to create empty member note")
		} else {
			s.mirror.SetNote(id, domain.Note{})
		}
	}

	s.log.Info().Str("class", string(input.Class)).Str("id", id).Msg("account added")
	return nil
}

// Update applies the provided fields only; nil fields keep stored values.
func (s *AccountService) Update(ctx context.Context, input ports.UpdateAccountInput) error {
	patch := ports.AccountPatch{SortOrder: input.SortOrder}
	if input.Credential != nil {
		credential, err := s.storedCredential(input.Class, *input.Credential)
		if err != nil {
			return err
		}
		patch.Credential = &credential
	}
	if input.Equity != nil {
		eq := strings.TrimSpace(*input.Equity)
		patch.Equity = &eq
	}

	if err := s.repo.Update(ctx, input.Class, input.ID, patch); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete removes the account, its ledger rows, and for members the note and
// badges, then drops the mirror entries.
func (s *AccountService) Delete(ctx context.Context, class domain.UserClass, id string) error {
	id = strings.TrimSpace(id)
	if err := s.repo.Delete(ctx, class, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.mirror.DropUser(class, id)
	if class == domain.ClassMember {
		s.mirror.DropNote(id)
	}

	s.log.Info().Str("class", string(class)).Str("id", id).Msg("account deleted")
	return nil
}

// Verify reports whether supplied matches the stored credential. Unknown ids
// report false without error so callers cannot distinguish the two cases.
func (s *AccountService) Verify(ctx context.Context, class domain.UserClass, id, supplied string) (bool, error) {
	rec, err := s.repo.Find(ctx, class, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("verify account: %w", err)
	}
	return domain.VerifyCredential(supplied, rec.Credential), nil
}

// storedCredential prepares a credential for storage: hashing classes hash
// unless the value already looks hashed, plaintext classes store the trimmed
// value verbatim.
func (s *AccountService) storedCredential(class domain.UserClass, credential string) (string, error) {
	if !class.Hashed() {
		return strings.TrimSpace(credential), nil
	}
	if domain.IsHashedCredential(credential) {
		return credential, nil
	}
	hashed, err := domain.HashCredential(credential)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return hashed, nil
}

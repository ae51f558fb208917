package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// AdminDirectory performs the admin create/delete operations on the doctor
// directory. Drafts are validated locally before anything goes on the wire.
type AdminDirectory struct {
	clinic   ports.DirectoryClient
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAdminDirectory(clinic ports.DirectoryClient, log zerolog.Logger) *AdminDirectory {
	return &AdminDirectory{clinic: clinic, validate: validator.New(), log: log}
}

// Create submits a new doctor. A draft missing any required field (including
// at least one availability slot) fails with ErrValidation and no network
// call is made.
func (s *AdminDirectory) Create(ctx context.Context, draft domain.DoctorDraft, token string) (string, error) {
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}
	if err := s.validate.Struct(draft); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, draftErrors(err))
	}

	msg, err := s.clinic.CreateDoctor(ctx, draft, token)
	if err != nil {
		s.log.Error().Err(err).Str("doctor", draft.Name).Msg("doctor create failed")
		return "", err
	}
	s.log.Info().Str("doctor", draft.Name).Str("specialty", draft.Specialty).Msg("doctor created")
	return msg, nil
}

// Delete removes a doctor by id. A rejected delete leaves the rendered card
// untouched; the caller only removes it on success.
func (s *AdminDirectory) Delete(ctx context.Context, id int64, token string) error {
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	if err := s.clinic.DeleteDoctor(ctx, id, token); err != nil {
		s.log.Error().Err(err).Int64("doctor_id", id).Msg("doctor delete failed")
		return err
	}
	s.log.Info().Int64("doctor_id", id).Msg("doctor deleted")
	return nil
}

// draftErrors flattens validator output into one human-readable line.
func draftErrors(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s entry", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// Directory serves the doctor directory: the initial render and the live
// filter pipeline share one query surface, so both go through the
// latest-request-wins guard.
type Directory struct {
	clinic ports.DirectoryClient
	guard  queryGuard
	log    zerolog.Logger
}

func NewDirectory(clinic ports.DirectoryClient, log zerolog.Logger) *Directory {
	return &Directory{clinic: clinic, log: log}
}

// ListAll fetches the full directory.
func (s *Directory) ListAll(ctx context.Context) ([]domain.Doctor, error) {
	seq := s.guard.begin()

	doctors, err := s.clinic.ListDoctors(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("directory list failed")
		return nil, err
	}
	if !s.guard.latest(seq) {
		return nil, domain.ErrSuperseded
	}
	return doctors, nil
}

// Filter fetches the directory narrowed by criteria. All-empty criteria are
// served by the plain list endpoint so an unconstrained filter always equals
// ListAll. An empty result is a valid empty slice, not an error.
func (s *Directory) Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Doctor, error) {
	normalized := criteria.Normalize()
	seq := s.guard.begin()

	var (
		doctors []domain.Doctor
		err     error
	)
	if criteria.Empty() {
		doctors, err = s.clinic.ListDoctors(ctx)
	} else {
		doctors, err = s.clinic.FilterDoctors(ctx, normalized)
	}
	if err != nil {
		s.log.Error().Err(err).
			Str("name", normalized.Name).
			Str("time", normalized.Time).
			Str("specialty", normalized.Specialty).
			Msg("directory filter failed")
		return nil, err
	}

	if !s.guard.latest(seq) {
		s.log.Debug().Uint64("seq", seq).Msg("discarding superseded directory query")
		return nil, domain.ErrSuperseded
	}
	return doctors, nil
}

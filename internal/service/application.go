package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

type applicationService struct {
	users        repository.UserRepository
	vacancies    repository.VacancyRepository
	applications repository.ApplicationRepository
	tx           repository.TxManager
	log          zerolog.Logger
}

func NewApplicationService(
	users repository.UserRepository,
	vacancies repository.VacancyRepository,
	applications repository.ApplicationRepository,
	tx repository.TxManager,
	logger zerolog.Logger,
) ApplicationService {
	l := logger.With().Str("module", "service").Str("component", "application").Logger()
	return &applicationService{users: users, vacancies: vacancies, applications: applications, tx: tx, log: l}
}

func (s *applicationService) Apply(ctx context.Context, tgID, vacancyID int64) (model.Application, error) {
	start := time.Now()
	var ferrs []FieldError
	if tgID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "tg_id", Message: "must be > 0"})
	}
	if vacancyID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "vacancy_id", Message: "must be > 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Application{}, err
	}

	var out model.Application
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := activeUser(ctx, s.users, tgID)
		if err != nil {
			return err
		}
		// Existence check gives a field error instead of a bare FK conflict.
		v, err := s.vacancies.GetByID(ctx, vacancyID)
		if err != nil {
			if isNotFound(err) {
				return newInvalidInput([]FieldError{{Field: "vacancy_id", Message: "vacancy does not exist"}})
			}
			return err
		}
		out, err = s.applications.Create(ctx, model.Application{UserID: u.ID, VacancyID: v.ID, Status: model.ApplicationApplied})
		if err != nil {
			return err
		}
		out.VacancyTitle = v.Title
		out.Company = v.Company
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("tg_id", tgID).Int64("vacancy_id", vacancyID).Msg("apply failed")
		return model.Application{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("application_id", out.ID).Int64("vacancy_id", vacancyID).Msg("application created")
	return out, nil
}

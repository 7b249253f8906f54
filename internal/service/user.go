package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo repository.UserRepository, logger zerolog.Logger) UserService {
	l := logger.With().Str("module", "service").Str("component", "user").Logger()
	return &userService{repo: repo, log: l}
}

// RegisterUser is called on /start; it creates the user or refreshes the profile.
func (s *userService) RegisterUser(ctx context.Context, u model.User) (model.User, error) {
	start := time.Now()
	u.Username = strings.TrimPrefix(strings.TrimSpace(u.Username), "@")
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.LanguageCode = strings.ToLower(strings.TrimSpace(u.LanguageCode))

	var ferrs []FieldError
	if u.TgID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "tg_id", Message: "must be > 0"})
	}
	if u.FirstName == "" {
		ferrs = append(ferrs, FieldError{Field: "first_name", Message: "must not be empty"})
	} else if utf8.RuneCountInString(u.FirstName) > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "first_name", Message: "length must be <= 64"})
	}
	if utf8.RuneCountInString(u.LastName) > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "last_name", Message: "length must be <= 64"})
	}
	if len(u.LanguageCode) > 10 {
		ferrs = append(ferrs, FieldError{Field: "language_code", Message: "length must be <= 10"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Int64("tg_id", u.TgID).Msg("user validation failed")
		return model.User{}, err
	}

	out, err := s.repo.Upsert(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Int64("tg_id", u.TgID).Msg("register user failed")
		return model.User{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("tg_id", out.TgID).Int64("user_id", out.ID).Msg("user registered")
	return out, nil
}

func (s *userService) GetUser(ctx context.Context, tgID int64) (model.User, error) {
	if err := validateTgID(tgID); err != nil {
		return model.User{}, err
	}
	return s.repo.GetByTgID(ctx, tgID)
}

func (s *userService) BanUser(ctx context.Context, adminTgID, targetTgID int64) (model.User, error) {
	return s.setBanned(ctx, adminTgID, targetTgID, true)
}

func (s *userService) UnbanUser(ctx context.Context, adminTgID, targetTgID int64) (model.User, error) {
	return s.setBanned(ctx, adminTgID, targetTgID, false)
}

func (s *userService) setBanned(ctx context.Context, adminTgID, targetTgID int64, banned bool) (model.User, error) {
	if targetTgID <= 0 {
		return model.User{}, newInvalidInput([]FieldError{{Field: "target_tg_id", Message: "must be > 0"}})
	}
	if _, err := activeAdmin(ctx, s.repo, adminTgID); err != nil {
		if errors.Is(err, ErrForbidden) {
			s.log.Warn().Int64("tg_id", adminTgID).Int64("target_tg_id", targetTgID).Msg("non-admin tried to change a ban")
		}
		return model.User{}, err
	}

	target, err := s.repo.GetByTgID(ctx, targetTgID)
	if err != nil {
		return model.User{}, err
	}
	if banned && (target.IsAdmin || target.TgID == adminTgID) {
		return model.User{}, newInvalidInput([]FieldError{{Field: "target_tg_id", Message: "admins cannot be banned"}})
	}
	if target.IsBanned == banned {
		return target, nil
	}

	out, err := s.repo.SetBanned(ctx, targetTgID, banned)
	if err != nil {
		s.log.Error().Err(err).Int64("target_tg_id", targetTgID).Bool("banned", banned).Msg("change ban failed")
		return model.User{}, err
	}
	s.log.Info().Int64("tg_id", adminTgID).Int64("target_tg_id", targetTgID).Bool("banned", banned).Msg("ban changed")
	return out, nil
}

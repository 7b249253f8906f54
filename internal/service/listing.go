package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/config"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/pagination"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

// screenLayout describes how one list is cut into pages and drawn.
type screenLayout[T any] struct {
	title   string
	prefix  string
	entity  string
	perPage int
	line    func(n int, item T) string // n is the 1-based position in the whole list
}

// renderScreen paginates items and assembles the message body and keyboard.
func renderScreen[T any](p pagination.Paginator[T], items []T, page int, l screenLayout[T]) (model.Screen, error) {
	pageItems, d, err := p.Paginate(items, page, l.perPage)
	if err != nil {
		return model.Screen{}, err
	}

	var b strings.Builder
	b.WriteString(l.title)
	b.WriteString("\n\n")
	for i, item := range pageItems {
		b.WriteString(l.line(d.StartItem+i, item))
		b.WriteByte('\n')
	}
	if len(pageItems) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(p.FormatStatusText(d, l.entity))

	screen := model.Screen{Text: b.String(), Page: d}
	if nav := p.BuildNavigationButtons(d, l.prefix); len(nav) > 0 {
		screen.Keyboard = [][]pagination.NavigationButton{nav}
	}
	return screen, nil
}

type listingService struct {
	users        repository.UserRepository
	vacancies    repository.VacancyRepository
	applications repository.ApplicationRepository
	snapshots    repository.SnapshotRepository

	vacancyPager     pagination.Paginator[model.Vacancy]
	applicationPager pagination.Paginator[model.Application]
	userPager        pagination.Paginator[model.User]

	cfg   config.PaginationConfig
	texts texts
	log   zerolog.Logger
	now   func() time.Time
}

func NewListingService(
	users repository.UserRepository,
	vacancies repository.VacancyRepository,
	applications repository.ApplicationRepository,
	snapshots repository.SnapshotRepository,
	cfg config.PaginationConfig,
	logger zerolog.Logger,
) ListingService {
	l := logger.With().Str("module", "service").Str("component", "listing").Logger()
	labels := pagination.LabelsFor(cfg.Locale)
	return &listingService{
		users:            users,
		vacancies:        vacancies,
		applications:     applications,
		snapshots:        snapshots,
		vacancyPager:     pagination.New[model.Vacancy](labels),
		applicationPager: pagination.New[model.Application](labels),
		userPager:        pagination.New[model.User](labels),
		cfg:              cfg,
		texts:            textsFor(cfg.Locale),
		log:              l,
		now:              time.Now,
	}
}

func snapshotKey(tgID int64) string {
	return fmt.Sprintf("%d:%s", tgID, PrefixVacancySearch)
}

func (s *listingService) vacancyLayout(query string) screenLayout[model.Vacancy] {
	return screenLayout[model.Vacancy]{
		title:   fmt.Sprintf(s.texts.vacancyTitle, query),
		prefix:  PrefixVacancySearch,
		entity:  s.texts.vacanciesEntity,
		perPage: s.cfg.VacanciesPerPage,
		line: func(n int, v model.Vacancy) string {
			parts := []string{v.Title}
			for _, extra := range []string{v.Company, v.Location, v.Salary} {
				if extra != "" {
					parts = append(parts, extra)
				}
			}
			return fmt.Sprintf("%d. %s", n, strings.Join(parts, " · "))
		},
	}
}

func (s *listingService) SearchVacancies(ctx context.Context, tgID int64, query string) (model.Screen, error) {
	start := time.Now()
	query = normalizeQuery(query)
	if err := validateQuery(query); err != nil {
		s.log.Debug().Int64("tg_id", tgID).Str("query", query).Msg("search validation failed")
		return model.Screen{}, err
	}
	if _, err := activeUser(ctx, s.users, tgID); err != nil {
		return model.Screen{}, err
	}

	found, err := s.vacancies.Search(ctx, query, s.cfg.MaxSearchResults)
	if err != nil {
		s.log.Error().Err(err).Int64("tg_id", tgID).Str("query", query).Msg("vacancy search failed")
		return model.Screen{}, err
	}

	snap := model.SearchSnapshot{ID: uuid.NewString(), Query: query, Items: found, CreatedAt: s.now().UTC()}
	ttl := time.Duration(s.cfg.SnapshotTTL) * time.Second
	if err := s.snapshots.Save(ctx, snapshotKey(tgID), snap, ttl); err != nil {
		s.log.Error().Err(err).Int64("tg_id", tgID).Msg("save search snapshot failed")
		return model.Screen{}, err
	}

	screen, err := renderScreen(s.vacancyPager, found, 0, s.vacancyLayout(query))
	if err != nil {
		return model.Screen{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("tg_id", tgID).Int("found", len(found)).Str("snapshot_id", snap.ID).Msg("vacancy search done")
	return screen, nil
}

func (s *listingService) VacancyPage(ctx context.Context, tgID int64, page int) (model.Screen, error) {
	if _, err := activeUser(ctx, s.users, tgID); err != nil {
		return model.Screen{}, err
	}
	snap, err := s.snapshots.Load(ctx, snapshotKey(tgID))
	if err != nil {
		if isNotFound(err) {
			return model.Screen{}, ErrSearchExpired
		}
		s.log.Error().Err(err).Int64("tg_id", tgID).Msg("load search snapshot failed")
		return model.Screen{}, err
	}
	return renderScreen(s.vacancyPager, snap.Items, page, s.vacancyLayout(snap.Query))
}

func (s *listingService) ApplicationHistory(ctx context.Context, tgID int64, page int) (model.Screen, error) {
	u, err := activeUser(ctx, s.users, tgID)
	if err != nil {
		return model.Screen{}, err
	}
	apps, err := s.applications.ListByUser(ctx, u.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("tg_id", tgID).Msg("list applications failed")
		return model.Screen{}, err
	}
	return renderScreen(s.applicationPager, apps, page, screenLayout[model.Application]{
		title:   s.texts.applicationsTitle,
		prefix:  PrefixApplications,
		entity:  s.texts.applicationsEntity,
		perPage: s.cfg.ApplicationsPerPage,
		line: func(n int, a model.Application) string {
			title := a.VacancyTitle
			if a.Company != "" {
				title += " · " + a.Company
			}
			return fmt.Sprintf("%d. %s [%s]", n, title, s.texts.status(a.Status))
		},
	})
}

func (s *listingService) AdminUsers(ctx context.Context, tgID int64, page int) (model.Screen, error) {
	return s.userList(ctx, tgID, page, s.users.ListAll, s.texts.usersTitle, PrefixAdminUsers)
}

func (s *listingService) ActiveUsers(ctx context.Context, tgID int64, page int) (model.Screen, error) {
	return s.userList(ctx, tgID, page, s.users.ListActive, s.texts.activeUsersTitle, PrefixActiveUsers)
}

func (s *listingService) userList(
	ctx context.Context,
	tgID int64,
	page int,
	list func(context.Context) ([]model.User, error),
	title, prefix string,
) (model.Screen, error) {
	if _, err := activeAdmin(ctx, s.users, tgID); err != nil {
		if errors.Is(err, ErrForbidden) {
			s.log.Warn().Int64("tg_id", tgID).Str("prefix", prefix).Msg("non-admin asked for user listing")
		}
		return model.Screen{}, err
	}
	all, err := list(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("prefix", prefix).Msg("list users failed")
		return model.Screen{}, err
	}
	return renderScreen(s.userPager, all, page, screenLayout[model.User]{
		title:   title,
		prefix:  prefix,
		entity:  s.texts.usersEntity,
		perPage: s.cfg.UsersPerPage,
		line: func(n int, u model.User) string {
			line := fmt.Sprintf("%d. %s", n, displayName(u))
			if u.Username != "" {
				line += " (@" + u.Username + ")"
			}
			if u.IsAdmin {
				line += " ⭐"
			}
			if u.IsBanned {
				line += " 🚫"
			}
			return line
		},
	})
}

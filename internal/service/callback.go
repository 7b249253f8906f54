package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/pagination"
)

// pageRoute is a ListingService method expression keyed by action prefix.
type pageRoute func(l ListingService, ctx context.Context, tgID int64, page int) (model.Screen, error)

type callbackService struct {
	listings ListingService
	routes   map[string]pageRoute
	log      zerolog.Logger
}

func NewCallbackService(listings ListingService, logger zerolog.Logger) CallbackService {
	l := logger.With().Str("module", "service").Str("component", "callback").Logger()
	return &callbackService{
		listings: listings,
		routes: map[string]pageRoute{
			PrefixVacancySearch: ListingService.VacancyPage,
			PrefixApplications:  ListingService.ApplicationHistory,
			PrefixAdminUsers:    ListingService.AdminUsers,
			PrefixActiveUsers:   ListingService.ActiveUsers,
		},
		log: l,
	}
}

func (s *callbackService) HandleCallback(ctx context.Context, tgID int64, token string) (model.Screen, bool, error) {
	if err := validateTgID(tgID); err != nil {
		return model.Screen{}, false, err
	}
	action, err := pagination.ParseActionToken(token)
	if err != nil {
		s.log.Debug().Str("token", token).Msg("malformed action token")
		return model.Screen{}, false, err
	}
	render, ok := s.routes[action.Prefix]
	if !ok {
		s.log.Debug().Str("token", token).Msg("unknown action prefix")
		return model.Screen{}, false, fmt.Errorf("%w: unknown prefix %q", pagination.ErrMalformedToken, action.Prefix)
	}
	if action.Kind == pagination.ActionInfo {
		return model.Screen{}, false, nil
	}

	screen, err := render(s.listings, ctx, tgID, action.Page)
	if err != nil {
		return model.Screen{}, false, err
	}
	s.log.Debug().Int64("tg_id", tgID).Str("prefix", action.Prefix).Int("page", screen.Page.CurrentPage).Msg("callback rendered")
	return screen, true, nil
}

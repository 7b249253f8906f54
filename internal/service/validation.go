package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

const (
	maxQueryLen = 100
	maxNameLen  = 64
)

func validateTgID(tgID int64) error {
	if tgID <= 0 {
		return newInvalidInput([]FieldError{{Field: "tg_id", Message: "must be > 0"}})
	}
	return nil
}

// normalizeQuery collapses inner whitespace so equal searches share one snapshot shape.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func validateQuery(q string) error {
	var ferrs []FieldError
	if q == "" {
		ferrs = append(ferrs, FieldError{Field: "query", Message: "must not be empty"})
	} else if utf8.RuneCountInString(q) > maxQueryLen {
		ferrs = append(ferrs, FieldError{Field: "query", Message: fmt.Sprintf("length must be <= %d", maxQueryLen)})
	}
	return newInvalidInput(ferrs)
}

// activeUser loads a registered user and refuses banned ones.
func activeUser(ctx context.Context, users repository.UserRepository, tgID int64) (model.User, error) {
	if err := validateTgID(tgID); err != nil {
		return model.User{}, err
	}
	u, err := users.GetByTgID(ctx, tgID)
	if err != nil {
		return model.User{}, err
	}
	if u.IsBanned {
		return model.User{}, ErrForbidden
	}
	return u, nil
}

// activeAdmin is activeUser restricted to admins.
func activeAdmin(ctx context.Context, users repository.UserRepository, tgID int64) (model.User, error) {
	u, err := activeUser(ctx, users, tgID)
	if err != nil {
		return model.User{}, err
	}
	if !u.IsAdmin {
		return model.User{}, ErrForbidden
	}
	return u, nil
}

// displayName follows the bot's naming rule: full name, then first name, then username.
func displayName(u model.User) string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return fmt.Sprintf("User%d", u.TgID)
	}
}

func isNotFound(err error) bool { return errors.Is(err, repository.ErrNotFound) }

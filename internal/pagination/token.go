package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	pageMarker = "_page_"
	infoSuffix = "_info"
)

// ErrMalformedToken is returned for action tokens that don't follow
// "{prefix}_page_{N}" or "{prefix}_info".
var ErrMalformedToken = errors.New("malformed action token")

// ActionKind tells a page jump apart from the informational button.
type ActionKind int

const (
	ActionPage ActionKind = iota + 1
	ActionInfo
)

func (k ActionKind) String() string {
	switch k {
	case ActionPage:
		return "page"
	case ActionInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Action is a decoded navigation token.
type Action struct {
	Prefix string
	Kind   ActionKind
	Page   int // only meaningful for ActionPage
}

// PageToken builds "{prefix}_page_{page}".
func PageToken(prefix string, page int) string {
	return prefix + pageMarker + strconv.Itoa(page)
}

// InfoToken builds "{prefix}_info".
func InfoToken(prefix string) string {
	return prefix + infoSuffix
}

// ParseActionToken decodes a token produced by PageToken or InfoToken.
func ParseActionToken(token string) (Action, error) {
	if prefix, ok := strings.CutSuffix(token, infoSuffix); ok && prefix != "" {
		return Action{Prefix: prefix, Kind: ActionInfo}, nil
	}

	idx := strings.LastIndex(token, pageMarker)
	if idx <= 0 {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	raw := token[idx+len(pageMarker):]
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
	}
	return Action{Prefix: token[:idx], Kind: ActionPage, Page: page}, nil
}

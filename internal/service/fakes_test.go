package service_test

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/jobbot-gateway/internal/config"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

var discard = zerolog.New(io.Discard)

func testPaginationConfig() config.PaginationConfig {
	return config.PaginationConfig{
		VacanciesPerPage:    5,
		ApplicationsPerPage: 2,
		UsersPerPage:        3,
		Locale:              "en",
		MaxSearchResults:    100,
		SnapshotTTL:         60,
	}
}

type fakeUserRepo struct {
	nextID  int64
	byTgID  map[int64]model.User
	listErr error
}

func newFakeUserRepo(users ...model.User) *fakeUserRepo {
	f := &fakeUserRepo{nextID: 1, byTgID: map[int64]model.User{}}
	for _, u := range users {
		u.ID = f.nextID
		f.nextID++
		f.byTgID[u.TgID] = u
	}
	return f
}

func (f *fakeUserRepo) Upsert(_ context.Context, u model.User) (model.User, error) {
	if existing, ok := f.byTgID[u.TgID]; ok {
		u.ID, u.IsAdmin, u.IsBanned = existing.ID, existing.IsAdmin, existing.IsBanned
	} else {
		u.ID = f.nextID
		f.nextID++
	}
	f.byTgID[u.TgID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByTgID(_ context.Context, tgID int64) (model.User, error) {
	u, ok := f.byTgID[tgID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListAll(context.Context) ([]model.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.User, f.nextID-1)
	for _, u := range f.byTgID {
		out[u.ID-1] = u
	}
	return out, nil
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]model.User, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		if !u.IsBanned {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) SetBanned(_ context.Context, tgID int64, banned bool) (model.User, error) {
	u, ok := f.byTgID[tgID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.IsBanned = banned
	f.byTgID[tgID] = u
	return u, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeVacancyRepo struct {
	items     []model.Vacancy
	lastLimit int
}

func (f *fakeVacancyRepo) Search(_ context.Context, query string, limit int) ([]model.Vacancy, error) {
	f.lastLimit = limit
	var out []model.Vacancy
	q := strings.ToLower(query)
	for _, v := range f.items {
		if strings.Contains(strings.ToLower(v.Title), q) || strings.Contains(strings.ToLower(v.Company), q) {
			out = append(out, v)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeVacancyRepo) GetByID(_ context.Context, id int64) (model.Vacancy, error) {
	for _, v := range f.items {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vacancy{}, repository.ErrNotFound
}

var _ repository.VacancyRepository = (*fakeVacancyRepo)(nil)

type fakeApplicationRepo struct {
	nextID int64
	items  []model.Application
}

func (f *fakeApplicationRepo) Create(_ context.Context, a model.Application) (model.Application, error) {
	for _, existing := range f.items {
		if existing.UserID == a.UserID && existing.VacancyID == a.VacancyID {
			return model.Application{}, repository.ErrAlreadyExists
		}
	}
	f.nextID++
	a.ID = f.nextID
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID int64) ([]model.Application, error) {
	var out []model.Application
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].UserID == userID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

var _ repository.ApplicationRepository = (*fakeApplicationRepo)(nil)

type fakeSnapshotRepo struct {
	data    map[string]model.SearchSnapshot
	lastTTL time.Duration
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{data: map[string]model.SearchSnapshot{}}
}

func (f *fakeSnapshotRepo) Save(_ context.Context, key string, s model.SearchSnapshot, ttl time.Duration) error {
	f.data[key] = s
	f.lastTTL = ttl
	return nil
}

func (f *fakeSnapshotRepo) Load(_ context.Context, key string) (model.SearchSnapshot, error) {
	s, ok := f.data[key]
	if !ok {
		return model.SearchSnapshot{}, repository.ErrNotFound
	}
	return s, nil
}

var _ repository.SnapshotRepository = (*fakeSnapshotRepo)(nil)

// fakeTx runs fn inline and records how many units of work it saw.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

// Package contract holds behavior suites every repository implementation must pass.
// Concrete storage packages wire them to their own factories.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

type UserFactory func(t *testing.T) (repository.UserRepository, func())

type VacancyFactory func(t *testing.T) (repo repository.VacancyRepository, seed func(ctx context.Context, v model.Vacancy) (int64, error), cleanup func())

type ApplicationFactory func(t *testing.T) (repo repository.ApplicationRepository, mkUser func(ctx context.Context, tgID int64) (int64, error), mkVacancy func(ctx context.Context, title string) (int64, error), cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, users repository.UserRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

type SnapshotFactory func(t *testing.T) (repository.SnapshotRepository, func())

var errMarker = errors.New("boom")

func RunUserRepositoryContract(t *testing.T, makeRepo UserFactory) {
	t.Helper()

	t.Run("upsert_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Upsert(ctx, model.User{TgID: 1001, FirstName: "Ann", Username: "ann"})
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		got, err := repo.GetByTgID(ctx, 1001)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.FirstName != "Ann" || got.Username != "ann" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("upsert_refreshes_profile_keeps_id", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, err := repo.Upsert(ctx, model.User{TgID: 7, FirstName: "Old"})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		second, err := repo.Upsert(ctx, model.User{TgID: 7, FirstName: "New", LastName: "Name"})
		if err != nil {
			t.Fatalf("upsert again: %v", err)
		}
		if first.ID != second.ID || second.FirstName != "New" || second.LastName != "Name" {
			t.Fatalf("unexpected upsert result: first=%+v second=%+v", first, second)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByTgID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_all_ordered", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := int64(1); i <= 4; i++ {
			if _, err := repo.Upsert(ctx, model.User{TgID: 100 + i, FirstName: "U"}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		list, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 4 {
			t.Fatalf("expected 4 users, got %d", len(list))
		}
		for i := 1; i < len(list); i++ {
			if list[i-1].ID >= list[i].ID {
				t.Fatalf("users not ordered by id: %+v", list)
			}
		}
	})

	t.Run("set_banned_and_list_active", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := int64(1); i <= 3; i++ {
			if _, err := repo.Upsert(ctx, model.User{TgID: 200 + i, FirstName: "U"}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		banned, err := repo.SetBanned(ctx, 202, true)
		if err != nil {
			t.Fatalf("ban: %v", err)
		}
		if !banned.IsBanned || banned.TgID != 202 {
			t.Fatalf("unexpected ban result: %+v", banned)
		}

		// Re-registration must not lift a ban.
		again, err := repo.Upsert(ctx, model.User{TgID: 202, FirstName: "Renamed"})
		if err != nil {
			t.Fatalf("upsert banned: %v", err)
		}
		if !again.IsBanned {
			t.Fatalf("upsert cleared the ban flag: %+v", again)
		}

		active, err := repo.ListActive(ctx)
		if err != nil {
			t.Fatalf("list active: %v", err)
		}
		if len(active) != 2 || active[0].TgID != 201 || active[1].TgID != 203 {
			t.Fatalf("unexpected active users: %+v", active)
		}
		all, err := repo.ListAll(ctx)
		if err != nil || len(all) != 3 {
			t.Fatalf("list all: %d err=%v", len(all), err)
		}

		unbanned, err := repo.SetBanned(ctx, 202, false)
		if err != nil || unbanned.IsBanned {
			t.Fatalf("unban: %+v err=%v", unbanned, err)
		}
		if _, err := repo.SetBanned(ctx, 999999, true); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunVacancyRepositoryContract(t *testing.T, makeRepo VacancyFactory) {
	t.Helper()

	t.Run("search_matches_title_and_company", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		now := time.Now().UTC()
		seeds := []model.Vacancy{
			{ExternalID: "a", Title: "Go Developer", Company: "Acme", PublishedAt: now.Add(-3 * time.Hour)},
			{ExternalID: "b", Title: "Backend Engineer", Company: "GoCorp", PublishedAt: now.Add(-1 * time.Hour)},
			{ExternalID: "c", Title: "Designer", Company: "Studio", PublishedAt: now},
		}
		for _, v := range seeds {
			if _, err := seed(ctx, v); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		got, err := repo.Search(ctx, "go", 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].ExternalID != "b" || got[1].ExternalID != "a" {
			t.Fatalf("expected newest first, got %s,%s", got[0].ExternalID, got[1].ExternalID)
		}
	})

	t.Run("search_respects_limit_and_wildcards", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 5; i++ {
			if _, err := seed(ctx, model.Vacancy{ExternalID: string(rune('a' + i)), Title: "Analyst", PublishedAt: time.Now().UTC()}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		got, err := repo.Search(ctx, "analyst", 3)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(got))
		}
		got, err = repo.Search(ctx, "%", 10)
		if err != nil {
			t.Fatalf("search wildcard: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected literal %% to match nothing, got %d", len(got))
		}
	})

	t.Run("get_by_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id, err := seed(ctx, model.Vacancy{ExternalID: "x", Title: "SRE", PublishedAt: time.Now().UTC()})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		v, err := repo.GetByID(ctx, id)
		if err != nil || v.Title != "SRE" {
			t.Fatalf("get: %+v err=%v", v, err)
		}
		if _, err := repo.GetByID(ctx, id+1000); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunApplicationRepositoryContract(t *testing.T, makeRepo ApplicationFactory) {
	t.Helper()

	t.Run("create_and_list_newest_first", func(t *testing.T) {
		repo, mkUser, mkVacancy, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, err := mkUser(ctx, 55)
		if err != nil {
			t.Fatalf("user: %v", err)
		}
		for _, title := range []string{"First", "Second", "Third"} {
			vid, err := mkVacancy(ctx, title)
			if err != nil {
				t.Fatalf("vacancy: %v", err)
			}
			a, err := repo.Create(ctx, model.Application{UserID: uid, VacancyID: vid})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if a.Status != model.ApplicationApplied {
				t.Fatalf("expected default status applied, got %q", a.Status)
			}
		}
		list, err := repo.ListByUser(ctx, uid)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 3 || list[0].VacancyTitle != "Third" || list[2].VacancyTitle != "First" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("duplicate_is_already_exists", func(t *testing.T) {
		repo, mkUser, mkVacancy, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, _ := mkUser(ctx, 56)
		vid, _ := mkVacancy(ctx, "Dup")
		if _, err := repo.Create(ctx, model.Application{UserID: uid, VacancyID: vid}); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := repo.Create(ctx, model.Application{UserID: uid, VacancyID: vid})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown_vacancy_is_conflict", func(t *testing.T) {
		repo, mkUser, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, _ := mkUser(ctx, 57)
		_, err := repo.Create(ctx, model.Application{UserID: uid, VacancyID: 424242})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		repo, mkUser, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, _ := mkUser(ctx, 58)
		list, err := repo.ListByUser(ctx, uid)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %d", len(list))
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, users, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := users.Upsert(ctx, model.User{TgID: 9001, FirstName: "Commit"})
			return err
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := users.GetByTgID(ctx, 9001); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, users, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := users.Upsert(ctx, model.User{TgID: 9002, FirstName: "Rollback"}); err != nil {
				return err
			}
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := users.GetByTgID(ctx, 9002); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

func RunSnapshotRepositoryContract(t *testing.T, makeRepo SnapshotFactory) {
	t.Helper()

	t.Run("save_and_load", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		snap := model.SearchSnapshot{
			ID:        "s1",
			Query:     "go",
			Items:     []model.Vacancy{{ID: 1, Title: "Go Dev"}, {ID: 2, Title: "Go Lead"}},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
		if err := repo.Save(ctx, "contract:1", snap, time.Minute); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.Load(ctx, "contract:1")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got.ID != "s1" || got.Query != "go" || len(got.Items) != 2 || got.Items[1].Title != "Go Lead" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("missing_is_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Load(context.Background(), "contract:missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save_overwrites", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_ = repo.Save(ctx, "contract:2", model.SearchSnapshot{Query: "old"}, time.Minute)
		if err := repo.Save(ctx, "contract:2", model.SearchSnapshot{Query: "new"}, time.Minute); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.Load(ctx, "contract:2")
		if err != nil || got.Query != "new" {
			t.Fatalf("expected overwrite, got %+v err=%v", got, err)
		}
	})
}

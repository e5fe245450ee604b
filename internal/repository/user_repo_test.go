package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leon37/StudentHub/internal/model"
)

func seedUser(t *testing.T, repo *UserRepository, name string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       "user-" + name,
		Username: name,
		Email:    name + "@x.com",
		Password: "hash",
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return u
}

func TestUserRepoUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	seedUser(t, repo, "alice")

	dupName := &model.User{ID: "u2", Username: "alice", Email: "other@x.com", Password: "h"}
	if err := repo.Create(ctx, dupName); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for username, got %v", err)
	}
	dupEmail := &model.User{ID: "u3", Username: "bob", Email: "alice@x.com", Password: "h"}
	if err := repo.Create(ctx, dupEmail); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}

	found, err := repo.FindByUsernameOrEmail(ctx, "nobody", "alice@x.com")
	if err != nil || len(found) != 1 || found[0].Username != "alice" {
		t.Fatalf("expected alice by email, got %+v (%v)", found, err)
	}
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepoRecordLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	u := seedUser(t, repo, "alice")

	ip := "10.0.0.1"
	first := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	if err := repo.RecordLogin(ctx, u.ID, first, &ip); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if err := repo.RecordLogin(ctx, u.ID, first.Add(time.Hour), nil); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}

	users, err := repo.ListWithLoginHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}
	got := users[0]
	if got.LoginCount != 2 || len(got.LoginHistory) != got.LoginCount {
		t.Fatalf("login count %d does not match history %d", got.LoginCount, len(got.LoginHistory))
	}
	if got.LastLogin == nil || !got.LastLogin.Equal(first.Add(time.Hour)) {
		t.Fatalf("unexpected last login %v", got.LastLogin)
	}
	if h := got.LoginHistory[0]; h.IP == nil || *h.IP != ip || !h.At.Equal(first) {
		t.Fatalf("unexpected first history entry %+v", h)
	}
	if got.LoginHistory[1].IP != nil {
		t.Fatalf("expected nil origin on second entry")
	}

	if err := repo.RecordLogin(ctx, "missing", first, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestUserRepoConcurrentLogins(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	u := seedUser(t, repo, "alice")

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ip := fmt.Sprintf("10.0.0.%d", i)
			if err := repo.RecordLogin(ctx, u.ID, time.Now().UTC(), &ip); err != nil {
				t.Errorf("RecordLogin: %v", err)
			}
		}(i)
	}
	wg.Wait()

	users, err := repo.ListWithLoginHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if users[0].LoginCount != n || len(users[0].LoginHistory) != n {
		t.Fatalf("expected %d logins, got count=%d history=%d", n, users[0].LoginCount, len(users[0].LoginHistory))
	}
}

func TestUserRepoOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	seedUser(t, repo, "carol")

	base := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	if err := repo.RecordLogin(ctx, alice.ID, base, nil); err != nil {
		t.Fatal(err)
	}
	if err := repo.RecordLogin(ctx, bob.ID, base.Add(time.Minute), nil); err != nil {
		t.Fatal(err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	names := []string{all[0].Username, all[1].Username, all[2].Username}
	if names[0] != "bob" || names[1] != "alice" || names[2] != "carol" {
		t.Fatalf("expected [bob alice carol], got %v", names)
	}

	active, err := repo.ListWithLoginHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 2 || active[0].Username != "bob" {
		t.Fatalf("expected only logged-in users, most recent first: %+v", active)
	}
}

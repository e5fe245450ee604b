package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leon37/StudentHub/internal/model"
	"github.com/leon37/StudentHub/internal/repository"
)

// fakeStudentRepo is an in-memory repository.StudentRepo enforcing the unique email index.
type fakeStudentRepo struct {
	mu       sync.Mutex
	rows     map[string]model.Student
	seq      int
	failWith error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{rows: make(map[string]model.Student)}
}

func (r *fakeStudentRepo) emailTaken(email, exceptID string) bool {
	for id, s := range r.rows {
		if id != exceptID && s.Email == email {
			return true
		}
	}
	return false
}

func (r *fakeStudentRepo) Create(_ context.Context, st *model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if r.emailTaken(st.Email, "") {
		return fmt.Errorf("create student: %w", repository.ErrDuplicate)
	}
	r.seq++
	if st.ID == "" {
		st.ID = fmt.Sprintf("student-%03d", r.seq)
	}
	st.CreatedAt = time.Date(2024, 1, 1, 0, 0, r.seq, 0, time.UTC)
	st.UpdatedAt = st.CreatedAt
	r.rows[st.ID] = *st
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id string) (*model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	st, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("find student: %w", repository.ErrNotFound)
	}
	return &st, nil
}

func (r *fakeStudentRepo) FindByFilter(_ context.Context, f repository.StudentFilter) ([]model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Student, 0)
	for _, st := range r.rows {
		if matches(st, f) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, st *model.Student, fields []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[st.ID]
	if !ok {
		return fmt.Errorf("update student: %w", repository.ErrNotFound)
	}
	for _, f := range fields {
		switch f {
		case "FirstName":
			row.FirstName = st.FirstName
		case "LastName":
			row.LastName = st.LastName
		case "Email":
			if r.emailTaken(st.Email, st.ID) {
				return fmt.Errorf("update student: %w", repository.ErrDuplicate)
			}
			row.Email = st.Email
		case "Phone":
			row.Phone = st.Phone
		case "DateOfBirth":
			row.DateOfBirth = st.DateOfBirth
		case "EnrollmentDate":
			row.EnrollmentDate = st.EnrollmentDate
		case "GPA":
			row.GPA = st.GPA
		case "Status":
			row.Status = st.Status
		default:
			return fmt.Errorf("update student: unknown field %q", f)
		}
	}
	r.rows[st.ID] = row
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("delete student: %w", repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeStudentRepo) Count(_ context.Context, f repository.StudentFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	var n int64
	for _, st := range r.rows {
		if matches(st, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeStudentRepo) Aggregate(_ context.Context) (repository.StudentAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return repository.StudentAggregate{}, nil
	}
	var sum float64
	for _, st := range r.rows {
		sum += st.GPA
	}
	return repository.StudentAggregate{AverageGPA: sum / float64(len(r.rows))}, nil
}

func matches(st model.Student, f repository.StudentFilter) bool {
	if f.Status != "" && st.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return strings.Contains(strings.ToLower(st.FirstName), q) ||
			strings.Contains(strings.ToLower(st.LastName), q) ||
			strings.Contains(strings.ToLower(st.Email), q)
	}
	return true
}

// fakeUserRepo is an in-memory repository.UserRepo.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("create user: %w", repository.ErrDuplicate)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by username: %w", repository.ErrNotFound)
}

func (r *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0)
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) RecordLogin(_ context.Context, userID string, at time.Time, ip *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("record login: %w", repository.ErrNotFound)
	}
	u.LoginCount++
	u.LastLogin = &at
	u.LoginHistory = append(u.LoginHistory, model.LoginEvent{UserID: userID, At: at, IP: ip})
	return nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].LastLogin, out[j].LastLogin
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

func (r *fakeUserRepo) ListWithLoginHistory(ctx context.Context) ([]model.User, error) {
	all, _ := r.ListAll(ctx)
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		if u.LastLogin != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

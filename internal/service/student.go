package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leon37/StudentHub/internal/model"
	"github.com/leon37/StudentHub/internal/repository"
)

const dateLayout = "2006-01-02"

// StudentInput 创建学生的参数，空字符串与 nil 表示未提供
type StudentInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DateOfBirth    string
	EnrollmentDate string
	GPA            *float64
	Status         string
}

// StudentPatch 局部更新，只有非 nil 字段会被写入
type StudentPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	DateOfBirth    *string
	EnrollmentDate *string
	GPA            *float64
	Status         *string
}

type StudentService struct {
	repo repository.StudentRepo
	now  func() time.Time
}

func NewStudentService(repo repository.StudentRepo) *StudentService {
	return &StudentService{repo: repo, now: time.Now}
}

func (s *StudentService) Create(ctx context.Context, in StudentInput) (*model.Student, error) {
	// 1. 组装记录并填充默认值
	student := &model.Student{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          normalizeEmail(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		DateOfBirth:    strings.TrimSpace(in.DateOfBirth),
		EnrollmentDate: s.now().UTC(),
		Status:         model.StatusActive,
	}
	if in.GPA != nil {
		student.GPA = *in.GPA
	}
	if in.Status != "" {
		student.Status = model.StudentStatus(in.Status)
	}
	if in.EnrollmentDate != "" {
		t, err := parseEnrollmentDate(in.EnrollmentDate)
		if err != nil {
			return nil, err
		}
		student.EnrollmentDate = t
	}

	// 2. 校验
	if student.FirstName == "" || student.LastName == "" || student.Email == "" {
		return nil, validation("First name, last name, and email are required")
	}
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	// 3. 落库，邮箱冲突由唯一索引保证
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, internal("create student", err)
	}
	return student, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, internal("get student", err)
	}
	return student, nil
}

// Update applies patch to the stored record. Only the fields present in
// patch are written, so concurrent patches to different fields both land.
// id and createdAt never change.
func (s *StudentService) Update(ctx context.Context, id string, patch StudentPatch) (*model.Student, error) {
	// 1. 查询原记录
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 合并字段，记录本次要写的列
	var fields []string
	if patch.FirstName != nil {
		student.FirstName = strings.TrimSpace(*patch.FirstName)
		if student.FirstName == "" {
			return nil, validation("First name cannot be empty")
		}
		fields = append(fields, "FirstName")
	}
	if patch.LastName != nil {
		student.LastName = strings.TrimSpace(*patch.LastName)
		if student.LastName == "" {
			return nil, validation("Last name cannot be empty")
		}
		fields = append(fields, "LastName")
	}
	if patch.Email != nil {
		student.Email = normalizeEmail(*patch.Email)
		if student.Email == "" {
			return nil, validation("Email cannot be empty")
		}
		fields = append(fields, "Email")
	}
	if patch.Phone != nil {
		student.Phone = strings.TrimSpace(*patch.Phone)
		fields = append(fields, "Phone")
	}
	if patch.DateOfBirth != nil {
		student.DateOfBirth = strings.TrimSpace(*patch.DateOfBirth)
		fields = append(fields, "DateOfBirth")
	}
	if patch.EnrollmentDate != nil {
		t, err := parseEnrollmentDate(*patch.EnrollmentDate)
		if err != nil {
			return nil, err
		}
		student.EnrollmentDate = t
		fields = append(fields, "EnrollmentDate")
	}
	if patch.GPA != nil {
		student.GPA = *patch.GPA
		fields = append(fields, "GPA")
	}
	if patch.Status != nil {
		student.Status = model.StudentStatus(*patch.Status)
		fields = append(fields, "Status")
	}

	// 3. 重新校验
	if err := validateStudent(student); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return student, nil
	}

	// 4. 只写本次提交的列，记录可能已被删除
	if err := s.repo.Update(ctx, student, fields); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrStudentNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateEmail
		}
		return nil, internal("update student", err)
	}

	// 5. 重新读取，带上其他请求同时写入的列
	return s.Get(ctx, id)
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStudentNotFound
	}
	if err != nil {
		return internal("delete student", err)
	}
	return nil
}

// List returns every student, newest first.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.FindByFilter(ctx, repository.StudentFilter{})
	if err != nil {
		return nil, internal("list students", err)
	}
	return students, nil
}

// Search matches query case-insensitively against first name, last name and email.
func (s *StudentService) Search(ctx context.Context, query string) ([]model.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validation("Search query required")
	}
	students, err := s.repo.FindByFilter(ctx, repository.StudentFilter{Query: query})
	if err != nil {
		return nil, internal("search students", err)
	}
	return students, nil
}

func (s *StudentService) Statistics(ctx context.Context) (*model.Statistics, error) {
	total, err := s.repo.Count(ctx, repository.StudentFilter{})
	if err != nil {
		return nil, internal("count students", err)
	}
	active, err := s.repo.Count(ctx, repository.StudentFilter{Status: model.StatusActive})
	if err != nil {
		return nil, internal("count active students", err)
	}
	inactive, err := s.repo.Count(ctx, repository.StudentFilter{Status: model.StatusInactive})
	if err != nil {
		return nil, internal("count inactive students", err)
	}
	agg, err := s.repo.Aggregate(ctx)
	if err != nil {
		return nil, internal("aggregate students", err)
	}

	return &model.Statistics{
		TotalStudents:    model.CountStat{Count: total},
		ActiveStudents:   model.CountStat{Count: active},
		InactiveStudents: model.CountStat{Count: inactive},
		AverageGPA:       model.AverageStat{Avg: agg.AverageGPA},
	}, nil
}

func validateStudent(st *model.Student) error {
	if st.GPA < model.MinGPA || st.GPA > model.MaxGPA {
		return validation(fmt.Sprintf("GPA must be between %.1f and %.1f", model.MinGPA, model.MaxGPA))
	}
	if !st.Status.Valid() {
		return validation("Status must be one of Active, Inactive, On Leave")
	}
	if st.DateOfBirth != "" {
		if _, err := time.Parse(dateLayout, st.DateOfBirth); err != nil {
			return validation("Date of birth must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}

// parseEnrollmentDate accepts a bare date or an RFC 3339 timestamp.
func parseEnrollmentDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, validation("Enrollment date must be YYYY-MM-DD or RFC 3339")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

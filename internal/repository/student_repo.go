package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/leon37/StudentHub/internal/model"
	"gorm.io/gorm"
)

// StudentFilter narrows FindByFilter and Count. Zero values mean "no constraint".
type StudentFilter struct {
	Status model.StudentStatus
	// Query is matched case-insensitively as a substring of first name,
	// last name or email. LIKE wildcards in it are matched literally.
	Query string
}

// StudentAggregate holds the aggregates computed over every student row.
type StudentAggregate struct {
	AverageGPA float64
}

// StudentRepo is the storage contract for student records.
type StudentRepo interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id string) (*model.Student, error)
	// FindByFilter returns matches ordered by creation time, newest first.
	FindByFilter(ctx context.Context, filter StudentFilter) ([]model.Student, error)
	// Update writes only the named fields of student (Go field names) plus
	// updated_at, leaving other columns as stored. It returns ErrNotFound
	// when no row has student.ID.
	Update(ctx context.Context, student *model.Student, fields []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter StudentFilter) (int64, error)
	Aggregate(ctx context.Context) (StudentAggregate, error)
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepo {
	return &studentRepo{db: db}
}

// Create assigns a UUIDv7 id when the student has none.
func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	if student.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate student id: %w", err)
		}
		student.ID = id.String()
	}
	return translate("create student", r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepo) FindByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, translate("find student", err)
	}
	return &student, nil
}

func (r *studentRepo) FindByFilter(ctx context.Context, filter StudentFilter) ([]model.Student, error) {
	students := make([]model.Student, 0)
	err := applyStudentFilter(r.db.WithContext(ctx).Model(&model.Student{}), filter).
		Order("created_at DESC").
		Order("id DESC").
		Find(&students).Error
	if err != nil {
		return nil, translate("list students", err)
	}
	return students, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Select 让零值（空电话、GPA 0）也能写入；updated_at 由 gorm 自动带上
		res := tx.Model(student).Select(fields).Updates(student)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		// MySQL reports 0 rows for an update that changes nothing.
		var n int64
		if err := tx.Model(&model.Student{}).Where("id = ?", student.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate("update student", err)
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Student{})
	if res.Error != nil {
		return translate("delete student", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete student", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *studentRepo) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	var count int64
	err := applyStudentFilter(r.db.WithContext(ctx).Model(&model.Student{}), filter).Count(&count).Error
	if err != nil {
		return 0, translate("count students", err)
	}
	return count, nil
}

func (r *studentRepo) Aggregate(ctx context.Context) (StudentAggregate, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("AVG(gpa)").
		Row().
		Scan(&avg)
	if err != nil {
		return StudentAggregate{}, translate("aggregate students", err)
	}
	// AVG over an empty table is NULL.
	return StudentAggregate{AverageGPA: avg.Float64}, nil
}

func applyStudentFilter(tx *gorm.DB, filter StudentFilter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		tx = tx.Where(
			"LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		)
	}
	return tx
}

// escapeLike escapes LIKE metacharacters with '!', which every supported
// dialect accepts as an explicit ESCAPE character.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

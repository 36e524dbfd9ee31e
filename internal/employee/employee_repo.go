package employee

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBundle(ctx context.Context, b *Bundle) error
	List(ctx context.Context, limit, offset int) ([]ListRow, int64, error)
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindDetail(ctx context.Context, id string) (*Detail, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) error
	UpdateBehavioral(ctx context.Context, code string, fields map[string]any) error
	UpdatePerformance(ctx context.Context, code string, fields map[string]any) error
	DeleteBundle(ctx context.Context, p *Profile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) CreateBundle(ctx context.Context, b *Bundle) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(&b.Profile).Error; err != nil {
		return err
	}
	if err := db.Create(&b.Behavioral).Error; err != nil {
		return err
	}
	return db.Create(&b.Performance).Error
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]ListRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]ListRow, 0, limit)
	err := r.db.WithContext(ctx).
		Table("employee_profiles AS p").
		Select(`p.id, p.employee_code, p.name, p.email, p.department, p.job_role, p.job_level, p.status,
			COALESCE(b.burnout_risk_score, 0) AS burnout_risk_score,
			COALESCE(b.engagement_score, 0) AS engagement_score,
			COALESCE(f.performance_rating, 0) AS performance_rating,
			u.name AS user_name, u.email AS user_email, u.role AS user_role`).
		Joins("LEFT JOIN employee_behaviorals AS b ON b.employee_code = p.employee_code").
		Joins("LEFT JOIN employee_performances AS f ON f.employee_code = p.employee_code").
		Joins("LEFT JOIN users AS u ON u.id = p.user_id").
		Order("p.created_at ASC, p.employee_code ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindDetail(ctx context.Context, id string) (*Detail, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &Detail{Profile: *p}

	var b Behavioral
	if err := r.db.WithContext(ctx).First(&b, "employee_code = ?", p.EmployeeCode).Error; err == nil {
		d.Behavioral = &b
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var perf Performance
	if err := r.db.WithContext(ctx).First(&perf, "employee_code = ?", p.EmployeeCode).Error; err == nil {
		d.Performance = &perf
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if p.UserID != nil {
		var ident Identity
		err := r.db.WithContext(ctx).
			Table("users").
			Select("name, email, role").
			Where("id = ?", *p.UserID).
			Take(&ident).Error
		if err == nil {
			d.User = &ident
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return d, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Profile{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) UpdateBehavioral(ctx context.Context, code string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Behavioral{}).Where("employee_code = ?", code).Updates(fields).Error
}

func (r *repository) UpdatePerformance(ctx context.Context, code string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Performance{}).Where("employee_code = ?", code).Updates(fields).Error
}

// DeleteBundle removes the related rows before the profile itself.
func (r *repository) DeleteBundle(ctx context.Context, p *Profile) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("employee_code = ?", p.EmployeeCode).Delete(&Behavioral{}).Error; err != nil {
		return err
	}
	if err := db.Where("employee_code = ?", p.EmployeeCode).Delete(&Performance{}).Error; err != nil {
		return err
	}
	return db.Delete(&Profile{}, "id = ?", p.ID).Error
}

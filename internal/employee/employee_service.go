package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mirak10/PeopleIQ/internal/domain"
	employeeerrors "github.com/mirak10/PeopleIQ/internal/employee/errors"
	"github.com/mirak10/PeopleIQ/internal/events"
	"github.com/mirak10/PeopleIQ/internal/messaging/kafka"
	"github.com/mirak10/PeopleIQ/internal/permission"
	"github.com/mirak10/PeopleIQ/internal/shared/apperror"
	"github.com/mirak10/PeopleIQ/internal/shared/contextutil"
	"github.com/mirak10/PeopleIQ/internal/shared/counter"
	"github.com/mirak10/PeopleIQ/internal/shared/response"
	"github.com/mirak10/PeopleIQ/internal/user"
	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, page, limit int) ([]EmployeeListItem, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	Update(ctx context.Context, id string, role domain.Role, patch map[string]any) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   user.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) List(ctx context.Context, page, limit int) ([]EmployeeListItem, response.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	s.logger.Debug("list employees requested", zap.Int("page", page), zap.Int("limit", limit))
	rows, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, response.PaginationMeta{}, mapRepositoryError(err)
	}

	items := make([]EmployeeListItem, len(rows))
	for i, row := range rows {
		items[i] = toListItem(row)
	}
	return items, response.NewPaginationMeta(total, page, limit), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	d, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get employee failed", zap.String("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return toResponse(*d), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	name := strings.TrimSpace(req.Name)
	email := user.NormalizeEmail(req.Email)
	if name == "" || email == "" {
		return CreateEmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}

	role := domain.RoleEmployee
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return CreateEmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
		role = parsed
	}

	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", email),
		zap.String("role", role.String()),
	)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return CreateEmployeeResponse{}, usererrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee email lookup failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	tempPassword, err := user.GenerateTempPassword()
	if err != nil {
		return CreateEmployeeResponse{}, err
	}
	hashed, err := user.HashPassword(tempPassword)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}

	next, err := s.counter.GetNextValue(ctx, counter.EmployeeCode)
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	account := &user.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	jobRole := strings.TrimSpace(req.JobRole)
	if jobRole == "" {
		jobRole = role.String()
	}
	bundle := NewBundle(counter.FormatEmployeeCode(next), &account.ID, name, email, strings.TrimSpace(req.Department), jobRole)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).Create(ctx, account); err != nil {
		s.logger.Error("create employee identity persist failed", zap.Error(err))
		return CreateEmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.repo.WithTx(tx).CreateBundle(ctx, &bundle); err != nil {
		s.logger.Error("create employee bundle persist failed", zap.Error(err))
		return CreateEmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeCreated, bundle.Profile); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", bundle.Profile.ID.String()),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", bundle.Profile.ID.String()),
		zap.String("employee_code", bundle.Profile.EmployeeCode),
	)

	detail := Detail{
		Profile:     bundle.Profile,
		Behavioral:  &bundle.Behavioral,
		Performance: &bundle.Performance,
		User:        &Identity{Name: account.Name, Email: account.Email, Role: account.Role.String()},
	}
	return CreateEmployeeResponse{Employee: toResponse(detail), TempPassword: tempPassword}, nil
}

func (s *service) Update(ctx context.Context, id string, role domain.Role, patch map[string]any) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	split, bad, err := permission.Partition(role, patch).Coerce()
	if err != nil {
		s.logger.Warn("update employee invalid value", zap.String("field", bad.Name), zap.Error(err))
		return EmployeeResponse{}, apperror.InvalidField(bad.Name)
	}

	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("role", role.String()),
		zap.Int("profile_fields", len(split.Profile)),
		zap.Int("behavioral_fields", len(split.Behavioral)),
		zap.Int("performance_fields", len(split.Performance)),
	)

	if split.Empty() {
		return s.GetByID(ctx, id)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if len(split.Profile) > 0 {
		if err := qtx.UpdateProfile(ctx, id, split.Profile); err != nil {
			s.logger.Error("update employee profile failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}
	if len(split.Behavioral) > 0 {
		if err := qtx.UpdateBehavioral(ctx, p.EmployeeCode, split.Behavioral); err != nil {
			s.logger.Error("update employee behavioral failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}
	if len(split.Performance) > 0 {
		if err := qtx.UpdatePerformance(ctx, p.EmployeeCode, split.Performance); err != nil {
			s.logger.Error("update employee performance failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.DeleteBundle(ctx, p); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if p.UserID != nil {
		if err := s.users.WithTx(tx).Delete(ctx, p.UserID.String()); err != nil {
			s.logger.Error("delete employee identity failed", zap.Error(err))
			return err
		}
	}
	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeDeleted, *p); err != nil {
		s.logger.Error("delete employee outbox persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, p Profile) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:    eventType,
		RequestID:    rid,
		EmployeeID:   p.ID.String(),
		EmployeeCode: p.EmployeeCode,
		Department:   p.Department,
		OccurredAt:   time.Now().UTC(),
	}
	if p.UserID != nil {
		event.UserID = p.UserID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   p.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func toListItem(row ListRow) EmployeeListItem {
	item := EmployeeListItem{
		ID:                row.ID.String(),
		EmployeeCode:      row.EmployeeCode,
		Name:              row.Name,
		Email:             row.Email,
		Department:        row.Department,
		JobRole:           row.JobRole,
		JobLevel:          row.JobLevel,
		Status:            row.Status,
		AttritionRisk:     row.BurnoutRiskScore,
		EngagementScore:   row.EngagementScore,
		PerformanceRating: row.PerformanceRating,
	}
	if row.UserEmail != nil {
		item.User = &UserSummary{
			Name:  deref(row.UserName),
			Email: deref(row.UserEmail),
			Role:  deref(row.UserRole),
		}
	}
	return item
}

func toResponse(d Detail) EmployeeResponse {
	p := d.Profile
	resp := EmployeeResponse{
		ID:            p.ID.String(),
		EmployeeCode:  p.EmployeeCode,
		Name:          p.Name,
		Email:         p.Email,
		Gender:        p.Gender,
		Age:           p.Age,
		MaritalStatus: p.MaritalStatus,
		Education:     p.Education,
		Department:    p.Department,
		JobRole:       p.JobRole,
		JobLevel:      p.JobLevel,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if d.User != nil {
		resp.User = &UserSummary{Name: d.User.Name, Email: d.User.Email, Role: d.User.Role}
	}
	if b := d.Behavioral; b != nil {
		resp.Behavioral = &BehavioralResponse{
			EngagementScore:  b.EngagementScore,
			BurnoutRiskScore: b.BurnoutRiskScore,
			JobSatisfaction:  b.JobSatisfaction,
			WorkLifeBalance:  b.WorkLifeBalance,
			AbsenceDays6m:    b.AbsenceDays6m,
			Overtime:         b.Overtime,
			DistanceFromHome: b.DistanceFromHome,
			TravelFrequency:  b.TravelFrequency,
		}
	}
	if f := d.Performance; f != nil {
		resp.Performance = &PerformanceResponse{
			PerformanceRating:   f.PerformanceRating,
			LastOverallScore:    f.LastOverallScore,
			Salary:              f.Salary,
			MonthlyIncome:       f.MonthlyIncome,
			TenureYears:         f.TenureYears,
			YearsSincePromotion: f.YearsSincePromotion,
			TrainingCount:       f.TrainingCount,
			PercentSalaryHike:   f.PercentSalaryHike,
			StockOptionLevel:    f.StockOptionLevel,
		}
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

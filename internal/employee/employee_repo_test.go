package employee_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/employee"
	"github.com/mirak10/PeopleIQ/internal/shared/counter"
	counterMock "github.com/mirak10/PeopleIQ/internal/shared/counter/mock"
	"github.com/mirak10/PeopleIQ/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "employees.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &employee.Profile{}, &employee.Behavioral{}, &employee.Performance{}))
	return db
}

func TestRepository_BundleLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := employee.NewRepository(db)
	ctx := context.Background()

	account := &user.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "x", Role: domain.RoleEmployee}
	require.NoError(t, user.NewRepository(db).Create(ctx, account))

	withUser := employee.NewBundle("EMP-000001", &account.ID, "Ada", "ada@example.com", "Sales", "")
	require.NoError(t, repo.CreateBundle(ctx, &withUser))

	orphan := employee.NewBundle("EMP-000002", nil, "Bo", "bo@example.com", "", "Analyst")
	require.NoError(t, db.Create(&orphan.Profile).Error)

	t.Run("list outer joins and never drops a profile", func(t *testing.T) {
		rows, total, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, rows, 2)

		byCode := map[string]employee.ListRow{}
		for _, r := range rows {
			byCode[r.EmployeeCode] = r
		}
		require.NotNil(t, byCode["EMP-000001"].UserEmail)
		assert.Equal(t, "ada@example.com", *byCode["EMP-000001"].UserEmail)
		assert.Equal(t, "Sales", byCode["EMP-000001"].Department)
		assert.Nil(t, byCode["EMP-000002"].UserEmail)
		assert.Zero(t, byCode["EMP-000002"].BurnoutRiskScore)
		assert.Zero(t, byCode["EMP-000002"].PerformanceRating)
	})

	t.Run("updates land on the row located by employee code", func(t *testing.T) {
		require.NoError(t, repo.UpdateBehavioral(ctx, "EMP-000001", map[string]any{"burnout_risk_score": 0.8}))
		require.NoError(t, repo.UpdatePerformance(ctx, "EMP-000001", map[string]any{"performance_rating": 4.5}))
		require.NoError(t, repo.UpdateProfile(ctx, withUser.Profile.ID.String(), map[string]any{"job_level": int64(3)}))

		d, err := repo.FindDetail(ctx, withUser.Profile.ID.String())
		require.NoError(t, err)
		require.NotNil(t, d.Behavioral)
		require.NotNil(t, d.Performance)
		require.NotNil(t, d.User)
		assert.Equal(t, 0.8, d.Behavioral.BurnoutRiskScore)
		assert.Equal(t, 4.5, d.Performance.PerformanceRating)
		assert.Equal(t, 3, d.Profile.JobLevel)
		assert.Equal(t, "Employee", d.User.Role)
	})

	t.Run("detail tolerates missing related rows", func(t *testing.T) {
		d, err := repo.FindDetail(ctx, orphan.Profile.ID.String())
		require.NoError(t, err)
		assert.Nil(t, d.Behavioral)
		assert.Nil(t, d.Performance)
		assert.Nil(t, d.User)
	})

	t.Run("delete removes the bundle", func(t *testing.T) {
		p, err := repo.FindByID(ctx, withUser.Profile.ID.String())
		require.NoError(t, err)
		require.NoError(t, repo.DeleteBundle(ctx, p))

		_, err = repo.FindByID(ctx, p.ID.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		var count int64
		require.NoError(t, db.Model(&employee.Behavioral{}).Where("employee_code = ?", p.EmployeeCode).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, db.Model(&employee.Performance{}).Where("employee_code = ?", p.EmployeeCode).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestService_CreateListDelete_SQLite(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	counterRepo := counterMock.NewMockRepository(ctrl)
	counterRepo.EXPECT().GetNextValue(gomock.Any(), counter.EmployeeCode).Return(int64(42), nil)

	users := user.NewRepository(db)
	svc := employee.NewService(sqlDB, employee.NewRepository(db), users, counterRepo, nil, zap.NewNop())

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Grace Hopper",
		Email:      "Grace@Example.com",
		Department: "Research",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-000042", created.Employee.EmployeeCode)
	assert.Len(t, created.TempPassword, 8)

	items, meta, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, created.Employee.ID, got.ID)
	assert.Equal(t, "EMP-000042", got.EmployeeCode)
	assert.Zero(t, got.AttritionRisk)
	assert.Zero(t, got.EngagementScore)
	assert.Zero(t, got.PerformanceRating)
	require.NotNil(t, got.User)
	assert.Equal(t, "grace@example.com", got.User.Email)
	assert.Equal(t, "Employee", got.User.Role)

	account, err := users.FindByEmail(ctx, "grace@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Employee.ID))

	items, meta, err = svc.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Zero(t, meta.Total)
	assert.Empty(t, items)

	_, err = users.FindByID(ctx, account.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for _, model := range []any{&employee.Behavioral{}, &employee.Performance{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("employee_code = ?", "EMP-000042").Count(&count).Error)
		assert.Zero(t, count)
	}

	_, err = svc.GetByID(ctx, created.Employee.ID)
	assert.Error(t, err)
}

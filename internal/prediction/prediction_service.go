package prediction

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	predictionerrors "github.com/mirak10/PeopleIQ/internal/prediction/errors"
	"github.com/mirak10/PeopleIQ/internal/shared/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	SourceSnapshot    = "snapshot"
	SourcePredictions = "predictions"

	alertsLimit         = 100
	topFactorsLimit     = 8
	highRiskLimit       = 50
	topPerformersLimit  = 10
	highAbsenceLimit    = 30
	actionableLimit     = 50
	departmentViewLimit = 500
)

//go:generate mockgen -source=prediction_service.go -destination=mock/prediction_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (SummaryResponse, error)
	Alerts(ctx context.Context) ([]AlertItem, error)
	Turnover(ctx context.Context) (TurnoverResponse, error)
	Performance(ctx context.Context) (PerformanceResponse, error)
	Absenteeism(ctx context.Context) (AbsenteeismResponse, error)
	Recommendations(ctx context.Context) (RecommendationsResponse, error)
	List(ctx context.Context, q ListQuery) ([]PredictionResponse, response.PaginationMeta, error)
	ByDepartment(ctx context.Context, department string) ([]PredictionResponse, error)
	ByEmployeeCode(ctx context.Context, code string) (PredictionResponse, error)
}

type service struct {
	repo   Repository
	cache  *ViewCache
	logger *zap.Logger
}

func NewService(repo Repository, cache *ViewCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("prediction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("prediction.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	return loadView(ctx, s.cache, KeySummary, s.summary)
}

func (s *service) summary(ctx context.Context) (SummaryResponse, error) {
	snap, err := s.repo.LatestSnapshot(ctx)
	if err == nil {
		return snapshotSummary(snap), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SummaryResponse{}, err
	}

	s.logger.Debug("no analytics snapshot, aggregating predictions")
	t, err := s.repo.Totals(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{
		Source:             SourcePredictions,
		TotalEmployees:     t.Total,
		HighRiskCount:      t.High,
		MediumRiskCount:    t.Medium,
		LowRiskCount:       t.Low,
		TopTurnoverFactors: []FactorWeight{},
		DepartmentMetrics:  map[string]any{},
	}
	if t.Total > 0 {
		n := float64(t.Total)
		resp.AvgAttritionRisk = round(t.RiskSum/n, 3)
		resp.AvgEngagement = round(t.EngageSum/n, 3)
		resp.AvgBurnoutScore = round(t.BurnoutSum/n, 3)
		resp.TurnoverRate = round(float64(t.High)/n*100, 1)
	}
	return resp, nil
}

func (s *service) Alerts(ctx context.Context) ([]AlertItem, error) {
	rows, err := s.repo.WithAlerts(ctx, alertsLimit)
	if err != nil {
		return nil, err
	}

	items := make([]AlertItem, 0, len(rows))
	for _, p := range rows {
		items = append(items, AlertItem{
			EmployeeCode:       p.EmployeeCode,
			Department:         p.Department,
			JobTitle:           p.JobTitle,
			Alerts:             nonNil([]string(p.Alerts)),
			AttritionRiskLevel: p.AttritionRiskLevel,
		})
	}
	return items, nil
}

func (s *service) Turnover(ctx context.Context) (TurnoverResponse, error) {
	return loadView(ctx, s.cache, KeyTurnover, s.turnover)
}

func (s *service) turnover(ctx context.Context) (TurnoverResponse, error) {
	var (
		levels   []LabelCount
		depts    []DepartmentRiskRow
		factors  [][]string
		highRisk []AIPrediction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		levels, err = s.repo.CountBy(gctx, ColumnAttritionLevel)
		return err
	})
	g.Go(func() (err error) {
		depts, err = s.repo.DepartmentRisk(gctx)
		return err
	})
	g.Go(func() (err error) {
		factors, err = s.repo.RiskFactorLists(gctx)
		return err
	})
	g.Go(func() (err error) {
		highRisk, err = s.repo.TopByRisk(gctx, []string{LevelHigh}, highRiskLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return TurnoverResponse{}, err
	}

	resp := TurnoverResponse{
		Distribution:      levelDistribution(levels),
		Departments:       make([]DepartmentRisk, 0, len(depts)),
		TopFactors:        topFactors(factors, topFactorsLimit),
		HighRiskEmployees: make([]HighRiskEmployee, 0, len(highRisk)),
	}
	resp.TotalEmployees = resp.Distribution[LevelHigh] + resp.Distribution[LevelMedium] + resp.Distribution[LevelLow]
	for _, d := range depts {
		resp.Departments = append(resp.Departments, DepartmentRisk{
			Name:          d.Department,
			Count:         d.Count,
			AvgRisk:       average(d.ValueSum, d.Count, 3),
			HighRiskCount: d.HighCount,
		})
	}
	for _, p := range highRisk {
		resp.HighRiskEmployees = append(resp.HighRiskEmployees, HighRiskEmployee{
			EmployeeCode:       p.EmployeeCode,
			Department:         p.Department,
			JobTitle:           p.JobTitle,
			AttritionRisk:      p.AttritionRisk,
			AttritionRiskLevel: p.AttritionRiskLevel,
			TopRiskFactors:     nonNil([]string(p.TopRiskFactors)),
		})
	}
	return resp, nil
}

func (s *service) Performance(ctx context.Context) (PerformanceResponse, error) {
	return loadView(ctx, s.cache, KeyPerformance, s.performance)
}

func (s *service) performance(ctx context.Context) (PerformanceResponse, error) {
	var (
		values []ValueCount
		promo  []LabelCount
		depts  []DepartmentSumRow
		top    []AIPrediction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		values, err = s.repo.PerformanceValues(gctx)
		return err
	})
	g.Go(func() (err error) {
		promo, err = s.repo.CountBy(gctx, ColumnPromotionReadiness)
		return err
	})
	g.Go(func() (err error) {
		depts, err = s.repo.DepartmentPerformance(gctx)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.repo.TopByPerformance(gctx, topPerformersLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return PerformanceResponse{}, err
	}

	resp := PerformanceResponse{
		RatingDistribution: make(map[string]int64, len(values)),
		PromotionBreakdown: make(map[string]int64, len(promo)),
		Departments:        make([]DepartmentPerformance, 0, len(depts)),
		TopPerformers:      make([]TopPerformer, 0, len(top)),
	}
	for _, v := range values {
		resp.RatingDistribution[strconv.Itoa(int(math.Round(v.Value)))] += v.Count
	}
	for _, p := range promo {
		resp.PromotionBreakdown[p.Label] += p.Count
	}
	for _, d := range depts {
		resp.Departments = append(resp.Departments, DepartmentPerformance{
			Name:           d.Department,
			AvgPerformance: average(d.ValueSum, d.Count, 2),
			Count:          d.Count,
		})
	}
	slices.SortStableFunc(resp.Departments, func(a, b DepartmentPerformance) int {
		if c := cmp.Compare(b.AvgPerformance, a.AvgPerformance); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for _, p := range top {
		resp.TopPerformers = append(resp.TopPerformers, TopPerformer{
			EmployeeCode:         p.EmployeeCode,
			Department:           p.Department,
			CurrentPerformance:   p.CurrentPerformance,
			PredictedPerformance: p.PredictedPerformance,
			PromotionReadiness:   p.PromotionReadiness,
		})
	}
	return resp, nil
}

func (s *service) Absenteeism(ctx context.Context) (AbsenteeismResponse, error) {
	return loadView(ctx, s.cache, KeyAbsenteeism, s.absenteeism)
}

func (s *service) absenteeism(ctx context.Context) (AbsenteeismResponse, error) {
	var (
		levels []LabelCount
		depts  []DepartmentRiskRow
		top    []AIPrediction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		levels, err = s.repo.CountBy(gctx, ColumnAbsenceRisk)
		return err
	})
	g.Go(func() (err error) {
		depts, err = s.repo.DepartmentAbsence(gctx)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.repo.TopByAbsence(gctx, highAbsenceLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return AbsenteeismResponse{}, err
	}

	resp := AbsenteeismResponse{
		Distribution:         levelDistribution(levels),
		Departments:          make([]DepartmentAbsence, 0, len(depts)),
		HighAbsenceEmployees: make([]HighAbsenceEmployee, 0, len(top)),
	}
	for _, d := range depts {
		resp.Departments = append(resp.Departments, DepartmentAbsence{
			Name:           d.Department,
			Count:          d.Count,
			AvgAbsenceDays: average(d.ValueSum, d.Count, 1),
			HighRiskCount:  d.HighCount,
		})
	}
	for _, p := range top {
		resp.HighAbsenceEmployees = append(resp.HighAbsenceEmployees, HighAbsenceEmployee{
			EmployeeCode: p.EmployeeCode,
			Department:   p.Department,
			JobTitle:     p.JobTitle,
			AbsenceDays:  p.AbsenceDays,
			BurnoutScore: p.BurnoutScore,
			AbsenceRisk:  p.AbsenceRisk,
		})
	}
	return resp, nil
}

func (s *service) Recommendations(ctx context.Context) (RecommendationsResponse, error) {
	return loadView(ctx, s.cache, KeyRecommendations, s.recommendations)
}

func (s *service) recommendations(ctx context.Context) (RecommendationsResponse, error) {
	var (
		equity     []PayEquityRow
		training   []TrainingRow
		actionable []AIPrediction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		equity, err = s.repo.PayEquity(gctx)
		return err
	})
	g.Go(func() (err error) {
		training, err = s.repo.Training(gctx)
		return err
	})
	g.Go(func() (err error) {
		actionable, err = s.repo.TopByRisk(gctx, []string{LevelHigh, LevelMedium}, actionableLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return RecommendationsResponse{}, err
	}

	resp := RecommendationsResponse{
		PayEquity:           make([]PayEquity, 0, len(equity)),
		Training:            make([]TrainingImpact, 0, len(training)),
		ActionableEmployees: make([]ActionableEmployee, 0, len(actionable)),
	}
	for _, e := range equity {
		resp.PayEquity = append(resp.PayEquity, PayEquity{
			Department: e.Department,
			Gender:     e.Gender,
			AvgSalary:  average(e.SalarySum, e.Count, 0),
			AvgGap:     average(e.GapSum, e.Count, 3),
			Count:      e.Count,
		})
	}
	for _, t := range training {
		resp.Training = append(resp.Training, TrainingImpact{
			Department:      t.Department,
			TrainedCount:    t.TrainedCount,
			UntrainedCount:  t.UntrainedCount,
			AvgImpact:       average(t.ImpactSum, t.TrainedCount, 3),
			AvgEngTrained:   average(t.EngTrainedSum, t.TrainedCount, 2),
			AvgEngUntrained: average(t.EngUntrainedSum, t.UntrainedCount, 2),
		})
	}
	for _, p := range actionable {
		resp.ActionableEmployees = append(resp.ActionableEmployees, ActionableEmployee{
			EmployeeCode:       p.EmployeeCode,
			Department:         p.Department,
			JobTitle:           p.JobTitle,
			AttritionRiskLevel: p.AttritionRiskLevel,
			Recommendations:    nonNil([]string(p.Recommendations)),
		})
	}
	return resp, nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]PredictionResponse, response.PaginationMeta, error) {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	filter := ListFilter{
		Risk:       strings.TrimSpace(q.Risk),
		Department: strings.TrimSpace(q.Department),
	}
	rows, total, err := s.repo.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return toResponses(rows), response.NewPaginationMeta(total, page, limit), nil
}

func (s *service) ByDepartment(ctx context.Context, department string) ([]PredictionResponse, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, predictionerrors.ErrDepartmentRequired
	}

	rows, err := s.repo.FindByDepartment(ctx, department, departmentViewLimit)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *service) ByEmployeeCode(ctx context.Context, code string) (PredictionResponse, error) {
	p, err := s.repo.FindByEmployeeCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PredictionResponse{}, predictionerrors.ErrPredictionNotFound
		}
		return PredictionResponse{}, err
	}
	return toResponse(*p), nil
}

func snapshotSummary(t *AnalyticsTrend) SummaryResponse {
	date := t.Date
	resp := SummaryResponse{
		Source:                SourceSnapshot,
		Date:                  &date,
		TotalEmployees:        t.TotalEmployees,
		HighRiskCount:         t.HighRiskCount,
		MediumRiskCount:       t.MediumRiskCount,
		LowRiskCount:          t.LowRiskCount,
		AvgAttritionRisk:      t.AvgAttritionRisk,
		AvgEngagement:         t.AvgEngagement,
		AvgBurnoutScore:       t.AvgBurnoutScore,
		AvgPromotionReadiness: t.AvgPromotionReadiness,
		TurnoverRate:          t.TurnoverRate,
		AbsenteeismRate:       t.AbsenteeismRate,
		TopTurnoverFactors:    nonNil([]FactorWeight(t.TopTurnoverFactors)),
		DepartmentMetrics:     map[string]any(t.DepartmentMetrics),
	}
	if resp.DepartmentMetrics == nil {
		resp.DepartmentMetrics = map[string]any{}
	}
	return resp
}

// levelDistribution always carries High, Medium and Low. Other labels are
// reported as they are but never counted into totals.
func levelDistribution(rows []LabelCount) map[string]int64 {
	dist := map[string]int64{LevelHigh: 0, LevelMedium: 0, LevelLow: 0}
	for _, r := range rows {
		dist[r.Label] += r.Count
	}
	return dist
}

func topFactors(lists [][]string, limit int) []FactorCount {
	counts := make(map[string]int64)
	for _, list := range lists {
		for _, f := range list {
			if f == "" || f == noSignificantFactors {
				continue
			}
			counts[f]++
		}
	}

	out := make([]FactorCount, 0, len(counts))
	for f, n := range counts {
		out = append(out, FactorCount{Factor: f, Count: n})
	}
	slices.SortFunc(out, func(a, b FactorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Factor, b.Factor)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func average(sum float64, count int64, places int) float64 {
	if count == 0 {
		return 0
	}
	return round(sum/float64(count), places)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func toResponses(rows []AIPrediction) []PredictionResponse {
	out := make([]PredictionResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}
	return out
}

func toResponse(p AIPrediction) PredictionResponse {
	return PredictionResponse{
		EmployeeCode:         p.EmployeeCode,
		Department:           p.Department,
		JobTitle:             p.JobTitle,
		Gender:               p.Gender,
		AttritionRisk:        p.AttritionRisk,
		AttritionRiskLevel:   p.AttritionRiskLevel,
		PromotionScore:       p.PromotionScore,
		PromotionReadiness:   p.PromotionReadiness,
		CurrentPerformance:   p.CurrentPerformance,
		PredictedPerformance: p.PredictedPerformance,
		BurnoutScore:         p.BurnoutScore,
		BehavioralRiskLevel:  p.BehavioralRiskLevel,
		EngagementScore:      p.EngagementScore,
		AbsenceDays:          p.AbsenceDays,
		AbsenceRisk:          p.AbsenceRisk,
		PayEquityGap:         p.PayEquityGap,
		Salary:               p.Salary,
		TrainingImpactScore:  p.TrainingImpactScore,
		TrainingCount:        p.TrainingCount,
		Recommendations:      nonNil([]string(p.Recommendations)),
		Alerts:               nonNil([]string(p.Alerts)),
		TopRiskFactors:       nonNil([]string(p.TopRiskFactors)),
		PredictionDate:       p.PredictionDate,
		UpdatedAt:            p.UpdatedAt,
	}
}

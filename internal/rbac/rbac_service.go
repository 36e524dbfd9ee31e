package rbac

import (
	"sync"

	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/permission"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(role domain.Role, resource, action string) (bool, error)
	Policies() []PolicyResponse
	WritableFields(role domain.Role) FieldsResponse
}

type service struct {
	enforcer *casbin.Enforcer
	rules    []Rule
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads rules (DefaultRules when empty) into enforcer.
func NewService(enforcer *casbin.Enforcer, rules []Rule, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	if len(rules) == 0 {
		rules = DefaultRules
	}

	s := &service{enforcer: enforcer, rules: rules, logger: l}
	if err := s.LoadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	policies := expand(s.rules)
	if _, err := s.enforcer.AddPolicies(policies); err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return err
	}

	s.logger.Info("rbac policy loaded", zap.Int("policies", len(policies)))
	return nil
}

func (s *service) Enforce(role domain.Role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role.String()),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role.String()),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Policies() []PolicyResponse {
	out := make([]PolicyResponse, 0, len(s.rules))
	for _, r := range s.rules {
		roles := make([]string, 0, len(r.Roles))
		for _, role := range r.Roles {
			roles = append(roles, role.String())
		}
		out = append(out, PolicyResponse{Resource: r.Resource, Action: r.Action, Roles: roles})
	}
	return out
}

func (s *service) WritableFields(role domain.Role) FieldsResponse {
	set := permission.Resolve(role)
	records := map[string][]string{}

	for _, rec := range []permission.Record{permission.RecordProfile, permission.RecordBehavioral, permission.RecordPerformance} {
		names := []string{}
		for _, name := range permission.SchemaFields(rec) {
			if set.Has(name) {
				names = append(names, name)
			}
		}
		records[string(rec)] = names
	}

	return FieldsResponse{
		Role:     role.String(),
		Wildcard: set.Wildcard(),
		Fields:   set.Fields(),
		Records:  records,
	}
}

package permission

import (
	"sort"

	"github.com/mirak10/PeopleIQ/internal/domain"
)

const Wildcard = "*"

var roleFields = map[domain.Role][]string{
	domain.RoleAdmin: {Wildcard},
	domain.RoleHR: {
		"name", "department", "jobRole", "jobLevel", "education",
		"salary", "monthlyIncome", "stockOptionLevel", "status",
	},
	domain.RoleManager: {
		"performanceRating", "lastOverallScore", "trainingCount",
		"percentSalaryHike", "yearsSincePromotion",
	},
	domain.RoleEmployee: {
		"name", "maritalStatus", "distanceFromHome", "workLifeBalance",
	},
}

// FieldSet is the set of payload keys a role may write.
type FieldSet struct {
	wildcard bool
	fields   map[string]struct{}
}

func (s FieldSet) Wildcard() bool {
	return s.wildcard
}

func (s FieldSet) Has(field string) bool {
	if s.wildcard {
		return true
	}
	_, ok := s.fields[field]
	return ok
}

// Fields returns the members in sorted order; a wildcard set yields ["*"].
func (s FieldSet) Fields() []string {
	if s.wildcard {
		return []string{Wildcard}
	}
	out := make([]string, 0, len(s.fields))
	for f := range s.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the writable field set for role. Unknown roles get an empty set.
func Resolve(role domain.Role) FieldSet {
	set := FieldSet{fields: map[string]struct{}{}}
	for _, f := range roleFields[role] {
		if f == Wildcard {
			set.wildcard = true
			continue
		}
		set.fields[f] = struct{}{}
	}
	return set
}

func IsAllowed(role domain.Role, field string) bool {
	return Resolve(role).Has(field)
}

// Split holds the writable part of an update payload split per record, keyed by column.
type Split struct {
	Profile     map[string]any
	Behavioral  map[string]any
	Performance map[string]any
}

func (p Split) Empty() bool {
	return len(p.Profile) == 0 && len(p.Behavioral) == 0 && len(p.Performance) == 0
}

// Partition drops every key the role may not write or that no record declares.
func Partition(role domain.Role, payload map[string]any) Split {
	allowed := Resolve(role)
	out := Split{
		Profile:     map[string]any{},
		Behavioral:  map[string]any{},
		Performance: map[string]any{},
	}

	for key, value := range payload {
		if !allowed.Has(key) {
			continue
		}
		if f, ok := Lookup(RecordProfile, key); ok {
			out.Profile[f.Column] = value
		}
		if f, ok := Lookup(RecordBehavioral, key); ok {
			out.Behavioral[f.Column] = value
		}
		if f, ok := Lookup(RecordPerformance, key); ok {
			out.Performance[f.Column] = value
		}
	}
	return out
}

// Coerce converts every value to its column type and reports the offending field on failure.
func (p Split) Coerce() (Split, Field, error) {
	out := Split{}
	var err error
	var bad Field

	convert := func(record Record, in map[string]any) map[string]any {
		res := make(map[string]any, len(in))
		for col, v := range in {
			if err != nil {
				return res
			}
			f := columns[record][col]
			var cv any
			cv, err = f.Coerce(v)
			if err != nil {
				bad = f
				return res
			}
			res[col] = cv
		}
		return res
	}

	out.Profile = convert(RecordProfile, p.Profile)
	out.Behavioral = convert(RecordBehavioral, p.Behavioral)
	out.Performance = convert(RecordPerformance, p.Performance)
	if err != nil {
		return Split{}, bad, err
	}
	return out, Field{}, nil
}

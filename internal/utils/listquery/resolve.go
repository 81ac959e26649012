package listquery

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

// Query parameter names shared by every list view.
const (
	ParamFrom      = "desde"
	ParamTo        = "hasta"
	ParamSort      = "orden"
	ParamDirection = "dir"
)

// PeriodKind selects the flavor of date range a view uses.
type PeriodKind int

const (
	PeriodDays PeriodKind = iota
	PeriodMonths
)

// Policy is the per-view default behaviour of the resolver.
type Policy struct {
	Period PeriodKind
	// DayDefaults supplies the bounds used when a day-level bound is missing.
	// Nil means the current month.
	DayDefaults func(now time.Time) (time.Time, time.Time)
	// Months is the default policy for month-level ranges.
	Months period.MonthPolicy
}

// DayPolicy is the common day-range policy defaulting to the current month.
var DayPolicy = Policy{Period: PeriodDays}

// Predicate is one validated filter.
type Predicate struct {
	Field Field
	Value string // trimmed raw value
	// Number holds the parsed value of Numeric fields.
	Number int64
	// Flag is set for Flagged fields whose value contains the keyword.
	Flag bool
}

// Spec is the normalized, validated description of a list request.
type Spec struct {
	Period     period.Range
	DateColumn string
	Filters    []Predicate
	Sort       Sort
	// Empty is set when a filter can never match (a non-numeric value for
	// a numeric field). The result set must be empty.
	Empty bool
	// Values echoes every accepted filter value by field name, including
	// the ones that made the spec Empty.
	Values map[string]string
}

// Value returns the echoed filter value for name.
func (s Spec) Value(name string) string {
	return s.Values[name]
}

// Resolve is a pure function of its arguments: raw parameters, the view's
// catalog, its default policy and the current time.
func Resolve(params url.Values, cat *Catalog, policy Policy, now time.Time) Spec {
	spec := Spec{
		Period:     resolvePeriod(params, policy, now),
		DateColumn: cat.dateColumn,
		Sort:       resolveSort(params, cat),
		Values:     map[string]string{},
	}

	for _, f := range cat.filters {
		raw := strings.TrimSpace(params.Get(f.Name))
		if raw == "" {
			continue
		}
		if f.Wildcard != "" && strings.EqualFold(raw, f.Wildcard) {
			continue
		}
		spec.Values[f.Name] = raw

		p := Predicate{Field: f, Value: raw}
		switch f.Kind {
		case Numeric:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				spec.Empty = true
				continue
			}
			p.Number = n
		case Flagged:
			p.Flag = strings.Contains(strings.ToLower(raw), strings.ToLower(f.Keyword))
		}
		spec.Filters = append(spec.Filters, p)
	}
	return spec
}

func resolvePeriod(params url.Values, policy Policy, now time.Time) period.Range {
	from, to := params.Get(ParamFrom), params.Get(ParamTo)
	if policy.Period == PeriodMonths {
		return period.Months(from, to, policy.Months, now)
	}
	defaults := policy.DayDefaults
	if defaults == nil {
		defaults = period.CurrentMonthDays
	}
	defFrom, defTo := defaults(now)
	return period.Days(from, to, defFrom, defTo)
}

// resolveSort falls back to the catalog default for an unknown field; a
// known field with an unknown direction keeps the field and takes the
// default direction.
func resolveSort(params url.Values, cat *Catalog) Sort {
	token := strings.ToLower(strings.TrimSpace(params.Get(ParamSort)))
	column, ok := cat.sorts[token]
	if !ok {
		return cat.fallback
	}
	dir, ok := parseDirection(params.Get(ParamDirection))
	if !ok {
		dir = cat.fallback.Direction
	}
	return Sort{Field: token, Column: column, IDColumn: cat.idColumn, Direction: dir}
}

// Package listquery turns raw list-view query parameters into a validated
// filter and sort specification. Each view declares an explicit Catalog of
// the fields it accepts; anything outside the catalog is ignored.
package listquery

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is how a filter value is matched.
type Kind int

const (
	// Text matches a case-insensitive substring in any of the field's columns.
	Text Kind = iota
	// Exact matches a coded value case-insensitively.
	Exact
	// Numeric matches an integer identifier. A non-numeric value matches nothing.
	Numeric
	// Flagged is a Text match OR'ed with a boolean column when the value
	// contains the field's keyword.
	Flagged
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Exact:
		return "exact"
	case Numeric:
		return "numeric"
	case Flagged:
		return "flagged"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field is one filterable query parameter.
type Field struct {
	Name    string
	Kind    Kind
	Columns []string

	// FlagColumn and Keyword are used by Flagged fields.
	FlagColumn string
	Keyword    string

	// Wildcard is a value meaning "no filter" (e.g. "Todos"), compared
	// case-insensitively.
	Wildcard string
}

// TextField matches a substring in any of the columns.
func TextField(name string, columns ...string) Field {
	return Field{Name: name, Kind: Text, Columns: columns}
}

// ExactField matches a coded column exactly, ignoring case.
func ExactField(name, column string) Field {
	return Field{Name: name, Kind: Exact, Columns: []string{column}}
}

// NumericField matches an integer column.
func NumericField(name, column string) Field {
	return Field{Name: name, Kind: Numeric, Columns: []string{column}}
}

// FlaggedField matches a substring in column, or rows whose flagColumn is
// true when the value contains keyword.
func FlaggedField(name, column, flagColumn, keyword string) Field {
	return Field{Name: name, Kind: Flagged, Columns: []string{column}, FlagColumn: flagColumn, Keyword: keyword}
}

// WithWildcard returns a copy of f that treats value as "no filter".
func (f Field) WithWildcard(value string) Field {
	f.Wildcard = value
	return f
}

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func parseDirection(raw string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	default:
		return "", false
	}
}

// Sort is a resolved sort: the requested field plus the catalog's id column
// as tie-breaker, both in the same direction.
type Sort struct {
	Field     string
	Column    string
	IDColumn  string
	Direction Direction
}

// CatalogConfig declares the fields a list view accepts.
type CatalogConfig struct {
	Name       string
	IDColumn   string            // unique identifier, used as sort tie-breaker
	DateColumn string            // column the period bounds apply to
	Filters    []Field           // in the order predicates are emitted
	Sorts      map[string]string // sort token -> column
	// DefaultSort and DefaultDirection are used for unknown requests.
	DefaultSort      string
	DefaultDirection Direction
}

// Catalog is a validated CatalogConfig.
type Catalog struct {
	name       string
	idColumn   string
	dateColumn string
	filters    []Field
	byName     map[string]Field
	sorts      map[string]string
	fallback   Sort
}

// Reserved parameter names that catalogs may not use as filters.
var reservedParams = map[string]bool{
	ParamFrom: true, ParamTo: true, ParamSort: true, ParamDirection: true,
}

// NewCatalog validates cfg.
func NewCatalog(cfg CatalogConfig) (*Catalog, error) {
	var errs []error
	if cfg.Name == "" {
		errs = append(errs, errors.New("catalog name is required"))
	}
	if cfg.IDColumn == "" {
		errs = append(errs, errors.New("id column is required"))
	}

	byName := make(map[string]Field, len(cfg.Filters))
	for _, f := range cfg.Filters {
		switch {
		case f.Name == "":
			errs = append(errs, errors.New("filter with empty name"))
			continue
		case reservedParams[f.Name]:
			errs = append(errs, fmt.Errorf("filter %q uses a reserved parameter name", f.Name))
		case len(f.Columns) == 0:
			errs = append(errs, fmt.Errorf("filter %q has no column", f.Name))
		case f.Kind == Flagged && (f.FlagColumn == "" || f.Keyword == ""):
			errs = append(errs, fmt.Errorf("flagged filter %q needs a flag column and keyword", f.Name))
		case f.Kind != Text && len(f.Columns) != 1:
			errs = append(errs, fmt.Errorf("%s filter %q must have exactly one column", f.Kind, f.Name))
		}
		for _, col := range f.Columns {
			if strings.TrimSpace(col) == "" {
				errs = append(errs, fmt.Errorf("filter %q has a blank column", f.Name))
			}
		}
		if _, dup := byName[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate filter %q", f.Name))
		}
		byName[f.Name] = f
	}

	sorts := make(map[string]string, len(cfg.Sorts))
	for token, col := range cfg.Sorts {
		if token == "" || col == "" {
			errs = append(errs, fmt.Errorf("sort %q -> %q is incomplete", token, col))
			continue
		}
		sorts[strings.ToLower(token)] = col
	}
	defaultColumn, ok := sorts[strings.ToLower(cfg.DefaultSort)]
	if !ok {
		errs = append(errs, fmt.Errorf("default sort %q is not a declared sort", cfg.DefaultSort))
	}
	if _, ok := parseDirection(string(cfg.DefaultDirection)); !ok {
		errs = append(errs, fmt.Errorf("default direction %q is invalid", cfg.DefaultDirection))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog %q: %w", cfg.Name, errors.Join(errs...))
	}

	filters := make([]Field, len(cfg.Filters))
	copy(filters, cfg.Filters)
	return &Catalog{
		name:       cfg.Name,
		idColumn:   cfg.IDColumn,
		dateColumn: cfg.DateColumn,
		filters:    filters,
		byName:     byName,
		sorts:      sorts,
		fallback: Sort{
			Field:     strings.ToLower(cfg.DefaultSort),
			Column:    defaultColumn,
			IDColumn:  cfg.IDColumn,
			Direction: cfg.DefaultDirection,
		},
	}, nil
}

// MustCatalog is NewCatalog for package-level catalogs; it panics on an
// invalid declaration so a bad catalog fails at startup.
func MustCatalog(cfg CatalogConfig) *Catalog {
	c, err := NewCatalog(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Name of the catalog.
func (c *Catalog) Name() string { return c.name }

// Field looks up a filter by name.
func (c *Catalog) Field(name string) (Field, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// DefaultSort is the sort used for unknown requests.
func (c *Catalog) DefaultSort() Sort { return c.fallback }

package listquery

import (
	"fmt"
	"strings"
)

// likeEscaper escapes LIKE metacharacters so user text is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern wraps value for a case-insensitive substring ILIKE.
func ContainsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// Where renders the period bounds and filters as a SQL boolean expression
// for pgx. Placeholders are numbered from next; the returned arguments are
// in placeholder order. An Empty spec renders as FALSE.
func (s Spec) Where(next int) (string, []any) {
	if s.Empty {
		return "FALSE", nil
	}

	var clauses []string
	var args []any
	placeholder := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", next+len(args)-1)
	}

	if s.DateColumn != "" {
		if s.Period.HasFrom() {
			clauses = append(clauses, fmt.Sprintf("%s >= %s", s.DateColumn, placeholder(s.Period.From)))
		}
		if s.Period.HasTo() {
			clauses = append(clauses, fmt.Sprintf("%s <= %s", s.DateColumn, placeholder(s.Period.To)))
		}
	}

	for _, p := range s.Filters {
		f := p.Field
		switch f.Kind {
		case Text:
			ph := placeholder(ContainsPattern(p.Value))
			parts := make([]string, len(f.Columns))
			for i, col := range f.Columns {
				parts[i] = fmt.Sprintf("%s ILIKE %s", col, ph)
			}
			clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
		case Exact:
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) = LOWER(%s)", f.Columns[0], placeholder(p.Value)))
		case Numeric:
			clauses = append(clauses, fmt.Sprintf("%s = %s", f.Columns[0], placeholder(p.Number)))
		case Flagged:
			match := fmt.Sprintf("%s ILIKE %s", f.Columns[0], placeholder(ContainsPattern(p.Value)))
			if p.Flag {
				match = fmt.Sprintf("(%s OR %s)", match, f.FlagColumn)
			}
			clauses = append(clauses, match)
		}
	}

	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, " AND "), args
}

// OrderBy renders the ORDER BY expression (without the keyword).
func (s Sort) OrderBy() string {
	dir := "DESC"
	if s.Direction == Asc {
		dir = "ASC"
	}
	if s.IDColumn == "" || s.IDColumn == s.Column {
		return fmt.Sprintf("%s %s", s.Column, dir)
	}
	return fmt.Sprintf("%s %s, %s %s", s.Column, dir, s.IDColumn, dir)
}

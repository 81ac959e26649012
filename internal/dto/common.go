package dto

import "github.com/SscSPs/sales_commissions_app/internal/utils/listquery"

// ListMeta echoes the resolved period, sort and filters of a list so
// clients can render the controls in the state the server applied.
type ListMeta struct {
	From      string            `json:"desde"`
	To        string            `json:"hasta"`
	Sort      string            `json:"orden"`
	Direction string            `json:"dir"`
	Filters   map[string]string `json:"filtros"`
}

// ToListMeta converts a resolved spec to ListMeta.
func ToListMeta(spec listquery.Spec) ListMeta {
	filters := make(map[string]string, len(spec.Values))
	for name, value := range spec.Values {
		filters[name] = value
	}
	return ListMeta{
		From:      spec.Period.FromDisplay,
		To:        spec.Period.ToDisplay,
		Sort:      spec.Sort.Field,
		Direction: string(spec.Sort.Direction),
		Filters:   filters,
	}
}

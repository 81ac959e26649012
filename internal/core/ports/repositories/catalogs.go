package repositories

import "github.com/SscSPs/sales_commissions_app/internal/utils/listquery"

// List-view catalogs. Column expressions refer to the table aliases used by
// the storage queries: s (sales), p (sale owner), i (incidents),
// r (incident reporter) and b (bulletins).

// GeneralKeyword in a plate filter widens it to general incidents.
const GeneralKeyword = "general"

// AllSellers is the vendedor value meaning "no seller filter".
const AllSellers = "Todos"

const (
	incidentPlatesExpr = `COALESCE((SELECT string_agg(sx.plate, ', ' ORDER BY sx.plate)
		FROM incident_sales isx JOIN sales sx ON sx.sale_id = isx.sale_id
		WHERE isx.incident_id = i.incident_id), '')`
	incidentGeneralExpr = `(i.is_general OR NOT EXISTS (SELECT 1 FROM incident_sales isg WHERE isg.incident_id = i.incident_id))`
)

var saleSorts = map[string]string{
	"fecha_venta":    "s.sale_date",
	"matricula":      "s.plate",
	"idv":            "s.deal_id",
	"nombre_cliente": "s.buyer_name",
	"tipo_venta":     "s.sale_type",
}

// MySalesCatalog backs a salesperson's own sales list.
var MySalesCatalog = listquery.MustCatalog(listquery.CatalogConfig{
	Name:       "my_sales",
	IDColumn:   "s.sale_id",
	DateColumn: "s.sale_date",
	Filters: []listquery.Field{
		listquery.TextField("matricula", "s.plate"),
		listquery.NumericField("idv", "s.deal_id"),
		listquery.ExactField("tipo_venta", "s.sale_type"),
		listquery.TextField("dni", "s.buyer_tax_id"),
		listquery.ExactField("tipo_cliente", "s.buyer_type"),
		listquery.TextField("nombre_cliente", "s.buyer_name"),
	},
	Sorts:            saleSorts,
	DefaultSort:      "fecha_venta",
	DefaultDirection: listquery.Desc,
})

// ManagementCommissionsCatalog backs the management commissions dashboard.
var ManagementCommissionsCatalog = listquery.MustCatalog(listquery.CatalogConfig{
	Name:       "management_commissions",
	IDColumn:   "s.sale_id",
	DateColumn: "s.sale_date",
	Filters: []listquery.Field{
		listquery.TextField("vendedor", "p.username", "p.first_name", "p.last_name", "s.plate").WithWildcard(AllSellers),
		listquery.NumericField("idv", "s.deal_id"),
		listquery.ExactField("tipo_venta", "s.sale_type"),
		listquery.ExactField("tipo_cliente", "s.buyer_type"),
	},
	Sorts: map[string]string{
		"fecha_venta": "s.sale_date",
		"matricula":   "s.plate",
		"idv":         "s.deal_id",
		"tipo_venta":  "s.sale_type",
		"empleado":    "p.last_name",
	},
	DefaultSort:      "fecha_venta",
	DefaultDirection: listquery.Desc,
})

var incidentSorts = map[string]string{
	"fecha":  "i.incident_date",
	"tipo":   "i.incident_type",
	"estado": "i.status",
}

// MyIncidentsCatalog backs a person's own incident list and detail navigation.
var MyIncidentsCatalog = listquery.MustCatalog(listquery.CatalogConfig{
	Name:       "my_incidents",
	IDColumn:   "i.incident_id",
	DateColumn: "i.incident_date",
	Filters: []listquery.Field{
		listquery.FlaggedField("matricula", incidentPlatesExpr, incidentGeneralExpr, GeneralKeyword),
		listquery.TextField("tipo", "i.incident_type"),
		listquery.ExactField("estado", "i.status"),
	},
	Sorts:            incidentSorts,
	DefaultSort:      "fecha",
	DefaultDirection: listquery.Desc,
})

// ManagementIncidentsCatalog backs the management incidents dashboard.
var ManagementIncidentsCatalog = listquery.MustCatalog(listquery.CatalogConfig{
	Name:       "management_incidents",
	IDColumn:   "i.incident_id",
	DateColumn: "i.incident_date",
	Filters: []listquery.Field{
		listquery.TextField("vendedor", "r.username", "r.first_name", "r.last_name").WithWildcard(AllSellers),
		listquery.FlaggedField("matricula", incidentPlatesExpr, incidentGeneralExpr, GeneralKeyword),
		listquery.TextField("tipo", "i.incident_type"),
		listquery.ExactField("estado", "i.status"),
	},
	Sorts: map[string]string{
		"fecha":    "i.incident_date",
		"tipo":     "i.incident_type",
		"estado":   "i.status",
		"vendedor": "r.last_name",
	},
	DefaultSort:      "fecha",
	DefaultDirection: listquery.Desc,
})

// BulletinsCatalog backs the bulletin list.
var BulletinsCatalog = listquery.MustCatalog(listquery.CatalogConfig{
	Name:       "bulletins",
	IDColumn:   "b.bulletin_id",
	DateColumn: "b.bulletin_date",
	Filters: []listquery.Field{
		listquery.TextField("marca", "b.brand"),
		listquery.TextField("tipo", "b.category"),
	},
	Sorts: map[string]string{
		"fecha":   "b.bulletin_date",
		"boletin": "b.title",
		"marca":   "b.brand",
		"tipo":    "b.category",
	},
	DefaultSort:      "fecha",
	DefaultDirection: listquery.Desc,
})

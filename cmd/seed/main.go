package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_commissions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/core/services"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/SscSPs/sales_commissions_app/internal/platform/database"
	"github.com/SscSPs/sales_commissions_app/internal/repositories/database/pgsql"
	"github.com/shopspring/decimal"
)

// seedActor stands in for an administrator while loading demo data.
var seedActor = domain.Actor{PersonID: "seed", Roles: []domain.Role{domain.RoleAdmin}}

const demoPassword = "Comercial#2026"

type seeder struct {
	logger   *slog.Logger
	repos    portsrepo.RepositoryProvider
	services *portssvc.ServiceContainer
}

func main() {
	reset := flag.Bool("reset", false, "delete all data before seeding")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	s := &seeder{
		logger:   logger,
		repos:    repos,
		services: services.NewServiceContainer(cfg, repos, nil),
	}

	if *reset {
		if err := repos.Maintenance.ResetAll(ctx); err != nil {
			logger.Error("Failed to reset data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("All data deleted")
	}

	if err := s.run(ctx); err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seeding complete", slog.String("password", demoPassword))
}

func (s *seeder) run(ctx context.Context) error {
	admin, err := s.person(ctx, "admin", "Ana", "Administración", "00000000T", domain.RoleAdmin)
	if err != nil {
		return err
	}
	director, err := s.person(ctx, "dcomercial", "Dolores", "Martín", "11111111H", domain.RoleCommercialDirector)
	if err != nil {
		return err
	}
	manager, err := s.person(ctx, "gerente", "Gonzalo", "Pérez", "22222222J", domain.RoleGeneralManager)
	if err != nil {
		return err
	}
	lead, err := s.person(ctx, "jventas", "Julia", "Sánchez", "33333333P", domain.RoleSalesManager, domain.RoleSalesperson)
	if err != nil {
		return err
	}
	seller, err := s.person(ctx, "vendedor1", "Víctor", "Gómez", "44444444A", domain.RoleSalesperson)
	if err != nil {
		return err
	}
	seller2, err := s.person(ctx, "vendedor2", "Laura", "Ortiz", "55555555K", domain.RoleSalesperson)
	if err != nil {
		return err
	}
	s.logger.Info("Persons created", slog.String("admin", admin.PersonID))

	// Top down, so every level finds its superior's links already stored
	assignments := []struct {
		personID string
		req      portssvc.HierarchyAssignment
	}{
		{manager.PersonID, portssvc.HierarchyAssignment{DirectorID: &director.PersonID}},
		{lead.PersonID, portssvc.HierarchyAssignment{ManagerID: &manager.PersonID}},
		{seller.PersonID, portssvc.HierarchyAssignment{SupervisorID: &lead.PersonID}},
		{seller2.PersonID, portssvc.HierarchyAssignment{SupervisorID: &lead.PersonID}},
	}
	for _, a := range assignments {
		if _, err := s.services.Profile.AssignHierarchy(ctx, seedActor, a.personID, a.req); err != nil {
			return fmt.Errorf("assign hierarchy of %s: %w", a.personID, err)
		}
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	sales := []struct {
		owner     *domain.Person
		plate     string
		dealID    int64
		saleType  domain.SaleType
		buyerType domain.BuyerType
		buyer     string
		day       int
		amount    string
		status    domain.CommissionStatus
	}{
		{seller, "1234ABC", 90001, domain.SaleTypeParticular, domain.BuyerTypeIndividual, "María López", 0, "325.50", domain.CommissionApproved},
		{seller, "5678DEF", 90002, domain.SaleTypeRenting, domain.BuyerTypeCorporate, "Transportes Norte SL", 1, "1000", domain.CommissionApproved},
		{seller, "9012GHI", 90003, domain.SaleTypeExempt, domain.BuyerTypeCorporate, "Autoescuela Sur SL", 2, "410", domain.CommissionPending},
		{seller2, "3456JKL", 90004, domain.SaleTypeParticular, domain.BuyerTypeIndividual, "Pedro Ruiz", 3, "280", domain.CommissionRejected},
		{lead, "7890MNO", 90005, domain.SaleTypeRenting, domain.BuyerTypeCorporate, "Logística Centro SA", 4, "", ""},
	}
	var firstSale domain.Sale
	for i, row := range sales {
		ownerID := row.owner.PersonID
		financed := 0
		if row.saleType == domain.SaleTypeRenting {
			financed = 2
		}
		sale := domain.Sale{
			OwnerID:       &ownerID,
			Plate:         row.plate,
			DealID:        row.dealID,
			SaleType:      row.saleType,
			FinancedUnits: &financed,
			BuyerTaxID:    fmt.Sprintf("B%08d", row.dealID),
			BuyerType:     row.buyerType,
			BuyerName:     row.buyer,
			SaleDate:      monthStart.AddDate(0, 0, row.day),
			CreatedAt:     now,
		}
		if err := s.repos.SaleRepo.SaveSale(ctx, &sale); err != nil {
			return fmt.Errorf("save sale %s: %w", row.plate, err)
		}
		if i == 0 {
			firstSale = sale
		}
		if row.amount == "" {
			continue
		}
		amount := decimal.RequireFromString(row.amount)
		commission := domain.Commission{
			SaleID:             sale.SaleID,
			Amount:             amount,
			Revenue:            decimal.NewNullDecimal(amount.Mul(decimal.NewFromInt(20))),
			ComputedCommission: decimal.NewNullDecimal(amount),
			Status:             row.status,
			CreatedAt:          now,
		}
		if err := s.repos.CommissionRepo.SaveCommission(ctx, &commission); err != nil {
			return fmt.Errorf("save commission of %s: %w", row.plate, err)
		}
	}

	sellerActor := domain.Actor{PersonID: seller.PersonID, Roles: seller.Roles}
	incidents := []portssvc.NewIncident{
		{Date: firstSale.SaleDate.Format("2006-01-02"), Plate: firstSale.Plate, Type: "Documentación", Detail: "Falta la ficha técnica en el expediente."},
		{Date: now.Format("2006-01-02"), Plate: domain.GeneralPlate, Type: "Sistema", Detail: "El simulador de financiación no carga."},
	}
	for _, req := range incidents {
		if _, err := s.services.Incident.RegisterIncident(ctx, sellerActor, req); err != nil {
			return fmt.Errorf("register incident %s: %w", req.Plate, err)
		}
	}

	bulletins := []domain.Bulletin{
		{Title: "Campaña de primavera", Brand: "Peugeot", Category: "Comercial", Date: monthStart, Active: true},
		{Title: "Nuevas condiciones de renting", Brand: "Citroën", Category: "Financiación", Date: monthStart.AddDate(0, -1, 0), Active: true},
		{Title: "Retirada de tarifa antigua", Brand: "Peugeot", Category: "Tarifas", Date: monthStart.AddDate(0, -2, 0), Active: false},
	}
	for i := range bulletins {
		if err := s.repos.BulletinRepo.SaveBulletin(ctx, &bulletins[i]); err != nil {
			return fmt.Errorf("save bulletin %q: %w", bulletins[i].Title, err)
		}
	}
	return nil
}

func (s *seeder) person(ctx context.Context, username, firstName, lastName, nationalID string, roles ...domain.Role) (*domain.Person, error) {
	person, err := s.services.Person.CreatePerson(ctx, seedActor, portssvc.NewPerson{
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      username + "@concesionario.local",
		Password:   demoPassword,
		Roles:      roles,
		NationalID: nationalID,
		Site:       "Madrid",
		Area:       domain.AreaSales,
	})
	if err != nil {
		return nil, fmt.Errorf("create person %s: %w", username, err)
	}
	return person, nil
}

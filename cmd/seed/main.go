// Command seed populates the record store with demo data: one apartment
// with a few units, a tenant with an active lease and portal account,
// sample payments and maintenance requests, and a super admin login.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/dovepeak/backend/internal/infrastructure/config"
	"github.com/dovepeak/backend/internal/infrastructure/logger"
	"github.com/dovepeak/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "remove existing store documents before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	store, err := persistence.NewStore(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}
	if !store.Available() {
		log.Fatal("Record store unavailable; set storage.data_dir before seeding")
	}

	if *reset {
		if err := store.Clear(); err != nil {
			log.Fatal("Failed to clear record store", zap.Error(err))
		}
		log.Info("Record store cleared")
	}

	ctx := context.Background()
	if err := seed(ctx, store, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding complete", zap.String("data_dir", cfg.Storage.DataDir))
}

func seed(ctx context.Context, store *persistence.Store, log *zap.Logger) error {
	apartmentRepo := persistence.NewStoreApartmentRepository(store)
	unitRepo := persistence.NewStoreUnitRepository(store)
	tenantRepo := persistence.NewStoreTenantRepository(store)
	paymentRepo := persistence.NewStorePaymentRepository(store)
	requestRepo := persistence.NewStoreMaintenanceRepository(store)
	adminRepo := persistence.NewStoreAdminRepository(store)
	managerRepo := persistence.NewStoreManagerRepository(store)
	accountRepo := persistence.NewStoreTenantAccountRepository(store)

	// Demo credentials, development use only
	admin, err := identity.NewSystemAdmin("admin@dovepeak.example", "Grace", "Wanjiru", "admin-demo-password", identity.AdminRoleSuper, []string{"all"})
	if err != nil {
		return err
	}
	if err := adminRepo.Add(ctx, admin); err != nil {
		return err
	}
	log.Info("Seeded admin", zap.String("email", admin.Email))

	manager, err := identity.NewPropertyManager("manager@dovepeak.example", "Daniel", "Otieno", "+254700000001", "manager-demo-password", identity.ManagerRoleManager)
	if err != nil {
		return err
	}

	apartment, err := property.NewApartment("Riverview Court", "12 Riverside Drive, Nairobi", 6)
	if err != nil {
		return err
	}
	apartment.SetDescription("Six-unit walk-up near the riverside business park")
	if err := apartmentRepo.Add(ctx, apartment); err != nil {
		return err
	}

	manager.AssignProperty(apartment.ID)
	if err := managerRepo.Add(ctx, manager); err != nil {
		return err
	}
	log.Info("Seeded manager", zap.String("email", manager.Email))

	rent := decimal.NewFromInt(45000)
	deposit := decimal.NewFromInt(45000)

	units := make([]*property.Unit, 0, 3)
	for _, spec := range []struct {
		number string
		kind   property.UnitType
		size   int
	}{
		{"A1", property.UnitTypeOneBedroom, 55},
		{"A2", property.UnitTypeTwoBedroom, 78},
		{"B1", property.UnitTypeStudio, 38},
	} {
		unit, err := property.NewUnit(apartment.ID, spec.number, spec.kind, spec.size, rent, deposit)
		if err != nil {
			return err
		}
		if err := unitRepo.Add(ctx, unit); err != nil {
			return err
		}
		units = append(units, unit)
	}
	log.Info("Seeded units", zap.Int("count", len(units)))

	// Tenant with an active lease in unit A1
	leaseStart := time.Now().AddDate(0, -6, 0)
	leaseEnd := leaseStart.AddDate(1, 0, 0)
	tenant, err := tenancy.NewTenant(units[0].ID, apartment.ID, "Amina", "Hassan", "amina.hassan@example.com", "+254711000002", "30112233", leaseStart, leaseEnd, rent, deposit)
	if err != nil {
		return err
	}
	if err := tenantRepo.Add(ctx, tenant); err != nil {
		return err
	}

	if err := units[0].SetStatus(property.UnitStatusOccupied); err != nil {
		return err
	}
	if err := unitRepo.Update(ctx, units[0]); err != nil {
		return err
	}

	account, err := identity.NewTenantAccount(tenant, "tenant-demo-password")
	if err != nil {
		return err
	}
	if err := accountRepo.Add(ctx, account); err != nil {
		return err
	}
	log.Info("Seeded tenant and portal account", zap.String("email", tenant.Email))

	// One settled and one upcoming rent payment
	paid, err := billing.NewPayment(tenant.ID, tenant.UnitID, tenant.ApartmentID, rent, time.Now().AddDate(0, -1, 0))
	if err != nil {
		return err
	}
	if err := paid.MarkPaid(time.Now().AddDate(0, -1, 2), billing.PaymentMethodMobile, "MPESA-TX-001"); err != nil {
		return err
	}
	if err := paymentRepo.Add(ctx, paid); err != nil {
		return err
	}

	upcoming, err := billing.NewPayment(tenant.ID, tenant.UnitID, tenant.ApartmentID, rent, time.Now().AddDate(0, 0, 14))
	if err != nil {
		return err
	}
	if err := paymentRepo.Add(ctx, upcoming); err != nil {
		return err
	}

	request, err := maintenance.NewRequest(tenant.ID, tenant.UnitID, tenant.ApartmentID, "Leaking kitchen tap", "Tap drips continuously even when fully closed", maintenance.CategoryPlumbing, maintenance.PriorityMedium)
	if err != nil {
		return err
	}
	if err := requestRepo.Add(ctx, request); err != nil {
		return err
	}

	return nil
}

package report

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
)

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalApartments    int             `json:"totalApartments"`
	TotalUnits         int             `json:"totalUnits"`
	OccupiedUnits      int             `json:"occupiedUnits"`
	VacantUnits        int             `json:"vacantUnits"`
	MaintenanceUnits   int             `json:"maintenanceUnits"`
	OccupancyRate      float64         `json:"occupancyRate"`
	TotalTenants       int             `json:"totalTenants"`
	ActiveTenants      int             `json:"activeTenants"`
	MonthlyRevenue     decimal.Decimal `json:"monthlyRevenue"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	OverdueCount       int             `json:"overdueCount"`
	OverdueAmount      decimal.Decimal `json:"overdueAmount"`
	ActiveMaintenance  int             `json:"activeMaintenance"`
	PendingMaintenance int             `json:"pendingMaintenance"`
}

// BuildDashboardStats assembles the admin dashboard from full entity snapshots
func BuildDashboardStats(
	apartments []property.Apartment,
	units []property.Unit,
	tenants []tenancy.Tenant,
	payments []billing.Payment,
	requests []maintenance.Request,
) DashboardStats {
	counts := CountUnitStatuses(units)

	activeTenants := 0
	for _, t := range tenants {
		if t.IsActive() {
			activeTenants++
		}
	}

	overdueCount := 0
	for _, p := range payments {
		if p.Status == billing.PaymentStatusOverdue {
			overdueCount++
		}
	}

	pendingMaintenance := 0
	for _, r := range requests {
		if r.Status == maintenance.StatusPending {
			pendingMaintenance++
		}
	}

	return DashboardStats{
		TotalApartments:    len(apartments),
		TotalUnits:         counts.Total,
		OccupiedUnits:      counts.Occupied,
		VacantUnits:        counts.Vacant,
		MaintenanceUnits:   counts.Maintenance,
		OccupancyRate:      OccupancyRate(units),
		TotalTenants:       len(tenants),
		ActiveTenants:      activeTenants,
		MonthlyRevenue:     RevenueTotal(payments),
		PendingAmount:      PendingTotal(payments),
		OverdueCount:       overdueCount,
		OverdueAmount:      OverdueBalance(payments),
		ActiveMaintenance:  ActiveMaintenanceCount(requests),
		PendingMaintenance: pendingMaintenance,
	}
}

// TenantDashboardStats is the tenant portal summary
type TenantDashboardStats struct {
	CurrentRent        decimal.Decimal       `json:"currentRent"`
	NextDueDate        *time.Time            `json:"nextDueDate,omitempty"`
	PaymentStatus      billing.PaymentStatus `json:"paymentStatus"`
	TotalPaid          decimal.Decimal       `json:"totalPaid"`
	OutstandingBalance decimal.Decimal       `json:"outstandingBalance"`
	DaysUntilLeaseEnd  int                   `json:"daysUntilLeaseEnd"`
	LeaseExpiringSoon  bool                  `json:"leaseExpiringSoon"`
	OpenRequests       int                   `json:"openRequests"`
	Notifications      int                   `json:"notifications"`
}

// BuildTenantDashboardStats assembles a tenant's portal summary from their
// own payments and requests. The payment slices must already be filtered to
// the tenant; notificationCount is the number addressed to them.
func BuildTenantDashboardStats(
	tenant *tenancy.Tenant,
	payments []billing.Payment,
	requests []maintenance.Request,
	notificationCount int,
	now time.Time,
) TenantDashboardStats {
	stats := TenantDashboardStats{
		CurrentRent:        tenant.RentAmount,
		PaymentStatus:      billing.PaymentStatusPaid,
		TotalPaid:          decimal.Zero,
		OutstandingBalance: decimal.Zero,
		DaysUntilLeaseEnd:  DaysUntilLeaseExpiry(tenant.LeaseEnd, now),
		LeaseExpiringSoon:  IsLeaseExpiringSoon(tenant.LeaseEnd, now),
		Notifications:      notificationCount,
	}

	for _, p := range payments {
		switch p.Status {
		case billing.PaymentStatusPaid:
			stats.TotalPaid = stats.TotalPaid.Add(p.Amount)
		case billing.PaymentStatusPending, billing.PaymentStatusOverdue, billing.PaymentStatusPartial:
			stats.OutstandingBalance = stats.OutstandingBalance.Add(p.TotalDue())
			if stats.NextDueDate == nil || p.DueDate.Before(*stats.NextDueDate) {
				due := p.DueDate
				stats.NextDueDate = &due
				stats.PaymentStatus = p.Status
			}
		}
	}

	for _, r := range requests {
		if r.IsActive() {
			stats.OpenRequests++
		}
	}

	return stats
}

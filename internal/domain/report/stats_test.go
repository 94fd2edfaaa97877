package report

import (
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/dovepeak/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func unitsWithStatuses(statuses ...property.UnitStatus) []property.Unit {
	units := make([]property.Unit, 0, len(statuses))
	for _, s := range statuses {
		units = append(units, property.Unit{Status: s})
	}
	return units
}

func paymentWith(status billing.PaymentStatus, amount int64) billing.Payment {
	return billing.Payment{Status: status, Amount: decimal.NewFromInt(amount)}
}

func TestCountUnitStatuses(t *testing.T) {
	units := unitsWithStatuses(
		property.UnitStatusOccupied,
		property.UnitStatusOccupied,
		property.UnitStatusVacant,
		property.UnitStatusMaintenance,
	)

	counts := CountUnitStatuses(units)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.Occupied)
	assert.Equal(t, 1, counts.Vacant)
	assert.Equal(t, 1, counts.Maintenance)
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(nil))

	full := unitsWithStatuses(property.UnitStatusOccupied, property.UnitStatusOccupied)
	assert.Equal(t, 100.0, OccupancyRate(full))

	half := unitsWithStatuses(property.UnitStatusOccupied, property.UnitStatusVacant)
	assert.Equal(t, 50.0, OccupancyRate(half))
}

func TestCollectionRate(t *testing.T) {
	assert.Equal(t, 0.0, CollectionRate(nil))

	payments := []billing.Payment{
		paymentWith(billing.PaymentStatusPaid, 30000),
		paymentWith(billing.PaymentStatusPending, 10000),
		paymentWith(billing.PaymentStatusOverdue, 10000),
	}
	assert.InDelta(t, 60.0, CollectionRate(payments), 0.001)
}

func TestOverdueBalance_IncludesPenalty(t *testing.T) {
	penalty := decimal.NewFromInt(2500)
	overdue := paymentWith(billing.PaymentStatusOverdue, 45000)
	overdue.Penalty = &penalty

	payments := []billing.Payment{
		overdue,
		paymentWith(billing.PaymentStatusOverdue, 45000),
		paymentWith(billing.PaymentStatusPaid, 45000),
	}

	balance := OverdueBalance(payments)
	assert.True(t, balance.Equal(decimal.NewFromInt(92500)))

	// OverdueTotal reports the billed amounts alone
	assert.True(t, OverdueTotal(payments).Equal(decimal.NewFromInt(90000)))
}

func TestDaysUntilLeaseExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	// Ends later today, after truncation that is 0 days away
	assert.Equal(t, 0, DaysUntilLeaseExpiry(time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 1, DaysUntilLeaseExpiry(time.Date(2026, 3, 16, 1, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -1, DaysUntilLeaseExpiry(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC), now))
}

func TestDaysUntilLeaseExpiry_MixedZones(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*3600)
	auckland := time.FixedZone("NZDT", 13*3600)

	// Same civil dates in different zones: the count only depends on the dates
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, nairobi)
	leaseEnd := time.Date(2026, 3, 17, 23, 30, 0, 0, auckland)
	assert.Equal(t, 2, DaysUntilLeaseExpiry(leaseEnd, now))
	assert.Equal(t, 2, DaysUntilLeaseExpiry(leaseEnd.UTC(), now.UTC()))

	// An offset on either side never adds or drops a day
	assert.Equal(t, 1, DaysUntilLeaseExpiry(
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600))))
}

func TestIsLeaseExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsLeaseExpiringSoon(now.AddDate(0, 0, 60), now))
	assert.False(t, IsLeaseExpiringSoon(now.AddDate(0, 0, 61), now))
	assert.True(t, IsLeaseExpiringSoon(now, now))

	// A lease that already ended stays flagged until it is renewed
	assert.True(t, IsLeaseExpiringSoon(now.AddDate(0, 0, -5), now))
}

func TestBuildDashboardStats(t *testing.T) {
	units := unitsWithStatuses(
		property.UnitStatusOccupied,
		property.UnitStatusVacant,
		property.UnitStatusVacant,
		property.UnitStatusMaintenance,
	)
	tenants := []tenancy.Tenant{
		{Status: tenancy.TenantStatusActive},
		{Status: tenancy.TenantStatusTerminated},
	}
	payments := []billing.Payment{
		paymentWith(billing.PaymentStatusPaid, 45000),
		paymentWith(billing.PaymentStatusPending, 45000),
		paymentWith(billing.PaymentStatusOverdue, 45000),
	}
	requests := []maintenance.Request{
		{Status: maintenance.StatusPending},
		{Status: maintenance.StatusInProgress},
		{Status: maintenance.StatusCompleted},
	}

	stats := BuildDashboardStats([]property.Apartment{{}}, units, tenants, payments, requests)

	assert.Equal(t, 1, stats.TotalApartments)
	assert.Equal(t, 4, stats.TotalUnits)
	assert.Equal(t, 1, stats.OccupiedUnits)
	assert.Equal(t, 2, stats.VacantUnits)
	assert.Equal(t, 25.0, stats.OccupancyRate)
	assert.Equal(t, 2, stats.TotalTenants)
	assert.Equal(t, 1, stats.ActiveTenants)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(45000)))
	assert.True(t, stats.PendingAmount.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, 1, stats.OverdueCount)
	assert.True(t, stats.OverdueAmount.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, 2, stats.ActiveMaintenance)
	assert.Equal(t, 1, stats.PendingMaintenance)
}

func TestBuildTenantDashboardStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tenant := &tenancy.Tenant{
		RentAmount: decimal.NewFromInt(45000),
		LeaseEnd:   now.AddDate(0, 0, 30),
		Status:     tenancy.TenantStatusActive,
	}

	penalty := decimal.NewFromInt(1000)
	overdue := paymentWith(billing.PaymentStatusOverdue, 45000)
	overdue.DueDate = now.AddDate(0, -1, 0)
	overdue.Penalty = &penalty

	pending := paymentWith(billing.PaymentStatusPending, 45000)
	pending.DueDate = now.AddDate(0, 0, 14)

	paid := paymentWith(billing.PaymentStatusPaid, 45000)

	requests := []maintenance.Request{
		{Status: maintenance.StatusPending},
		{Status: maintenance.StatusCancelled},
	}

	stats := BuildTenantDashboardStats(tenant, []billing.Payment{pending, overdue, paid}, requests, 3, now)

	assert.True(t, stats.CurrentRent.Equal(decimal.NewFromInt(45000)))
	assert.True(t, stats.TotalPaid.Equal(decimal.NewFromInt(45000)))
	assert.True(t, stats.OutstandingBalance.Equal(decimal.NewFromInt(91000)))

	// The earliest unsettled payment drives the headline status and due date
	assert.Equal(t, billing.PaymentStatusOverdue, stats.PaymentStatus)
	if assert.NotNil(t, stats.NextDueDate) {
		assert.Equal(t, overdue.DueDate, *stats.NextDueDate)
	}

	assert.Equal(t, 30, stats.DaysUntilLeaseEnd)
	assert.True(t, stats.LeaseExpiringSoon)
	assert.Equal(t, 1, stats.OpenRequests)
	assert.Equal(t, 3, stats.Notifications)
}

// Package report holds the pure aggregation functions behind the dashboards.
// Every function recomputes from the slices it is given; nothing is cached.
package report

import (
	"time"

	"github.com/dovepeak/backend/internal/domain/billing"
	"github.com/dovepeak/backend/internal/domain/maintenance"
	"github.com/dovepeak/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// leaseExpiringSoonDays is the countdown threshold for the expiring-soon flag
const leaseExpiringSoonDays = 60

// UnitStatusCounts is the occupancy breakdown of a unit population
type UnitStatusCounts struct {
	Total       int `json:"total"`
	Occupied    int `json:"occupied"`
	Vacant      int `json:"vacant"`
	Maintenance int `json:"maintenance"`
}

// CountUnitStatuses tallies units by status
func CountUnitStatuses(units []property.Unit) UnitStatusCounts {
	counts := UnitStatusCounts{Total: len(units)}
	for _, u := range units {
		switch u.Status {
		case property.UnitStatusOccupied:
			counts.Occupied++
		case property.UnitStatusVacant:
			counts.Vacant++
		case property.UnitStatusMaintenance:
			counts.Maintenance++
		}
	}
	return counts
}

// OccupancyRate returns occupied units as a percentage of all units.
// An empty population yields 0, not a division error.
func OccupancyRate(units []property.Unit) float64 {
	if len(units) == 0 {
		return 0
	}
	counts := CountUnitStatuses(units)
	return float64(counts.Occupied) / float64(counts.Total) * 100
}

// RevenueTotal sums the amounts of paid payments
func RevenueTotal(payments []billing.Payment) decimal.Decimal {
	return sumByStatus(payments, billing.PaymentStatusPaid)
}

// PendingTotal sums the amounts of pending payments
func PendingTotal(payments []billing.Payment) decimal.Decimal {
	return sumByStatus(payments, billing.PaymentStatusPending)
}

// OverdueTotal sums the amounts of overdue payments, penalties excluded
func OverdueTotal(payments []billing.Payment) decimal.Decimal {
	return sumByStatus(payments, billing.PaymentStatusOverdue)
}

// OverdueBalance sums amount plus penalty across overdue payments.
// A payment without a penalty contributes its amount alone.
func OverdueBalance(payments []billing.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == billing.PaymentStatusOverdue {
			total = total.Add(p.TotalDue())
		}
	}
	return total
}

// CollectionRate returns paid amounts as a percentage of all billed amounts
// (paid + pending + overdue). Zero billing yields 0.
func CollectionRate(payments []billing.Payment) float64 {
	paid := RevenueTotal(payments)
	billed := paid.Add(PendingTotal(payments)).Add(OverdueTotal(payments))
	if billed.IsZero() {
		return 0
	}
	rate, _ := paid.Div(billed).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}

// ActiveMaintenanceCount counts requests that are neither completed nor cancelled
func ActiveMaintenanceCount(requests []maintenance.Request) int {
	count := 0
	for _, r := range requests {
		if r.IsActive() {
			count++
		}
	}
	return count
}

// DaysUntilLeaseExpiry returns the whole calendar days from now until the
// lease end date. Both instants are reduced to their civil dates in UTC
// first, so a lease ending later today counts as 0 and yesterday counts
// as -1 regardless of the zones or DST offsets the values carry.
func DaysUntilLeaseExpiry(leaseEnd, now time.Time) int {
	end := civilDate(leaseEnd)
	today := civilDate(now)
	return int(end.Sub(today) / (24 * time.Hour))
}

// IsLeaseExpiringSoon reports whether the lease end date is at most 60
// days away. Leases that already ended stay flagged until renewal.
func IsLeaseExpiringSoon(leaseEnd, now time.Time) bool {
	return DaysUntilLeaseExpiry(leaseEnd, now) <= leaseExpiringSoonDays
}

func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sumByStatus(payments []billing.Payment, status billing.PaymentStatus) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == status {
			total = total.Add(p.Amount)
		}
	}
	return total
}

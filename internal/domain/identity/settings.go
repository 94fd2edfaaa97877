package identity

import (
	"strings"

	"github.com/dovepeak/backend/internal/domain/shared"
)

// EmailSettings configures outbound email dispatch
type EmailSettings struct {
	FromAddress string `json:"fromAddress"`
	FromName    string `json:"fromName"`
	Enabled     bool   `json:"enabled"`
}

// SMSSettings configures outbound SMS dispatch
type SMSSettings struct {
	SenderID string `json:"senderId"`
	Enabled  bool   `json:"enabled"`
}

// PaymentSettings configures billing behaviour
type PaymentSettings struct {
	DueDay           int    `json:"dueDay"`
	LateFeePercent   int    `json:"lateFeePercent"`
	GracePeriodDays  int    `json:"gracePeriodDays"`
	AcceptedMethods  string `json:"acceptedMethods"`
	RemindersEnabled bool   `json:"remindersEnabled"`
}

// Settings is the site-wide configuration singleton
type Settings struct {
	shared.BaseEntity
	SiteName            string          `json:"siteName"`
	SiteDescription     string          `json:"siteDescription"`
	Currency            string          `json:"currency"`
	Timezone            string          `json:"timezone"`
	MaintenanceMode     bool            `json:"maintenanceMode"`
	RegistrationEnabled bool            `json:"registrationEnabled"`
	Email               EmailSettings   `json:"email"`
	SMS                 SMSSettings     `json:"sms"`
	Payment             PaymentSettings `json:"payment"`
}

// DefaultSettings returns the settings used before an admin saves any
func DefaultSettings() *Settings {
	return &Settings{
		BaseEntity:          shared.NewBaseEntity(),
		SiteName:            "Dovepeak Property Management",
		SiteDescription:     "Apartment and tenant management portal",
		Currency:            "KES",
		Timezone:            "Africa/Nairobi",
		MaintenanceMode:     false,
		RegistrationEnabled: false,
		Email: EmailSettings{
			FromName: "Dovepeak Properties",
			Enabled:  false,
		},
		SMS: SMSSettings{
			SenderID: "DOVEPEAK",
			Enabled:  false,
		},
		Payment: PaymentSettings{
			DueDay:           5,
			LateFeePercent:   5,
			GracePeriodDays:  3,
			AcceptedMethods:  "cash,bank,mobile",
			RemindersEnabled: true,
		},
	}
}

// Validate checks the settings for obvious misconfiguration
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.SiteName) == "" {
		return shared.NewDomainError("INVALID_SITE_NAME", "Site name cannot be empty")
	}
	if strings.TrimSpace(s.Currency) == "" {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	if s.Payment.DueDay < 1 || s.Payment.DueDay > 28 {
		return shared.NewDomainError("INVALID_DUE_DAY", "Payment due day must be between 1 and 28")
	}
	if s.Payment.LateFeePercent < 0 || s.Payment.LateFeePercent > 100 {
		return shared.NewDomainError("INVALID_LATE_FEE", "Late fee percent must be between 0 and 100")
	}
	return nil
}

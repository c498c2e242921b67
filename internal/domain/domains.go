package domain

// Store keys for each persisted domain sequence. The keys keep the naming of
// the browser-era data files, so an exported store stays recognizable.
const (
	DomainCustomers   = "crm-customers"
	DomainTours       = "crm-tours"
	DomainBookings    = "crm-bookings"
	DomainCommissions = "crm-commissions"
	DomainSettings    = "crm-settings"
	DomainActivity    = "crm-activity"
)

package config

import (
	"errors"
	"fmt"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
)

var (
	// ErrServiceNotConfigured is returned when no catalog entry exists for a service key
	ErrServiceNotConfigured = errors.New("config: service not configured")
)

// ServiceEntry is one resolved catalog entry, keyed by canonical service key
type ServiceEntry struct {
	Key              domain.ServiceKey
	Treatment        domain.Treatment
	Mode             domain.DeliveryMode
	CalendarID       string
	StaffIDs         []string
	PreferredStaffID string
	DurationMinutes  int
	PriceEUR         float64
}

// Catalog resolves (treatment, mode) and raw service keys to their
// configuration: upstream calendar id, eligible staff, preferred staff,
// duration and price
type Catalog struct {
	entries map[domain.ServiceKey]*ServiceEntry
}

// BuildCatalog validates the [services.*] blocks and indexes them by
// canonical service key. Any inconsistency is a configuration error and
// must fail startup, never an aggregation call.
func BuildCatalog(cfg *Config) (*Catalog, error) {
	entries := make(map[domain.ServiceKey]*ServiceEntry)

	for treatment, modes := range cfg.Services {
		for mode, svc := range modes {
			if mode != string(domain.ModeOnline) && mode != string(domain.ModeOnsite) {
				return nil, fmt.Errorf("config: services.%s: unknown delivery mode %q", treatment, mode)
			}
			// The CEO consultation has a single upstream calendar; configuring
			// an onsite variant would silently shadow the canonical key.
			if treatment == string(domain.TreatmentCEOConsult) && mode != string(domain.ModeOnline) {
				return nil, fmt.Errorf("config: services.%s: only the online mode may be configured", treatment)
			}
			if svc.CalendarID == "" {
				return nil, fmt.Errorf("config: services.%s.%s: calendar_id is required", treatment, mode)
			}
			if svc.DurationMinutes <= 0 {
				return nil, fmt.Errorf("config: services.%s.%s: duration_minutes must be positive", treatment, mode)
			}
			if len(svc.StaffIDs) == 0 {
				return nil, fmt.Errorf("config: services.%s.%s: staff_ids must not be empty", treatment, mode)
			}
			if svc.PreferredStaffID != "" && !contains(svc.StaffIDs, svc.PreferredStaffID) {
				return nil, fmt.Errorf("config: services.%s.%s: preferred_staff_id %q is not in staff_ids",
					treatment, mode, svc.PreferredStaffID)
			}

			key, err := domain.ResolveServiceKey(domain.Treatment(treatment), domain.DeliveryMode(mode))
			if err != nil {
				return nil, fmt.Errorf("config: services.%s.%s: %w", treatment, mode, err)
			}
			if _, exists := entries[key]; exists {
				return nil, fmt.Errorf("config: duplicate service key %s", key)
			}

			entries[key] = &ServiceEntry{
				Key:              key,
				Treatment:        domain.Treatment(treatment),
				Mode:             domain.DeliveryMode(mode),
				CalendarID:       svc.CalendarID,
				StaffIDs:         svc.StaffIDs,
				PreferredStaffID: svc.PreferredStaffID,
				DurationMinutes:  svc.DurationMinutes,
				PriceEUR:         svc.PriceEUR,
			}
		}
	}

	return &Catalog{entries: entries}, nil
}

// ByKey returns the entry for a raw service key, normalizing it first
func (c *Catalog) ByKey(key domain.ServiceKey) (*ServiceEntry, error) {
	entry, ok := c.entries[domain.NormalizeServiceKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotConfigured, key)
	}
	return entry, nil
}

// ByService returns the entry for a (treatment, mode) pair
func (c *Catalog) ByService(treatment domain.Treatment, mode domain.DeliveryMode) (*ServiceEntry, error) {
	key, err := domain.ResolveServiceKey(treatment, mode)
	if err != nil {
		return nil, err
	}
	return c.ByKey(key)
}

// PreferredStaff returns the configured preferred staff id for a service key,
// or false when none is configured
func (c *Catalog) PreferredStaff(key domain.ServiceKey) (string, bool) {
	entry, ok := c.entries[domain.NormalizeServiceKey(key)]
	if !ok || entry.PreferredStaffID == "" {
		return "", false
	}
	return entry.PreferredStaffID, true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
)

func baseServices() map[string]map[string]ServiceConfig {
	return map[string]map[string]ServiceConfig{
		"haartransplantatie": {
			"onsite": {
				CalendarID:       "cal-ht-onsite",
				StaffIDs:         []string{"staff-emre", "staff-lale"},
				PreferredStaffID: "staff-emre",
				DurationMinutes:  45,
			},
		},
		"ceo_consult": {
			"online": {
				CalendarID:      "cal-ceo",
				StaffIDs:        []string{"staff-ceo"},
				DurationMinutes: 30,
			},
		},
	}
}

func TestBuildCatalog_ResolvesByServiceAndKey(t *testing.T) {
	catalog, err := BuildCatalog(&Config{Services: baseServices()})
	require.NoError(t, err)

	entry, err := catalog.ByService(domain.TreatmentHairTransplant, domain.ModeOnsite)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceKey("haartransplantatie_onsite"), entry.Key)
	assert.Equal(t, "cal-ht-onsite", entry.CalendarID)

	byKey, err := catalog.ByKey("haartransplantatie_onsite")
	require.NoError(t, err)
	assert.Equal(t, entry, byKey)
}

func TestBuildCatalog_CEOConsultResolvesBothModes(t *testing.T) {
	catalog, err := BuildCatalog(&Config{Services: baseServices()})
	require.NoError(t, err)

	online, err := catalog.ByService(domain.TreatmentCEOConsult, domain.ModeOnline)
	require.NoError(t, err)
	onsite, err := catalog.ByService(domain.TreatmentCEOConsult, domain.ModeOnsite)
	require.NoError(t, err)

	assert.Equal(t, domain.CEOConsultKey, online.Key)
	assert.Equal(t, online, onsite)
}

func TestBuildCatalog_RejectsCEOConsultOnsiteBlock(t *testing.T) {
	services := baseServices()
	services["ceo_consult"]["onsite"] = ServiceConfig{
		CalendarID:      "cal-ceo-2",
		StaffIDs:        []string{"staff-ceo"},
		DurationMinutes: 30,
	}

	_, err := BuildCatalog(&Config{Services: services})
	assert.Error(t, err)
}

func TestBuildCatalog_RejectsInvalidEntries(t *testing.T) {
	mutate := map[string]func(map[string]map[string]ServiceConfig){
		"unknown mode": func(s map[string]map[string]ServiceConfig) {
			s["haartransplantatie"]["telefonisch"] = s["haartransplantatie"]["onsite"]
		},
		"missing calendar": func(s map[string]map[string]ServiceConfig) {
			e := s["haartransplantatie"]["onsite"]
			e.CalendarID = ""
			s["haartransplantatie"]["onsite"] = e
		},
		"no staff": func(s map[string]map[string]ServiceConfig) {
			e := s["haartransplantatie"]["onsite"]
			e.StaffIDs = nil
			s["haartransplantatie"]["onsite"] = e
		},
		"preferred not in staff": func(s map[string]map[string]ServiceConfig) {
			e := s["haartransplantatie"]["onsite"]
			e.PreferredStaffID = "staff-onbekend"
			s["haartransplantatie"]["onsite"] = e
		},
		"zero duration": func(s map[string]map[string]ServiceConfig) {
			e := s["haartransplantatie"]["onsite"]
			e.DurationMinutes = 0
			s["haartransplantatie"]["onsite"] = e
		},
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			services := baseServices()
			fn(services)

			_, err := BuildCatalog(&Config{Services: services})
			assert.Error(t, err)
		})
	}
}

func TestCatalog_UnknownServiceKey(t *testing.T) {
	catalog, err := BuildCatalog(&Config{Services: baseServices()})
	require.NoError(t, err)

	_, err = catalog.ByKey("tandheelkunde_onsite")
	assert.ErrorIs(t, err, ErrServiceNotConfigured)
}

func TestCatalog_PreferredStaff(t *testing.T) {
	catalog, err := BuildCatalog(&Config{Services: baseServices()})
	require.NoError(t, err)

	id, ok := catalog.PreferredStaff("haartransplantatie_onsite")
	assert.True(t, ok)
	assert.Equal(t, "staff-emre", id)

	// none configured for the CEO consultation in this fixture
	_, ok = catalog.PreferredStaff(domain.CEOConsultKey)
	assert.False(t, ok)
}

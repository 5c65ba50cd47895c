package assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	rows []*domain.SlotRow
	err  error
}

func (r *fakeSlotRepo) ListByServiceAndDate(_ context.Context, key domain.ServiceKey, date types.DateString) ([]*domain.SlotRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.SlotRow
	for _, row := range r.rows {
		if row.ServiceKey == key && row.Date == date {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	preferred map[domain.ServiceKey]string
}

func (c *fakeCatalog) PreferredStaff(key domain.ServiceKey) (string, bool) {
	id, ok := c.preferred[key]
	return id, ok
}

func staffRow(key domain.ServiceKey, date types.DateString, staffID, staffName string, slots []string) *domain.SlotRow {
	return &domain.SlotRow{
		ServiceKey:   key,
		Date:         date,
		StaffID:      staffID,
		StaffName:    staffName,
		TimeSlots:    slots,
		SyncStatus:   domain.SyncStatusSuccess,
		LastSyncedAt: time.Now(),
	}
}

func TestSelectStaff_PreferredStaffWins(t *testing.T) {
	key := domain.ServiceKey("haartransplantatie_onsite")
	date := types.DateString("2025-03-10")

	repo := &fakeSlotRepo{rows: []*domain.SlotRow{
		staffRow(key, date, "staff-aaa", "Aylin", []string{"09:00", "10:00"}),
		staffRow(key, date, "staff-emre", "Emre", []string{"10:00"}),
	}}
	catalog := &fakeCatalog{preferred: map[domain.ServiceKey]string{key: "staff-emre"}}

	assignment, err := NewService(repo, catalog, nopLogger{}).SelectStaff(context.Background(), key, date, "10:00")
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.Equal(t, "staff-emre", assignment.StaffID)
	assert.Equal(t, "Emre", assignment.StaffName)
}

func TestSelectStaff_FallsBackWhenPreferredLacksTime(t *testing.T) {
	key := domain.ServiceKey("haartransplantatie_onsite")
	date := types.DateString("2025-03-10")

	repo := &fakeSlotRepo{rows: []*domain.SlotRow{
		staffRow(key, date, "staff-lale", "Lale", []string{"10:00"}),
		staffRow(key, date, "staff-emre", "Emre", []string{"09:00"}),
	}}
	catalog := &fakeCatalog{preferred: map[domain.ServiceKey]string{key: "staff-emre"}}

	assignment, err := NewService(repo, catalog, nopLogger{}).SelectStaff(context.Background(), key, date, "10:00")
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.Equal(t, "staff-lale", assignment.StaffID)
}

func TestSelectStaff_DeterministicFallbackOrder(t *testing.T) {
	key := domain.ServiceKey("haartransplantatie_onsite")
	date := types.DateString("2025-03-10")

	// Rows deliberately out of id order; the lowest staff id must win
	// regardless of backend row order.
	repo := &fakeSlotRepo{rows: []*domain.SlotRow{
		staffRow(key, date, "staff-mert", "Mert", []string{"10:00"}),
		staffRow(key, date, "staff-aaa", "Aylin", []string{"10:00"}),
		staffRow(key, date, "staff-lale", "Lale", []string{"10:00"}),
	}}
	catalog := &fakeCatalog{}

	assignment, err := NewService(repo, catalog, nopLogger{}).SelectStaff(context.Background(), key, date, "10:00")
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.Equal(t, "staff-aaa", assignment.StaffID)
}

func TestSelectStaff_NoStaffCarriesTime(t *testing.T) {
	key := domain.ServiceKey("haartransplantatie_onsite")
	date := types.DateString("2025-03-10")

	repo := &fakeSlotRepo{rows: []*domain.SlotRow{
		staffRow(key, date, "staff-emre", "Emre", []string{"09:00"}),
	}}

	assignment, err := NewService(repo, &fakeCatalog{}, nopLogger{}).SelectStaff(context.Background(), key, date, "10:00")
	require.NoError(t, err)

	assert.Nil(t, assignment)
}

func TestSelectStaff_IgnoresFailedSyncRows(t *testing.T) {
	key := domain.ServiceKey("haartransplantatie_onsite")
	date := types.DateString("2025-03-10")

	failed := staffRow(key, date, "staff-emre", "Emre", []string{"10:00"})
	failed.SyncStatus = domain.SyncStatusFailed

	repo := &fakeSlotRepo{rows: []*domain.SlotRow{failed}}

	assignment, err := NewService(repo, &fakeCatalog{}, nopLogger{}).SelectStaff(context.Background(), key, date, "10:00")
	require.NoError(t, err)

	assert.Nil(t, assignment)
}

func TestSelectStaff_NormalizesCEOConsultKey(t *testing.T) {
	date := types.DateString("2025-03-10")

	repo := &fakeSlotRepo{rows: []*domain.SlotRow{
		staffRow(domain.CEOConsultKey, date, "staff-ceo", "Directeur", []string{"14:00"}),
	}}
	catalog := &fakeCatalog{preferred: map[domain.ServiceKey]string{domain.CEOConsultKey: "staff-ceo"}}
	svc := NewService(repo, catalog, nopLogger{})

	assignment, err := svc.SelectStaff(context.Background(), "ceo_consult_onsite", date, "14:00")
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.Equal(t, "staff-ceo", assignment.StaffID)
}

func TestSelectStaff_RepositoryErrorWrapped(t *testing.T) {
	repo := &fakeSlotRepo{err: errors.New("connection refused")}

	_, err := NewService(repo, &fakeCatalog{}, nopLogger{}).SelectStaff(context.Background(), "haartransplantatie_onsite", "2025-03-10", "10:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

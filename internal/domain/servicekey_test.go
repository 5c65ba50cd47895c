package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveServiceKey(t *testing.T) {
	key, err := ResolveServiceKey(TreatmentHairTransplant, ModeOnsite)
	require.NoError(t, err)
	assert.Equal(t, ServiceKey("haartransplantatie_onsite"), key)

	key, err = ResolveServiceKey(TreatmentPRP, ModeOnline)
	require.NoError(t, err)
	assert.Equal(t, ServiceKey("prp_behandeling_online"), key)
}

func TestResolveServiceKey_CEOConsultAlwaysCanonical(t *testing.T) {
	online, err := ResolveServiceKey(TreatmentCEOConsult, ModeOnline)
	require.NoError(t, err)
	onsite, err2 := ResolveServiceKey(TreatmentCEOConsult, ModeOnsite)
	require.NoError(t, err2)

	assert.Equal(t, CEOConsultKey, online)
	assert.Equal(t, CEOConsultKey, onsite)
}

func TestResolveServiceKey_IncompleteSelection(t *testing.T) {
	_, err := ResolveServiceKey("", ModeOnsite)
	assert.ErrorIs(t, err, ErrIncompleteService)

	_, err = ResolveServiceKey(TreatmentHairTransplant, "")
	assert.ErrorIs(t, err, ErrIncompleteService)
}

func TestNormalizeServiceKey(t *testing.T) {
	assert.Equal(t, CEOConsultKey, NormalizeServiceKey("ceo_consult_onsite"))
	assert.Equal(t, CEOConsultKey, NormalizeServiceKey("ceo_consult_online"))
	assert.Equal(t, CEOConsultKey, NormalizeServiceKey("ceo_consult"))

	// Non-CEO keys pass through untouched
	assert.Equal(t, ServiceKey("haartransplantatie_onsite"), NormalizeServiceKey("haartransplantatie_onsite"))
}

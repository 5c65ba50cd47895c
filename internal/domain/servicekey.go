package domain

import (
	"fmt"
	"strings"
)

// Treatment identifies a treatment type offered by the clinic
type Treatment string

const (
	TreatmentHairTransplant    Treatment = "haartransplantatie"
	TreatmentBeardTransplant   Treatment = "baardtransplantatie"
	TreatmentEyebrowTransplant Treatment = "wenkbrauwtransplantatie"
	TreatmentPRP               Treatment = "prp_behandeling"
	TreatmentCEOConsult        Treatment = "ceo_consult"
)

// DeliveryMode identifies how a consultation is delivered
type DeliveryMode string

const (
	ModeOnline DeliveryMode = "online"
	ModeOnsite DeliveryMode = "onsite"
)

// ServiceKey partitions availability data: "<treatment>_<mode>"
type ServiceKey string

// CEOConsultKey is the single canonical key for CEO consultations.
// The upstream scheduling system maintains one calendar for this service,
// so both delivery modes resolve to it.
const CEOConsultKey ServiceKey = "ceo_consult_online"

// ResolveServiceKey builds the service key for a treatment and delivery mode.
// Returns ErrIncompleteService when either part is missing; callers translate
// that into an empty "none" result rather than a fatal error.
func ResolveServiceKey(treatment Treatment, mode DeliveryMode) (ServiceKey, error) {
	if treatment == "" || mode == "" {
		return "", fmt.Errorf("%w: treatment=%q mode=%q", ErrIncompleteService, treatment, mode)
	}
	if treatment == TreatmentCEOConsult {
		return CEOConsultKey, nil
	}
	return ServiceKey(string(treatment) + "_" + string(mode)), nil
}

// NormalizeServiceKey rewrites raw keys to their canonical form.
// Applied before every query so a "ceo_consult_onsite" request reads the
// same rows as "ceo_consult_online".
func NormalizeServiceKey(key ServiceKey) ServiceKey {
	if strings.HasPrefix(string(key), string(TreatmentCEOConsult)) {
		return CEOConsultKey
	}
	return key
}

// String returns the string representation
func (k ServiceKey) String() string {
	return string(k)
}

package pipeline

import (
	"fmt"

	"assetnorm/internal/domain"
)

// Step identifiers recorded in the normalization trace
const (
	StepIPTrim               = "ip_trim"
	StepIPParse              = "ip_parse"
	StepIPNormalize          = "ip_normalize"
	StepHostnameValidate     = "hostname_validate"
	StepFQDNValidate         = "fqdn_validate"
	StepFQDNConsistencyCheck = "fqdn_consistency_check"
	StepReversePTRGenerate   = "reverse_ptr_generate"
	StepMACNormalize         = "mac_normalize"
	StepOwnerParse           = "owner_parse"
	StepDeviceTypeClassify   = "device_type_classify"
	StepSiteNormalize        = "site_normalize"
)

// InvalidStep is the failure marker recorded for a field, e.g. hostname_invalid_invalid_chars
func InvalidStep(field string, reason domain.Reason) string {
	return fmt.Sprintf("%s_invalid_%s", field, reason)
}

// trace accumulates the step trace and anomaly issues of a single row.
// It is used for auditing only, never for control flow.
type trace struct {
	steps  []string
	issues []domain.Issue
}

func (t *trace) step(ids ...string) {
	t.steps = append(t.steps, ids...)
}

// fail records a validation failure for field. Missing values are not anomalies
// and leave no trace.
func (t *trace) fail(field, raw string, result domain.Result) {
	if result.IsMissing() {
		return
	}
	t.steps = append(t.steps, InvalidStep(field, result.Reason))
	t.issues = append(t.issues, domain.Issue{
		Field: field,
		Type:  result.Reason,
		Value: raw,
	})
}

package pipeline

import (
	"strings"

	"assetnorm/internal/domain"
	"assetnorm/internal/extract"
	"assetnorm/internal/ipv4"
	"assetnorm/internal/site"
	"assetnorm/internal/validate"
)

// stage normalizes one aspect of a row into out
type stage struct {
	name string
	run  func(rec domain.RawRecord, out *domain.OutputRecord, t *trace)
}

// stages run strictly in this order
var stages = []stage{
	{"ip", ipStage},
	{"hostname", hostnameStage},
	{"fqdn", fqdnStage},
	{"fqdn_consistency", fqdnConsistencyStage},
	{"reverse_ptr", reversePTRStage},
	{"mac", macStage},
	{"owner", ownerStage},
	{"device_type", deviceTypeStage},
	{"site", siteStage},
}

// ProcessRow normalizes a single record. The returned AnomalyEntry is nil
// when no field failed validation.
func ProcessRow(rec domain.RawRecord) (*domain.OutputRecord, *domain.AnomalyEntry) {
	out := &domain.OutputRecord{
		SourceRowID: rec.Get(domain.FieldSourceRowID),
	}
	t := &trace{}

	for _, s := range stages {
		s.run(rec, out, t)
	}

	out.Steps = t.steps
	if out.Steps == nil {
		out.Steps = []string{}
	}

	if len(t.issues) == 0 {
		return out, nil
	}
	return out, domain.NewAnomalyEntry(out.SourceRowID, t.issues)
}

func ipStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	raw := rec.Get(domain.FieldIP)
	result := ipv4.ValidateAndNormalize(raw)
	t.step(StepIPTrim)

	if !result.Valid {
		out.IP = strings.TrimSpace(raw)
		t.fail(domain.FieldIP, raw, result)
		return
	}

	t.step(StepIPParse, StepIPNormalize)
	out.IP = result.Normalized
	out.IPValid = true
	out.IPVersion = "4"
	out.SubnetCIDR = ipv4.DefaultSubnet(result.Normalized)
}

func hostnameStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	raw := rec.Get(domain.FieldHostname)
	result := validate.Hostname(raw)
	if !result.Valid {
		out.Hostname = raw
		t.fail(domain.FieldHostname, raw, result)
		return
	}

	t.step(StepHostnameValidate)
	out.Hostname = result.Normalized
	out.HostnameValid = true
}

func fqdnStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	raw := rec.Get(domain.FieldFQDN)
	result := validate.FQDN(raw)
	if !result.Valid {
		out.FQDN = raw
		t.fail(domain.FieldFQDN, raw, result)
		return
	}

	t.step(StepFQDNValidate)
	out.FQDN = result.Normalized
	out.FQDNValid = true
}

func fqdnConsistencyStage(_ domain.RawRecord, out *domain.OutputRecord, t *trace) {
	out.FQDNConsistent = validate.FQDNConsistent(out.Hostname, out.FQDN)
	if out.FQDNConsistent {
		t.step(StepFQDNConsistencyCheck)
	}
}

func reversePTRStage(_ domain.RawRecord, out *domain.OutputRecord, t *trace) {
	if !out.IPValid {
		return
	}
	out.ReversePTR = validate.ReversePTR(out.IP)
	if out.ReversePTR != "" {
		t.step(StepReversePTRGenerate)
	}
}

func macStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	raw := rec.Get(domain.FieldMAC)
	result := validate.MAC(raw)
	if !result.Valid {
		out.MAC = raw
		t.fail(domain.FieldMAC, raw, result)
		return
	}

	t.step(StepMACNormalize)
	out.MAC = result.Normalized
	out.MACValid = true
}

func ownerStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	out.Owner = extract.ParseOwner(rec.Get(domain.FieldOwner))
	if !out.Owner.IsEmpty() {
		t.step(StepOwnerParse)
	}
}

func deviceTypeStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	out.DeviceType, out.DeviceTypeConfidence = extract.ClassifyDevice(
		rec.Get(domain.FieldDeviceType),
		rec.Get(domain.FieldHostname),
		rec.Get(domain.FieldNotes),
	)
	if out.DeviceTypeConfidence.Resolved() {
		t.step(StepDeviceTypeClassify)
	}
}

func siteStage(rec domain.RawRecord, out *domain.OutputRecord, t *trace) {
	out.Site = rec.Get(domain.FieldSite)
	out.SiteNormalized = site.Normalize(out.Site)
	if out.SiteNormalized != "" {
		t.step(StepSiteNormalize)
	}
}

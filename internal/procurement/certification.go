package procurement

import "strings"

// Certification is a closed tag drawn from the certification types the
// procurement rules recognize. Raw strings outside this set are carried
// separately as unknown tags instead of being silently accepted.
type Certification string

const (
	CertISO9001            Certification = "ISO 9001"
	CertCE                 Certification = "CE"
	CertULListed           Certification = "UL Listed"
	CertMaterialTestReport Certification = "Material Test Report"
	CertFactoryAudit       Certification = "Factory Audit"
)

// qualifyingCerts are the certifications that satisfy the hard eligibility
// rule on their own. The remaining known tags are low-tier.
var qualifyingCerts = map[Certification]bool{
	CertISO9001:  true,
	CertCE:       true,
	CertULListed: true,
}

var knownCerts = map[string]Certification{
	normalizeCertTag(string(CertISO9001)):            CertISO9001,
	normalizeCertTag(string(CertCE)):                 CertCE,
	normalizeCertTag(string(CertULListed)):           CertULListed,
	normalizeCertTag(string(CertMaterialTestReport)): CertMaterialTestReport,
	normalizeCertTag(string(CertFactoryAudit)):       CertFactoryAudit,
}

// Qualifying reports whether the certification alone makes a vendor
// eligible under the default policy.
func (c Certification) Qualifying() bool {
	return qualifyingCerts[c]
}

// ParseCertifications splits a comma-separated certification field into
// recognized tags and the raw values that did not match any known tag.
func ParseCertifications(raw string) (known []Certification, unknown []string) {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if cert, ok := knownCerts[normalizeCertTag(part)]; ok {
			known = append(known, cert)
			continue
		}
		unknown = append(unknown, part)
	}
	return known, unknown
}

func normalizeCertTag(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	return strings.Join(fields, " ")
}

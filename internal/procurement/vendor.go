package procurement

import "strings"

// Vendors is an immutable snapshot of the vendor master list for one run.
type Vendors struct {
	Records []*Vendor
}

// Vendor is a single vendor record from the vendor master list.
type Vendor struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	// UnknownCertifications keeps raw tags that did not match any known
	// certification. They never qualify a vendor.
	UnknownCertifications []string `json:"unknown_certifications,omitempty"`
	LeadTimeDays          int      `json:"lead_time_days,omitempty"`
	ExpertiseCategories   []string `json:"expertise_categories,omitempty"`
	Expertise             string   `json:"expertise,omitempty"`
	Region                string   `json:"region,omitempty"`
	Reliability           string   `json:"reliability,omitempty"`
	ContactName           string   `json:"contact_name,omitempty"`
	ContactEmail          string   `json:"contact_email,omitempty"`
}

func (v *Vendors) Len() int {
	return len(v.Records)
}

func (v *Vendors) FindByID(id string) *Vendor {
	for _, vendor := range v.Records {
		if vendor.ID == id {
			return vendor
		}
	}
	return nil
}

// HasQualifyingCertification reports whether the vendor holds at least one
// certification that satisfies the hard eligibility rule.
func (v *Vendor) HasQualifyingCertification() bool {
	for _, cert := range v.Certifications {
		if cert.Qualifying() {
			return true
		}
	}
	return false
}

// HasLowTierCertification reports whether the vendor holds any known
// low-tier certification.
func (v *Vendor) HasLowTierCertification() bool {
	for _, cert := range v.Certifications {
		if !cert.Qualifying() {
			return true
		}
	}
	return false
}

// CoversCategory reports whether the vendor's expertise categories include
// the provided item category, ignoring case.
func (v *Vendor) CoversCategory(category string) bool {
	category = strings.TrimSpace(category)
	for _, c := range v.ExpertiseCategories {
		if strings.EqualFold(strings.TrimSpace(c), category) {
			return true
		}
	}
	return false
}

// CertificationNames returns the vendor's known certifications as strings.
func (v *Vendor) CertificationNames() []string {
	names := make([]string, 0, len(v.Certifications))
	for _, cert := range v.Certifications {
		names = append(names, string(cert))
	}
	return names
}

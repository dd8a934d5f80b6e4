package procurement

import (
	"reflect"
	"testing"
)

func TestParseCertifications(t *testing.T) {
	known, unknown := ParseCertifications("iso 9001, CE,  ul  listed , TUV Mark, ,Material Test Report")

	wantKnown := []Certification{CertISO9001, CertCE, CertULListed, CertMaterialTestReport}
	if !reflect.DeepEqual(known, wantKnown) {
		t.Fatalf("unexpected known tags: %v", known)
	}
	if !reflect.DeepEqual(unknown, []string{"TUV Mark"}) {
		t.Fatalf("unexpected unknown tags: %v", unknown)
	}
}

func TestParseCertificationsEmpty(t *testing.T) {
	known, unknown := ParseCertifications("")
	if len(known) != 0 || len(unknown) != 0 {
		t.Fatalf("expected nothing from an empty field, got %v / %v", known, unknown)
	}
}

func TestCertificationQualifying(t *testing.T) {
	for _, cert := range []Certification{CertISO9001, CertCE, CertULListed} {
		if !cert.Qualifying() {
			t.Fatalf("expected %s to qualify", cert)
		}
	}
	for _, cert := range []Certification{CertMaterialTestReport, CertFactoryAudit} {
		if cert.Qualifying() {
			t.Fatalf("expected %s to be low-tier", cert)
		}
	}
}

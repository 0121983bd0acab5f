package dialogue

import (
	"regexp"
	"testing"
)

func TestNewReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BIRTH/\d{4}/[A-Z0-9]{8}$`)
	for i := 0; i < 50; i++ {
		ref := newReference("BIRTH")
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match expected format", ref)
		}
	}
}

func TestNewReferencePrefix(t *testing.T) {
	ref := newReference("ID")
	if matched := regexp.MustCompile(`^ID/\d{4}/[A-Z0-9]{8}$`).MatchString(ref); !matched {
		t.Fatalf("reference %q does not carry the ID prefix", ref)
	}
}

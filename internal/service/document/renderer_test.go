package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kebele-gov/intake-agent/backend/internal/service/document"
)

func TestRenderWritesCertificate(t *testing.T) {
	dir := t.TempDir()
	renderer := document.NewPDFRenderer(dir)

	path, err := renderer.Render(document.Certificate{
		ChildName:       "Abebe Kebede",
		DateOfBirth:     "15/03/2020",
		Sex:             "Male",
		FatherName:      "Kebede Alemu",
		MotherName:      "Almaz Tesfaye",
		ReferenceNumber: "BIRTH/2026/ABCD1234",
	})
	if err != nil {
		t.Fatalf("Render err: %v", err)
	}

	if filepath.Base(path) != "BIRTH_2026_ABCD1234.pdf" {
		t.Fatalf("unexpected filename %s", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat rendered file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("rendered certificate is empty")
	}
}

func TestOutputPathFlattensReference(t *testing.T) {
	renderer := document.NewPDFRenderer("out")
	if got := renderer.OutputPath("ID/2026/XYZ"); got != filepath.Join("out", "ID_2026_XYZ.pdf") {
		t.Fatalf("unexpected path %s", got)
	}
}

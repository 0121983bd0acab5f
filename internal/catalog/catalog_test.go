package catalog

import "testing"

func TestLookupBothLanguages(t *testing.T) {
	keys := []Key{
		KeyGreeting, KeyBirthChildName, KeyBirthDOB, KeyBirthSex,
		KeyBirthFatherName, KeyBirthMotherName, KeyBirthDocuments,
		KeyBirthPaymentAmount, KeyBirthPrintOption,
		KeyIDAge, KeyIDHasID, KeyIDSlotSelection, KeyIDDocuments, KeyIDPaymentAmount,
	}

	for _, lang := range []string{LanguageAmharic, LanguageEnglish} {
		for _, key := range keys {
			if Lookup(lang, key) == "" {
				t.Errorf("missing %s text for %s", lang, key)
			}
		}
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	if got, want := Lookup("fr", KeyGreeting), Lookup(LanguageEnglish, KeyGreeting); got != want {
		t.Fatalf("unknown language did not fall back: %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(LanguageAmharic) || !Supported(LanguageEnglish) {
		t.Fatal("expected am and en to be supported")
	}
	if Supported("fr") {
		t.Fatal("fr should not be supported")
	}
}

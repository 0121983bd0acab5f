package nlu

import (
	"context"
	"testing"

	"github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
)

func TestFallbackParserClassifies(t *testing.T) {
	parser := NewFallbackParser()
	ctx := context.Background()

	cases := []struct {
		message string
		intent  dialogue.Intent
		service dialogue.Service
	}{
		{"a", dialogue.IntentChooseOption, dialogue.ServiceUnset},
		{"DONE", dialogue.IntentChooseOption, dialogue.ServiceUnset},
		{"please reset everything", dialogue.IntentReset, dialogue.ServiceUnset},
		{"I need a birth certificate", dialogue.IntentChooseService, dialogue.ServiceBirthCertificate},
		{"book an ID appointment", dialogue.IntentChooseService, dialogue.ServiceIDAppointment},
		{"the weather is nice", dialogue.IntentUnknown, dialogue.ServiceUnset},
	}

	for _, tc := range cases {
		cmd, err := parser.Parse(ctx, tc.message, dialogue.StateGreeting, "en")
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", tc.message, err)
		}
		if cmd.Intent != tc.intent {
			t.Errorf("Parse(%q) intent = %s, want %s", tc.message, cmd.Intent, tc.intent)
		}
		if cmd.Service != tc.service {
			t.Errorf("Parse(%q) service = %s, want %s", tc.message, cmd.Service, tc.service)
		}
	}
}

func TestDecodeCommand(t *testing.T) {
	cmd, err := decodeCommand(`{
		"intent": "provide_field",
		"fields": {"child_name": "Tadesse Taffa", "age": 17, "has_previous_id": true, "favorite_color": "blue"}
	}`)
	if err != nil {
		t.Fatalf("decodeCommand err: %v", err)
	}
	if cmd.Intent != dialogue.IntentProvideField {
		t.Fatalf("intent = %s", cmd.Intent)
	}
	if cmd.Fields["child_name"] != "Tadesse Taffa" {
		t.Fatalf("child_name = %q", cmd.Fields["child_name"])
	}
	if cmd.Fields["age"] != "17" {
		t.Fatalf("numeric age not stringified: %q", cmd.Fields["age"])
	}
	if cmd.Fields["has_previous_id"] != "true" {
		t.Fatalf("bool field not stringified: %q", cmd.Fields["has_previous_id"])
	}
	if _, ok := cmd.Fields["favorite_color"]; ok {
		t.Fatal("unrecognized field survived decoding")
	}
}

func TestDecodeCommandClampsLooseOutput(t *testing.T) {
	cmd, err := decodeCommand("```json\n{\"intent\": \"make_coffee\", \"choice\": \"e\", \"service\": \"passport\"}\n```")
	if err != nil {
		t.Fatalf("decodeCommand err: %v", err)
	}
	if cmd.Intent != dialogue.IntentUnknown {
		t.Fatalf("unexpected intent %s for invented value", cmd.Intent)
	}
	if cmd.Choice != "" {
		t.Fatalf("out-of-range choice survived: %q", cmd.Choice)
	}
	if cmd.Service != dialogue.ServiceUnset {
		t.Fatalf("invented service survived: %q", cmd.Service)
	}
}

func TestDecodeCommandUppercasesChoice(t *testing.T) {
	cmd, err := decodeCommand(`{"intent": "choose_option", "choice": "b"}`)
	if err != nil {
		t.Fatalf("decodeCommand err: %v", err)
	}
	if cmd.Choice != "B" {
		t.Fatalf("choice = %q, want B", cmd.Choice)
	}
}

func TestDecodeCommandRejectsNonJSON(t *testing.T) {
	if _, err := decodeCommand("I could not parse that, sorry!"); err == nil {
		t.Fatal("expected error for prose reply")
	}
}

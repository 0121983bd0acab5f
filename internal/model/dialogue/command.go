package dialogue

import "strings"

// Intent classifies what one user utterance asks the engine to do.
type Intent string

const (
	IntentChooseService    Intent = "choose_service"
	IntentProvideField     Intent = "provide_field"
	IntentConfirmDocuments Intent = "confirm_documents"
	IntentChooseOption     Intent = "choose_option"
	IntentReset            Intent = "reset"
	IntentUnknown          Intent = "unknown"
)

// Field names the parser is allowed to extract. Anything else is discarded.
const (
	FieldChildName       = "child_name"
	FieldDateOfBirth     = "date_of_birth"
	FieldDOB             = "dob"
	FieldSex             = "sex"
	FieldFatherName      = "father_name"
	FieldMotherName      = "mother_name"
	FieldAge             = "age"
	FieldHasPreviousID   = "has_previous_id"
	FieldAppointmentSlot = "appointment_slot"
	FieldPrintOption     = "print_option"
)

// RecognizedFields is the closed set of extractable field names.
var RecognizedFields = map[string]bool{
	FieldChildName:       true,
	FieldDateOfBirth:     true,
	FieldDOB:             true,
	FieldSex:             true,
	FieldFatherName:      true,
	FieldMotherName:      true,
	FieldAge:             true,
	FieldHasPreviousID:   true,
	FieldAppointmentSlot: true,
	FieldPrintOption:     true,
}

// Command is the structured interpretation of a single utterance. It is
// produced fresh each turn and never persisted.
type Command struct {
	Intent   Intent            `json:"intent"`
	Service  Service           `json:"service,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Choice   string            `json:"choice,omitempty"`
	Language string            `json:"language,omitempty"`
}

// UnknownCommand is the safe fallback used when parsing fails.
func UnknownCommand() Command {
	return Command{Intent: IntentUnknown, Fields: map[string]string{}}
}

// ChoiceCommand wraps a bare multiple-choice answer as an explicit command.
func ChoiceCommand(letter string) Command {
	return Command{Intent: IntentChooseOption, Choice: letter, Fields: map[string]string{}}
}

// TrivialChoice reports whether the message is exactly one of the answers a
// choice prompt presents. Such messages never reach the language parser.
func TrivialChoice(message string) (string, bool) {
	switch upper := strings.ToUpper(strings.TrimSpace(message)); upper {
	case "A", "B", "C", "D", "DONE":
		return upper, true
	default:
		return "", false
	}
}

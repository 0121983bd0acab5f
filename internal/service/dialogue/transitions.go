package dialogue

import (
	"github.com/kebele-gov/intake-agent/backend/internal/catalog"
	model "github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
)

// promptSpec describes the question a state asks and the kind of answer it
// expects. Both the auto-advance path and the per-state handlers emit prompts
// through this table so the two can never disagree.
type promptSpec struct {
	key       catalog.Key
	action    model.NextAction
	options   []string
	fieldType model.FieldType
}

var (
	optionsAB   = []string{"A", "B"}
	optionsABC  = []string{"A", "B", "C"}
	optionsABCD = []string{"A", "B", "C", "D"}
)

var promptTable = map[model.State]promptSpec{
	model.StateGreeting: {key: catalog.KeyGreeting, action: model.ActionButtonChoice, options: optionsAB},

	model.StateBirthChildName:   {key: catalog.KeyBirthChildName, action: model.ActionInputField, fieldType: model.FieldTypeText},
	model.StateBirthDOB:         {key: catalog.KeyBirthDOB, action: model.ActionInputField, fieldType: model.FieldTypeText},
	model.StateBirthSex:         {key: catalog.KeyBirthSex, action: model.ActionButtonChoice, options: optionsAB},
	model.StateBirthFatherName:  {key: catalog.KeyBirthFatherName, action: model.ActionInputField, fieldType: model.FieldTypeText},
	model.StateBirthMotherName:  {key: catalog.KeyBirthMotherName, action: model.ActionInputField, fieldType: model.FieldTypeText},
	model.StateBirthDocuments:   {key: catalog.KeyBirthDocuments, action: model.ActionFileUpload, fieldType: model.FieldTypeFile},
	model.StateBirthPayment:     {key: catalog.KeyBirthPaymentAmount, action: model.ActionButtonChoice, options: optionsAB},
	model.StateBirthPrintOption: {key: catalog.KeyBirthPrintOption, action: model.ActionButtonChoice, options: optionsABC},

	model.StateIDAge:           {key: catalog.KeyIDAge, action: model.ActionInputField, fieldType: model.FieldTypeNumber},
	model.StateIDHasID:         {key: catalog.KeyIDHasID, action: model.ActionButtonChoice, options: optionsAB},
	model.StateIDSlotSelection: {key: catalog.KeyIDSlotSelection, action: model.ActionButtonChoice, options: optionsABCD},
	model.StateIDDocuments:     {key: catalog.KeyIDDocuments, action: model.ActionInputField, fieldType: model.FieldTypeText},
	model.StateIDPayment:       {key: catalog.KeyIDPaymentAmount, action: model.ActionButtonChoice, options: optionsAB},
}

// statePrompt renders the question for a state in the given language.
func statePrompt(language string, state model.State) model.Prompt {
	spec, ok := promptTable[state]
	if !ok {
		return model.Prompt{Response: "Please provide the requested information.", NextAction: model.ActionRetry}
	}
	return model.Prompt{
		Response:   catalog.Lookup(language, spec.key),
		NextAction: spec.action,
		Options:    spec.options,
		FieldType:  spec.fieldType,
	}
}

// autoRule declares when a state may be skipped because its answer already
// sits in session data. validate, when set, returns a retry message for
// present-but-invalid values and blocks the advance.
type autoRule struct {
	present  func(*model.FormData) bool
	validate func(*model.FormData) string
	next     model.State
}

var autoRules = map[model.State]autoRule{
	model.StateBirthChildName: {
		present: func(d *model.FormData) bool { return d.Birth != nil && d.Birth.ChildName != "" },
		next:    model.StateBirthDOB,
	},
	model.StateBirthDOB: {
		present: func(d *model.FormData) bool { return d.Birth != nil && d.Birth.DateOfBirth != "" },
		validate: func(d *model.FormData) string {
			if !ValidDate(d.Birth.DateOfBirth) {
				return invalidDateMessage
			}
			return ""
		},
		next: model.StateBirthSex,
	},
	model.StateBirthSex: {
		present: func(d *model.FormData) bool { return d.Birth != nil && d.Birth.Sex != "" },
		next:    model.StateBirthFatherName,
	},
	model.StateBirthFatherName: {
		present: func(d *model.FormData) bool { return d.Birth != nil && d.Birth.FatherName != "" },
		next:    model.StateBirthMotherName,
	},
	model.StateBirthMotherName: {
		present: func(d *model.FormData) bool { return d.Birth != nil && d.Birth.MotherName != "" },
		next:    model.StateBirthDocuments,
	},
	model.StateIDAge: {
		present: func(d *model.FormData) bool { return d.ID != nil && d.ID.Age != "" },
		validate: func(d *model.FormData) string {
			_, retry := parseAge(d.ID.Age)
			return retry
		},
		next: model.StateIDHasID,
	},
	model.StateIDHasID: {
		present: func(d *model.FormData) bool { return d.ID != nil && d.ID.HasPreviousID != nil },
		next:    model.StateIDSlotSelection,
	},
}

// appointmentSlot is one bookable (date, time) pair.
type appointmentSlot struct {
	Date string
	Time string
}

// appointmentSlots maps the presented choice letters onto the four fixed
// visiting slots.
var appointmentSlots = map[string]appointmentSlot{
	"A": {Date: "2025-12-27", Time: "09:00"},
	"B": {Date: "2025-12-27", Time: "10:00"},
	"C": {Date: "2025-12-28", Time: "09:00"},
	"D": {Date: "2025-12-28", Time: "10:00"},
}

// repromptStates are the states for which an unrecognized utterance re-asks
// the pending question instead of a generic failure.
var repromptStates = map[model.State]bool{
	model.StateBirthChildName:  true,
	model.StateBirthDOB:        true,
	model.StateBirthSex:        true,
	model.StateBirthFatherName: true,
	model.StateBirthMotherName: true,
	model.StateIDAge:           true,
}

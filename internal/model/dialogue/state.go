package dialogue

// State names a position in the intake state machine, one pending question each.
type State string

const (
	// Shared entry point for both workflows.
	StateGreeting State = "greeting"

	// Birth certificate flow.
	StateBirthChildName   State = "birth_child_name"
	StateBirthDOB         State = "birth_dob"
	StateBirthSex         State = "birth_sex"
	StateBirthFatherName  State = "birth_father_name"
	StateBirthMotherName  State = "birth_mother_name"
	StateBirthDocuments   State = "birth_documents"
	StateBirthPayment     State = "birth_payment"
	StateBirthPrintOption State = "birth_print_option"
	StateBirthComplete    State = "birth_complete"

	// ID appointment flow.
	StateIDAge           State = "id_age"
	StateIDHasID         State = "id_has_id"
	StateIDSlotSelection State = "id_slot_selection"
	StateIDDocuments     State = "id_documents"
	StateIDPayment       State = "id_payment"
	StateIDComplete      State = "id_complete"
)

// Terminal reports whether the state ends its workflow.
func (s State) Terminal() bool {
	return s == StateBirthComplete || s == StateIDComplete
}

// Service discriminates which workflow a session belongs to.
type Service string

const (
	ServiceUnset            Service = ""
	ServiceBirthCertificate Service = "birth_certificate"
	ServiceIDAppointment    Service = "id_appointment"
)

// FirstState returns the opening state of the service's branch.
func (s Service) FirstState() State {
	if s == ServiceIDAppointment {
		return StateIDAge
	}
	return StateBirthChildName
}

// Package dialogue implements the intake state machine: it walks a citizen
// through one of the two civil-service workflows, merging parsed answers into
// the session and deciding the next question each turn.
package dialogue

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	model "github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
	"github.com/kebele-gov/intake-agent/backend/internal/service/document"
	"github.com/kebele-gov/intake-agent/backend/internal/service/nlu"
	"github.com/kebele-gov/intake-agent/backend/internal/service/upload"
)

const (
	invalidDateMessage  = "Invalid date format. Use DD/MM/YYYY (e.g., 15/03/2020)."
	genericRetryMessage = "Sorry, I didn't understand. Please try again."
)

// Engine drives the per-turn dialogue. It borrows the session store per call
// and owns validation, auto-advance, and completion handling. Turns for
// different users may run concurrently; at most one in-flight turn per user is
// assumed.
type Engine struct {
	store    SessionStore
	parser   nlu.Parser
	renderer document.Renderer
	uploads  *upload.Store
}

// New wires the engine to its collaborators. renderer may be nil, in which
// case completed birth registrations carry no document.
func New(store SessionStore, parser nlu.Parser, renderer document.Renderer, uploads *upload.Store) *Engine {
	return &Engine{
		store:    store,
		parser:   parser,
		renderer: renderer,
		uploads:  uploads,
	}
}

// Start creates a fresh session for the user and returns the greeting.
func (e *Engine) Start(_ context.Context, userID, language string) model.Prompt {
	session := model.NewSession(userID, language)
	e.store.Put(session)
	return statePrompt(language, model.StateGreeting)
}

// Process handles one turn. An unknown user id behaves as an implicit Start.
// files carries an upload attempt when non-nil; a nil slice means the turn had
// no file component at all.
func (e *Engine) Process(ctx context.Context, userID, message, language string, files []upload.File) model.Prompt {
	session, ok := e.store.Get(userID)
	if !ok {
		return e.Start(ctx, userID, language)
	}

	// Language can change every turn.
	session.Language = language
	msg := strings.TrimSpace(message)

	// File handling bypasses the parser entirely.
	if files != nil && session.State == model.StateBirthDocuments {
		return e.handleDocumentsUpload(session, msg, files)
	}

	cmd := e.interpret(ctx, session, msg)

	if cmd.Intent == model.IntentReset {
		e.store.Delete(userID)
		return e.Start(ctx, userID, language)
	}

	// The greeting buttons are themselves the service selection.
	if session.State == model.StateGreeting && cmd.Intent == model.IntentChooseOption {
		switch cmd.Choice {
		case "A":
			cmd = model.Command{Intent: model.IntentChooseService, Service: model.ServiceBirthCertificate, Fields: cmd.Fields}
		case "B":
			cmd = model.Command{Intent: model.IntentChooseService, Service: model.ServiceIDAppointment, Fields: cmd.Fields}
		}
	}

	if cmd.Intent == model.IntentChooseService && cmd.Service != model.ServiceUnset {
		if session.Service == model.ServiceUnset {
			session.Service = cmd.Service
			session.State = cmd.Service.FirstState()
			e.applyFields(session, cmd.Fields)
			if p, advanced := e.autoAdvance(session); advanced {
				return p
			}
			return statePrompt(session.Language, session.State)
		}
		// Service is set exactly once per session lifetime; a repeated
		// selection is treated like any other utterance.
	}

	e.applyFields(session, cmd.Fields)

	if p, advanced := e.autoAdvance(session); advanced {
		return p
	}

	switch session.Service {
	case model.ServiceBirthCertificate:
		if p, handled := e.handleBirth(session, msg, cmd); handled {
			return p
		}
	case model.ServiceIDAppointment:
		if p, handled := e.handleID(session, msg, cmd); handled {
			return p
		}
	}

	if cmd.Intent == model.IntentUnknown {
		return e.reprompt(session)
	}
	return model.Prompt{Response: genericRetryMessage, NextAction: model.ActionRetry}
}

// interpret resolves the message into a command: the trivial-choice shortcut
// keeps button answers deterministic, and any parser failure degrades to an
// unknown-intent command rather than aborting the turn.
func (e *Engine) interpret(ctx context.Context, session *model.Session, msg string) model.Command {
	if letter, ok := model.TrivialChoice(msg); ok {
		return model.ChoiceCommand(letter)
	}

	cmd, err := e.parser.Parse(ctx, msg, session.State, session.Language)
	if err != nil {
		log.Printf("[engine] parser failed for user=%s state=%s: %v", session.UserID, session.State, err)
		return model.UnknownCommand()
	}
	if cmd.Fields == nil {
		cmd.Fields = map[string]string{}
	}
	return cmd
}

// handleDocumentsUpload validates the attachment count, stores the files, and
// moves the session to the payment step.
func (e *Engine) handleDocumentsUpload(session *model.Session, msg string, files []upload.File) model.Prompt {
	fileRetry := func(text string) model.Prompt {
		return model.Prompt{Response: text, NextAction: model.ActionFileUpload, FieldType: model.FieldTypeFile}
	}

	if len(files) < 1 {
		return fileRetry("Please upload at least 1 document (images or PDF) before continuing.")
	}
	if len(files) > 3 {
		return fileRetry("Please upload maximum 3 documents.")
	}

	saved, err := e.uploads.Save(session.UserID, files)
	if err != nil || len(saved) == 0 {
		log.Printf("[engine] saving uploads for user=%s failed: %v", session.UserID, err)
		return fileRetry("Error saving files. Please try uploading again.")
	}

	session.Data.UploadedFiles = saved
	if msg != "" {
		session.Data.DocumentsNote = msg
	} else {
		session.Data.DocumentsNote = fmt.Sprintf("Documents uploaded (%d file(s))", len(saved))
	}
	session.State = model.StateBirthPayment
	return statePrompt(session.Language, model.StateBirthPayment)
}

// applyFields merges parser-extracted values into session data. Blank values
// never overwrite; sex tokens are normalized; dates stay raw for validation.
func (e *Engine) applyFields(session *model.Session, fields map[string]string) {
	for name, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch name {
		case model.FieldChildName:
			session.Data.EnsureBirth().ChildName = value
		case model.FieldDateOfBirth, model.FieldDOB:
			session.Data.EnsureBirth().DateOfBirth = value
		case model.FieldSex:
			session.Data.EnsureBirth().Sex = normalizeSex(value)
		case model.FieldFatherName:
			session.Data.EnsureBirth().FatherName = value
		case model.FieldMotherName:
			session.Data.EnsureBirth().MotherName = value
		case model.FieldAge:
			session.Data.EnsureID().Age = value
		case model.FieldHasPreviousID:
			if has, ok := parseYesNo(value); ok {
				session.Data.EnsureID().HasPreviousID = &has
			}
		case model.FieldAppointmentSlot:
			letter := strings.ToUpper(value)
			if _, ok := appointmentSlots[letter]; ok {
				session.Data.EnsureID().SlotChoice = letter
			}
		case model.FieldPrintOption:
			letter := strings.ToUpper(value)
			if letter == "A" || letter == "B" || letter == "C" {
				session.Data.EnsureBirth().PrintOption = letter
			}
		}
	}
}

// autoAdvance skips states whose answers already sit in session data,
// collapsing a multi-field message into a single turn. A present-but-invalid
// date or age short-circuits into a retry without advancing past it.
func (e *Engine) autoAdvance(session *model.Session) (model.Prompt, bool) {
	advanced := false
	for {
		rule, ok := autoRules[session.State]
		if !ok || !rule.present(session.Data) {
			break
		}
		if rule.validate != nil {
			if retry := rule.validate(session.Data); retry != "" {
				return model.Prompt{Response: retry, NextAction: model.ActionRetry}, true
			}
		}
		session.State = rule.next
		advanced = true
	}
	if !advanced {
		return model.Prompt{}, false
	}
	return statePrompt(session.Language, session.State), true
}

// handleBirth runs the explicit per-state step of the birth certificate
// branch. It pulls the value from already-merged data first, then from the raw
// message when that is not itself a choice answer.
func (e *Engine) handleBirth(session *model.Session, msg string, cmd model.Command) (model.Prompt, bool) {
	birth := session.Data.EnsureBirth()
	choice := choiceOf(cmd, msg)

	switch session.State {
	case model.StateBirthChildName:
		value := birth.ChildName
		if value == "" {
			value = textValue(msg, cmd)
		}
		if value == "" {
			return statePrompt(session.Language, session.State), true
		}
		birth.ChildName = value
		session.State = model.StateBirthDOB
		return statePrompt(session.Language, session.State), true

	case model.StateBirthDOB:
		value := birth.DateOfBirth
		if value == "" {
			value = textValue(msg, cmd)
		}
		if value == "" {
			return statePrompt(session.Language, session.State), true
		}
		if !ValidDate(value) {
			return model.Prompt{Response: invalidDateMessage, NextAction: model.ActionRetry}, true
		}
		birth.DateOfBirth = value
		session.State = model.StateBirthSex
		return statePrompt(session.Language, session.State), true

	case model.StateBirthSex:
		sex := birth.Sex
		if sex == "" {
			switch choice {
			case "A":
				sex = "Male"
			case "B":
				sex = "Female"
			}
		}
		if sex == "" {
			return statePrompt(session.Language, session.State), true
		}
		birth.Sex = sex
		session.State = model.StateBirthFatherName
		return statePrompt(session.Language, session.State), true

	case model.StateBirthFatherName:
		value := birth.FatherName
		if value == "" {
			value = textValue(msg, cmd)
		}
		if value == "" {
			return statePrompt(session.Language, session.State), true
		}
		birth.FatherName = value
		session.State = model.StateBirthMotherName
		return statePrompt(session.Language, session.State), true

	case model.StateBirthMotherName:
		value := birth.MotherName
		if value == "" {
			value = textValue(msg, cmd)
		}
		if value == "" {
			return statePrompt(session.Language, session.State), true
		}
		birth.MotherName = value
		session.State = model.StateBirthDocuments
		return statePrompt(session.Language, session.State), true

	case model.StateBirthDocuments:
		// A message-only turn at the upload step re-asks for files.
		return statePrompt(session.Language, session.State), true

	case model.StateBirthPayment:
		session.State = model.StateBirthPrintOption
		if choice == "A" {
			ref := newReference("BIRTH")
			session.Data.ReferenceNumber = ref
			return model.Prompt{
				Response: fmt.Sprintf("Dial *144#\nAmount: 100 ETB\nReference: %s\n\nReply 'DONE' after payment (or just continue for demo).", ref),
				NextAction: model.ActionInputField,
				FieldType:  model.FieldTypeText,
			}, true
		}
		return statePrompt(session.Language, session.State), true

	case model.StateBirthPrintOption:
		option := birth.PrintOption
		if option == "" {
			option = choice
		}
		if option != "A" && option != "B" && option != "C" {
			return statePrompt(session.Language, session.State), true
		}
		if session.Data.ReferenceNumber == "" {
			// Payment step was skipped; the record still needs a reference.
			session.Data.ReferenceNumber = newReference("BIRTH")
		}
		birth.PrintOption = option

		pdfPath := e.renderCertificate(session)
		session.Data.PDFPath = pdfPath
		session.State = model.StateBirthComplete

		response := fmt.Sprintf("✅ Birth Certificate Request Complete!\n\nReference: %s\n\nProcessing time: ~15 minutes (demo)\nThank you!", session.Data.ReferenceNumber)
		if pdfPath != "" {
			response += "\n\n📄 Your PDF is ready for download below."
		}
		return model.Prompt{
			Response:   response,
			NextAction: model.ActionComplete,
			Data:       session.Data,
			PDFPath:    pdfPath,
		}, true
	}
	return model.Prompt{}, false
}

// handleID runs the explicit per-state step of the ID appointment branch.
func (e *Engine) handleID(session *model.Session, msg string, cmd model.Command) (model.Prompt, bool) {
	id := session.Data.EnsureID()
	choice := choiceOf(cmd, msg)

	switch session.State {
	case model.StateIDAge:
		raw := id.Age
		if raw == "" {
			raw = textValue(msg, cmd)
		}
		if raw == "" {
			return statePrompt(session.Language, session.State), true
		}
		age, retry := parseAge(raw)
		if retry != "" {
			return model.Prompt{Response: retry, NextAction: model.ActionRetry}, true
		}
		id.Age = strconv.Itoa(age)
		session.State = model.StateIDHasID
		return statePrompt(session.Language, session.State), true

	case model.StateIDHasID:
		has := id.HasPreviousID
		if has == nil {
			switch choice {
			case "A":
				has = boolPtr(true)
			case "B":
				has = boolPtr(false)
			}
		}
		if has == nil {
			return statePrompt(session.Language, session.State), true
		}
		id.HasPreviousID = has
		session.State = model.StateIDSlotSelection
		return statePrompt(session.Language, session.State), true

	case model.StateIDSlotSelection:
		letter := id.SlotChoice
		if letter == "" {
			letter = choice
		}
		slot, ok := appointmentSlots[letter]
		if !ok {
			return statePrompt(session.Language, session.State), true
		}
		id.SlotChoice = letter
		id.AppointmentDate = slot.Date
		id.AppointmentTime = slot.Time
		session.State = model.StateIDDocuments
		return statePrompt(session.Language, session.State), true

	case model.StateIDDocuments:
		// Any note is accepted at this step.
		if msg != "" {
			session.Data.DocumentsNote = msg
		} else {
			session.Data.DocumentsNote = "Documents noted"
		}
		session.State = model.StateIDPayment
		return statePrompt(session.Language, session.State), true

	case model.StateIDPayment:
		ref := newReference("ID")
		session.Data.ReferenceNumber = ref
		session.State = model.StateIDComplete
		return model.Prompt{
			Response: fmt.Sprintf("✅ Appointment booked!\n\nReference: %s\nDate: %s\nTime: %s\nLocation: Kebele Office (demo)\n",
				ref, id.AppointmentDate, id.AppointmentTime),
			NextAction: model.ActionComplete,
			Data:       session.Data,
		}, true
	}
	return model.Prompt{}, false
}

// renderCertificate asks the renderer for the certificate artifact. Failures
// are logged and the workflow completes without a document.
func (e *Engine) renderCertificate(session *model.Session) string {
	if e.renderer == nil {
		return ""
	}
	birth := session.Data.EnsureBirth()
	path, err := e.renderer.Render(document.Certificate{
		ChildName:       birth.ChildName,
		DateOfBirth:     birth.DateOfBirth,
		Sex:             birth.Sex,
		FatherName:      birth.FatherName,
		MotherName:      birth.MotherName,
		ReferenceNumber: session.Data.ReferenceNumber,
	})
	if err != nil {
		log.Printf("[engine] certificate rendering failed for user=%s: %v", session.UserID, err)
		return ""
	}
	return path
}

// reprompt answers an unrecognized utterance with the pending question when
// one is registered for the state.
func (e *Engine) reprompt(session *model.Session) model.Prompt {
	if session.State == model.StateGreeting {
		return statePrompt(session.Language, model.StateGreeting)
	}
	if repromptStates[session.State] {
		p := statePrompt(session.Language, session.State)
		p.NextAction = model.ActionRetry
		p.Options = nil
		p.FieldType = ""
		return p
	}
	return model.Prompt{Response: "Please provide the requested information.", NextAction: model.ActionRetry}
}

// choiceOf resolves the discrete answer for choice-driven states: an explicit
// command choice wins, else a message that is itself a bare choice.
func choiceOf(cmd model.Command, msg string) string {
	if cmd.Choice != "" {
		return cmd.Choice
	}
	if letter, ok := model.TrivialChoice(msg); ok {
		return letter
	}
	return ""
}

// textValue returns the raw message as a free-text answer, unless the message
// was a discrete choice.
func textValue(msg string, cmd model.Command) string {
	if cmd.Choice != "" {
		return ""
	}
	if _, ok := model.TrivialChoice(msg); ok {
		return ""
	}
	return msg
}

func parseYesNo(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "a", "አዎ":
		return true, true
	case "false", "no", "n", "b", "የለም":
		return false, true
	default:
		return false, false
	}
}

func boolPtr(b bool) *bool { return &b }

// Package nlu turns raw citizen utterances into structured commands the
// dialogue engine can act on.
package nlu

import (
	"context"
	"strings"

	"github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
)

// Parser extracts a Command from one utterance. Implementations must return a
// deterministic error rather than hang; the engine degrades any error to an
// unknown-intent command.
type Parser interface {
	Parse(ctx context.Context, message string, state dialogue.State, language string) (dialogue.Command, error)
}

// FallbackParser is the keyword heuristic used when no language model is
// configured. It recognizes resets, service selection, and bare choices;
// everything else is unknown.
type FallbackParser struct{}

// NewFallbackParser returns the zero heuristic parser.
func NewFallbackParser() *FallbackParser {
	return &FallbackParser{}
}

// Parse classifies the message with keyword matching only.
func (p *FallbackParser) Parse(_ context.Context, message string, _ dialogue.State, _ string) (dialogue.Command, error) {
	if letter, ok := dialogue.TrivialChoice(message); ok {
		return dialogue.ChoiceCommand(letter), nil
	}

	lower := strings.ToLower(strings.TrimSpace(message))
	switch {
	case containsAny(lower, "reset", "restart", "start over", "እንደገና"):
		return dialogue.Command{Intent: dialogue.IntentReset, Fields: map[string]string{}}, nil
	case containsAny(lower, "birth", "certificate", "ልደት", "መወለድ"):
		return dialogue.Command{
			Intent:  dialogue.IntentChooseService,
			Service: dialogue.ServiceBirthCertificate,
			Fields:  map[string]string{},
		}, nil
	case containsAny(lower, "appointment", "መታወቂያ") || lower == "id":
		return dialogue.Command{
			Intent:  dialogue.IntentChooseService,
			Service: dialogue.ServiceIDAppointment,
			Fields:  map[string]string{},
		}, nil
	}
	return dialogue.UnknownCommand(), nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

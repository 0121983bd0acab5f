package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/kebele-gov/intake-agent/backend/internal/config"
	"github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
)

// systemPrompt instructs the model to answer with one strict JSON object.
// Literal braces are avoided because the template is FString-formatted.
const systemPrompt = `You are a clerk assistant for Ethiopian kebele services.
Extract structured information from the user's message and reply with a single
JSON object and nothing else. The object has exactly these keys:
"intent", "service", "fields", "choice", "language".

Rules:
1. Extract ONLY what the user explicitly provided. Never invent or guess missing information.
2. intent is one of: choose_service, provide_field, confirm_documents, choose_option, reset, unknown.
3. If the user answers with A/B/C/D, set intent to choose_option and choice to that letter.
4. service is birth_certificate or id_appointment, only when intent is choose_service.
5. fields is an object mapping field names to the values the user stated. Allowed
   field names: child_name, date_of_birth (or dob), sex, father_name, mother_name,
   age, has_previous_id, appointment_slot, print_option. Keep dates in DD/MM/YYYY.
   For sex, normalize to Male or Female when clear.
6. If the user provides several fields at once, extract all of them.
7. If the intent is unclear, use unknown with empty fields.
8. Current workflow state: {state}
9. Current language: {language}

Be precise and only extract what is clearly stated.`

// LLMParser runs an eino chat chain to parse utterances.
type LLMParser struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	timeout time.Duration
}

// NewLLMParser compiles the parsing chain over the configured chat model.
func NewLLMParser(ctx context.Context, cfg config.AIConfig) (*LLMParser, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	template := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{message}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(template)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile parsing chain: %w", err)
	}

	timeout := time.Duration(cfg.ParseTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &LLMParser{chain: runnable, timeout: timeout}, nil
}

// Parse invokes the model and decodes its JSON reply into a Command. The call
// is bounded by the configured timeout so a stalled model surfaces as an error.
func (p *LLMParser) Parse(ctx context.Context, message string, state dialogue.State, language string) (dialogue.Command, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.chain.Invoke(ctx, map[string]any{
		"state":    string(state),
		"language": language,
		"message":  message,
	})
	if err != nil {
		return dialogue.Command{}, fmt.Errorf("invoke parsing chain: %w", err)
	}

	cmd, err := decodeCommand(out.Content)
	if err != nil {
		return dialogue.Command{}, fmt.Errorf("decode model reply: %w", err)
	}
	return cmd, nil
}

// rawCommand tolerates the loose typing models produce for field values.
type rawCommand struct {
	Intent   string         `json:"intent"`
	Service  string         `json:"service"`
	Fields   map[string]any `json:"fields"`
	Choice   string         `json:"choice"`
	Language string         `json:"language"`
}

// decodeCommand parses the model reply and clamps it to the command contract:
// unknown intents degrade to unknown, unrecognized field names are dropped,
// and choices are restricted to A-D/DONE.
func decodeCommand(content string) (dialogue.Command, error) {
	payload := stripFences(content)

	var raw rawCommand
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return dialogue.Command{}, err
	}

	cmd := dialogue.Command{Fields: map[string]string{}}

	switch dialogue.Intent(raw.Intent) {
	case dialogue.IntentChooseService, dialogue.IntentProvideField,
		dialogue.IntentConfirmDocuments, dialogue.IntentChooseOption,
		dialogue.IntentReset, dialogue.IntentUnknown:
		cmd.Intent = dialogue.Intent(raw.Intent)
	default:
		cmd.Intent = dialogue.IntentUnknown
	}

	switch dialogue.Service(raw.Service) {
	case dialogue.ServiceBirthCertificate, dialogue.ServiceIDAppointment:
		cmd.Service = dialogue.Service(raw.Service)
	}

	for name, value := range raw.Fields {
		name = strings.ToLower(strings.TrimSpace(name))
		if !dialogue.RecognizedFields[name] {
			continue
		}
		if text := stringify(value); text != "" {
			cmd.Fields[name] = text
		}
	}

	if letter, ok := dialogue.TrivialChoice(raw.Choice); ok {
		cmd.Choice = letter
	}

	switch raw.Language {
	case "am", "en":
		cmd.Language = raw.Language
	}

	return cmd, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

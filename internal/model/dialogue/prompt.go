package dialogue

// NextAction tells the client what kind of input the next turn expects.
type NextAction string

const (
	ActionButtonChoice NextAction = "button_choice"
	ActionInputField   NextAction = "input_field"
	ActionFileUpload   NextAction = "file_upload"
	ActionRetry        NextAction = "retry"
	ActionComplete     NextAction = "complete"
)

// FieldType hints how a free-form input should be captured.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeFile   FieldType = "file"
)

// Prompt is the engine's reply to one turn: the text to show, what to ask for
// next, and on completion the full accumulated record.
type Prompt struct {
	Response   string     `json:"response"`
	NextAction NextAction `json:"nextAction"`
	Options    []string   `json:"options,omitempty"`
	FieldType  FieldType  `json:"fieldType,omitempty"`
	Data       *FormData  `json:"data,omitempty"`
	PDFPath    string     `json:"pdfPath,omitempty"`
}

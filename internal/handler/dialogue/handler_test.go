package dialogue

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kebele-gov/intake-agent/backend/internal/catalog"
	model "github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
	dialogueservice "github.com/kebele-gov/intake-agent/backend/internal/service/dialogue"
	"github.com/kebele-gov/intake-agent/backend/internal/service/nlu"
	"github.com/kebele-gov/intake-agent/backend/internal/service/upload"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	engine := dialogueservice.New(
		dialogueservice.NewMemoryStore(),
		nlu.NewFallbackParser(),
		nil,
		upload.NewStore(t.TempDir()),
	)
	handler := New(engine, t.TempDir())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodePrompt(t *testing.T, resp *httptest.ResponseRecorder) model.Prompt {
	t.Helper()
	var prompt model.Prompt
	if err := json.NewDecoder(resp.Body).Decode(&prompt); err != nil {
		t.Fatalf("decoding prompt: %v", err)
	}
	return prompt
}

func TestStartReturnsGreeting(t *testing.T) {
	r := setupRouter(t)

	resp := postJSON(t, r, "/chat/start", map[string]string{"userId": "citizen-1", "language": "en"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	prompt := decodePrompt(t, resp)
	if prompt.Response != catalog.Lookup("en", catalog.KeyGreeting) {
		t.Fatalf("unexpected greeting %q", prompt.Response)
	}
	if prompt.NextAction != model.ActionButtonChoice {
		t.Fatalf("unexpected next action %s", prompt.NextAction)
	}
}

func TestStartRequiresUserID(t *testing.T) {
	r := setupRouter(t)

	resp := postJSON(t, r, "/chat/start", map[string]string{"language": "en"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProcessTurn(t *testing.T) {
	r := setupRouter(t)

	postJSON(t, r, "/chat/start", map[string]string{"userId": "citizen-2", "language": "en"})
	resp := postJSON(t, r, "/chat", map[string]string{"userId": "citizen-2", "message": "A", "language": "en"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	prompt := decodePrompt(t, resp)
	if prompt.Response != catalog.Lookup("en", catalog.KeyBirthChildName) {
		t.Fatalf("expected child-name question, got %q", prompt.Response)
	}
	if prompt.NextAction != model.ActionInputField {
		t.Fatalf("unexpected next action %s", prompt.NextAction)
	}
}

func TestProcessInvalidBody(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestMultipartUploadTurn(t *testing.T) {
	r := setupRouter(t)
	const user = "citizen-3"

	postJSON(t, r, "/chat/start", map[string]string{"userId": user, "language": "en"})
	for _, msg := range []string{"A", "Abebe Kebede", "15/03/2020", "A", "Kebede Alemu", "Almaz Tesfaye"} {
		postJSON(t, r, "/chat", map[string]string{"userId": user, "message": msg, "language": "en"})
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("userId", user)
	writer.WriteField("language", "en")
	for _, name := range []string{"residence.pdf", "parent-id.png"} {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		part.Write([]byte("content"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/chat", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	prompt := decodePrompt(t, resp)
	if prompt.Response != catalog.Lookup("en", catalog.KeyBirthPaymentAmount) {
		t.Fatalf("expected payment prompt after upload, got %q", prompt.Response)
	}
}

func TestDownloadRejectsNonPDF(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/documents/notes.txt", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

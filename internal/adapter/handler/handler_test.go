package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
	aiuse "github.com/johnquangdev/meeting-summary/internal/usecase/ai"
	uerrors "github.com/johnquangdev/meeting-summary/internal/usecase/errors"
	"github.com/johnquangdev/meeting-summary/pkg/config"
	"github.com/johnquangdev/meeting-summary/pkg/validator"
)

type stubAnalyzer struct {
	got    string
	result *entities.MeetingAnalysis
	err    error
}

func (s *stubAnalyzer) Analyze(_ context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	s.got = transcript
	return s.result, s.err
}

type stubGenerator struct{ out string }

func (g stubGenerator) GenerateContent(context.Context, string) (string, error) {
	return g.out, nil
}

type stubEmailService struct {
	got *entities.MeetingAnalysis
	err error
}

func (s *stubEmailService) SendSummary(_ context.Context, a *entities.MeetingAnalysis) error {
	s.got = a
	return s.err
}

type errorBody struct {
	Detail  string            `json:"detail"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

func newTestServer(t *testing.T, analyzer aiuse.Service, emailSvc *stubEmailService) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zap.NewNop())

	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	var emailHandler *Email
	if emailSvc != nil {
		emailHandler = NewEmail(emailSvc, zap.NewNop())
	}
	NewRouter(cfg, NewTranscript(analyzer, zap.NewNop()), emailHandler).Setup(e)
	return e
}

func uploadRequest(t *testing.T, filename, contentType string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/transcript", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Google Gemini API backend is running."}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test"}`, rec.Body.String())
}

func TestProcessTranscript_OK(t *testing.T) {
	analyzer := &stubAnalyzer{result: &entities.MeetingAnalysis{
		Summary:     "Discussed pricing",
		Objections:  []entities.Objection{{Point: "Too expensive", Resolution: entities.NewResolution("Offered discount")}},
		ActionItems: []string{"Send contract"},
	}}
	e := newTestServer(t, analyzer, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte("Client: too expensive")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Client: too expensive", analyzer.got)
	assert.JSONEq(t, `{
		"summary": "Discussed pricing",
		"objections": [{"point": "Too expensive", "resolution": "Offered discount"}],
		"action_items": ["Send contract"]
	}`, rec.Body.String())
}

func TestProcessTranscript_EmptyListsStayArrays(t *testing.T) {
	svc, err := aiuse.NewAIService(stubGenerator{out: `{"summary":"Short sync","objections":[],"action_items":[]}`}, zap.NewNop())
	require.NoError(t, err)
	e := newTestServer(t, svc, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain; charset=utf-8", []byte("A: hi\nB: bye")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":"Short sync","objections":[],"action_items":[]}`, rec.Body.String())
}

func TestProcessTranscript_InvalidFileType(t *testing.T) {
	analyzer := &stubAnalyzer{}
	e := newTestServer(t, analyzer, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "deck.pdf", "application/pdf", []byte("%PDF-1.4")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid file type. Please upload a .txt file.", body.Detail)
	assert.Equal(t, "TRANSCRIPT_INVALID_FILE_TYPE", body.Code)
	assert.Equal(t, "application/pdf", body.Details["content_type"])
	assert.Empty(t, analyzer.got, "analyzer must not be called")
}

func TestProcessTranscript_MissingFile(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process/transcript", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TRANSCRIPT_MISSING_FILE", decodeError(t, rec).Code)
}

func TestProcessTranscript_InvalidUTF8(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte{0xff, 0xfe, 0x41, 0x00}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TRANSCRIPT_INVALID_ENCODING", decodeError(t, rec).Code)
}

func TestProcessTranscript_Empty(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte("   \n")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Transcript file is empty.", decodeError(t, rec).Detail)
}

func TestProcessTranscript_ModelReturnsGarbage(t *testing.T) {
	svc, err := aiuse.NewAIService(stubGenerator{out: "Sure! Here is your summary: the meeting went well."}, zap.NewNop())
	require.NoError(t, err)
	e := newTestServer(t, svc, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte("A: hi")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to analyze transcript with AI model.", body.Detail)
	assert.Equal(t, "AI_ANALYSIS_FAILED", body.Code)
	assert.NotContains(t, rec.Body.String(), "the meeting went well")
}

func TestProcessTranscript_ProviderError(t *testing.T) {
	analyzer := &stubAnalyzer{err: fmt.Errorf("%w: %w", uerrors.ErrAnalysisFailed, errors.New("quota exceeded"))}
	e := newTestServer(t, analyzer, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte("A: hi")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "quota")
}

func emailRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/email/summary", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestSendSummary_OK(t *testing.T) {
	svc := &stubEmailService{}
	e := newTestServer(t, &stubAnalyzer{}, svc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{"summary":"S","objections":[{"point":"P","resolution":null}],"action_items":["A"]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Email sent successfully!"}`, rec.Body.String())
	require.NotNil(t, svc.got)
	assert.Equal(t, "N/A", svc.got.Objections[0].ResolutionOrPlaceholder())
}

func TestSendSummary_ValidationFailure(t *testing.T) {
	svc := &stubEmailService{}
	e := newTestServer(t, &stubAnalyzer{}, svc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{"summary":"S","action_items":[]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_PAYLOAD", body.Code)
	assert.Contains(t, body.Detail, "objections")
	assert.Nil(t, svc.got)
}

func TestSendSummary_MalformedJSON(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, &stubEmailService{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{"summary":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendSummary_NotConfigured(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, &stubEmailService{err: uerrors.ErrEmailNotConfigured})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{"summary":"S","objections":[],"action_items":[]}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Email credentials are not configured on the server.", decodeError(t, rec).Detail)
}

func TestSendSummary_DeliveryFailure(t *testing.T) {
	cause := errors.New("535 authentication failed")
	e := newTestServer(t, &stubAnalyzer{}, &stubEmailService{err: &uerrors.DeliveryError{Cause: cause}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{"summary":"S","objections":[],"action_items":[]}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to send email: 535 authentication failed", body.Detail)
	assert.Equal(t, "EMAIL_DELIVERY_FAILED", body.Code)
}

func TestRouter_NilEmailHandler(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, emailRequest(`{}`))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestTranscriptResponseIsAcceptedByEmailEndpoint(t *testing.T) {
	out := `{"summary":"","objections":[{"point":"","resolution":null}],"action_items":[]}`
	svc, err := aiuse.NewAIService(stubGenerator{out: out}, zap.NewNop())
	require.NoError(t, err)
	emailSvc := &stubEmailService{}
	e := newTestServer(t, svc, emailSvc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, "meeting.txt", "text/plain", []byte("A: hi")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, emailRequest(rec.Body.String()))

	require.Equal(t, http.StatusOK, rec2.Code, rec2.Body.String())
	require.NotNil(t, emailSvc.got)
	assert.Equal(t, "", emailSvc.got.Summary)
	require.Len(t, emailSvc.got.Objections, 1)
	assert.Equal(t, "N/A", emailSvc.got.Objections[0].ResolutionOrPlaceholder())
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Route not found", body.Detail)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	e := newTestServer(t, &stubAnalyzer{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/process/transcript", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeError(t, rec).Code)
}

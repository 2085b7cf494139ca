package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/handler"
	"github.com/ainable/backend/internal/middleware"
	"github.com/ainable/backend/internal/service"
)

type fakeOCR struct {
	blocks []capability.TextBlock
	err    error
	calls  int
}

func (f *fakeOCR) DetectText(ctx context.Context, data []byte) ([]capability.TextBlock, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

type fakeGenerator struct {
	output string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, opts capability.GenerateOptions) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

type fakeImages struct {
	images []string
	err    error
}

func (f *fakeImages) Generate(ctx context.Context, req capability.ImageRequest) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.images, nil
}

type fakeSpeech struct {
	audio []byte
	err   error
}

func (f *fakeSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

type capabilitySet struct {
	ocr    *fakeOCR
	gen    *fakeGenerator
	images *fakeImages
	speech *fakeSpeech
}

func defaultCapabilities() *capabilitySet {
	return &capabilitySet{
		ocr: &fakeOCR{blocks: []capability.TextBlock{
			{Text: "The water cycle", BlockType: capability.BlockTypeLine},
			{Text: "moves water around the planet", BlockType: capability.BlockTypeLine},
		}},
		gen:    &fakeGenerator{output: `{"simplified_text":"Water moves in a circle.","key_terms":[{"term":"cycle","definition":"something that repeats"}],"step_by_step":["sun heats water","vapor rises","rain falls"]}`},
		images: &fakeImages{images: []string{"aW1hZ2UtYnl0ZXM="}},
		speech: &fakeSpeech{audio: []byte{0xff, 0xf3, 0x10, 0x20}},
	}
}

func setupRouter(t *testing.T, caps *capabilitySet) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	intakeService := service.NewIntakeService(caps.ocr, 1024*1024, []string{".pdf", ".jpg", ".jpeg", ".png"})
	simplifyService := service.NewSimplifyService(caps.gen, 1024, 0)
	visualService := service.NewVisualService(caps.images)
	narrateService := service.NewNarrateService(caps.speech)
	qaService := service.NewQAService(caps.gen, 1024, 0)

	deps := handler.RouterDeps{
		Info:   handler.NewInfoHandler("1.0.0"),
		Upload: handler.NewUploadHandler(intakeService),
		Assist: handler.NewAssistHandler(simplifyService, visualService, narrateService, qaService),
	}

	engine, err := webapi.NewEngine(
		"/",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func postFile(t *testing.T, router http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, resp)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "body has no error object: %s", resp.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

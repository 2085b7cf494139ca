package handler_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Walks the full learning flow: upload a scan, simplify the extracted text,
// then illustrate and narrate the simplified version.
func TestUploadSimplifyVisualizeNarrateFlow(t *testing.T) {
	caps := defaultCapabilities()
	router := setupRouter(t, caps)

	scan := bytes.Repeat([]byte{0xd8, 0xff}, 5*1024)
	uploadResp := postFile(t, router, "chapter-one.jpeg", scan)
	require.Equal(t, http.StatusOK, uploadResp.Code)
	uploaded := decodeBody(t, uploadResp)
	extracted, _ := uploaded["extracted_text"].(string)
	require.NotEmpty(t, extracted)

	simplifyResp := postJSON(t, router, "/simplify", map[string]string{"text": extracted})
	require.Equal(t, http.StatusOK, simplifyResp.Code)
	simplified := decodeBody(t, simplifyResp)
	simplifiedText, _ := simplified["simplified_text"].(string)
	require.NotEmpty(t, simplifiedText)
	require.Contains(t, simplified, "key_terms")
	require.Contains(t, simplified, "step_by_step")

	visualResp := postJSON(t, router, "/visual-model", map[string]string{"simplified_text": simplifiedText})
	require.Equal(t, http.StatusOK, visualResp.Code)
	visual := decodeBody(t, visualResp)
	imageBase64, _ := visual["image_base64"].(string)
	require.NotEmpty(t, imageBase64)

	narrateResp := postJSON(t, router, "/narrate", map[string]string{"text": simplifiedText})
	require.Equal(t, http.StatusOK, narrateResp.Code)
	narration := decodeBody(t, narrateResp)
	audioBase64, _ := narration["audio_base64"].(string)
	require.NotEmpty(t, audioBase64)
}

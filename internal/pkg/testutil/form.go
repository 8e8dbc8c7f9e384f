package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// PNGHeader is the 8-byte PNG signature followed by an IHDR chunk start,
// enough for content sniffing to report image/png.
var PNGHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

// CreateMultipartBody writes a single file part under field and returns the body
// and its content type, ready to be sent with an HTTP request.
func CreateMultipartBody(t *testing.T, field, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateTestFileHeader parses a single-file multipart body and returns its file header
func CreateTestFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := CreateMultipartBody(t, "file", fileName, content)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

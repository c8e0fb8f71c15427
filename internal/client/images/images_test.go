package images

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akulinin/campusmarket/internal/client/api"
	"github.com/stretchr/testify/require"
)

// pngHeader is the magic prefix http.DetectContentType recognizes as image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func writePNG(t *testing.T, name string, size int) string {
	t.Helper()
	content := make([]byte, size)
	copy(content, pngHeader)
	return writeFile(t, name, content)
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}

func TestValidate_SixMBPNG_AgainstLimits(t *testing.T) {
	path := writePNG(t, "big.png", 6<<20)

	strict := Validator{MaxCount: 5, MaxSize: 5 << 20}
	requireCode(t, strict.Validate([]string{path}), api.CodeFileTooLarge)

	relaxed := Validator{MaxCount: 5, MaxSize: 10 << 20}
	require.NoError(t, relaxed.Validate([]string{path}))
}

func TestValidate_PDFAlwaysRejected(t *testing.T) {
	small := writeFile(t, "doc.pdf", []byte("%PDF-1.4 tiny"))
	big := writeFile(t, "big.pdf", append([]byte("%PDF-1.4 "), bytes.Repeat([]byte{0}, 6<<20)...))

	v := Validator{MaxCount: 5, MaxSize: 10 << 20}
	requireCode(t, v.Validate([]string{small}), api.CodeInvalidFileType)
	requireCode(t, v.Validate([]string{big}), api.CodeInvalidFileType)
}

func TestValidate_TooManyFiles(t *testing.T) {
	paths := make([]string, 6)
	for i := range paths {
		paths[i] = writePNG(t, "p.png", 100)
	}
	v := NewValidator()
	requireCode(t, v.Validate(paths), api.CodeTooManyFiles)
}

func TestValidate_MissingFile(t *testing.T) {
	v := NewValidator()
	requireCode(t, v.Validate([]string{filepath.Join(t.TempDir(), "nope.png")}), api.CodeUploadError)
}

func TestValidate_EmptySetOK(t *testing.T) {
	require.NoError(t, NewValidator().Validate(nil))
}

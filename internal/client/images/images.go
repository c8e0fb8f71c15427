// Package images enforces the client-side constraints on listing photos
// before any upload is attempted: a maximum file count, a per-file size
// limit and an image/* content type sniffed from the file itself.
//
// Violations are reported as *api.Error values carrying the same
// structured codes the backend uses, so the view layer maps local and
// remote failures to user-facing messages through one code path.
package images

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/akulinin/campusmarket/internal/client/api"
)

const (
	// DefaultMaxCount mirrors the backend's per-ad photo limit.
	DefaultMaxCount = 5

	// DefaultMaxSize is the per-file limit. Originally 5MB; relaxed to
	// 10MB to match the current backend deployment.
	DefaultMaxSize = 10 << 20
)

// Validator checks candidate image files against the active limits.
type Validator struct {
	MaxCount int
	MaxSize  int64
}

// NewValidator returns a Validator with the default limits.
func NewValidator() Validator {
	return Validator{MaxCount: DefaultMaxCount, MaxSize: DefaultMaxSize}
}

// Validate inspects every path and returns the first violation found.
// Type is checked before size, so an oversized non-image reports the
// type problem, matching the order users see in the upload form.
func (v Validator) Validate(paths []string) error {
	if len(paths) > v.MaxCount {
		return &api.Error{
			Code:    api.CodeTooManyFiles,
			Message: fmt.Sprintf("too many images: %d given, maximum is %d", len(paths), v.MaxCount),
		}
	}

	for _, path := range paths {
		if err := v.validateOne(path); err != nil {
			return err
		}
	}
	return nil
}

func (v Validator) validateOne(path string) error {
	ct, size, err := sniff(path)
	if err != nil {
		return &api.Error{
			Code:    api.CodeUploadError,
			Message: fmt.Sprintf("cannot read %s: %v", path, err),
		}
	}

	if !strings.HasPrefix(ct, "image/") {
		return &api.Error{
			Code:    api.CodeInvalidFileType,
			Message: fmt.Sprintf("%s is %s, not an image", path, ct),
		}
	}
	if size > v.MaxSize {
		return &api.Error{
			Code:    api.CodeFileTooLarge,
			Message: fmt.Sprintf("%s is %.2fMB, maximum is %dMB", path, float64(size)/(1<<20), v.MaxSize>>20),
		}
	}
	return nil
}

// sniff returns the detected content type and size of the file at path.
// Detection uses the first 512 bytes, the same window http.DetectContentType
// documents.
func sniff(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, err
	}

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", 0, err
	}

	return http.DetectContentType(head[:n]), info.Size(), nil
}

package document

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/browser"

	domainerrors "contract-registry/internal/domain/errors"
)

// supportedOS lists the platforms github.com/pkg/browser can open files on.
var supportedOS = map[string]bool{
	"darwin":  true,
	"linux":   true,
	"windows": true,
	"freebsd": true,
	"netbsd":  true,
	"openbsd": true,
}

// Opener hands a file to the operating system's default application.
type Opener struct {
	goos     string
	stat     func(name string) (os.FileInfo, error)
	openFile func(path string) error
}

// NewOpener creates an opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		goos:     runtime.GOOS,
		stat:     os.Stat,
		openFile: browser.OpenFile,
	}
}

// Open opens the file at path. Each failure cause maps to its own error:
// ErrDocumentNotSet, ErrOpenUnsupported, ErrDocumentMissing, ErrDocumentOpen.
func (o *Opener) Open(path string) error {
	if strings.TrimSpace(path) == "" {
		return domainerrors.DocumentNotSet()
	}
	if !supportedOS[o.goos] {
		return domainerrors.OpenUnsupported(nil)
	}

	if _, err := o.stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainerrors.DocumentMissing(path)
		}
		return domainerrors.DocumentOpen(err)
	}

	if err := o.openFile(path); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return domainerrors.OpenUnsupported(err)
		}
		return domainerrors.DocumentOpen(err)
	}
	return nil
}

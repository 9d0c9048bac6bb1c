package document

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "contract-registry/internal/domain/errors"
)

func newTestOpener(openFile func(string) error) *Opener {
	o := NewOpener()
	o.goos = "linux"
	o.openFile = openFile
	return o
}

func writeTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	return path
}

func TestOpener_Success(t *testing.T) {
	path := writeTempFile(t)
	var opened string
	o := newTestOpener(func(p string) error {
		opened = p
		return nil
	})

	require.NoError(t, o.Open(path))
	assert.Equal(t, path, opened)
}

func TestOpener_EmptyPath(t *testing.T) {
	o := newTestOpener(func(string) error {
		t.Fatal("must not open")
		return nil
	})
	assert.ErrorIs(t, o.Open(""), domainerrors.ErrDocumentNotSet)
	assert.ErrorIs(t, o.Open("   "), domainerrors.ErrDocumentNotSet)
}

func TestOpener_UnsupportedOS(t *testing.T) {
	o := newTestOpener(func(string) error { return nil })
	o.goos = "plan9"

	err := o.Open(writeTempFile(t))
	assert.ErrorIs(t, err, domainerrors.ErrOpenUnsupported)
}

func TestOpener_NoOpenerBinary(t *testing.T) {
	o := newTestOpener(func(string) error {
		return &exec.Error{Name: "xdg-open", Err: exec.ErrNotFound}
	})

	err := o.Open(writeTempFile(t))
	assert.ErrorIs(t, err, domainerrors.ErrOpenUnsupported)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestOpener_MissingFile(t *testing.T) {
	o := newTestOpener(func(string) error { return nil })
	path := filepath.Join(t.TempDir(), "gone.pdf")

	err := o.Open(path)
	require.ErrorIs(t, err, domainerrors.ErrDocumentMissing)

	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, path)
}

func TestOpener_IOFailures(t *testing.T) {
	path := writeTempFile(t)

	o := newTestOpener(func(string) error { return errors.New("exit status 4") })
	assert.ErrorIs(t, o.Open(path), domainerrors.ErrDocumentOpen)

	o = newTestOpener(func(string) error { return nil })
	o.stat = func(string) (os.FileInfo, error) { return nil, os.ErrPermission }
	assert.ErrorIs(t, o.Open(path), domainerrors.ErrDocumentOpen)
}

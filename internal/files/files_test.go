package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	root := filepath.Join(t.TempDir(), "public")
	d := Dir{Root: root, BaseURL: "http://localhost:5678/public/"}

	filePath, fileURL, err := d.Save(context.Background(), "abc", "Receipt.PNG", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "public/abc.png", filePath)
	assert.Equal(t, "http://localhost:5678/public/abc.png", fileURL)

	data, err := os.ReadFile(filepath.Join(root, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestSaveRejectsOtherTypes(t *testing.T) {
	d := Dir{Root: t.TempDir(), BaseURL: "http://localhost"}
	for _, name := range []string{"bill.pdf", "bill", "bill.png.exe"} {
		_, _, err := d.Save(context.Background(), "k", name, []byte("x"))
		assert.ErrorIs(t, err, ErrUnsupportedType, name)
	}
}

func TestSaveHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Dir{Root: t.TempDir()}.Save(ctx, "k", "a.png", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

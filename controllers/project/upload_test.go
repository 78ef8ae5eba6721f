package projectcontroller

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadName(t *testing.T) {
	now := time.Unix(0, 42)
	assert.Equal(t, "42_fachada_frontal.jpg", uploadName("fachada frontal.JPG", now))
	assert.Equal(t, "42_planta.png", uploadName("../../etc/planta.png", now))
}

func TestRemoveUploadStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projects"), 0o755))
	target := filepath.Join(dir, "projects", "1_capa.jpg")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	removeUpload(dir, "projects", "/uploads/styles/1_capa.jpg")
	assert.FileExists(t, target)

	removeUpload(dir, "projects", "/uploads/projects/../keep.txt")
	assert.FileExists(t, outside)

	removeUpload(dir, "projects", "/uploads/projects/1_capa.jpg")
	assert.NoFileExists(t, target)
}

package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader the way gin would hand it
// to a handler.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	fh := makeFileHeader(t, "resume.pdf", "pdf-bytes")

	key, err := store.Save(fh, StudentDir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.Contains(t, key, "resume")

	data, err := os.ReadFile(store.Path(StudentDir, key))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	store.Delete(StudentDir, key)
	_, err = os.Stat(store.Path(StudentDir, key))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveKeysAreUnique(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.Save(makeFileHeader(t, "resume.pdf", "one"), StudentDir)
	require.NoError(t, err)
	second, err := store.Save(makeFileHeader(t, "resume.pdf", "two"), StudentDir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	one, err := os.ReadFile(store.Path(StudentDir, first))
	require.NoError(t, err)
	two, err := os.ReadFile(store.Path(StudentDir, second))
	require.NoError(t, err)
	assert.Equal(t, "one", string(one))
	assert.Equal(t, "two", string(two))
}

func TestStore_SaveSanitizesFilename(t *testing.T) {
	store := NewStore(t.TempDir())

	key, err := store.Save(makeFileHeader(t, "../../etc/pass wd!.txt", "x"), InternshipDir)
	require.NoError(t, err)

	// The stored key never contains path separators or raw specials.
	assert.NotContains(t, key, "/")
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, " ")
	assert.True(t, strings.HasSuffix(key, ".txt"))

	// The file landed inside the intended subdirectory.
	_, err = os.Stat(filepath.Join(store.Path(InternshipDir, key)))
	assert.NoError(t, err)
}

func TestStore_SaveRejectsOversizedFile(t *testing.T) {
	store := NewStore(t.TempDir())

	fh := makeFileHeader(t, "big.bin", "tiny")
	fh.Size = MaxFileSize + 1 // header lies about the size, Save trusts it

	_, err := store.Save(fh, StudentDir)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStore_DeleteMissingFileIsBestEffort(t *testing.T) {
	store := NewStore(t.TempDir())

	// Neither a missing key nor an empty one may panic.
	store.Delete(StudentDir, "never-stored.pdf")
	store.Delete(StudentDir, "")
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume"},
		{"my resume (final).pdf", "my_resume__final_"},
		{"../../etc/passwd", "passwd"},
		{"", "file"},
		{strings.Repeat("a", 60) + ".txt", strings.Repeat("a", 40)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeName(tc.in), "input %q", tc.in)
	}
}

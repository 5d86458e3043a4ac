package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractTextPlain(t *testing.T) {
	path := writeFile(t, "resume.txt", "\n  Jane Doe\nGo developer  \n\n")

	text, err := NewTextExtractor().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractTextPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, testutil.PDF("Jane Doe Go developer with Kubernetes experience"), 0o644))

	text, err := NewTextExtractor().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Go developer with Kubernetes experience", text)
}

func TestExtractTextDocx(t *testing.T) {
	data, err := testutil.DOCX("Jane Doe", "Skills: Go, SQL")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	text, err := NewTextExtractor().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, SQL", text)
}

func TestExtractTextFailures(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)

	_, err = extractor.ExtractText(writeFile(t, "corrupt.pdf", "this is not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)

	_, err = extractor.ExtractText(writeFile(t, "corrupt.docx", "this is not a zip"))
	assert.ErrorIs(t, err, ErrUnreadableDocument)

	_, err = extractor.ExtractText(writeFile(t, "resume.odt", "content"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestDocxPlainText(t *testing.T) {
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := docxPlainText(body)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills:\tGo\n", text)
}

func TestIsSupportedExtension(t *testing.T) {
	assert.True(t, IsSupportedExtension(".PDF"))
	assert.True(t, IsSupportedExtension(".docx"))
	assert.True(t, IsSupportedExtension(".txt"))
	assert.False(t, IsSupportedExtension(".exe"))
	assert.False(t, IsSupportedExtension(""))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n  b\n"))
}

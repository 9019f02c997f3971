package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslex/campuslex/internal/shared"
)

func TestExtractTextUnsupportedType(t *testing.T) {
	for _, fileType := range []string{"txt", "exe", "", "pdfx"} {
		_, err := ExtractText([]byte("irrelevant"), fileType)
		assert.ErrorIs(t, err, shared.ErrUnsupportedFileType, "file_type %q", fileType)
	}
}

func TestExtractTextTypeNormalization(t *testing.T) {
	// Case and surrounding whitespace on the discriminator are tolerated; the
	// payload is still garbage, so the pdf parser itself must fail instead.
	_, err := ExtractText([]byte("not a pdf"), " PDF ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrUnsupportedFileType)
}

func TestDocxTextCollectsRuns(t *testing.T) {
	document := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := docxText(document)
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nSecond paragraph\n", text)
}

func TestDocxTextIgnoresNonRunCharData(t *testing.T) {
	document := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>stray<w:p><w:r><w:t>kept</w:t></w:r></w:p></w:body></w:document>`

	text, err := docxText(document)
	require.NoError(t, err)
	assert.Equal(t, "kept\n", text)
}

func TestDocxTextMalformed(t *testing.T) {
	_, err := docxText("<w:p><w:t>unclosed")
	assert.Error(t, err)
}

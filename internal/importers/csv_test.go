package importers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_Basic(t *testing.T) {
	input := "Handle,Title,Variant Price\ncandle-a,Candle A,10.00\ncandle-b,Candle B,5.00\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "candle-a", rows[0].Get("Handle"))
	assert.Equal(t, "Candle B", rows[1].Get("Title"))
	assert.Equal(t, "5.00", rows[1].Get("Variant Price"))
}

func TestParseCSV_QuotedComma(t *testing.T) {
	input := "Handle,Tags\ncandle-a,\"soy, lavender, gift\"\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "soy, lavender, gift", rows[0].Get("Tags"))
}

func TestParseCSV_EscapedQuote(t *testing.T) {
	input := "Handle,Title\ncandle-a,\"The \"\"Big\"\" Candle\"\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, `The "Big" Candle`, rows[0].Get("Title"))
}

func TestParseCSV_EmbeddedNewline(t *testing.T) {
	input := "Handle,Body (HTML)\ncandle-a,\"<p>Line one</p>\n<p>Line two</p>\"\ncandle-b,Plain\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "<p>Line one</p>\n<p>Line two</p>", rows[0].Get("Body (HTML)"))
	assert.Equal(t, "candle-b", rows[1].Get("Handle"))
}

func TestParseCSV_RaggedRowsArePadded(t *testing.T) {
	input := "Handle,Title,Vendor\ncandle-a\ncandle-b,Candle B,Acme,extra\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Has("Vendor"))
	assert.Equal(t, "", rows[0].Get("Title"))
	assert.Equal(t, "", rows[0].Get("Vendor"))
	assert.Equal(t, "Acme", rows[1].Get("Vendor"))
	assert.Len(t, rows[1], 3)
}

func TestParseCSV_BlankRowsDropped(t *testing.T) {
	input := "Handle,Title\ncandle-a,Candle A\n\n  ,  \ncandle-b,Candle B\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "candle-b", rows[1].Get("Handle"))
}

func TestParseCSV_HeaderTrimmedAndBOMStripped(t *testing.T) {
	input := "\ufeffHandle , Title \ncandle-a,Candle A\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "candle-a", rows[0].Get("Handle"))
	assert.Equal(t, "Candle A", rows[0].Get("Title"))
}

func TestParseCSV_FewerThanTwoLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "Handle,Title\n"},
		{"header without newline", "Handle,Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseCSV(strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestParseCSV_RowCountMatchesLines(t *testing.T) {
	lines := []string{"Email,First Name"}
	for i := 0; i < 25; i++ {
		lines = append(lines, "user@example.com,User")
	}

	rows, err := ParseCSV(strings.NewReader(strings.Join(lines, "\n")))

	require.NoError(t, err)
	assert.Len(t, rows, len(lines)-1)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestParseCSV_ReadErrorReturned(t *testing.T) {
	_, err := ParseCSV(failingReader{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestRawRow_First(t *testing.T) {
	row := RawRow{"Default Address City": "  ", "City": "Portland"}

	assert.Equal(t, "Portland", row.First("Default Address City", "City"))
	assert.Equal(t, "", row.First("Missing"))
}

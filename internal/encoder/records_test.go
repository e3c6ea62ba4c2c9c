package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/config"
)

func productRecords() []map[string]any {
	return []map[string]any{
		{"id": "P-1", "name": "Widget", "price": 9.99, "description": "A very long marketing description that nobody needs in a compressed prompt context at all."},
		{"id": "P-2", "name": "Gadget", "price": 19.5, "description": "Another verbose blob of descriptive marketing text that adds nothing to the model's task."},
	}
}

func TestRecordsEncoder_LowImportanceFieldOmitted(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"id"},
		Threshold:      0.5,
		MaxFieldLength: 100,
	})

	compressed, errs, err := e.Encode("products", productRecords())
	require.NoError(t, err)
	assert.Empty(t, errs)

	lines := strings.Split(compressed, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[DATA:products:2]{id,name,price}", lines[0])
	assert.Equal(t, "[P-1|Widget|9.99]", lines[1])
	assert.Equal(t, "[P-2|Gadget|19.5]", lines[2])
	assert.NotContains(t, compressed, "description", "below-threshold field is omitted everywhere")
}

func TestRecordsEncoder_RequiredWinsOverExcluded(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"description"},
		Excluded:       []string{"description", "price"},
		Threshold:      0.5,
		MaxFieldLength: 100,
	})

	compressed, errs, err := e.Encode("products", productRecords())
	require.NoError(t, err)
	assert.Empty(t, errs)

	header := strings.SplitN(compressed, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(header, "[DATA:products:2]{description,"), "required field leads: %s", header)
	assert.NotContains(t, header, "price")
}

func TestRecordsEncoder_MissingRequiredFailsRecordNotBatch(t *testing.T) {
	records := append(productRecords(), map[string]any{"name": "Orphan", "price": 1.0})
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"id"},
		Threshold:      0.5,
		MaxFieldLength: 100,
	})

	compressed, errs, err := e.Encode("products", records)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Index)
	assert.Equal(t, "id", errs[0].Field)

	assert.True(t, strings.HasPrefix(compressed, "[DATA:products:2]"), "header counts surviving rows")
	assert.NotContains(t, compressed, "Orphan")
}

func TestRecordsEncoder_ImportanceOverride(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Importance:     map[string]float64{"description": 0.9, "name": 0.1},
		Threshold:      0.5,
		MaxFieldLength: 200,
	})

	compressed, _, err := e.Encode("products", productRecords())
	require.NoError(t, err)

	header := strings.SplitN(compressed, "\n", 2)[0]
	assert.Contains(t, header, "description")
	assert.NotContains(t, header, "name")
}

func TestRecordsEncoder_TruncatesLongValues(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"note"},
		Threshold:      0.5,
		MaxFieldLength: 10,
	})

	compressed, _, err := e.Encode("notes", []map[string]any{
		{"note": "this value is far beyond ten characters"},
	})
	require.NoError(t, err)
	assert.Contains(t, compressed, "[this valu…]")
}

func TestRecordsEncoder_FlattensNestedMaps(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"address.city"},
		Threshold:      0.99,
		MaxFieldLength: 100,
	})

	compressed, errs, err := e.Encode("people", []map[string]any{
		{"id": "1", "address": map[string]any{"city": "Lisbon", "zip": "1000"}},
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Contains(t, compressed, "{address.city}")
	assert.Contains(t, compressed, "[Lisbon]")
}

func TestRecordsEncoder_EscapesRowDelimiters(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:       []string{"v"},
		Threshold:      0.5,
		MaxFieldLength: 100,
	})

	compressed, _, err := e.Encode("x", []map[string]any{
		{"v": "a|b [c]"},
	})
	require.NoError(t, err)
	assert.Contains(t, compressed, `[a\|b [c]]`)
}

func TestRecordsEncoder_InlineArraysAndMaps(t *testing.T) {
	e := NewRecordsEncoder(config.RecordsOptions{
		Required:          []string{"id", "tags"},
		Threshold:         0.5,
		MaxFieldLength:    100,
		PreserveStructure: true,
	})

	compressed, errs, err := e.Encode("items", []map[string]any{
		{"id": "1", "tags": []any{"a", "b", "c"}, "owner": map[string]any{"name": "Ana", "city": "Lisbon"}},
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Contains(t, compressed, "[a,b,c]")
	assert.Contains(t, compressed, "{city:Lisbon,name:Ana}")
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "records", sanitizeName("  "))
	assert.Equal(t, "my_data", sanitizeName("my data"))
	assert.Equal(t, "a_b_", sanitizeName("a:b]"))
}

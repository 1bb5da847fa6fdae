package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomstock/internal/core/entity"
)

type testRow struct {
	entity.BaseEntity
	Code     string `db:"code"`
	Name     string `db:"name"`
	Internal string
	Skipped  string `db:"-"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[testRow]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.NotContains(t, cols, "Internal")
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	row := testRow{Code: "RT-001", Name: "Standard Double", Internal: "ignored", Skipped: "ignored"}

	m := StructToMap(row)

	assert.Equal(t, "RT-001", m["code"])
	assert.Equal(t, "Standard Double", m["name"])
	assert.NotContains(t, m, "Internal")
	assert.NotContains(t, m, "Skipped")

	// Embedded BaseEntity columns surface at the top level.
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "created_at")
}

func TestStructToMap_Pointer(t *testing.T) {
	row := &testRow{Code: "RT-002"}

	m := StructToMap(row)
	assert.Equal(t, "RT-002", m["code"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}

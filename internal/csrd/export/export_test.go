package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"portail-rse/internal/csrd/models"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func TestSelectedExport(t *testing.T) {
	r, err := models.NewReport("123456789", 2024, nil, now)
	require.NoError(t, err)
	require.NoError(t, r.ToggleSelection([]int64{2}, models.ESRSE1, now))
	custom, err := r.CreateCustom(models.ESRSE1, "Chaleur fatale", "", now)
	require.NoError(t, err)

	data, err := Issues(r, Selected)
	require.NoError(t, err)
	rows := readRows(t, data)

	require.Len(t, rows, 1+models.CatalogSize()-2+1)
	assert.Equal(t, []string{"ESRS", "Enjeu", "Description", "Origine"}, rows[0])
	assert.Equal(t, "ESRS E1 - Changement climatique", rows[1][0])
	assert.Equal(t, "Atténuation du changement climatique", rows[1][1])
	assert.Equal(t, originStandard, rows[1][3])
	assert.Equal(t, custom.Name, rows[2][1])
	assert.Equal(t, originCustom, rows[2][3])
}

func TestAnalyzedExport(t *testing.T) {
	r, err := models.NewReport("123456789", 2024, nil, now)
	require.NoError(t, err)
	_, err = r.Validate(models.StepIssueSelection, now)
	require.NoError(t, err)
	yes, no := true, false
	require.NoError(t, r.SetMaterial(1, &yes, now))
	require.NoError(t, r.SetMaterial(4, &no, now))

	data, err := Issues(r, Analyzed)
	require.NoError(t, err)
	rows := readRows(t, data)

	require.Len(t, rows, 3)
	assert.Equal(t, "Matérialité", rows[0][4])
	assert.Equal(t, "Matériel", rows[1][4])
	assert.Equal(t, "ESRS E2 - Pollution", rows[2][0])
	assert.Equal(t, "Non-matériel", rows[2][4])
}

func TestFilename(t *testing.T) {
	r := &models.Report{Siren: "123456789", Year: 2024}
	assert.Equal(t, "enjeux_123456789_2024.xlsx", Filename(r, Selected))
	assert.Equal(t, "enjeux_materiels_123456789_2024.xlsx", Filename(r, Analyzed))
}

package menureport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/fudofusion/internal/domain"
)

func sampleMenu() []domain.MenuItem {
	price := decimal.RequireFromString
	return []domain.MenuItem{
		{ID: 1, Name: "Steak", Category: "Main", Price: price("20"), Description: "Grilled"},
		{ID: 2, Name: "Cake", Category: "Dessert", Price: price("6"), Description: "Chocolate"},
		{ID: 3, Name: "Fish", Category: "main", Price: price("18"), Description: "Baked"},
		{ID: 4, Name: "Pasta", Category: "MAIN", Price: price("13"), Description: "Fresh"},
	}
}

func TestSummarize(t *testing.T) {
	rows, err := Summarize(sampleMenu())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	main := rows[0]
	require.Equal(t, "MAIN", main.Category)
	require.Equal(t, 3, main.Count)
	require.InDelta(t, 13, main.Min, 1e-9)
	require.InDelta(t, 20, main.Max, 1e-9)
	require.InDelta(t, 17, main.Mean, 1e-9)
	require.InDelta(t, 18, main.Median, 1e-9)

	require.Equal(t, "DESSERT", rows[1].Category)
	require.Equal(t, 1, rows[1].Count)

	empty, err := Summarize(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestWriteReport(t *testing.T) {
	rows, err := Summarize(sampleMenu())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "CATEGORY"))
	require.Contains(t, lines[1], "17.00")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "menu.xlsx")
	require.NoError(t, ExportXLSX(path, sampleMenu()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

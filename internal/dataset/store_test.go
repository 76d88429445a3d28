package dataset

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/require"
    "github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
    t.Helper()
    f := excelize.NewFile()
    defer f.Close()
    for i, row := range rows {
        for j, v := range row {
            cell, err := excelize.CoordinatesToCellName(j+1, i+1)
            require.NoError(t, err)
            require.NoError(t, f.SetCellValue("Sheet1", cell, v))
        }
    }
    require.NoError(t, f.SaveAs(path))
}

func TestStoreMissingDir(t *testing.T) {
    s := NewStore(filepath.Join(t.TempDir(), "nope"))

    _, ok := s.Pincodes()
    require.False(t, ok)
    _, ok = s.Urgent()
    require.False(t, ok)

    // Permanent for the process: a later call does not retry.
    _, ok = s.Pincodes()
    require.False(t, ok)
}

func TestStoreMissingWorkbook(t *testing.T) {
    dir := t.TempDir()
    writeWorkbook(t, filepath.Join(dir, "Pincode Master.xlsx"), [][]any{
        {"Pincode", "Area", "Category"},
        {"500001", "Abids", "Local (HYD)"},
    })
    // No urgent workbook: both datasets stay unavailable.
    s := NewStore(dir)
    _, ok := s.Pincodes()
    require.False(t, ok)
    _, ok = s.Urgent()
    require.False(t, ok)
}

func TestStoreLoadsWorkbooks(t *testing.T) {
    dir := t.TempDir()
    writeWorkbook(t, filepath.Join(dir, "Pincode Master.xlsx"), [][]any{
        {"Pincode", "Area", "Category"},
        {"500001", "Abids", "Local (HYD)"},
        {"110001", "Connaught Place", "Metro City Del"},
    })
    writeWorkbook(t, filepath.Join(dir, "URGENT rates.xlsx"), [][]any{
        {"Destination", "MinG", "MaxG", "Price"},
        {"Local", 0, 250, 90},
    })

    s := NewStore(dir)

    pincodes, ok := s.Pincodes()
    require.True(t, ok)
    require.Len(t, pincodes.Rows, 2)
    row, found := pincodes.FindByValue("500001")
    require.True(t, found)
    require.Equal(t, "Abids", pincodes.FieldOf(row, FieldArea))
    require.Equal(t, "Local (HYD)", pincodes.FieldOf(row, FieldCategory))

    urgent, ok := s.Urgent()
    require.True(t, ok)
    require.Len(t, urgent.Rows, 1)
    min, numOK := urgent.FloatOf(urgent.Rows[0], FieldMinGrams)
    require.True(t, numOK)
    require.Equal(t, 0.0, min)

    // Loading happens once; subsequent calls return the same table.
    again, ok := s.Pincodes()
    require.True(t, ok)
    require.Same(t, pincodes, again)
}

func TestStoreShortRowsReadAsEmpty(t *testing.T) {
    dir := t.TempDir()
    writeWorkbook(t, filepath.Join(dir, "pincode.xlsx"), [][]any{
        {"Pincode", "Area", "Category"},
        {"500001"},
    })
    writeWorkbook(t, filepath.Join(dir, "urgent.xlsx"), [][]any{
        {"Destination", "Price"},
        {"Local", 90},
    })

    s := NewStore(dir)
    pincodes, ok := s.Pincodes()
    require.True(t, ok)
    require.Len(t, pincodes.Rows, 1)
    require.Equal(t, "", pincodes.FieldOf(pincodes.Rows[0], FieldArea))
    require.Equal(t, "", pincodes.FieldOf(pincodes.Rows[0], FieldCategory))
}

func TestStoreUnreadableWorkbook(t *testing.T) {
    dir := t.TempDir()
    require.NoError(t, os.WriteFile(filepath.Join(dir, "pincode.xlsx"), []byte("not a workbook"), 0o644))
    writeWorkbook(t, filepath.Join(dir, "urgent.xlsx"), [][]any{
        {"Destination", "Price"},
    })

    s := NewStore(dir)
    _, ok := s.Pincodes()
    require.False(t, ok)
    _, ok = s.Urgent()
    require.False(t, ok)
}

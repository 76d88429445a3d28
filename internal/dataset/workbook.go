package dataset

import (
    "fmt"

    "github.com/xuri/excelize/v2"
)

// readWorkbook parses the first sheet of an xlsx workbook into a Table. The
// first row supplies the headers; cells missing from shorter rows read as "".
func readWorkbook(path string) (*Table, error) {
    f, err := excelize.OpenFile(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()

    sheets := f.GetSheetList()
    if len(sheets) == 0 {
        return nil, fmt.Errorf("workbook %s has no sheets", path)
    }
    rows, err := f.GetRows(sheets[0])
    if err != nil {
        return nil, err
    }
    if len(rows) == 0 {
        return NewTable(nil, nil), nil
    }

    headers := rows[0]
    records := make([]Record, 0, len(rows)-1)
    for _, cells := range rows[1:] {
        rec := make(Record, len(headers))
        for i, h := range headers {
            if h == "" {
                continue
            }
            if i < len(cells) {
                rec[h] = cells[i]
            } else {
                rec[h] = ""
            }
        }
        records = append(records, rec)
    }
    return NewTable(headers, records), nil
}

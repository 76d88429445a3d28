package dataset

import (
    "strconv"
    "strings"
)

// Record is one sheet row keyed by the original header text. Missing cells
// read as "".
type Record map[string]string

// Field names a logical column the pricing code reads. Externally authored
// sheets spell their headers inconsistently, so each field maps to an ordered
// list of accepted spellings resolved once when the table is built.
type Field string

const (
    FieldPincode     Field = "pincode"
    FieldArea        Field = "area"
    FieldCategory    Field = "category"
    FieldDestination Field = "destination"
    FieldMinGrams    Field = "min_grams"
    FieldMaxGrams    Field = "max_grams"
    FieldPrice       Field = "price"
    FieldBand250     Field = "band_0_250"
    FieldBand500     Field = "band_250_500"
    FieldAddl500     Field = "addl_500"
)

// fieldAliases lists accepted header spellings per field, in priority order.
// Candidates are compared after normalizeHeader, so "Min (g)", "MinG" and
// "min" all resolve.
var fieldAliases = map[Field][]string{
    FieldPincode:     {"pincode", "pin"},
    FieldArea:        {"area", "areaname"},
    FieldCategory:    {"category", "region", "destination", "zone", "state"},
    FieldDestination: {"destination"},
    FieldMinGrams:    {"ming", "min(g)", "min"},
    FieldMaxGrams:    {"maxg", "max(g)", "max"},
    FieldPrice:       {"price"},
    FieldBand250:     {"0-250gms", "0-250gm", "0-250g", "0-250"},
    FieldBand500:     {"250-500gms", "250-500gm", "250-500g", "250-500"},
    FieldAddl500:     {"everyaddl500gms", "everyaddl500", "addl500gms", "addl500"},
}

var headerNormalizer = strings.NewReplacer("–", "-", "—", "-", " ", "", "\t", "")

func normalizeHeader(h string) string {
    return headerNormalizer.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// Table is an ordered sheet whose header aliases were resolved at build time.
// Lookups afterwards consult the resolved column map only.
type Table struct {
    Headers []string
    Rows    []Record

    cols map[Field]string
}

// NewTable resolves each logical field against the sheet headers and returns
// the table. Fields whose aliases match no header stay unresolved; accessors
// then report them as absent.
func NewTable(headers []string, rows []Record) *Table {
    norm := make([]string, len(headers))
    for i, h := range headers {
        norm[i] = normalizeHeader(h)
    }
    cols := make(map[Field]string, len(fieldAliases))
    for field, aliases := range fieldAliases {
        if h, ok := resolveAlias(headers, norm, aliases); ok {
            cols[field] = h
        }
    }
    return &Table{Headers: headers, Rows: rows, cols: cols}
}

func resolveAlias(headers, norm []string, aliases []string) (string, bool) {
    for _, alias := range aliases {
        for i, n := range norm {
            if n == alias {
                return headers[i], true
            }
        }
    }
    return "", false
}

// FieldOf returns the record's trimmed value for a field, or "" when the
// sheet carried no column for it.
func (t *Table) FieldOf(rec Record, f Field) string {
    h, ok := t.cols[f]
    if !ok {
        return ""
    }
    return strings.TrimSpace(rec[h])
}

// FloatOf parses the record's value for a field as a number.
func (t *Table) FloatOf(rec Record, f Field) (float64, bool) {
    s := t.FieldOf(rec, f)
    if s == "" {
        return 0, false
    }
    v, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return 0, false
    }
    return v, true
}

// HasField reports whether the sheet carried a column for the field.
func (t *Table) HasField(f Field) bool {
    _, ok := t.cols[f]
    return ok
}

// FindByValue returns the first row where any cell equals the value after
// trimming. Pincode sheets name their code column inconsistently, so every
// cell is a candidate; first match wins.
func (t *Table) FindByValue(v string) (Record, bool) {
    want := strings.TrimSpace(v)
    if want == "" {
        return nil, false
    }
    for _, row := range t.Rows {
        for _, cell := range row {
            if strings.TrimSpace(cell) == want {
                return row, true
            }
        }
    }
    return nil, false
}

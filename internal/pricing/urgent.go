package pricing

import (
    "strings"

    "courierquote/internal/dataset"
)

// ResolveUrgent looks up an urgent-service price for the category and weight.
// Externally authored urgent sheets come in two shapes: rows carrying explicit
// min/max gram bounds with a price, or one row per destination carrying
// weight-band columns. Range rows are consulted first; band columns only when
// no range row matched. The second return is false when neither strategy
// yields a price.
func ResolveUrgent(t *dataset.Table, cat Category, weightGrams int) (float64, bool) {
    if t == nil {
        return 0, false
    }
    token := cat.matchToken()
    if price, ok := matchRange(t, token, weightGrams); ok {
        return price, true
    }
    return matchBands(t, token, weightGrams)
}

// matchRange scans rows whose destination contains the token for one whose
// [min, max] gram bounds include the weight.
func matchRange(t *dataset.Table, token string, weightGrams int) (float64, bool) {
    for _, row := range t.Rows {
        dest := strings.ToLower(t.FieldOf(row, dataset.FieldDestination))
        if dest == "" || !strings.Contains(dest, token) {
            continue
        }
        min, okMin := t.FloatOf(row, dataset.FieldMinGrams)
        max, okMax := t.FloatOf(row, dataset.FieldMaxGrams)
        if !okMin || !okMax {
            continue
        }
        if float64(weightGrams) >= min && float64(weightGrams) <= max {
            price, _ := t.FloatOf(row, dataset.FieldPrice)
            return price, true
        }
    }
    return 0, false
}

// matchBands finds the first row for a matching destination and applies the
// three-way weight branching over its band columns.
func matchBands(t *dataset.Table, token string, weightGrams int) (float64, bool) {
    row, ok := destinationRow(t, token)
    if !ok {
        return 0, false
    }
    first250, has250 := t.FloatOf(row, dataset.FieldBand250)
    first500, has500 := t.FloatOf(row, dataset.FieldBand500)
    addl500, hasAddl := t.FloatOf(row, dataset.FieldAddl500)
    switch {
    case weightGrams <= 250 && has250:
        return first250, true
    case weightGrams > 250 && weightGrams <= 500 && has500:
        return first500, true
    case weightGrams > 500 && hasAddl:
        if !has500 {
            first500 = 0
        }
        extra := weightGrams - 500
        return first500 + float64(ceilDiv(extra, 500))*addl500, true
    }
    return 0, false
}

// destinationRow returns the first row whose non-empty destination label
// contains the token, case-insensitively.
func destinationRow(t *dataset.Table, token string) (dataset.Record, bool) {
    for _, row := range t.Rows {
        dest := strings.ToLower(t.FieldOf(row, dataset.FieldDestination))
        if dest != "" && strings.Contains(dest, token) {
            return row, true
        }
    }
    return nil, false
}

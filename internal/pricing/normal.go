package pricing

import (
    "errors"
    "fmt"
    "strings"
)

// TransportMode selects the per-kg rate for shipments of 5kg and above. It is
// ignored below 5kg.
type TransportMode string

const (
    Surface TransportMode = "surface"
    Air     TransportMode = "air"
)

var (
    // ErrUnsupportedCategory is returned when a category has no entry in the
    // applicable rate table.
    ErrUnsupportedCategory = errors.New("category not supported")
    // ErrUnsupportedTransport is returned when the chosen transport mode is not
    // offered for the category.
    ErrUnsupportedTransport = errors.New("transport mode not available")
)

// bandRates prices shipments under 5kg.
type bandRates struct {
    first250 float64
    first500 float64
    addl500  float64
}

// perKgRates prices shipments of 5kg and above. A nil rate means the mode is
// not offered for the category, which is distinct from a zero rate.
type perKgRates struct {
    surface *float64
    air     *float64
}

var normalUnder5 = map[Category]bandRates{
    Local:       {first250: 80, first500: 110, addl500: 60},
    StateRegion: {first250: 120, first500: 150, addl500: 70},
    MetroTier1:  {first250: 180, first500: 200, addl500: 140},
    MetroTier2:  {first250: 150, first500: 180, addl500: 110},
    RestOfIndia: {first250: 200, first500: 240, addl500: 160},
}

var normalAbove5 = map[Category]perKgRates{
    Local:       {surface: rate(70)},
    StateRegion: {surface: rate(80)},
    MetroTier1:  {surface: rate(120), air: rate(200)},
    MetroTier2:  {surface: rate(110), air: rate(150)},
    RestOfIndia: {surface: rate(150), air: rate(250)},
}

func rate(v float64) *float64 { return &v }

// CalcNormal prices a normal-service shipment. Below 5kg the banded table
// applies: flat rates up to 250g and 500g, then a per-500g increment where any
// partial increment bills as a full one. At 5kg and above the per-kg table
// applies, the weight rounds up to the next whole kilogram, and an empty mode
// defaults to surface.
func CalcNormal(cat Category, weightGrams int, mode TransportMode) (float64, error) {
    if weightGrams < 5000 {
        band, ok := normalUnder5[cat]
        if !ok {
            return 0, fmt.Errorf("%w for <5kg: %s", ErrUnsupportedCategory, cat.Label())
        }
        switch {
        case weightGrams <= 250:
            return band.first250, nil
        case weightGrams <= 500:
            return band.first500, nil
        default:
            extra := weightGrams - 500
            return band.first500 + float64(ceilDiv(extra, 500))*band.addl500, nil
        }
    }

    perKg, ok := normalAbove5[cat]
    if !ok {
        return 0, fmt.Errorf("%w for >=5kg: %s", ErrUnsupportedCategory, cat.Label())
    }
    m := TransportMode(strings.ToLower(string(mode)))
    if m == "" {
        m = Surface
    }
    r := perKg.surface
    if m == Air {
        r = perKg.air
    }
    if r == nil {
        return 0, fmt.Errorf("%w: %s for %s", ErrUnsupportedTransport, m, cat.Label())
    }
    kg := ceilDiv(weightGrams, 1000)
    return float64(kg) * *r, nil
}

// ceilDiv rounds the quotient up.
func ceilDiv(a, b int) int {
    return (a + b - 1) / b
}

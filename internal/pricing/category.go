package pricing

import "strings"

// Category is the canonical price-region bucket a destination resolves to.
type Category string

const (
    Local       Category = "Local"
    StateRegion Category = "StateRegion"
    MetroTier1  Category = "MetroTier1"
    MetroTier2  Category = "MetroTier2"
    RestOfIndia Category = "RestOfIndia"
)

// Label returns the rate-card wording for a category, used in error messages.
func (c Category) Label() string {
    switch c {
    case Local:
        return "Local (HYD)"
    case StateRegion:
        return "AP / Telangana"
    case MetroTier1:
        return "Metro City Mum, Del, Kol"
    case MetroTier2:
        return "Che, Blr"
    case RestOfIndia:
        return "Rest of India"
    }
    return string(c)
}

// matchToken is the lowercased word the urgent resolver looks for inside
// destination labels of the urgent sheet.
func (c Category) matchToken() string {
    switch c {
    case Local:
        return "local"
    case StateRegion:
        return "ap"
    case MetroTier1:
        return "metro"
    case MetroTier2:
        return "che"
    default:
        return "rest"
    }
}

// Normalize maps a free-text region string onto a Category. The checks run in a
// fixed priority order: a region mentioning both "local" and a metro marker is
// Local because the local check runs first. Unknown regions fall back to
// RestOfIndia.
func Normalize(raw string) Category {
    c := strings.ToLower(raw)
    switch {
    case containsAny(c, "hyd", "local"):
        return Local
    case containsAny(c, "ap", "telangana"):
        return StateRegion
    case containsAny(c, "mum", "del", "kol", "metro"):
        return MetroTier1
    case containsAny(c, "che", "blr", "bangalore", "chen"):
        return MetroTier2
    default:
        return RestOfIndia
    }
}

func containsAny(s string, subs ...string) bool {
    for _, sub := range subs {
        if strings.Contains(s, sub) {
            return true
        }
    }
    return false
}

package dataset

import (
    "log"
    "os"
    "path/filepath"
    "strings"
    "sync"
)

// Store lazily loads the two reference workbooks and memoizes them for the
// process lifetime. A missing data directory, a missing workbook, or a parse
// failure leaves both tables unavailable until restart; callers surface that
// as a configuration error rather than retrying.
type Store struct {
    dir string

    once     sync.Once
    pincodes *Table
    urgent   *Table
}

func NewStore(dir string) *Store {
    return &Store{dir: dir}
}

// Pincodes returns the pincode reference table, loading on first use.
func (s *Store) Pincodes() (*Table, bool) {
    s.once.Do(s.load)
    return s.pincodes, s.pincodes != nil
}

// Urgent returns the urgent-pricing table, loading on first use.
func (s *Store) Urgent() (*Table, bool) {
    s.once.Do(s.load)
    return s.urgent, s.urgent != nil
}

// load discovers the two workbooks by case-insensitive filename substring and
// parses them. Either both tables load or neither does.
func (s *Store) load() {
    entries, err := os.ReadDir(s.dir)
    if err != nil {
        log.Printf("dataset: data dir %s unavailable: %v", s.dir, err)
        return
    }

    var pincodeFile, urgentFile string
    for _, e := range entries {
        if e.IsDir() {
            continue
        }
        name := strings.ToLower(e.Name())
        if pincodeFile == "" && strings.Contains(name, "pincode") {
            pincodeFile = e.Name()
        }
        if urgentFile == "" && strings.Contains(name, "urgent") {
            urgentFile = e.Name()
        }
    }
    if pincodeFile == "" || urgentFile == "" {
        log.Printf("dataset: pincode or urgent workbook missing in %s", s.dir)
        return
    }

    pincodes, err := readWorkbook(filepath.Join(s.dir, pincodeFile))
    if err != nil {
        log.Printf("dataset: read %s: %v", pincodeFile, err)
        return
    }
    urgent, err := readWorkbook(filepath.Join(s.dir, urgentFile))
    if err != nil {
        log.Printf("dataset: read %s: %v", urgentFile, err)
        return
    }
    s.pincodes = pincodes
    s.urgent = urgent
}

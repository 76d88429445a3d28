package server

import (
    "encoding/json"
    "net/http"
    "os"
    "strings"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/google/uuid"

    "courierquote/internal/dataset"
)

// DataSource supplies the two reference tables. The concrete implementation
// is dataset.Store; tests inject fakes.
type DataSource interface {
    Pincodes() (*dataset.Table, bool)
    Urgent() (*dataset.Table, bool)
}

type Server struct {
    data DataSource
}

// New builds the HTTP handler. publicDir, when it names an existing
// directory, is served at the root for the search UI; pass "" to disable.
func New(data DataSource, publicDir string) http.Handler {
    s := &Server{data: data}
    r := chi.NewRouter()
    // Observability: Request ID and basic logger
    r.Use(requestIDMiddleware)
    r.Use(middleware.Logger)
    r.Get("/healthz", s.handleHealth)
    r.HandleFunc("/api/search", s.handleSearch)
    if publicDir != "" {
        if st, err := os.Stat(publicDir); err == nil && st.IsDir() {
            r.Handle("/*", http.FileServer(http.Dir(publicDir)))
        }
    }
    return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusOK)
    w.Write([]byte("ok"))
}

// writeFail writes the standard failure envelope {"ok": false, "msg": ...}.
func writeFail(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, map[string]any{"ok": false, "msg": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
        if rid == "" {
            rid = uuid.New().String()
        }
        w.Header().Set("X-Request-ID", rid)
        next.ServeHTTP(w, r)
    })
}

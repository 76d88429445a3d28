package main

import (
    "log"
    "net/http"
    "os"
    "time"

    "courierquote/internal/config"
    "courierquote/internal/dataset"
    "courierquote/internal/server"
)

func main() {
    cfg := config.Load()

    // Datasets load lazily on first request; a missing data dir surfaces as a
    // per-request configuration error, not a startup failure.
    store := dataset.NewStore(cfg.DataDir)
    h := server.New(store, cfg.PublicDir)

    srv := &http.Server{
        Addr:              ":" + cfg.Port,
        Handler:           h,
        ReadTimeout:       10 * time.Second,
        ReadHeaderTimeout: 10 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    log.Printf("api listening on :%s (DATA_DIR=%s)", cfg.Port, cfg.DataDir)
    if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
        log.Println("server error:", err)
        os.Exit(1)
    }
}

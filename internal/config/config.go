package config

import (
    "os"

    "github.com/joho/godotenv"
)

type Config struct {
    Port      string
    DataDir   string
    PublicDir string
}

func Load() Config {
    // Best-effort: a missing .env is fine.
    _ = godotenv.Load()

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    dataDir := os.Getenv("DATA_DIR")
    if dataDir == "" {
        dataDir = "data"
    }
    publicDir := os.Getenv("PUBLIC_DIR")
    if publicDir == "" {
        publicDir = "public"
    }
    return Config{
        Port:      port,
        DataDir:   dataDir,
        PublicDir: publicDir,
    }
}

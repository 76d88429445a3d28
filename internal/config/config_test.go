package config

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("PORT", "")
    t.Setenv("DATA_DIR", "")
    t.Setenv("PUBLIC_DIR", "")

    cfg := Load()
    require.Equal(t, "8080", cfg.Port)
    require.Equal(t, "data", cfg.DataDir)
    require.Equal(t, "public", cfg.PublicDir)
}

func TestLoadOverrides(t *testing.T) {
    t.Setenv("PORT", "9090")
    t.Setenv("DATA_DIR", "/srv/ref")
    t.Setenv("PUBLIC_DIR", "/srv/ui")

    cfg := Load()
    require.Equal(t, "9090", cfg.Port)
    require.Equal(t, "/srv/ref", cfg.DataDir)
    require.Equal(t, "/srv/ui", cfg.PublicDir)
}

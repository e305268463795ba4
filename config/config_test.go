package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.NotEmpty(t, cfg.Web.Secret)
	assert.NotEmpty(t, cfg.System.Workdir)
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cfile := path.Join(dir, "miniamazon.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(`
system:
  workdir: /tmp/shop
web:
  host: 127.0.0.1
  port: 9090
  secret: file-secret
database:
  type: postgres
  host: db.local
  name: shop
`), 0o644))

	t.Setenv("MINIAMAZON_DB_HOST", "env.local")

	cfg := LoadConfig(cfile)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "file-secret", cfg.Web.Secret)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "env.local", cfg.Database.Host, "env beats file")
}

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	previous := AppFs
	AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { AppFs = previous })
	return AppFs
}

func TestLoadDefaults(t *testing.T) {
	useMemFs(t)

	cfg, err := Load("/project")
	require.NoError(t, err)
	assert.Equal(t, "schema.prisma", cfg.SchemaPath)
	assert.Equal(t, 1, cfg.Parallelism)
	assert.Equal(t, FormatPretty, cfg.Format)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/.pslcheck.yaml", []byte(`
schema_path: prisma/schema.prisma
parallelism: 8
format: JSON
required_version: ">= 0.1.0"
`), 0644))

	cfg, err := Load("/project")
	require.NoError(t, err)
	assert.Equal(t, "prisma/schema.prisma", cfg.SchemaPath)
	assert.Equal(t, 8, cfg.Parallelism)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ">= 0.1.0", cfg.RequiredVersion)
	assert.Equal(t, "/project/.pslcheck.yaml", cfg.File)
	assert.Equal(t, "/project/prisma/schema.prisma", cfg.ResolvedSchemaPath())
}

func TestDotEnvOverridesConfigFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/.pslcheck.yaml", []byte("parallelism: 2\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/project/.env", []byte("PSLCHECK_PARALLELISM=4\nPSLCHECK_DEBUG=true\nDATABASE_URL=postgres://localhost\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/project/.env.local", []byte("PSLCHECK_PARALLELISM=6\n"), 0644))

	cfg, err := Load("/project")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Parallelism)
	assert.True(t, cfg.Debug)
}

func TestEnvironmentWins(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/.env", []byte("PSLCHECK_SCHEMA_PATH=from-dotenv.prisma\n"), 0644))
	t.Setenv("PSLCHECK_SCHEMA_PATH", "from-env.prisma")

	cfg, err := Load("/project")
	require.NoError(t, err)
	assert.Equal(t, "from-env.prisma", cfg.SchemaPath)
}

func TestUnknownFormat(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/.pslcheck.yaml", []byte("format: xml\n"), 0644))

	_, err := Load("/project")
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestSaveRoundTrip(t *testing.T) {
	useMemFs(t)

	require.NoError(t, Save("/project", &Config{
		SchemaPath:  "db/schema.prisma",
		Parallelism: 3,
		Format:      FormatJSON,
	}))

	cfg, err := Load("/project")
	require.NoError(t, err)
	assert.Equal(t, "db/schema.prisma", cfg.SchemaPath)
	assert.Equal(t, 3, cfg.Parallelism)
	assert.Equal(t, FormatJSON, cfg.Format)
}

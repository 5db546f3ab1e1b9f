package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplib/comfort/runtime/client"
)

// withFs swaps AppFs and the environment hooks for the duration of a test.
func withFs(t *testing.T) (afero.Fs, map[string]string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	env := map[string]string{}

	oldFs, oldLookup, oldSet := AppFs, lookupEnv, setEnv
	AppFs = fs
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	setEnv = func(k, v string) error {
		env[k] = v
		t.Setenv(k, v)
		return nil
	}
	t.Cleanup(func() {
		AppFs, lookupEnv, setEnv = oldFs, oldLookup, oldSet
	})

	t.Setenv("HOME", "/home/tester")
	return fs, env
}

// inCwd returns name under the working directory, where viper looks for "."
// config files.
func inCwd(t *testing.T, name string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, name)
}

func TestLoad_Defaults(t *testing.T) {
	withFs(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Provider)
	assert.Equal(t, "comfort.db", cfg.Database)
	assert.Equal(t, "comfort.schema", cfg.Schema)
	assert.False(t, cfg.Debug)
	assert.Equal(t, client.DefaultConnectTimeout, cfg.ConnectTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	fs, _ := withFs(t)
	require.NoError(t, afero.WriteFile(fs, inCwd(t, ".comfort.yaml"), []byte(
		"provider: postgres\ndatabase: postgres://localhost/app\nconnect_timeout: 2s\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Provider)
	assert.Equal(t, "postgres://localhost/app", cfg.Database)
	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)

	cc, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, client.Postgres, cc.Provider)
	assert.Equal(t, "postgres://localhost/app", cc.DSN)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	fs, _ := withFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/comfort.yaml", []byte("database: /tmp/x.db\n"), 0o644))

	cfg, err := Load(Options{ConfigFile: "/etc/comfort.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.Database)

	_, err = Load(Options{ConfigFile: "/etc/missing.yaml"})
	assert.Error(t, err)
}

func TestLoad_HomeConfig(t *testing.T) {
	fs, _ := withFs(t)
	require.NoError(t, afero.WriteFile(fs, "/home/tester/.config/comfort/.comfort.yaml", []byte("database: home.db\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "home.db", cfg.Database)
}

func TestLoad_Dotenv(t *testing.T) {
	fs, env := withFs(t)
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("COMFORT_DATABASE=from-env.db\nCOMFORT_PROVIDER=mysql\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, ".env.local", []byte("COMFORT_PROVIDER=sqlite3\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database)
	assert.Equal(t, "sqlite3", cfg.Provider)
	assert.Equal(t, "sqlite3", env["COMFORT_PROVIDER"])
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	fs, env := withFs(t)
	env["COMFORT_DATABASE"] = "real.db"
	t.Setenv("COMFORT_DATABASE", "real.db")
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("COMFORT_DATABASE=dotenv.db\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "real.db", cfg.Database)
}

func TestLoad_Flags(t *testing.T) {
	fs, _ := withFs(t)
	require.NoError(t, afero.WriteFile(fs, inCwd(t, ".comfort.yaml"), []byte("database: file.db\nprovider: mysql\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("provider", "", "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--db", "flag.db", "--debug"}))

	cfg, err := Load(Options{Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Database)
	assert.Equal(t, "mysql", cfg.Provider)
	assert.True(t, cfg.Debug)
}

func TestLoad_Invalid(t *testing.T) {
	fs, _ := withFs(t)
	require.NoError(t, afero.WriteFile(fs, inCwd(t, ".comfort.yaml"), []byte("provider: oracle\n"), 0o644))

	_, err := Load(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

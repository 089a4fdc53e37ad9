package main

import (
	"testing"

	"prepai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCliOwnsMigrations_DisablesStartHookMigration(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "auto migrate enabled", cfg: &config.Config{Database: &config.DatabaseConfig{AutoMigrate: true}}},
		{name: "database section missing", cfg: &config.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolved *config.Config
			app := fx.New(
				fx.NopLogger,
				fx.Supply(tt.cfg),
				fx.Decorate(cliOwnsMigrations),
				fx.Invoke(func(cfg *config.Config) { resolved = cfg }),
			)
			require.NoError(t, app.Err())

			require.NotNil(t, resolved.Database)
			assert.False(t, resolved.Database.AutoMigrate)
		})
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := rootCmd()

	skip := cmd.Flags().Lookup("skip-migrations")
	require.NotNil(t, skip)
	assert.Equal(t, "false", skip.DefValue)

	env := cmd.PersistentFlags().Lookup("env")
	require.NotNil(t, env)
	assert.Equal(t, "config", env.DefValue)

	migrateCmd, _, err := cmd.Find([]string{"migrate"})
	require.NoError(t, err)
	assert.Equal(t, "migrate", migrateCmd.Name())
}

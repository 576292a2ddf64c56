package config_test

import (
	"testing"

	"github.com/jrsteele09/go-gallery-server/internal/config"
	"github.com/stretchr/testify/require"
)

func TestEnvVars_GetPort(t *testing.T) {
	c := config.New()

	t.Run("default", func(t *testing.T) {
		require.Equal(t, ":3000", c.GetPort())
	})

	t.Run("bare port gets a colon prefix", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		require.Equal(t, ":8080", c.GetPort())
	})

	t.Run("already prefixed", func(t *testing.T) {
		t.Setenv("PORT", ":9090")
		require.Equal(t, ":9090", c.GetPort())
	})
}

func TestSecurity_Defaults(t *testing.T) {
	c := config.New()

	require.Equal(t, "admin", c.GetAdminUsername())
	require.NotEmpty(t, c.GetAdminPassword())
	require.True(t, c.AuthRequired())
}

func TestSecurity_AuthRequiredToggle(t *testing.T) {
	c := config.New()

	for _, v := range []string{"false", "FALSE", "0", "no", "off"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("AUTH_REQUIRED", v)
			require.False(t, c.AuthRequired())
		})
	}

	t.Run("anything else stays on", func(t *testing.T) {
		t.Setenv("AUTH_REQUIRED", "yes")
		require.True(t, c.AuthRequired())
	})
}

func TestCors_Defaults(t *testing.T) {
	c := config.New()

	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("*"))
	require.Contains(t, c.GetAllowedMethods(), "DELETE")
	require.Contains(t, c.GetAllowedHeaders(), "Authorization")
}

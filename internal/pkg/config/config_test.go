package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/bakery-be/internal/pkg/config"
	"github.com/ammerola/bakery-be/test/helpers"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, "bakery-api", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/bakery.db", cfg.Database.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddress())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_MENU_TTL", "90s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Redis.MenuTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unsupported_driver",
			env:  map[string]string{"DB_DRIVER": "oracle"},
		},
		{
			name: "non_positive_rate_limit",
			env:  map[string]string{"RATE_LIMIT_REQUESTS": "0"},
		},
		{
			name: "export_without_workers",
			env:  map[string]string{"EXPORT_ENABLED": "true", "EXPORT_CONCURRENCY": "0"},
		},
		{
			name: "production_with_wildcard_origin",
			env:  map[string]string{"APP_ENV": "production", "SECURE_HEADERS": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "test")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(helpers.TestLogger())
			assert.Error(t, err)
		})
	}
}

func TestBasicValidator_RequiredFields(t *testing.T) {
	cfg := helpers.LoadTestConfig()
	cfg.Server.Port = ""

	err := (&config.BasicValidator{}).Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingRequiredConfig))
	assert.Contains(t, err.Error(), "Server.Port")
}

func TestProductionValidator(t *testing.T) {
	cfg := helpers.LoadTestConfig()
	cfg.App.Environment = "production"
	cfg.Security.SecureHeaders = true
	cfg.Security.AllowedOrigins = []string{"https://bakery.example"}

	require.NoError(t, cfg.Validate())

	cfg.Security.SecureHeaders = false
	assert.Error(t, cfg.Validate())
}

type fakeSecretsAPI struct {
	calls  int
	secret string
	err    error
}

func (f *fakeSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
	optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.secret)}, nil
}

func TestAWSSecretsManager_GetSecrets(t *testing.T) {
	api := &fakeSecretsAPI{secret: `{"DB_PASSWORD":"s3cret","AWS_ACCESS_KEY_ID":"AKIA"}`}
	sm := config.NewAWSSecretsManagerWithClient(api, "bakery/api", helpers.TestLogger())
	ctx := context.Background()

	val, err := sm.GetSecret(ctx, "DB_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", val)

	_, err = sm.GetSecret(ctx, "MISSING")
	assert.Error(t, err)
	assert.Equal(t, 1, api.calls, "second lookup is served from cache")

	require.NoError(t, sm.RefreshSecrets(ctx))
	assert.Equal(t, 2, api.calls)
}

func TestAWSSecretsManager_PropagatesErrors(t *testing.T) {
	api := &fakeSecretsAPI{err: errors.New("access denied")}
	sm := config.NewAWSSecretsManagerWithClient(api, "bakery/api", helpers.TestLogger())

	_, err := sm.GetSecrets(context.Background(), []string{"DB_PASSWORD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestConfig_ResolveSecrets(t *testing.T) {
	cfg := helpers.LoadTestConfig()
	api := &fakeSecretsAPI{secret: `{"DB_PASSWORD":"from-vault","AWS_SECRET_ACCESS_KEY":"xyz"}`}
	sm := config.NewAWSSecretsManagerWithClient(api, "bakery/api", helpers.TestLogger())

	require.NoError(t, cfg.ResolveSecrets(context.Background(), sm))
	assert.Equal(t, "from-vault", cfg.Database.Password)
	assert.Equal(t, "xyz", cfg.Export.SecretAccessKey)
}

func TestEnvSecretsManager(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-pass")
	sm := config.NewEnvSecretsManager()

	val, err := sm.GetSecret(context.Background(), "DB_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "env-pass", val)

	_, err = sm.GetSecret(context.Background(), "BAKERY_UNSET_SECRET")
	assert.Error(t, err)
}

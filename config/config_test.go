package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/snowkit/snowid"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)
}

func newTestLoader(t *testing.T, dir string, opts ...Option) Loader {
	t.Helper()
	opts = append([]Option{WithConfigPaths(dir)}, opts...)
	l, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, l.Load(context.Background()))
	return l
}

func TestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
app:
  name: id-service
  port: 8080
`)

	l := newTestLoader(t, dir)
	assert.Equal(t, "id-service", l.Get("app.name"))
	assert.Equal(t, 8080, l.Get("app.port"))
	assert.Nil(t, l.Get("app.missing"))
}

func TestUnmarshal(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
app:
  name: id-service
  debug: true
`)

	type appConfig struct {
		Name  string `mapstructure:"name"`
		Debug bool   `mapstructure:"debug"`
	}
	type rootConfig struct {
		App appConfig `mapstructure:"app"`
	}

	l := newTestLoader(t, dir)

	var root rootConfig
	require.NoError(t, l.Unmarshal(&root))
	assert.Equal(t, appConfig{Name: "id-service", Debug: true}, root.App)

	var app appConfig
	require.NoError(t, l.UnmarshalKey("app", &app))
	assert.Equal(t, "id-service", app.Name)
}

// TestUnmarshalGeneratorConfig 配置文件直通声明式生成器
func TestUnmarshalGeneratorConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
generator:
  fields:
    - kind: timestamp
      bits: 41
      epoch_ms: 1288834974657
    - kind: hash_constant
      bits: 10
      key: shard-7
    - kind: sequence
      bits: 12
      ref: 0
`)

	l := newTestLoader(t, dir)

	var cfg snowid.Config
	require.NoError(t, l.UnmarshalKey("generator", &cfg))
	require.Len(t, cfg.Fields, 3)
	assert.Equal(t, snowid.KindTimestamp, cfg.Fields[0].Kind)
	assert.Equal(t, int64(1288834974657), cfg.Fields[0].EpochMs)

	g, err := snowid.FromConfig(&cfg)
	require.NoError(t, err)

	id, err := g.Next()
	require.NoError(t, err)
	assert.Positive(t, id)
	// 10 位散列常量字段固定为 SHA-256("shard-7") 的低位
	assert.Equal(t, int64(673), (id>>12)&0x3FF)
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
app:
  name: from-file
`)
	t.Setenv("SNOWKIT_APP_NAME", "from-env")

	l := newTestLoader(t, dir)
	assert.Equal(t, "from-env", l.Get("app.name"))
}

func TestEnvironmentSpecificConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
app:
  name: base
  port: 8080
`)
	writeConfigFile(t, dir, "config.prod.yaml", `
app:
  name: prod
`)
	t.Setenv("SNOWKIT_ENV", "prod")

	l := newTestLoader(t, dir)
	assert.Equal(t, "prod", l.Get("app.name"))
	// 未覆盖的字段保留基础配置
	assert.Equal(t, 8080, l.Get("app.port"))
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", `
app:
  name: from-file
`)
	// godotenv 不覆盖已存在的环境变量，用独立 key 并在测试后清理
	writeConfigFile(t, dir, ".env", "SNOWKIT_DOTENV_SECRET=s3cret\n")
	t.Cleanup(func() { os.Unsetenv("SNOWKIT_DOTENV_SECRET") })

	l := newTestLoader(t, dir)
	assert.Equal(t, "s3cret", l.Get("dotenv.secret"))
}

func TestValidateEmpty(t *testing.T) {
	dir := t.TempDir()

	l, err := New(WithConfigPaths(dir))
	require.NoError(t, err)

	err = l.Load(context.Background())
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestWatchCancel(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", "app:\n  name: x\n")

	l := newTestLoader(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := l.Watch(ctx, "app.name")
	require.NoError(t, err)

	cancel()

	// 取消后通道被关闭
	_, open := <-ch
	assert.False(t, open)
}

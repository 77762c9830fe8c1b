/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/httperr/httpx"
	"dirpx.dev/httperr/mapper"
	"dirpx.dev/httperr/status"
)

const yamlConfig = `
http:
  addr: ":9090"
  variant: string
  shutdown_timeout: 5s
grpc:
  enabled: true
  addr: ":9091"
  debug_info: true
log:
  level: debug
  format: json
mapper:
  overrides:
    "409": ALREADY_EXISTS
`

const tomlConfig = `
[http]
addr = ":9090"
variant = "string"
shutdown_timeout = "5s"

[grpc]
enabled = true
addr = ":9091"
debug_info = true

[log]
level = "debug"
format = "json"

[mapper.overrides]
"409" = "already_exists"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertLoaded(t *testing.T, cfg *Config) {
	t.Helper()
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, httpx.String, cfg.HTTP.ParsedVariant())
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout.Duration)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration, "default applied")
	assert.True(t, cfg.GRPC.Enabled)
	assert.True(t, cfg.GRPC.DebugInfo)
	assert.Equal(t, ":9091", cfg.GRPC.Addr)
	assert.Equal(t, "json", cfg.Log.Format)

	opts, err := cfg.Mapper.Options()
	require.NoError(t, err)
	m, err := mapper.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, codes.AlreadyExists, m.GRPCCode(status.Conflict))
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "httperr.yaml", yamlConfig))
	require.NoError(t, err)
	assertLoaded(t, cfg)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "httperr.toml", tomlConfig))
	require.NoError(t, err)
	assertLoaded(t, cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "httperr.json", "{}"))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = Load(writeFile(t, "broken.yaml", "http: [unclosed"))
	assert.ErrorContains(t, err, "parse yaml")

	_, err = Parse([]byte("x"), "ini")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, httpx.JSON, cfg.HTTP.ParsedVariant())
	assert.False(t, cfg.GRPC.Enabled)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, "INFO", level.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"variant", func(c *Config) { c.HTTP.Variant = "xml" }},
		{"timeout", func(c *Config) { c.HTTP.ShutdownTimeout.Duration = -time.Second }},
		{"same addr", func(c *Config) { c.GRPC.Enabled = true; c.GRPC.Addr = c.HTTP.Addr }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
		{"override status", func(c *Config) { c.Mapper.Overrides = map[string]string{"4xx": "NOT_FOUND"} }},
		{"override code", func(c *Config) { c.Mapper.Overrides = map[string]string{"404": "MISSING"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration)

	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

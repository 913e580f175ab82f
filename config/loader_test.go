package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"
	"github.com/jimmielin/PKU-IAAA/log"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	file, err := Load("", nil)
	require.NoError(t, err)

	v := file.GetVerifier()
	assert.Equal(t, definitions.ProxyAddress, v.GetProxyAddress())
	assert.Equal(t, definitions.ProbeURL, v.GetProbeURL())
	assert.Equal(t, definitions.LoginURL, v.GetLoginURL())
	assert.Equal(t, definitions.AppID, v.GetAppID())
	assert.Equal(t, definitions.RandCodeStub, v.GetRandCode())
	assert.Equal(t, definitions.SMSCodeStub, v.GetSMSCode())
	assert.Equal(t, definitions.RedirectURL, v.GetRedirectURL())
	assert.True(t, v.IsOnNetwork())
	assert.True(t, v.InsecureSkipTLSVerifyUnsafe())
	assert.Equal(t, 60*time.Second, v.GetTimeout())
	assert.Equal(t, 10, v.GetMaxRedirects())
	assert.Equal(t, definitions.LogLevelInfo, file.GetLog().GetLevel())
	assert.Equal(t, definitions.InstanceName, file.GetInstanceName())
}

func TestLoad_FileAndEnv(t *testing.T) {
	root := t.TempDir()

	path := writeConfigFile(t, root, "iaaa.yaml", `instance_name: lab
log:
  level: debug
  json: true
iaaa:
  proxy_address: 127.0.0.1:3128
  login_url: https://sso.example.edu/iaaa/oauthlogin.do
  on_network: false
  insecure_skip_tls_verify: false
  timeout: 5s
`)

	t.Setenv("PKU_IAAA_IAAA_TIMEOUT", "7s")
	t.Setenv("PKU_IAAA_IAAA_APP_ID", "lab-portal")

	file, err := Load(path, nil)
	require.NoError(t, err)

	v := file.GetVerifier()
	assert.Equal(t, "lab", file.GetInstanceName())
	assert.Equal(t, definitions.LogLevelDebug, file.GetLog().GetLevel())
	assert.True(t, file.GetLog().IsJSON())
	assert.Equal(t, "127.0.0.1:3128", v.GetProxyAddress())
	assert.Equal(t, "https://sso.example.edu/iaaa/oauthlogin.do", v.GetLoginURL())
	assert.False(t, v.IsOnNetwork())
	assert.False(t, v.InsecureSkipTLSVerifyUnsafe())
	assert.Equal(t, 7*time.Second, v.GetTimeout())
	assert.Equal(t, "lab-portal", v.GetAppID())
	assert.Equal(t, definitions.ProbeURL, v.GetProbeURL())
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--iaaa.on_network=false", "--log.level=warn"}))

	file, err := Load("", fs)
	require.NoError(t, err)

	assert.False(t, file.GetVerifier().IsOnNetwork())
	assert.Equal(t, definitions.LogLevelWarn, file.GetLog().GetLevel())
	assert.Equal(t, definitions.ProxyAddress, file.GetVerifier().GetProxyAddress())
}

func TestLoad_ValidationError(t *testing.T) {
	root := t.TempDir()

	path := writeConfigFile(t, root, "bad.yaml", `iaaa:
  proxy_address: "not a host port"
`)

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfigValidation))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestNilSafeGetters(t *testing.T) {
	var file *File

	assert.Equal(t, definitions.LoginURL, file.GetVerifier().GetLoginURL())
	assert.False(t, file.IsTracingEnabled())
	assert.Equal(t, definitions.LogLevelInfo, file.GetLog().GetLevel())

	var section *VerifierSection

	assert.True(t, section.IsOnNetwork())
	assert.True(t, section.InsecureSkipTLSVerifyUnsafe())
	assert.Equal(t, definitions.RandCodeStub, section.GetRandCode())
}

func TestFile_LogOptions(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "iaaa.yaml", `
instance_name: portal-sync
log:
  level: debug
  color: true
  color_theme: dark
`)

	file, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, log.Options{
		Level:      definitions.LogLevelDebug,
		Color:      true,
		ColorTheme: "dark",
		Instance:   "portal-sync",
	}, file.LogOptions())

	var empty *File

	assert.Equal(t, log.Options{Level: definitions.LogLevelInfo, Instance: definitions.InstanceName}, empty.LogOptions())
}

func TestVerbosity_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "", want: definitions.LogLevelNone},
		{value: "none", want: definitions.LogLevelNone},
		{value: "error", want: definitions.LogLevelError},
		{value: "warn", want: definitions.LogLevelWarn},
		{value: " INFO ", want: definitions.LogLevelInfo},
		{value: "debug", want: definitions.LogLevelDebug},
		{value: "trace", wantErr: true},
	}

	for _, tt := range tests {
		v := &Verbosity{}

		err := v.Set(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, errors.ErrWrongVerboseLevel)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, v.Level())
		assert.Equal(t, "Verbosity", v.Type())
	}
}

// Copyright (C) 2026 Christian Rößner
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"strings"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PKU_IAAA_IAAA_ON_NETWORK=false.
const EnvPrefix = "PKU_IAAA"

// SetDefaults registers every known key with its default so environment overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := DefaultVerifierSection()

	v.SetDefault("instance_name", definitions.InstanceName)
	v.SetDefault("tracing", false)

	v.SetDefault("log.json", false)
	v.SetDefault("log.color", false)
	v.SetDefault("log.color_theme", "light")
	v.SetDefault("log.level", "info")

	v.SetDefault("iaaa.proxy_address", def.ProxyAddress)
	v.SetDefault("iaaa.probe_url", def.ProbeURL)
	v.SetDefault("iaaa.login_url", def.LoginURL)
	v.SetDefault("iaaa.app_id", def.AppID)
	v.SetDefault("iaaa.rand_code", def.RandCode)
	v.SetDefault("iaaa.sms_code", def.SMSCode)
	v.SetDefault("iaaa.redirect_url", def.RedirectURL)
	v.SetDefault("iaaa.user_agent", def.UserAgent)
	v.SetDefault("iaaa.on_network", def.OnNetwork)
	v.SetDefault("iaaa.insecure_skip_tls_verify", def.InsecureSkipTLSVerify)
	v.SetDefault("iaaa.timeout", def.Timeout)
	v.SetDefault("iaaa.max_redirects", def.MaxRedirects)
}

// BindFlags registers overrides on fs for programs embedding the verifier. Flag names equal the config keys.
func BindFlags(fs *pflag.FlagSet) {
	def := DefaultVerifierSection()

	verbosity := &Verbosity{}
	_ = verbosity.Set("info")

	fs.Var(verbosity, "log.level", "Log level: none, error, warn, info, debug")
	fs.Bool("log.json", false, "Write log lines as JSON")
	fs.String("iaaa.proxy_address", def.ProxyAddress, "Authenticating proxy host:port")
	fs.String("iaaa.login_url", def.LoginURL, "IAAA login endpoint")
	fs.Bool("iaaa.on_network", def.OnNetwork, "Caller is inside the institution's network")
	fs.Bool("iaaa.insecure_skip_tls_verify", def.InsecureSkipTLSVerify, "UNSAFE: skip TLS certificate verification for the direct login")
	fs.Duration("iaaa.timeout", def.Timeout, "Per-request timeout")
}

// Load reads the optional file at path, applies PKU_IAAA_* environment variables and changed flags
// from fs (may be nil), then decodes and validates the result.
func Load(path string, fs *pflag.FlagSet) (*File, error) {
	v := viper.New()

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	return Decode(v)
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (*File, error) {
	file := &File{}

	hook := viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())

	if err := v.Unmarshal(file, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(file); err != nil {
		return nil, err
	}

	return file, nil
}

// Validate checks struct tags on the whole tree.
func Validate(file *File) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(file); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrConfigValidation, err)
	}

	return nil
}

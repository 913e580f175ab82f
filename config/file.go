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
	"time"

	"github.com/jimmielin/PKU-IAAA/definitions"
	"github.com/jimmielin/PKU-IAAA/log"
)

// File is the root of the configuration tree.
type File struct {
	InstanceName string           `mapstructure:"instance_name"`
	Tracing      bool             `mapstructure:"tracing"`
	Log          *Log             `mapstructure:"log"`
	IAAA         *VerifierSection `mapstructure:"iaaa" validate:"required"`
}

// Log represents the configuration for logging.
type Log struct {
	JSON       bool   `mapstructure:"json"`
	Color      bool   `mapstructure:"color"`
	ColorTheme string `mapstructure:"color_theme" validate:"omitempty,oneof=light dark"`
	Level      string `mapstructure:"level" validate:"omitempty,oneof=none error warn info debug"`
}

// VerifierSection configures both authentication strategies. Every value that is part of the
// institution's wire contract is configurable and defaults to the constants in definitions.
type VerifierSection struct {
	ProxyAddress string `mapstructure:"proxy_address" validate:"required,hostname_port"`
	ProbeURL     string `mapstructure:"probe_url" validate:"required,url"`
	LoginURL     string `mapstructure:"login_url" validate:"required,url"`
	AppID        string `mapstructure:"app_id" validate:"required"`
	RandCode     string `mapstructure:"rand_code"`
	SMSCode      string `mapstructure:"sms_code"`
	RedirectURL  string `mapstructure:"redirect_url" validate:"omitempty,url"`
	UserAgent    string `mapstructure:"user_agent"`

	// OnNetwork states that the caller sits inside the institution's network. When false the
	// direct login is routed through the authenticating proxy.
	OnNetwork bool `mapstructure:"on_network"`

	// InsecureSkipTLSVerify disables certificate-chain verification for the direct login.
	// It defaults to true because the login host was never pinned; this permits MITM.
	InsecureSkipTLSVerify bool `mapstructure:"insecure_skip_tls_verify"`

	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxRedirects int           `mapstructure:"max_redirects" validate:"gte=0,lte=100"`
}

// DefaultVerifierSection returns the institution's production settings.
func DefaultVerifierSection() *VerifierSection {
	return &VerifierSection{
		ProxyAddress:          definitions.ProxyAddress,
		ProbeURL:              definitions.ProbeURL,
		LoginURL:              definitions.LoginURL,
		AppID:                 definitions.AppID,
		RandCode:              definitions.RandCodeStub,
		SMSCode:               definitions.SMSCodeStub,
		RedirectURL:           definitions.RedirectURL,
		OnNetwork:             true,
		InsecureSkipTLSVerify: true,
		Timeout:               60 * time.Second,
		MaxRedirects:          10,
	}
}

// Default returns a File populated with defaults only.
func Default() *File {
	return &File{
		InstanceName: definitions.InstanceName,
		Log:          &Log{Level: "info"},
		IAAA:         DefaultVerifierSection(),
	}
}

func (f *File) GetInstanceName() string {
	if f == nil || f.InstanceName == "" {
		return definitions.InstanceName
	}

	return f.InstanceName
}

func (f *File) IsTracingEnabled() bool {
	if f == nil {
		return false
	}

	return f.Tracing
}

func (f *File) GetLog() *Log {
	if f == nil || f.Log == nil {
		return &Log{}
	}

	return f.Log
}

// GetVerifier returns the iaaa section, falling back to the defaults when it is missing.
func (f *File) GetVerifier() *VerifierSection {
	if f == nil || f.IAAA == nil {
		return DefaultVerifierSection()
	}

	return f.IAAA
}

// LogOptions maps the log section and the instance name to the options of log.SetupLogging.
func (f *File) LogOptions() log.Options {
	l := f.GetLog()

	return log.Options{
		Level:      l.GetLevel(),
		JSON:       l.IsJSON(),
		Color:      l.IsColor(),
		ColorTheme: l.GetColorTheme(),
		Instance:   f.GetInstanceName(),
	}
}

// GetLevel returns the numeric log level. Unknown names map to info.
func (l *Log) GetLevel() int {
	if l == nil || l.Level == "" {
		return definitions.LogLevelInfo
	}

	v := &Verbosity{}
	if err := v.Set(l.Level); err != nil {
		return definitions.LogLevelInfo
	}

	return v.Level()
}

func (l *Log) IsJSON() bool {
	return l != nil && l.JSON
}

func (l *Log) IsColor() bool {
	return l != nil && l.Color
}

func (l *Log) GetColorTheme() string {
	if l == nil {
		return ""
	}

	return l.ColorTheme
}

func (v *VerifierSection) GetProxyAddress() string {
	if v == nil || v.ProxyAddress == "" {
		return definitions.ProxyAddress
	}

	return v.ProxyAddress
}

func (v *VerifierSection) GetProbeURL() string {
	if v == nil || v.ProbeURL == "" {
		return definitions.ProbeURL
	}

	return v.ProbeURL
}

func (v *VerifierSection) GetLoginURL() string {
	if v == nil || v.LoginURL == "" {
		return definitions.LoginURL
	}

	return v.LoginURL
}

func (v *VerifierSection) GetAppID() string {
	if v == nil || v.AppID == "" {
		return definitions.AppID
	}

	return v.AppID
}

// GetRandCode returns the captcha stub. An empty value is sent as configured.
func (v *VerifierSection) GetRandCode() string {
	if v == nil {
		return definitions.RandCodeStub
	}

	return v.RandCode
}

// GetSMSCode returns the SMS challenge stub. An empty value is sent as configured.
func (v *VerifierSection) GetSMSCode() string {
	if v == nil {
		return definitions.SMSCodeStub
	}

	return v.SMSCode
}

func (v *VerifierSection) GetRedirectURL() string {
	if v == nil {
		return definitions.RedirectURL
	}

	return v.RedirectURL
}

func (v *VerifierSection) GetUserAgent() string {
	if v == nil {
		return ""
	}

	return v.UserAgent
}

func (v *VerifierSection) IsOnNetwork() bool {
	if v == nil {
		return true
	}

	return v.OnNetwork
}

// InsecureSkipTLSVerifyUnsafe reports whether certificate verification is disabled.
func (v *VerifierSection) InsecureSkipTLSVerifyUnsafe() bool {
	if v == nil {
		return true
	}

	return v.InsecureSkipTLSVerify
}

// GetTimeout returns the per-request timeout. Zero means the client applies no timeout.
func (v *VerifierSection) GetTimeout() time.Duration {
	if v == nil {
		return 60 * time.Second
	}

	return v.Timeout
}

func (v *VerifierSection) GetMaxRedirects() int {
	if v == nil {
		return 10
	}

	return v.MaxRedirects
}

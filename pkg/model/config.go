package model

// APIServer holds the api server configuration for the optional HTTP façade
type APIServer struct {
	Addr string `yaml:"addr" validate:"required"`
	TLS  TLS    `yaml:"tls" validate:"omitempty"`
}

// TLS holds the tls configuration
type TLS struct {
	Enabled      bool   `yaml:"enabled"`
	CertFilePath string `yaml:"cert_file_path" validate:"required_if=Enabled true"`
	KeyFilePath  string `yaml:"key_file_path" validate:"required_if=Enabled true"`
}

// Log holds the log configuration
type Log struct {
	Level      string `yaml:"level"`
	FolderPath string `yaml:"folder_path"`
}

// OTEL holds the opentelemetry configuration
type OTEL struct {
	Addr    string `yaml:"addr" validate:"required"`
	Type    string `yaml:"type" validate:"required"`
	Timeout int64  `yaml:"timeout" default:"10"`
}

// Common holds configuration shared across the engine and its façade
type Common struct {
	Production bool `yaml:"production"`
	Log        Log  `yaml:"log"`
	Tracing    OTEL `yaml:"tracing" validate:"required"`
}

// Engine holds the VC/DID verification and issuance engine configuration
type Engine struct {
	// NetworkHost is the evan.network host used to build DID/VC fetch URLs,
	// e.g. "core.demo.evan.network"
	NetworkHost string `yaml:"network_host" validate:"required"`

	// DIDFetchTimeout bounds each DID-document HTTP GET
	DIDFetchTimeout int64 `yaml:"did_fetch_timeout" default:"10"`

	// StatusFetchTimeout bounds each credentialStatus HTTP GET
	StatusFetchTimeout int64 `yaml:"status_fetch_timeout" default:"10"`

	// DIDCacheTTLSeconds controls how long resolved DID documents are cached;
	// zero disables caching
	DIDCacheTTLSeconds int64 `yaml:"did_cache_ttl_seconds" default:"60"`
}

// Cfg is the main configuration structure for the engine and its façade
type Cfg struct {
	Common    Common    `yaml:"common"`
	Engine    Engine    `yaml:"engine" validate:"required"`
	APIServer APIServer `yaml:"api_server" validate:"omitempty"`
}

package config

type Config interface {
	EnvConfig
	ClientConfig
	StoreConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetLogLevel() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Client
	Store
}

// Option overrides a single setting before the environment is consulted.
// The CLI uses it to apply command line flags.
type Option func(overrides)

// WithValue forces envVar to value. Empty values are ignored so unset flags
// fall through to the environment.
func WithValue(envVar, value string) Option {
	return func(o overrides) {
		if value != "" {
			o[envVar] = value
		}
	}
}

func New(opts ...Option) Config {
	o := overrides{}
	for _, opt := range opts {
		opt(o)
	}
	return mainConfig{
		EnvVars: EnvVars{o},
		Client:  Client{o},
		Store:   Store{o},
	}
}

type overrides map[string]string

func (o overrides) get(envVar, defaultValue string) string {
	if v, ok := o[envVar]; ok {
		return v
	}
	return GetEnv(envVar, defaultValue)
}

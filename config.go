package apiclient

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding client options, e.g. APICLIENT_ORIGIN
const EnvPrefix = "APICLIENT"

var optionKeys = []string{"origin", "apiBase", "store", "cookieJar", "requestId", "strict", "verbose"}

// LoadOptions loads client options from an optional YAML or JSON config file and the environment.
// Environment variables take precedence over the file.
func LoadOptions(configFile string) (*ClientOptions, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range optionKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", configFile, err)
		}
	}
	ret := &ClientOptions{}
	if err := v.Unmarshal(ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return ret, nil
}

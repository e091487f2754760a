package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json from the working directory when present and lets
// environment variables override every key (DATABASE_HOST, COMMISSION_DRIVER_PERCENT, ...).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("./")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}
	return v
}

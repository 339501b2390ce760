package settings

import "github.com/spf13/viper"

// SetDefaults configures default values for all settings.
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.dir", "datasets")
	v.SetDefault("output.database", "")
	v.SetDefault("output.replace", false)

	// Generation defaults
	v.SetDefault("generate.backend", "serial")
	v.SetDefault("generate.seed", 0) // 0 keeps the time-based seed
}

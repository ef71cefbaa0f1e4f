package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output   string `mapstructure:"output"`
	Verbose  bool   `mapstructure:"verbose"`
	NoBib    bool   `mapstructure:"no_bib"`
	MaxDepth int    `mapstructure:"max_depth"`
	Pick     bool   `mapstructure:"pick"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output", "") // "" derives <stem>_expanded.tex, "-" is stdout
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_bib", false)
	viper.SetDefault("max_depth", 64) // matches tex.DefaultMaxDepth
	viper.SetDefault("pick", false)

	viper.SetConfigName("texflat")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "texflat"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("TEXFLAT")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOutput returns the output path override with tilde expansion; "" means
// derive the name from the main file, "-" means stdout
func GetOutput() string {
	return expandTilde(viper.GetString("output"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVerbose returns whether debug logging is enabled
func GetVerbose() bool {
	return viper.GetBool("verbose")
}

// GetNoBib returns whether bibliography processing is disabled
func GetNoBib() bool {
	return viper.GetBool("no_bib")
}

// GetMaxDepth returns the include nesting bound
func GetMaxDepth() int {
	return viper.GetInt("max_depth")
}

// GetPick returns whether the interactive main-file picker is enabled
func GetPick() bool {
	return viper.GetBool("pick")
}

// SetOutput sets the output path at runtime
func SetOutput(path string) {
	viper.Set("output", path)
	C.Output = path
}

// SetVerbose sets verbose logging at runtime
func SetVerbose(verbose bool) {
	viper.Set("verbose", verbose)
	C.Verbose = verbose
}

// SetNoBib sets the bibliography-processing switch at runtime
func SetNoBib(noBib bool) {
	viper.Set("no_bib", noBib)
	C.NoBib = noBib
}

// SetMaxDepth sets the include nesting bound at runtime
func SetMaxDepth(depth int) {
	viper.Set("max_depth", depth)
	C.MaxDepth = depth
}

// SetPick sets the interactive-picker switch at runtime
func SetPick(pick bool) {
	viper.Set("pick", pick)
	C.Pick = pick
}

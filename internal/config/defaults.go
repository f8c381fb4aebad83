package config

const (
	defaultDataDir     = "~/.local/share/ladle"
	defaultCatalogPath = "~/.local/share/ladle/recipes.json"
	defaultLogDir      = "~/.local/share/ladle/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

var defaultCategories = []string{"Breakfast", "Main Course", "Dessert", "Snack"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			CatalogPath: defaultCatalogPath,
			LogDir:      defaultLogDir,
		},
		Browse: Browse{
			Categories: append([]string(nil), defaultCategories...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

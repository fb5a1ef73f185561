package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"evento/pkg/keymaps"
	"evento/pkg/storage"
)

// Config holds the application configuration
type Config struct {
	APIURL     string            `mapstructure:"api_url"`
	APITimeout time.Duration     `mapstructure:"api_timeout"`
	KeyMap     map[string]string `mapstructure:"keymap"`
	StylesFile string            `mapstructure:"styles_file"`
	Storage    StorageConfig     `mapstructure:"storage"`
}

// StorageConfig configures the image uploader
type StorageConfig struct {
	Provider      string `mapstructure:"provider"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Styles holds the application colors and styling information
type Styles struct {
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Event specific colors
	ActiveColor      string `json:"active_color"`
	EndedColor       string `json:"ended_color"`
	GroupHeaderColor string `json:"group_header_color"`
	StarColor        string `json:"star_color"`
	CategoryColor    string `json:"category_color"`
}

// StorageCredentials builds the uploader configuration; the access keys come
// from the environment, never from the config file.
func (c Config) StorageCredentials() storage.Config {
	return storage.Config{
		Provider:        c.Storage.Provider,
		Region:          c.Storage.Region,
		Bucket:          c.Storage.Bucket,
		PublicBaseURL:   c.Storage.PublicBaseURL,
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// Load loads the application configuration from the specified path, creating
// a default config file on first run. Environment variables (optionally via
// a .env file) override the file; EVENTO_API_URL is the one most installs
// set.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	configDir := filepath.Join(homeDir, ".config", "evento")

	// .env is a development convenience; ignore it when missing
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(configDir)
	}

	v.SetDefault("api_url", "http://localhost:3000")
	v.SetDefault("api_timeout", 15*time.Second)
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())
	v.SetDefault("styles_file", filepath.Join(configDir, "styles.json"))
	v.SetDefault("storage.provider", "noop")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.public_base_url", "")

	v.SetEnvPrefix("evento")
	v.BindEnv("api_url")
	v.BindEnv("storage.provider", "EVENTO_STORAGE_PROVIDER")
	v.BindEnv("storage.region", "EVENTO_STORAGE_REGION")
	v.BindEnv("storage.bucket", "EVENTO_STORAGE_BUCKET")
	v.BindEnv("storage.public_base_url", "EVENTO_STORAGE_PUBLIC_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, Styles{}, err
		}
		// First run: write the defaults so they are easy to edit later
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return Config{}, Styles{}, err
		}
		target := configPath
		if target == "" {
			target = filepath.Join(configDir, "config.json")
		}
		if err := v.WriteConfigAs(target); err != nil {
			return Config{}, Styles{}, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, Styles{}, err
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		ActiveColor:       "2",
		EndedColor:        "8",
		GroupHeaderColor:  "205",
		StarColor:         "220",
		CategoryColor:     "4",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}
			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}
			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}

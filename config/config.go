package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override, e.g. IMAGECROP_JPEG_QUALITY.
const EnvPrefix = "IMAGECROP_"

// Config holds user preferences for the crop tool.
// Fields may be loaded from a JSON file and overridden by environment variables and flags.
type Config struct {
	Debug bool `json:"debug"`

	// Display area used when the screen size cannot be queried.
	DisplayWidth  int `json:"display_width"`
	DisplayHeight int `json:"display_height"`
	// Share of the screen used for the display area (0 < f <= 1).
	ScreenFraction float64 `json:"screen_fraction"`

	// Selection outline and canvas background (color names or #rrggbb).
	OutlineColor    string `json:"outline_color"`
	OutlineWidth    int    `json:"outline_width"`
	BackgroundColor string `json:"background_color"`

	JPEGQuality int  `json:"jpeg_quality"`
	AutoOrient  bool `json:"auto_orient"`
	Notify      bool `json:"notify"`
	Dark        bool `json:"dark"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		DisplayWidth:    960,
		DisplayHeight:   540,
		ScreenFraction:  0.5,
		OutlineColor:    "red",
		OutlineWidth:    2,
		BackgroundColor: "#f7f9fb",
		JPEGQuality:     95,
		AutoOrient:      true,
		Notify:          false,
		Dark:            false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.DisplayWidth <= 0 {
		c.DisplayWidth = 960
	}
	if c.DisplayHeight <= 0 {
		c.DisplayHeight = 540
	}
	if c.ScreenFraction <= 0 || c.ScreenFraction > 1 {
		c.ScreenFraction = 0.5
	}
	if strings.TrimSpace(c.OutlineColor) == "" {
		c.OutlineColor = "red"
	}
	if c.OutlineWidth < 1 {
		c.OutlineWidth = 1
	}
	if c.OutlineWidth > 10 {
		c.OutlineWidth = 10
	}
	if strings.TrimSpace(c.BackgroundColor) == "" {
		c.BackgroundColor = "#f7f9fb"
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 95
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv loads the optional dotenv files (".env" when none are given) and applies
// IMAGECROP_* overrides. A missing dotenv file is not an error.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var loadErr error
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			loadErr = errors.Join(loadErr, err)
		}
	}
	c.Debug = getEnvAsBool("DEBUG", c.Debug)
	c.DisplayWidth = getEnvAsInt("DISPLAY_WIDTH", c.DisplayWidth)
	c.DisplayHeight = getEnvAsInt("DISPLAY_HEIGHT", c.DisplayHeight)
	c.ScreenFraction = getEnvAsFloat("SCREEN_FRACTION", c.ScreenFraction)
	c.OutlineColor = getEnv("OUTLINE_COLOR", c.OutlineColor)
	c.OutlineWidth = getEnvAsInt("OUTLINE_WIDTH", c.OutlineWidth)
	c.BackgroundColor = getEnv("BACKGROUND_COLOR", c.BackgroundColor)
	c.JPEGQuality = getEnvAsInt("JPEG_QUALITY", c.JPEGQuality)
	c.AutoOrient = getEnvAsBool("AUTO_ORIENT", c.AutoOrient)
	c.Notify = getEnvAsBool("NOTIFY", c.Notify)
	c.Dark = getEnvAsBool("DARK", c.Dark)
	_ = c.Validate()
	return loadErr
}

func getEnv(key, defaultVal string) string {
	if value := strings.TrimSpace(os.Getenv(EnvPrefix + key)); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := getEnv(key, ""); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := getEnv(key, ""); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := getEnv(key, ""); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

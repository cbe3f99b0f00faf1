// Package config loads integration run definitions from YAML, mirroring
// the problem fields the adams package validates plus the model name
// and order the experiment runner dispatches on.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/multistep/adams"
	"github.com/san-kum/multistep/models"
)

const (
	DefaultModel    = "linear"
	DefaultOrder    = 3
	DefaultStepSize = 0.1
	DefaultXFinal   = 1.0
)

// ErrInvalidOrder indicates an order outside the supported 2..5 range.
var ErrInvalidOrder = errors.New("config: order must be between 2 and 5")

type Config struct {
	Model     string    `yaml:"model"`
	Order     int       `yaml:"order"`
	StepSize  float64   `yaml:"step_size"`
	XInitials []float64 `yaml:"x_initials"`
	YInitials []float64 `yaml:"y_initials"`
	XFinal    float64   `yaml:"x_final"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Model:    DefaultModel,
		Order:    DefaultOrder,
		StepSize: DefaultStepSize,
		XFinal:   DefaultXFinal,
	}
	cfg.XInitials = adams.Grid(0, cfg.StepSize, cfg.Order)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.XInitials = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	// A file that overrides order or step_size but omits x_initials gets
	// a grid matching its own values, not the default one.
	if len(cfg.XInitials) == 0 &&
		cfg.Order >= adams.MinOrder && cfg.Order <= adams.MaxOrder && cfg.StepSize > 0 {
		cfg.XInitials = adams.Grid(0, cfg.StepSize, cfg.Order)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the adams constructor does not see: the
// order range and the warm-up sample counts against that order.
func (c *Config) Validate() error {
	if c.Order < adams.MinOrder || c.Order > adams.MaxOrder {
		return fmt.Errorf("%w, got %d", ErrInvalidOrder, c.Order)
	}
	if len(c.XInitials) != c.Order {
		return fmt.Errorf("%w: required %d, have %d",
			adams.ErrInsufficientPoints, c.Order, len(c.XInitials))
	}
	if len(c.YInitials) != 0 && len(c.YInitials) != c.Order {
		return fmt.Errorf("%w: required %d, have %d",
			adams.ErrInsufficientPoints, c.Order, len(c.YInitials))
	}
	return nil
}

// InitialValues returns the warm-up y-values for the run. When the
// config carries none, they are sampled from the model's exact
// solution at the configured abscissas.
func (c *Config) InitialValues(m models.Model) ([]float64, error) {
	if len(c.YInitials) == c.Order {
		ys := make([]float64, len(c.YInitials))
		copy(ys, c.YInitials)
		return ys, nil
	}
	if m.Exact == nil {
		return nil, fmt.Errorf("%w: required %d, have %d and model %q has no exact solution",
			adams.ErrInsufficientPoints, c.Order, len(c.YInitials), m.Name)
	}
	ys := make([]float64, len(c.XInitials))
	for i, x := range c.XInitials {
		ys[i] = m.Exact(x)
	}
	return ys, nil
}

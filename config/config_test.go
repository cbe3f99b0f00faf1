package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/multistep/adams"
	"github.com/san-kum/multistep/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultModel, cfg.Model)
	require.Len(t, cfg.XInitials, cfg.Order)

	_, err := models.Get(cfg.Model)
	require.NoError(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := GetPreset("linear", "classic")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Model, loaded.Model)
	require.Equal(t, cfg.Order, loaded.Order)
	require.Equal(t, cfg.XInitials, loaded.XInitials)
	require.Equal(t, cfg.YInitials, loaded.YInitials)
	require.Equal(t, cfg.XFinal, loaded.XFinal)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: decay\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "decay", cfg.Model)
	require.Equal(t, DefaultOrder, cfg.Order)
	require.Equal(t, DefaultStepSize, cfg.StepSize)
}

func TestLoadRegeneratesGridForOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: decay\norder: 2\nstep_size: 0.5\nx_final: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5}, cfg.XInitials)
	require.NoError(t, cfg.Validate())

	m, err := models.Get(cfg.Model)
	require.NoError(t, err)
	ys, err := cfg.InitialValues(m)
	require.NoError(t, err)
	_, err = adams.New(m.Derivative, cfg.XInitials, ys, cfg.StepSize, cfg.XFinal)
	require.NoError(t, err)
}

func TestLoadKeepsExplicitGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: 2\nstep_size: 0.5\nx_initials: [1, 1.5]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1.5}, cfg.XInitials)
}

func TestLoadBadOrderDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badorder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: -3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.XInitials)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidOrder)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: [not a number\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateOrderRange(t *testing.T) {
	for _, order := range []int{1, 6} {
		cfg := DefaultConfig()
		cfg.Order = order
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidOrder, "order %d", order)
	}
}

func TestValidateSampleCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = 4 // XInitials still has 3 entries
	require.ErrorIs(t, cfg.Validate(), adams.ErrInsufficientPoints)

	cfg = DefaultConfig()
	cfg.YInitials = []float64{1, 2}
	require.ErrorIs(t, cfg.Validate(), adams.ErrInsufficientPoints)
}

func TestInitialValuesFromExact(t *testing.T) {
	cfg := GetPreset("decay", "coarse")
	require.NotNil(t, cfg)

	m, err := models.Get(cfg.Model)
	require.NoError(t, err)

	ys, err := cfg.InitialValues(m)
	require.NoError(t, err)
	require.Len(t, ys, cfg.Order)
	for i, x := range cfg.XInitials {
		require.InDelta(t, m.Exact(x), ys[i], 1e-15)
	}
}

func TestInitialValuesWithoutExact(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YInitials = nil

	bare := models.Model{Name: "bare", Derivative: func(x, y float64) float64 { return 0 }}
	_, err := cfg.InitialValues(bare)
	require.ErrorIs(t, err, adams.ErrInsufficientPoints)
}

func TestPresetsValidate(t *testing.T) {
	for model, group := range Presets {
		for name := range group {
			cfg := GetPreset(model, name)
			require.NotNil(t, cfg, "%s/%s", model, name)
			require.NoError(t, cfg.Validate(), "%s/%s", model, name)

			m, err := models.Get(cfg.Model)
			require.NoError(t, err, "%s/%s", model, name)

			ys, err := cfg.InitialValues(m)
			require.NoError(t, err, "%s/%s", model, name)

			_, err = adams.New(m.Derivative, cfg.XInitials, ys, cfg.StepSize, cfg.XFinal)
			require.NoError(t, err, "%s/%s", model, name)
		}
	}
}

func TestGetPresetNotFound(t *testing.T) {
	require.Nil(t, GetPreset("linear", "nonexistent"))
	require.Nil(t, GetPreset("nonexistent", "classic"))
	require.Nil(t, ListPresets("nonexistent"))
	require.NotEmpty(t, ListPresets("decay"))
}

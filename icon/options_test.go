package icon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-iconkit/images"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 1024, opts.TargetSize)
	assert.Equal(t, 220, opts.CornerRadius())
	assert.True(t, opts.CropBorder)
	assert.Equal(t, images.GreyBand{Min: 225, Max: 245}, opts.BorderBand)
}

func TestLoadOptions_Defaults(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptions_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
targetSize: 512
cropBorder: false
borderBand:
  min: 200
  max: 250
`), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 512, opts.TargetSize)
	assert.False(t, opts.CropBorder)
	assert.Equal(t, images.GreyBand{Min: 200, Max: 250}, opts.BorderBand)
	// Untouched fields keep their defaults.
	assert.Equal(t, images.DefaultCornerRadiusRatio, opts.CornerRadiusRatio)
	assert.Equal(t, 0.01, opts.BorderPaddingRatio)
}

func TestLoadOptions_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targetSize: 512\n"), 0o644))

	t.Setenv("ICON_TARGET_SIZE", "256")
	t.Setenv("ICON_BORDER_MIN", "210")

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 256, opts.TargetSize)
	assert.Equal(t, uint8(210), opts.BorderBand.Min)
	assert.Equal(t, uint8(245), opts.BorderBand.Max)
}

func TestLoadOptions_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targetSize: [1, 2"), 0o644))
		_, err := LoadOptions(path)
		assert.ErrorContains(t, err, "failed to parse options file")
	})

	t.Run("Malformed env", func(t *testing.T) {
		t.Setenv("ICON_TARGET_SIZE", "big")
		_, err := LoadOptions("")
		assert.ErrorContains(t, err, "failed to parse environment")
	})

	t.Run("Invalid result", func(t *testing.T) {
		t.Setenv("ICON_CORNER_RADIUS_RATIO", "0.8")
		_, err := LoadOptions("")
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"Zero size", func(o *Options) { o.TargetSize = 0 }},
		{"Negative radius", func(o *Options) { o.CornerRadiusRatio = -0.1 }},
		{"Radius above half", func(o *Options) { o.CornerRadiusRatio = 0.51 }},
		{"Negative padding", func(o *Options) { o.BorderPaddingRatio = -1 }},
		{"Inverted band", func(o *Options) { o.BorderBand = images.GreyBand{Min: 250, Max: 200} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions)
		})
	}
}

func TestOptions_ApplyIconSpec(t *testing.T) {
	spec, ok := images.GetIconSpec(images.IconSpec128)
	require.True(t, ok)

	opts := DefaultOptions()
	opts.ApplyIconSpec(spec)
	assert.Equal(t, 128, opts.TargetSize)
	assert.Equal(t, 27, opts.CornerRadius())
}

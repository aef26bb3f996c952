package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningEmbedded(t *testing.T) {
	tun, err := LoadTuning("")
	require.NoError(t, err)

	assert.Equal(t, "Space Asteroids", tun.Name)
	assert.Equal(t, 1400.0, tun.Field.Width)
	assert.Equal(t, 800.0, tun.Field.Height)
	assert.Equal(t, 50, tun.WinScore)
	assert.Equal(t, "rotational", tun.Ship.Control)
	assert.Equal(t, 5.0, tun.Asteroids.SpawnInterval)
	assert.Equal(t, 25, tun.Asteroids.Damage)
	require.Len(t, tun.Asteroids.Variants, 3)
	assert.Equal(t, 0.05, tun.Asteroids.Variants[1].Scale)
	assert.Equal(t, 5, tun.Coins.Count)
	assert.Equal(t, 10, tun.Coins.Score)
	assert.Equal(t, 8, tun.Coins.Animation.FrameCount)
	assert.Equal(t, color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}, tun.Ship.Sprite.Color.Color)
}

func TestLoadTuningMissing(t *testing.T) {
	_, err := LoadTuning("nope.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestParseTuningDefaults(t *testing.T) {
	tun, err := ParseTuning([]byte("name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", tun.Name)
	assert.Equal(t, 200.0, tun.Ship.X)
	assert.Equal(t, 500.0, tun.Ship.Y)
	assert.True(t, *tun.Ship.KeepInside)
	assert.Equal(t, 1500.0, tun.Asteroids.SpawnX)
	require.Len(t, tun.Asteroids.Variants, 3)
	assert.Equal(t, 600, tun.Asteroids.Variants[0].Sprite.Width)
	assert.Equal(t, 128, tun.Coins.Animation.Sheet.Width)

	assert.Equal(t, DefaultTuning(), mustParse(t, ""))
}

func mustParse(t *testing.T, data string) *Tuning {
	t.Helper()
	tun, err := ParseTuning([]byte(data))
	require.NoError(t, err)
	return tun
}

func TestParseTuningRejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative_field", "field: {width: -1, height: 800}"},
		{"zero_ship_scale_is_defaulted_but_negative_is_not", "ship: {scale: -1}"},
		{"unknown_control", "ship: {control: mouse}"},
		{"ship_outside_field", "ship: {x: 5000, y: 10}"},
		{"negative_interval", "asteroids: {spawn_interval: -2}"},
		{"spawn_band_outside_field", "field: {width: 400, height: 100}\nasteroids: {spawn_margin: 60}\nship: {x: 50, y: 50}"},
		{"zero_scale_variant", "asteroids: {variants: [{scale: -0.1}]}"},
		{"negative_coin_count", "coins: {count: -1}"},
		{"coin_too_large", "coins: {scale: 100}"},
		{"negative_duration", "coins: {animation: {frame_duration: -1}}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(c.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestParseTuningBadYAML(t *testing.T) {
	_, err := ParseTuning([]byte("ship: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestYAMLColor(t *testing.T) {
	tun, err := ParseTuning([]byte("background: {color: \"#10203080\"}"))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, tun.Background.Color.Color)

	_, err = ParseTuning([]byte("background: {color: \"#123\"}"))
	require.Error(t, err)

	var none *YAMLColor
	assert.Equal(t, color.White, none.ColorOr(color.White))
}

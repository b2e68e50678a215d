package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-globe/common"
	"github.com/Carmen-Shannon/oxy-globe/engine/controller"
	"github.com/Carmen-Shannon/oxy-globe/engine/light"
	"github.com/Carmen-Shannon/oxy-globe/engine/material"
	"github.com/Carmen-Shannon/oxy-globe/engine/texture"
)

// Config is the globe viewer configuration, loadable from JSON.
type Config struct {
	Title    string  `json:"title"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TickRate float64 `json:"tick_rate"`
	Profile  bool    `json:"profile"`

	Radius   float32 `json:"radius"`
	Segments int     `json:"segments"`
	Rings    int     `json:"rings"`

	// TextureDir holds the image files; Textures maps a channel name to its texture identifier.
	TextureDir    string            `json:"texture_dir"`
	Textures      map[string]string `json:"textures"`
	TextureFiles  map[string]string `json:"texture_files"`
	AsyncTextures int               `json:"async_textures"`
	NearestFilter bool              `json:"nearest_filter"`

	RotationAxis   [3]float32 `json:"rotation_axis"`
	RotationPeriod float32    `json:"rotation_period"`

	CameraDistance   float32 `json:"camera_distance"`
	CameraFovDegrees float32 `json:"camera_fov_degrees"`

	AmbientIntensity float32    `json:"ambient_intensity"`
	SunIntensity     float32    `json:"sun_intensity"`
	SunType          string     `json:"sun_type"`
	SunDirection     [3]float32 `json:"sun_direction"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	textures := make(map[string]string)
	for ch, name := range controller.DefaultTextures() {
		textures[ch.String()] = name
	}
	return Config{
		Title:            "Earth",
		Width:            1280,
		Height:           720,
		TickRate:         60,
		Radius:           1,
		Segments:         64,
		TextureDir:       "assets/textures",
		Textures:         textures,
		RotationAxis:     [3]float32{0, 1, 0},
		RotationPeriod:   20,
		CameraFovDegrees: 45,
		AmbientIntensity: 0.2,
		SunIntensity:     0.8,
		SunType:          light.LightTypeDirectional.String(),
		SunDirection:     [3]float32{-1, -0.3, -0.6},
	}
}

// LoadConfig reads a JSON file over the defaults. Fields absent from the file keep
// their default value; textures entries merge into the default mapping, and an
// empty identifier leaves that channel unrequested.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ControllerOptions converts the configuration into scene controller options.
func (c Config) ControllerOptions() ([]controller.SceneControllerBuilderOption, error) {
	textures := make(map[material.Channel]string, len(c.Textures))
	for name, id := range c.Textures {
		ch, err := material.ParseChannel(name)
		if err != nil {
			return nil, fmt.Errorf("textures: %w", err)
		}
		textures[ch] = id
	}
	sunType, err := light.ParseLightType(c.SunType)
	if err != nil {
		return nil, fmt.Errorf("sun_type: %w", err)
	}
	if sunType == light.LightTypeAmbient {
		return nil, fmt.Errorf("sun_type: %q cannot light the globe as a sun", c.SunType)
	}

	return []controller.SceneControllerBuilderOption{
		controller.WithRadius(c.Radius),
		controller.WithSegments(c.Segments),
		controller.WithRings(c.Rings),
		controller.WithTextures(textures),
		controller.WithAsyncTextures(c.AsyncTextures),
		controller.WithRotationAxis(c.RotationAxis[0], c.RotationAxis[1], c.RotationAxis[2]),
		controller.WithRotationPeriod(c.RotationPeriod),
		controller.WithCameraDistance(c.CameraDistance),
		controller.WithCameraFov(c.CameraFovDegrees * math.Pi / 180),
		controller.WithAmbientIntensity(c.AmbientIntensity),
		controller.WithSunIntensity(c.SunIntensity),
		controller.WithSunType(sunType),
		controller.WithSunDirection(c.SunDirection[0], c.SunDirection[1], c.SunDirection[2]),
	}, nil
}

// Provider returns the file provider serving the configured texture directory.
func (c Config) Provider() texture.Provider {
	var opts []texture.FileProviderOption
	if c.NearestFilter {
		opts = append(opts, texture.WithTextureOptions(texture.WithSampler(common.NearestSampler())))
	}
	for name, file := range c.TextureFiles {
		opts = append(opts, texture.WithAlias(name, file))
	}
	return texture.NewFileProvider(c.TextureDir, opts...)
}

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/Kvello/heatsim/internal/building"
	"github.com/Kvello/heatsim/internal/heating"
	"github.com/Kvello/heatsim/internal/house"
)

const envPrefix = "HEATSIM_"

type Config struct {
	DeviceID    string `koanf:"device_id"`
	Controllers struct {
		HTTP   HTTPConfig   `koanf:"http"`
		MQTT   MQTTConfig   `koanf:"mqtt"`
		MODBUS ModbusConfig `koanf:"modbus"`
	} `koanf:"controllers"`

	Building BuildingConfig `koanf:"building"`
	Heating  HeatingConfig  `koanf:"heating"`
	House    HouseConfig    `koanf:"house"`
}

type BuildingConfig struct {
	Length     float64 `koanf:"length"`
	Width      float64 `koanf:"width"`
	WallHeight float64 `koanf:"wall_height"`

	RoofType  string  `koanf:"roof_type"` // "flat" | "gable" | "shed" | "hip"
	RoofPitch float64 `koanf:"roof_pitch"`

	GlazingRatio float64 `koanf:"glazing_ratio"`
	NumWindows   int     `koanf:"num_windows"`
	NumDoors     int     `koanf:"num_doors"`

	// Zero means the TEK17 default applies.
	WallUValue   float64 `koanf:"wall_u_value"`
	FloorUValue  float64 `koanf:"floor_u_value"`
	RoofUValue   float64 `koanf:"roof_u_value"`
	WindowUValue float64 `koanf:"window_u_value"`
	DoorUValue   float64 `koanf:"door_u_value"`

	VentilationRate float64 `koanf:"ventilation_rate"`
	AirLeakageRate  float64 `koanf:"air_leakage_rate"`

	WallMaterial  string `koanf:"wall_material"`
	FloorMaterial string `koanf:"floor_material"`
	RoofMaterial  string `koanf:"roof_material"`
}

type HeatingConfig struct {
	Kp float64 `koanf:"kp"`
	Ki float64 `koanf:"ki"`
	Kd float64 `koanf:"kd"`
	Dt float64 `koanf:"dt"` // hours

	MinHeating float64 `koanf:"min_heating"` // kW
	MaxHeating float64 `koanf:"max_heating"` // kW
	COP        float64 `koanf:"cop"`
}

type HouseConfig struct {
	Enabled bool `koanf:"enabled"`

	IndoorTemperature  float64 `koanf:"indoor_temperature"`
	OutdoorTemperature float64 `koanf:"outdoor_temperature"`

	Setpoint    float64 `koanf:"temperature_setpoint"`
	SetpointMin float64 `koanf:"temperature_setpoint_min"`
	SetpointMax float64 `koanf:"temperature_setpoint_max"`

	TickInterval time.Duration `koanf:"tick_interval"`
}

type HTTPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

type MQTTConfig struct {
	Enabled         bool          `koanf:"enabled"`
	BrokerURL       string        `koanf:"broker_url"`
	ClientID        string        `koanf:"client_id"`
	BaseTopic       string        `koanf:"base_topic"`
	QoS             byte          `koanf:"qos"`
	RetainSnapshot  bool          `koanf:"retain_snapshot"`
	PublishInterval time.Duration `koanf:"publish_interval"`
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
}

type ModbusConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Addr         string        `koanf:"addr"`
	UnitID       byte          `koanf:"unit_id"`
	SyncInterval time.Duration `koanf:"sync_interval"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.DeviceID = "default"

	cfg.Controllers.HTTP.Enabled = true
	cfg.Controllers.HTTP.Addr = ":8080"
	cfg.Controllers.MQTT.PublishInterval = 1 * time.Second
	cfg.Controllers.MODBUS.Addr = "127.0.0.1:1502"
	cfg.Controllers.MODBUS.UnitID = 1

	cfg.Building = BuildingConfig{
		Length:       8,
		Width:        6,
		WallHeight:   2.4,
		RoofType:     "gable",
		RoofPitch:    35,
		GlazingRatio: 0.15,
		NumWindows:   4,
		NumDoors:     1,
	}

	cfg.Heating = HeatingConfig{
		Kp:         heating.DefaultKp,
		Ki:         heating.DefaultKi,
		Kd:         heating.DefaultKd,
		Dt:         1,
		MinHeating: 0,
		MaxHeating: 5,
		COP:        3.5,
	}

	cfg.House = HouseConfig{
		Enabled:            true,
		IndoorTemperature:  21,
		OutdoorTemperature: 5,
		Setpoint:           22,
		SetpointMin:        16,
		SetpointMax:        28,
		TickInterval:       1 * time.Second,
	}
	return cfg
}

// LoadConfig layers defaults, an optional config file and HEATSIM_* env
// variables, in that order of precedence (env wins).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return Config{}, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return Config{}, fmt.Errorf("load config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config file: %w", err)
		}
		// Missing file falls through to defaults + env.
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeyTransform(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// envKeyTransform maps HEATSIM_CONTROLLERS_MQTT_BROKER_URL style variables to
// koanf paths like controllers.mqtt.broker_url. Only the known group prefixes
// become nested paths; everything else stays a flat key so field names with
// underscores (device_id) survive.
func envKeyTransform(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return ""
	}
	parts := strings.Split(key, "_")
	switch {
	case parts[0] == "controllers" && len(parts) >= 3:
		return "controllers." + parts[1] + "." + strings.Join(parts[2:], "_")
	case (parts[0] == "building" || parts[0] == "heating" || parts[0] == "house") && len(parts) >= 2:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
	return key
}

// Envelope builds the configured building envelope.
func (c Config) Envelope() (*building.Envelope, error) {
	roof, err := building.ParseRoofType(c.Building.RoofType)
	if err != nil {
		return nil, err
	}
	params := building.EnvelopeParams{
		Length:     c.Building.Length,
		Width:      c.Building.Width,
		WallHeight: c.Building.WallHeight,

		RoofType:  roof,
		RoofPitch: c.Building.RoofPitch,

		GlazingRatio: c.Building.GlazingRatio,
		NumWindows:   c.Building.NumWindows,
		NumDoors:     c.Building.NumDoors,

		WallUValue:   c.Building.WallUValue,
		FloorUValue:  c.Building.FloorUValue,
		RoofUValue:   c.Building.RoofUValue,
		WindowUValue: c.Building.WindowUValue,
		DoorUValue:   c.Building.DoorUValue,

		VentilationRate: c.Building.VentilationRate,
		AirLeakageRate:  c.Building.AirLeakageRate,

		WallMaterial:  building.WallMaterial(c.Building.WallMaterial),
		FloorMaterial: building.FloorMaterial(c.Building.FloorMaterial),
		RoofMaterial:  building.RoofMaterial(c.Building.RoofMaterial),
	}
	return building.NewEnvelope(params)
}

func (c Config) ControllerParams() heating.ControllerParams {
	return heating.ControllerParams{
		Kp:         c.Heating.Kp,
		Ki:         c.Heating.Ki,
		Kd:         c.Heating.Kd,
		Dt:         c.Heating.Dt,
		MinHeating: c.Heating.MinHeating,
		MaxHeating: c.Heating.MaxHeating,
	}
}

func (c Config) Snapshot() house.Snapshot {
	return house.Snapshot{
		Enabled:                c.House.Enabled,
		TemperatureSetpoint:    c.House.Setpoint,
		TemperatureSetpointMin: c.House.SetpointMin,
		TemperatureSetpointMax: c.House.SetpointMax,
		IndoorTemperature:      c.House.IndoorTemperature,
		OutdoorTemperature:     c.House.OutdoorTemperature,
	}
}

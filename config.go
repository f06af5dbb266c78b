package csmasim

//
// Simulation configuration
//

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains every recognized simulation option. Every field is a
// scalar; there is no nesting, mirroring the original tool's flat
// settings dictionary.
type Config struct {
	// StationCount is the number of stations sharing the medium.
	StationCount int `yaml:"station_count"`

	// AreaSize is the side, in meters, of the square area stations are
	// placed within when StarTopology is false.
	AreaSize int `yaml:"area_size"`

	// StarTopology places one hub at the center of the area and the
	// remaining stations on a circle around it, instead of placing every
	// station uniformly at random.
	StarTopology bool `yaml:"star_topology"`

	// PropagationSpeed is the speed, in meters per simulated nanosecond,
	// at which a frame's propagation front advances.
	PropagationSpeed float64 `yaml:"propagation_speed"`

	// DataRate is the per-station transmission rate, in bits per second.
	DataRate int64 `yaml:"data_rate"`

	// FrameRate is the rate, in frames per second, at which a station
	// offers new DATA frames to its send queue.
	FrameRate float64 `yaml:"frame_rate"`

	// DetectRange is the maximum distance, in meters, at which a station
	// can detect a frame (and therefore the frame's MaxRange).
	DetectRange float64 `yaml:"detect_range"`

	// SlotTime is the duration, in simulated nanoseconds, of one backoff
	// slot. It also determines the Timeline's tick size.
	SlotTime int64 `yaml:"slot_time"`

	// DifsAmount is the DCF interframe space, in simulated nanoseconds.
	DifsAmount int64 `yaml:"difs_amount"`

	// SifsAmount is the short interframe space, in simulated nanoseconds.
	SifsAmount int64 `yaml:"sifs_amount"`

	// CWMin is the minimum contention window, in slots.
	CWMin int64 `yaml:"cw_min"`

	// CWMax is the maximum contention window, in slots.
	CWMax int64 `yaml:"cw_max"`

	// FrameBits is the size, in bits, of a DATA frame.
	FrameBits int64 `yaml:"frame_bits"`

	// SendQueueSize bounds each transmitter's send queue. Zero means
	// unbounded.
	SendQueueSize int `yaml:"send_queue_size"`

	// RecvQueueSize bounds each transmitter's receive queue. Zero means
	// unbounded.
	RecvQueueSize int `yaml:"recv_queue_size"`

	// WithRTS enables the RTS/CTS virtual carrier sense handshake before
	// every DATA transmission.
	WithRTS bool `yaml:"with_rts"`

	// Log enables a per-tick textual log of the simulation.
	Log bool `yaml:"log"`

	// Horizon is the simulated duration, in nanoseconds, after which the
	// simulation stops.
	Horizon int64 `yaml:"horizon"`

	// Seed seeds the run's pseudo-random number generator (station
	// placement, frame offers and peer choice, backoff draws). The same seed and the same
	// config produce a bit-identical run.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used for a single default
// simulation run (i.e. invoking the binary without --simulation).
func DefaultConfig() *Config {
	return &Config{
		StationCount:      2,
		AreaSize:          100,
		StarTopology:      false,
		PropagationSpeed:  3e8 / float64(OneSecond), // meters per simulated ns
		DataRate:          10_000_000,      // 10 Mbit/s
		FrameRate:         100,
		DetectRange:       50,
		SlotTime:          9_000,   // 9 microseconds
		DifsAmount:        28_000,  // 2 slots + SIFS, DCF-style
		SifsAmount:        10_000,  // 10 microseconds
		CWMin:             16,
		CWMax:             1024,
		FrameBits:         FrameSize,
		SendQueueSize:     0,
		RecvQueueSize:     0,
		WithRTS:           false,
		Log:               false,
		Horizon:           OneSecond,
		Seed:              1,
	}
}

// ErrMissingField indicates that a mandatory configuration field is unset.
var ErrMissingField = errors.New("csmasim: missing configuration field")

// ErrInvalidValue indicates that a configuration field has a nonsensical value.
var ErrInvalidValue = errors.New("csmasim: invalid configuration value")

// Validate fails fast with a descriptive, wrapped error when the
// configuration is malformed. It never attempts to recover: a malformed
// configuration is a programmer/operator error, not a simulation event.
func (c *Config) Validate() error {
	if c.StationCount <= 0 {
		return fmt.Errorf("%w: station_count must be positive", ErrMissingField)
	}
	if c.AreaSize <= 0 {
		return fmt.Errorf("%w: area_size must be positive", ErrInvalidValue)
	}
	if c.PropagationSpeed <= 0 {
		return fmt.Errorf("%w: propagation_speed must be positive", ErrInvalidValue)
	}
	if c.DataRate <= 0 {
		return fmt.Errorf("%w: data_rate must be positive", ErrInvalidValue)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidValue)
	}
	if c.DetectRange <= 0 {
		return fmt.Errorf("%w: detect_range must be positive", ErrInvalidValue)
	}
	if c.SlotTime <= 0 {
		return fmt.Errorf("%w: slot_time must be positive", ErrInvalidValue)
	}
	if c.CWMin <= 0 || c.CWMax < c.CWMin {
		return fmt.Errorf("%w: cw_min/cw_max out of range", ErrInvalidValue)
	}
	if c.FrameBits <= 0 {
		return fmt.Errorf("%w: frame_bits must be positive", ErrInvalidValue)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive", ErrInvalidValue)
	}
	return nil
}

// LoadConfig reads a YAML configuration file, applying its values on top
// of [DefaultConfig], and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csmasim: reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("csmasim: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

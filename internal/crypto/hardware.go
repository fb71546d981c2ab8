package crypto

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/kenchrcum/udcore-go/internal/config"
)

// AESAccelerated reports whether this CPU can run the file layer's CTR
// keystream through dedicated AES instructions (AES-NI, the ARMv8 crypto
// extensions, or s390x CPACF). The Go runtime selects the accelerated
// block implementation automatically when they are present; this probe
// exists so the acceleration state can be surfaced, not to switch code
// paths by hand.
func AESAccelerated() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAES
	case "arm64":
		return cpu.ARM64.HasAES
	case "s390x":
		return cpu.S390X.HasAES
	default:
		return false
	}
}

// AccelerationEnabled combines hardware detection with the configuration
// knobs, letting an operator report the portable path as active even on
// capable hardware (the knobs describe intent; Go offers no way to turn
// the instructions off at runtime).
func AccelerationEnabled(cfg config.HardwareConfig) bool {
	if !AESAccelerated() {
		return false
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		return cfg.EnableAESNI
	case "arm64":
		return cfg.EnableARMv8AES
	default:
		// Capable architectures without a dedicated knob count as on.
		return true
	}
}

// Info describes the host's crypto capability for the driver's startup
// log and debug counters.
type Info struct {
	AESHardware  bool
	Enabled      bool
	Architecture string
	OS           string
	GoVersion    string
}

// DescribeAcceleration builds an Info snapshot; with a nil config the
// Enabled field reflects raw hardware capability.
func DescribeAcceleration(cfg *config.HardwareConfig) Info {
	info := Info{
		AESHardware:  AESAccelerated(),
		Architecture: runtime.GOARCH,
		OS:           runtime.GOOS,
		GoVersion:    runtime.Version(),
	}
	if cfg != nil {
		info.Enabled = AccelerationEnabled(*cfg)
	} else {
		info.Enabled = info.AESHardware
	}
	return info
}

// Fields flattens the snapshot for structured logging.
func (i Info) Fields() map[string]any {
	return map[string]any{
		"aes_hardware": i.AESHardware,
		"aes_enabled":  i.Enabled,
		"architecture": i.Architecture,
		"goos":         i.OS,
		"go_version":   i.GoVersion,
	}
}

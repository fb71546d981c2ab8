package crypto

import (
	"runtime"
	"testing"

	"github.com/kenchrcum/udcore-go/internal/config"
)

func TestAESAcceleratedDoesNotPanic(t *testing.T) {
	// CPU features can't be mocked; just exercise the probe.
	_ = AESAccelerated()
}

func TestAccelerationEnabledFollowsKnobs(t *testing.T) {
	allOn := config.HardwareConfig{EnableAESNI: true, EnableARMv8AES: true}
	if AccelerationEnabled(allOn) != AESAccelerated() {
		t.Errorf("AccelerationEnabled(all on) = %v, want hardware state %v",
			AccelerationEnabled(allOn), AESAccelerated())
	}

	if AESAccelerated() && (runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64") {
		allOff := config.HardwareConfig{}
		if AccelerationEnabled(allOff) {
			t.Error("AccelerationEnabled(all off) = true on a knobbed architecture")
		}
	}
}

func TestDescribeAcceleration(t *testing.T) {
	info := DescribeAcceleration(nil)
	if info.Architecture != runtime.GOARCH {
		t.Errorf("architecture = %q, want %q", info.Architecture, runtime.GOARCH)
	}
	if info.Enabled != info.AESHardware {
		t.Error("nil config must report raw hardware capability")
	}

	cfg := &config.HardwareConfig{EnableAESNI: true, EnableARMv8AES: true}
	withCfg := DescribeAcceleration(cfg)
	if withCfg.Enabled != AccelerationEnabled(*cfg) {
		t.Error("Enabled disagrees with AccelerationEnabled")
	}

	fields := withCfg.Fields()
	for _, key := range []string{"aes_hardware", "aes_enabled", "architecture", "goos", "go_version"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Fields() missing %q", key)
		}
	}
}

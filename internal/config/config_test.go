package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestEngineTuningDefaults(t *testing.T) {
	tun := DefaultConfig().EngineTuning()
	if tun.IndefiniteShare != 0.5 {
		t.Fatalf("IndefiniteShare = %.2f, want 0.5", tun.IndefiniteShare)
	}
	if tun.SurchargeMinAllowance != 80 || tun.SurchargeBelowTarget != 50 {
		t.Fatalf("surcharge thresholds = %.0f/%.0f, want 80/50", tun.SurchargeMinAllowance, tun.SurchargeBelowTarget)
	}
	if tun.ProjectionCeilingDays != 10000 {
		t.Fatalf("ProjectionCeilingDays = %d, want 10000", tun.ProjectionCeilingDays)
	}
}

func TestEngineTuningOverrides(t *testing.T) {
	var cfg Config
	src := `
[tuning]
indefinite_share = 0.3
surcharge_rate = 0.1
projection_ceiling_days = 500
`
	if err := toml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tun := cfg.EngineTuning()
	if tun.IndefiniteShare != 0.3 {
		t.Fatalf("IndefiniteShare = %.2f, want override 0.3", tun.IndefiniteShare)
	}
	if tun.SurchargeRate != 0.1 {
		t.Fatalf("SurchargeRate = %.2f, want override 0.1", tun.SurchargeRate)
	}
	if tun.ProjectionCeilingDays != 500 {
		t.Fatalf("ProjectionCeilingDays = %d, want override 500", tun.ProjectionCeilingDays)
	}
	// Untouched fields keep their defaults.
	if tun.SurchargeMinAllowance != 80 {
		t.Fatalf("SurchargeMinAllowance = %.0f, want default 80", tun.SurchargeMinAllowance)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.Timezone = "Not/AZone"
	if loc := cfg.Location(); loc != time.UTC {
		t.Fatalf("Location() = %v, want UTC fallback", loc)
	}
}

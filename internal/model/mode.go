package model

// BatteryMode is a human-friendly operating mode for one simulated hour.
// Keep these values stable; they are intended for CSV output.
type BatteryMode string

const (
	ModeCharging    BatteryMode = "CHARGING"
	ModeIdle        BatteryMode = "IDLE"
	ModeDischarging BatteryMode = "DISCHARGING"
)

// ModeFromNetEnergy maps the hour's PV-minus-load balance to a mode.
// Surplus charges, deficit discharges.
func ModeFromNetEnergy(netKWh float64) BatteryMode {
	switch {
	case netKWh > 0:
		return ModeCharging
	case netKWh < 0:
		return ModeDischarging
	default:
		return ModeIdle
	}
}

package domain

type PayUnit string

const (
	// PayUnitHour is the only unit the pay calculator supports. Anything
	// else stored in the catalog is a configuration error and is rejected
	// before it can reach a wage computation.
	PayUnitHour PayUnit = "hour"
)

// ValidPayUnits is the canonical set of accepted pay unit strings.
var ValidPayUnits = map[PayUnit]bool{
	PayUnitHour: true,
}

type ClockState string

const (
	StateOffClock ClockState = "off_clock"
	StateOnClock  ClockState = "on_clock"
)

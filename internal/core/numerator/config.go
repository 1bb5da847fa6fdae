// Package numerator provides domain contracts for document auto-numbering.
package numerator

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "HT", "RU")
	Prefix string

	// DateLayout formats the period stamp embedded in the number.
	// Empty layout omits the stamp.
	DateLayout string

	// PadWidth is the minimum sequence width (default 3)
	PadWidth int

	// ResetPeriod: "day", "month", "year", "never"
	ResetPeriod string
}

// ContractConfig returns the numbering scheme for purchasing contracts:
// HT + yymmdd + 3-digit daily sequence (e.g., HT260831001).
func ContractConfig() Config {
	return Config{
		Prefix:      "HT",
		DateLayout:  "060102",
		PadWidth:    3,
		ResetPeriod: "day",
	}
}

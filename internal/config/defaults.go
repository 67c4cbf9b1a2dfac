package config

// Default code parameters. GF(2^8) with distance 33 gives a length-255
// code that corrects 16 symbol errors, a common general-purpose choice.
const (
	DefaultFieldSize = 8
	DefaultDistance  = 33

	// DefaultInnerFieldSize and DefaultInnerDistance shape the inner BCH
	// code for concatenated encoding: length 31 with 11 message bits,
	// enough for an outer GF(2^8) symbol plus its marker bit.
	DefaultInnerFieldSize = 5
	DefaultInnerDistance  = 11
)

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.ecc",
		Code: CodeConfig{
			FieldSize: DefaultFieldSize,
			Distance:  DefaultDistance,
		},
		Inner: InnerConfig{
			FieldSize: DefaultInnerFieldSize,
			Distance:  DefaultInnerDistance,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.ecc/ecc.log",
		},
	}
}

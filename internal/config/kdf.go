package config

import "github.com/spf13/viper"

// KDFDefaults mirrors the fixed Argon2id/PBKDF2 parameter set (spec.md §6
// "Fixed constants"). It is not meant to be tuned at runtime — it exists
// so the CLI and callers can read/display the active parameters from one
// place, the way the teacher's root.go centralizes Viper-bound settings.
type KDFDefaults struct {
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8
	SeedIters    int
	IcarusIters  int
}

// Defaults returns the specification's fixed KDF parameter set.
func Defaults() KDFDefaults {
	return KDFDefaults{
		ArgonTime:    5,
		ArgonMemory:  131072,
		ArgonThreads: 1,
		SeedIters:    2048,
		IcarusIters:  4096,
	}
}

// BindCLIDefaults registers the KDF defaults' informational keys with
// Viper so `scypher --config` overrides are visible via the same
// precedence order (flag > env > config file > default) the teacher's
// root.go establishes for "verbose".
func BindCLIDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("kdf.argon_time", d.ArgonTime)
	v.SetDefault("kdf.argon_memory_kib", d.ArgonMemory)
	v.SetDefault("kdf.argon_threads", d.ArgonThreads)
	v.SetDefault("kdf.seed_iterations", d.SeedIters)
	v.SetDefault("kdf.icarus_iterations", d.IcarusIters)
}

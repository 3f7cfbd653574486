// Package config holds the CLI configuration, loadable from flags or a
// config file.
package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/zkcplabs/zkcp/program"
)

const (
	DefaultLogLevel  = "info"
	DefaultProofFile = "proof.bin"
)

type Config struct {
	Program  string `mapstructure:"program"`
	LogLevel string `mapstructure:"log-level"`

	SecretFile   string `mapstructure:"secret-file"`
	SolutionFile string `mapstructure:"solution-file"`
	MaskFile     string `mapstructure:"mask-file"`
	ProofFile    string `mapstructure:"proof-file"`
}

func (cfg *Config) Validate() error {
	if _, err := program.ByName(cfg.Program); err != nil {
		names := make([]string, 0, len(program.All()))
		for _, prog := range program.All() {
			names = append(names, prog.Name())
		}
		return fmt.Errorf("invalid `Program`; expected: one of %v, given: %q", names, cfg.Program)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: a zap level (debug, info, warn, ...), given: %q", cfg.LogLevel)
	}

	if cfg.ProofFile == "" {
		return fmt.Errorf("invalid `ProofFile`; expected: a non-empty path")
	}

	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Program:   program.DlogSha256.Name(),
		LogLevel:  DefaultLogLevel,
		ProofFile: DefaultProofFile,
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	r := require.New(t)

	cfg := DefaultConfig()
	cfg.Program = "dlog-rsa-md5"
	r.ErrorContains(cfg.Validate(), "invalid `Program`")

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	r.ErrorContains(cfg.Validate(), "invalid `LogLevel`")

	cfg = DefaultConfig()
	cfg.ProofFile = ""
	r.ErrorContains(cfg.Validate(), "invalid `ProofFile`")
}

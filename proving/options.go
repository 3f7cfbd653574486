package proving

import (
	"errors"

	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

func defaultOption() *option {
	return &option{logger: zap.NewNop()}
}

// OptionFunc is a function that sets an option for a prover instance.
type OptionFunc func(*option) error

// WithLogger sets the logger provers report progress to.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opts *option) error {
		if logger == nil {
			return errors.New("invalid `logger` value; expected: non-nil, given: nil")
		}
		opts.logger = logger
		return nil
	}
}

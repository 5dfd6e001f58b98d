package layerstesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-layers/layers"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel is passed to logger.New, defaults to NOOP.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(func() { logger.OnExit() })
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Compile compiles cat with the context logger and fails the test on a
// schema error.
func (c *TestContext) Compile(cat *layers.Category) *layers.Codec {
	codec, err := layers.Compile(cat, layers.WithLogger(c.Log))
	require.NoError(c.T, err)
	return codec
}

// NewRegistry returns a registry logging through the context logger.
func (c *TestContext) NewRegistry() *layers.Registry {
	return layers.NewRegistry(layers.WithLogger(c.Log))
}

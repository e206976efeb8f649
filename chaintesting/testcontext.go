package chaintesting

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Cfg TestConfig
}

type TestConfig struct {
	// Seed is the chain seed used by the helpers. It is normal to force it
	// to some fixed value so that the generated chains are the same from run
	// to run.
	Seed            uint64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Cfg: cfg,
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewDigest returns the digest capability the tests default to. Chain
// generation is parameterised over hash.Hash, sha256 is just the
// conventional 256 bit choice.
func (c *TestContext) NewDigest() hash.Hash { return sha256.New() }

// UniqueTestLabel disambiguates test resources between runs and between
// tests sharing a prefix.
func UniqueTestLabel(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.Split(uuid.NewString(), "-")[0])
}

// MustNewDigest is NewNamedDigest for tests that cannot proceed without the
// digest.
func MustNewDigest(t *testing.T, name string) hash.Hash {
	h, err := NewNamedDigest(name)
	require.NoError(t, err)
	return h
}

// NewNamedDigest returns a substitute digest capability by name. Any one-way
// fixed output size function is a valid substitute for chain generation, and
// the tests use this to demonstrate exactly that.
func NewNamedDigest(name string) (hash.Hash, error) {
	switch name {
	case "sha256":
		return sha256.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "blake2b-256":
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unknown digest %q", name)
	}
}

package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/props/pkg/errors"
)

const (
	diamondTopID   Identity = "test-diamond-top"
	diamondLeftID  Identity = "test-diamond-left"
	diamondRightID Identity = "test-diamond-right"
	diamondBaseID  Identity = "test-diamond-base"
	cycleAID       Identity = "test-cycle-a"
	cycleBID       Identity = "test-cycle-b"
	brokenID       Identity = "test-broken-factory"
)

var diamondBaseBuilds int

func bindMarker(id Identity, flag string, deps ...Identity) {
	MustBind(id, func(s *Service) (Property, error) {
		return NewBase(s, Definition[bool]{
			Identity:     id,
			Identifiers:  []string{flag},
			Dependencies: deps,
			Description:  "A structural test property.",
			Parse:        parseBoolFlag,
		}), nil
	})
}

func init() {
	bindMarker(diamondTopID, "--diamond-top", diamondLeftID, diamondRightID)
	bindMarker(diamondLeftID, "--diamond-left", diamondBaseID)
	bindMarker(diamondRightID, "--diamond-right", diamondBaseID)
	MustBind(diamondBaseID, func(s *Service) (Property, error) {
		diamondBaseBuilds++
		return NewBase(s, Definition[bool]{
			Identity:    diamondBaseID,
			Identifiers: []string{"--diamond-base"},
			Description: "The shared dependency of the diamond.",
			Parse:       parseBoolFlag,
		}), nil
	})
	bindMarker(cycleAID, "--cycle-a", cycleBID)
	bindMarker(cycleBID, "--cycle-b", cycleAID)
	MustBind(brokenID, func(s *Service) (Property, error) {
		return nil, errors.New(errors.ErrInternal, "construction failed")
	})
}

func TestDependenciesAutoRegistered(t *testing.T) {
	s := newTestService(t, needsDepID)
	require.NoError(t, s.Parse(nil))

	value, err := Value[string](s, greetingID)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestDiamondDependencyInitializedOnce(t *testing.T) {
	diamondBaseBuilds = 0
	s := newTestService(t, diamondTopID)
	require.NoError(t, s.Parse(nil))

	assert.Equal(t, 1, diamondBaseBuilds)
	for _, id := range []Identity{diamondTopID, diamondLeftID, diamondRightID, diamondBaseID} {
		_, err := s.Property(id)
		require.NoError(t, err)
	}
}

func TestDependencyCycleTerminates(t *testing.T) {
	s := newTestService(t, cycleAID)
	require.NoError(t, s.Parse(nil))

	_, err := s.Property(cycleAID)
	require.NoError(t, err)
	_, err = s.Property(cycleBID)
	require.NoError(t, err)
}

func TestFactoryFailureSurfaces(t *testing.T) {
	s := newTestService(t, brokenID)
	err := s.Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInitialization))
}

func TestUnboundIdentityFails(t *testing.T) {
	s := newTestService(t, Identity("test-never-bound"))
	err := s.Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInitialization))
}

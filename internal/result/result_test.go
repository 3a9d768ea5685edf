package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactlyOneArmPopulated(t *testing.T) {
	ok := Success("payload")
	p, has := ok.Payload()
	assert.True(t, has)
	assert.Equal(t, "payload", p)
	_, has = ok.StatusCode()
	assert.False(t, has)
	_, has = ok.Transport()
	assert.False(t, has)
	assert.True(t, ok.IsSuccess())

	remote := RemoteError[string](404)
	code, has := remote.StatusCode()
	assert.True(t, has)
	assert.Equal(t, 404, code)
	_, has = remote.Payload()
	assert.False(t, has)
	assert.False(t, remote.IsSuccess())

	tf := TransportFailure[string](TransportTimeout)
	kind, has := tf.Transport()
	assert.True(t, has)
	assert.Equal(t, TransportTimeout, kind)
	_, has = tf.StatusCode()
	assert.False(t, has)

	nu := NetworkUnavailable[string]()
	assert.Equal(t, StatusNetworkUnavailable, nu.Status())
	_, has = nu.Payload()
	assert.False(t, has)
}

func TestMatchCallsOneArm(t *testing.T) {
	cases := Cases[int, string]{
		Success:            func(v int) string { return "ok:" + strconv.Itoa(v) },
		NetworkUnavailable: func() string { return "offline" },
		RemoteError:        func(code int) string { return "remote:" + strconv.Itoa(code) },
		TransportFailure:   func(k TransportKind) string { return "transport:" + k.String() },
	}

	assert.Equal(t, "ok:7", Match(Success(7), cases))
	assert.Equal(t, "offline", Match(NetworkUnavailable[int](), cases))
	assert.Equal(t, "remote:503", Match(RemoteError[int](503), cases))
	assert.Equal(t, "transport:io", Match(TransportFailure[int](TransportIO), cases))
	assert.Equal(t, "", Match(RemoteError[int](500), Cases[int, string]{}))
}

func TestMapKeepsFailureArms(t *testing.T) {
	double := func(v int) int { return v * 2 }

	p, _ := Map(Success(21), double).Payload()
	assert.Equal(t, 42, p)

	code, ok := Map(RemoteError[int](StatusUnknown), double).StatusCode()
	assert.True(t, ok)
	assert.Equal(t, StatusUnknown, code)

	kind, ok := Map(TransportFailure[int](TransportTimeout), double).Transport()
	assert.True(t, ok)
	assert.Equal(t, TransportTimeout, kind)

	assert.Equal(t, StatusNetworkUnavailable, Map(NetworkUnavailable[int](), double).Status())
}

func TestString(t *testing.T) {
	assert.Equal(t, "success", Success(1).String())
	assert.Equal(t, "remote_error(404)", RemoteError[int](404).String())
	assert.Equal(t, "transport_failure(timeout)", TransportFailure[int](TransportTimeout).String())
	assert.Equal(t, "invalid", Result[int]{}.String())
}

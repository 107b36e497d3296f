package platform_test

import (
	"runtime"
	"testing"

	"github.com/osping/osping/platform"
	"github.com/stretchr/testify/assert"
)

func TestUnixProfile(t *testing.T) {
	p := platform.Unix()

	assert.Equal(t, platform.FamilyUnix, p.Family)
	assert.Equal(t, []string{"-c", "3", "-i", "0.2"}, p.Args)
	assert.False(t, p.ErrorsOnStdout)
}

func TestWindowsProfile(t *testing.T) {
	p := platform.Windows()

	assert.Equal(t, platform.FamilyWindows, p.Family)
	assert.Equal(t, []string{"-n", "3"}, p.Args)
	assert.True(t, p.ErrorsOnStdout)
}

func TestUnixSignalsOnStderr(t *testing.T) {
	for _, s := range platform.Unix().Signals {
		assert.Equal(t, platform.StreamStderr, s.Stream)
		assert.NotEmpty(t, s.Substring)
	}
}

func TestWindowsSignalsOnStdout(t *testing.T) {
	for _, s := range platform.Windows().Signals {
		assert.Equal(t, platform.StreamStdout, s.Stream)
		assert.NotEmpty(t, s.Substring)
	}
}

func TestCurrentMatchesGOOS(t *testing.T) {
	p := platform.Current()

	if runtime.GOOS == "windows" {
		assert.Equal(t, platform.FamilyWindows, p.Family)
	} else {
		assert.Equal(t, platform.FamilyUnix, p.Family)
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "unix", platform.FamilyUnix.String())
	assert.Equal(t, "windows", platform.FamilyWindows.String())
}

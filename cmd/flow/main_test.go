package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var tests = []struct {
		args     []string
		exitCode int
		contains []string
	}{
		{
			args:     []string{"flow"},
			exitCode: errorExitCode,
			contains: []string{"Usage: flow <command>", "run", "link"},
		},
		{
			args:     []string{"flow", "unknown"},
			exitCode: errorExitCode,
			contains: []string{"Commands:"},
		},
		{
			args:     []string{"flow", "run", "-n", "3", "--frame-size", "4", "--channels", "1"},
			exitCode: successExitCode,
			contains: []string{"linked 1 pair(s), pushed 3 frame(s), received 12 sample(s), sink stopped"},
		},
		{
			args:     []string{"flow", "run", "--sink-format", "video/raw"},
			exitCode: errorExitCode,
			contains: []string{"Command failed", "incompatible caps"},
		},
		{
			args:     []string{"flow", "run", "--frame-size", "0"},
			exitCode: errorExitCode,
			contains: []string{"must be positive"},
		},
		{
			args:     []string{"flow", "run", "-n", "1", "--dump"},
			exitCode: successExitCode,
			contains: []string{"Forwarded: (int) 1", "Handled: (int) 1"},
		},
		{
			args:     []string{"flow", "link", "--source-formats", "audio/pcm,video/raw", "--sink-formats", "video/raw,audio/pcm"},
			exitCode: successExitCode,
			contains: []string{"linked 2 pair(s)", "demuxer.src_1 -> sinks.sink_0 [video/raw]"},
		},
		{
			args:     []string{"flow", "run", "--bogus"},
			exitCode: errorExitCode,
		},
	}

	for _, test := range tests {
		var out bytes.Buffer
		c := config{
			args: test.args,
			out:  &out,
		}
		assert.Equal(t, test.exitCode, c.run(), "args: %v", test.args)
		for _, s := range test.contains {
			assert.Contains(t, out.String(), s)
		}
	}
}

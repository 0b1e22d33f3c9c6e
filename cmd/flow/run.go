package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-audio/audio"
	"github.com/spf13/pflag"

	"pipelined.dev/flow"
	"pipelined.dev/flow/log"
	"pipelined.dev/flow/mock"
)

const pcmFormat = "audio/pcm"

type runCommand struct {
	sourceFormat string
	sinkFormat   string
	frames       int
	frameSize    int
	sampleRate   int
	numChannels  int
	dump         bool
}

func (cmd *runCommand) Name() string {
	return "run"
}

func (cmd *runCommand) Help() string {
	return "Push pcm frames from source to sink"
}

func (cmd *runCommand) Register(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.sourceFormat, "source-format", pcmFormat, "format of source pad")
	fs.StringVar(&cmd.sinkFormat, "sink-format", pcmFormat, "format of sink pad")
	fs.IntVarP(&cmd.frames, "frames", "n", 10, "number of frames to push")
	fs.IntVar(&cmd.frameSize, "frame-size", 512, "number of samples per channel in frame")
	fs.IntVar(&cmd.sampleRate, "sample-rate", 44100, "sample rate of frames")
	fs.IntVar(&cmd.numChannels, "channels", 2, "number of channels in frame")
	fs.BoolVar(&cmd.dump, "dump", false, "dump pad statistics")
}

func (cmd *runCommand) Validate() error {
	if cmd.frames < 0 || cmd.frameSize <= 0 || cmd.numChannels <= 0 || cmd.sampleRate <= 0 {
		return errors.New("frames, frame size, channels and sample rate must be positive")
	}
	return nil
}

func (cmd *runCommand) Run(w io.Writer) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	logger := log.GetLogger()
	source, err := mock.NewSource(cmd.sourceFormat, flow.WithName("source"), flow.WithLogger(logger))
	if err != nil {
		return err
	}
	sink, err := mock.NewSink(cmd.sinkFormat, flow.WithName("sink"), flow.WithLogger(logger))
	if err != nil {
		return err
	}
	var received int
	sink.In.SetHook(func(item interface{}) {
		if buf, ok := item.(audio.Buffer); ok {
			received += buf.NumFrames()
		}
	})

	n, err := source.Link(sink)
	if err != nil {
		return err
	}

	source.ActivateAllPads()
	sink.ActivateAllPads()
	format := &audio.Format{
		NumChannels: cmd.numChannels,
		SampleRate:  cmd.sampleRate,
	}
	for i := 0; i < cmd.frames; i++ {
		source.Process(cmd.frame(format, i))
	}
	source.Out.PushEvent(flow.EndOfStream)
	source.OnEvent(flow.EndOfStream)

	fmt.Fprintf(w, "linked %d pair(s), pushed %d frame(s), received %d sample(s), sink %v\n",
		n, cmd.frames, received, sink.In.State())
	if cmd.dump {
		spew.Fdump(w, source.Out.Stats(), sink.In.Stats())
	}
	return nil
}

// frame returns interleaved buffer filled with frame index.
func (cmd *runCommand) frame(format *audio.Format, i int) *audio.FloatBuffer {
	data := make([]float64, cmd.frameSize*format.NumChannels)
	for j := range data {
		data[j] = float64(i)
	}
	return &audio.FloatBuffer{
		Format: format,
		Data:   data,
	}
}

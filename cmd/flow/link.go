package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"pipelined.dev/flow"
	"pipelined.dev/flow/log"
	"pipelined.dev/flow/mock"
)

type linkCommand struct {
	sources []string
	sinks   []string
}

func (cmd *linkCommand) Name() string {
	return "link"
}

func (cmd *linkCommand) Help() string {
	return "Link demuxer pads to sink pads and report linked pairs"
}

func (cmd *linkCommand) Register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&cmd.sources, "source-formats", []string{"audio/pcm"}, "formats of source pads")
	fs.StringSliceVar(&cmd.sinks, "sink-formats", []string{"audio/pcm"}, "formats of sink pads")
}

func (cmd *linkCommand) Run(w io.Writer) error {
	if len(cmd.sources) == 0 || len(cmd.sinks) == 0 {
		return errors.New("source and sink formats are required")
	}
	demuxer, err := mock.NewDemuxer(cmd.sources, flow.WithName("demuxer"), flow.WithLogger(log.GetLogger()))
	if err != nil {
		return err
	}
	sinkPads := make([]*flow.Pad, 0, len(cmd.sinks))
	for i, format := range cmd.sinks {
		sinkPads = append(sinkPads, flow.NewPad(flow.Sink, flow.NewCaps(format), flow.WithPadName(fmt.Sprintf("sink_%d", i))))
	}
	sinks, err := flow.New(flow.WithName("sinks"), flow.WithLogger(log.GetLogger()), flow.WithPads(sinkPads...))
	if err != nil {
		return err
	}

	n, err := demuxer.Link(sinks)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "linked %d pair(s)\n", n)
	for _, src := range demuxer.Outs {
		for _, peer := range src.Peers() {
			fmt.Fprintf(w, "\t%v -> %v [%v]\n", src, peer, src.Caps())
		}
	}
	return nil
}

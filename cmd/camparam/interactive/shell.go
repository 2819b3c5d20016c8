// Package interactive provides the interactive command-line interface
// for camparam.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/params"
)

// Shell drives a parameter session from typed commands.
//
// Edits made with set and unset collect in a draft request built from the
// committed state. update hands the draft to Parameters.Update and clears
// it, so the next edit starts again from what the device runs with.
type Shell struct {
	params *params.Parameters
	rl     *readline.Instance
	out    io.Writer

	draft *kv.Map
}

// New creates a shell reading from the terminal. Attach must be called
// before Run.
func New() (*Shell, error) {
	s := &Shell{}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "camparam> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

// NewWithWriter creates a shell without a terminal. Commands are passed to
// Exec and their output goes to w.
func NewWithWriter(p *params.Parameters, w io.Writer) *Shell {
	return &Shell{params: p, out: w}
}

// Attach sets the session the shell operates on.
func (s *Shell) Attach(p *params.Parameters) {
	s.params = p
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Exec(ctx, line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns false when the command asks the
// shell to stop.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "get", "g":
		s.cmdGet(args)

	case "set", "s":
		s.cmdSet(args)

	case "unset":
		s.cmdUnset(args)

	case "draft", "d":
		s.cmdDraft()

	case "update", "u":
		s.cmdUpdate()

	case "commit", "c":
		s.cmdCommit(ctx)

	case "apply", "a":
		if s.cmdUpdate() {
			s.cmdCommit(ctx)
		}

	case "flatten", "f":
		fmt.Fprintln(s.out, s.params.Flatten())

	case "caps":
		s.cmdCaps()

	case "query", "q":
		s.cmdQuery(ctx, args)

	case "histogram":
		s.cmdToggle(ctx, args, "histogram", s.params.SetHistogram)

	case "facedetect", "fd":
		s.cmdToggle(ctx, args, "face detection", s.params.SetFaceDetection)

	case "stream":
		s.cmdStream(args)

	case "touch":
		s.cmdTouch(args)

	case "status":
		s.cmdStatus()

	case "quit", "exit":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Camera Parameter Commands:
  Editing:
    get <key>            - Show the committed value of a key
    set <key> <value>    - Change a key in the draft request
    unset <key>          - Remove a key from the draft request
    draft                - Show keys the draft changes

  Cycle:
    update               - Validate the draft and stage accepted values
    commit               - Apply the staged batch to the device
    apply                - update followed by commit

  One-shot:
    histogram on|off     - Toggle histogram statistics
    facedetect on|off    - Toggle face detection
    query <slot...>      - Read slots back from the device

  Inspection:
    flatten              - Print the committed state as k=v;k=v
    caps                 - Summarize the device capability
    stream <type>        - Show dimension and format of a stream
    touch af|aec <x> <y> - Stage a touch index for the next commit
    status               - Show session status

  General:
    help                 - Show this help
    quit                 - Exit`)
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <key>")
		return
	}
	v, ok := s.params.Get(args[0])
	if !ok {
		fmt.Fprintf(s.out, "%s: not set\n", args[0])
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", args[0], v)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <key> <value>")
		return
	}
	value := strings.Join(args[1:], " ")
	if s.draft == nil {
		s.draft = s.params.Canonical()
	}
	if err := s.draft.Set(args[0], value); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "draft: %s = %s\n", args[0], value)
}

func (s *Shell) cmdUnset(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: unset <key>")
		return
	}
	if s.draft == nil {
		s.draft = s.params.Canonical()
	}
	if !s.draft.Remove(args[0]) {
		fmt.Fprintf(s.out, "%s: not set\n", args[0])
		return
	}
	fmt.Fprintf(s.out, "draft: %s removed\n", args[0])
}

func (s *Shell) cmdDraft() {
	if s.draft == nil {
		fmt.Fprintln(s.out, "No draft changes")
		return
	}
	committed := s.params.Canonical()
	changed := 0
	for k, v := range s.draft.All() {
		old, ok := committed.Get(k)
		if ok && old == v {
			continue
		}
		if ok {
			fmt.Fprintf(s.out, "  %s: %s -> %s\n", k, old, v)
		} else {
			fmt.Fprintf(s.out, "  %s: (unset) -> %s\n", k, v)
		}
		changed++
	}
	for _, k := range committed.Keys() {
		if !s.draft.Has(k) {
			fmt.Fprintf(s.out, "  %s: removed\n", k)
			changed++
		}
	}
	if changed == 0 {
		fmt.Fprintln(s.out, "No draft changes")
	}
}

// cmdUpdate reports whether anything was staged without a fatal error.
func (s *Shell) cmdUpdate() bool {
	req := s.draft
	if req == nil {
		req = s.params.Canonical()
	}
	s.draft = nil

	restart, err := s.params.Update(req)
	var cycleErr *params.CycleError
	switch {
	case errors.As(err, &cycleErr):
		for _, f := range cycleErr.Failures {
			fmt.Fprintf(s.out, "  rejected: %v\n", f)
		}
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}

	if restart {
		fmt.Fprintln(s.out, "Staged (pipeline restart required)")
	} else {
		fmt.Fprintln(s.out, "Staged")
	}
	return true
}

func (s *Shell) cmdCommit(ctx context.Context) {
	if err := s.params.Commit(ctx); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Committed")
}

func (s *Shell) cmdCaps() {
	c := s.params.Capability()
	fmt.Fprintf(s.out, "Device: %s\n", c.Name)
	fmt.Fprintf(s.out, "  Preview sizes:  %s\n", capability.DescribeSizes(c.PreviewSizes))
	fmt.Fprintf(s.out, "  Video sizes:    %s\n", capability.DescribeSizes(c.VideoSizes))
	fmt.Fprintf(s.out, "  Picture sizes:  %s\n", capability.DescribeSizes(c.PictureSizes))
	fmt.Fprintf(s.out, "  FPS ranges:     %s\n", capability.DescribeFPSRanges(c.FPSRanges))
	if c.HasZoom() {
		fmt.Fprintf(s.out, "  Zoom ratios:    %s\n", capability.DescribeZoomRatios(c.ZoomRatios))
	} else {
		fmt.Fprintln(s.out, "  Zoom:           unsupported")
	}
	fmt.Fprintf(s.out, "  Focus areas:    %d\n", c.MaxFocusAreas)
	fmt.Fprintf(s.out, "  Metering areas: %d\n", c.MaxMeteringAreas)
}

func (s *Shell) cmdQuery(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: query <slot...>")
		return
	}
	slots := make([]batch.ParamType, 0, len(args))
	for _, a := range args {
		slot, ok := batch.ParseParamType(strings.ToUpper(a))
		if !ok {
			fmt.Fprintf(s.out, "Unknown slot: %s\n", a)
			return
		}
		slots = append(slots, slot)
	}

	buf, err := s.params.Query(ctx, slots...)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, slot := range slots {
		payload := buf.Payload(slot)
		if len(payload) == 0 {
			fmt.Fprintf(s.out, "  %s: (not applied)\n", slot)
			continue
		}
		var v any
		if err := buf.Decode(slot, &v); err != nil {
			fmt.Fprintf(s.out, "  %s: %x\n", slot, payload)
			continue
		}
		fmt.Fprintf(s.out, "  %s: %v\n", slot, v)
	}
}

func (s *Shell) cmdToggle(ctx context.Context, args []string, name string, set func(context.Context, bool) error) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s on|off\n", name)
		return
	}
	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		enabled = true
	case "off", "false", "0":
	default:
		fmt.Fprintf(s.out, "Invalid value: %s (use on or off)\n", args[0])
		return
	}
	if err := set(ctx, enabled); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", name, onOff(enabled))
}

func (s *Shell) cmdStream(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: stream <default|preview|postview|metadata|snapshot|offline|raw|video>")
		return
	}
	st, ok := params.ParseStreamType(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(s.out, "Unknown stream: %s\n", args[0])
		return
	}
	dim, err := s.params.StreamDimension(st)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s: %s", st, dim)
	if format, err := s.params.StreamFormat(st); err == nil {
		fmt.Fprintf(s.out, " format %d", format)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) cmdTouch(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(s.out, "Usage: touch af|aec <x> <y>")
		return
	}
	x, errX := strconv.Atoi(args[1])
	y, errY := strconv.Atoi(args[2])
	if errX != nil || errY != nil {
		fmt.Fprintln(s.out, "Invalid coordinates: x and y must be integers")
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "af":
		err = s.params.SetTouchIndexAF(x, y)
	case "aec":
		err = s.params.SetTouchIndexAEC(x, y)
	default:
		fmt.Fprintf(s.out, "Unknown touch target: %s (use af or aec)\n", args[0])
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "touch %s staged at (%d,%d)\n", strings.ToLower(args[0]), x, y)
}

func (s *Shell) cmdStatus() {
	fmt.Fprintf(s.out, "Session:         %s\n", s.params.SessionID())
	fmt.Fprintf(s.out, "Device:          %s\n", s.params.Capability().Name)
	fmt.Fprintf(s.out, "Restart pending: %s\n", yesNo(s.params.NeedsRestart()))
	fmt.Fprintf(s.out, "Histogram:       %s\n", onOff(s.params.IsHistogramEnabled()))
	fmt.Fprintf(s.out, "Face detection:  %s\n", onOff(s.params.IsFaceDetectionEnabled()))
	fmt.Fprintf(s.out, "ZSL:             %s\n", onOff(s.params.IsZSL()))
	fmt.Fprintf(s.out, "Recording hint:  %s\n", onOff(s.params.IsRecordingHint()))
	thumb := s.params.ThumbnailSize()
	fmt.Fprintf(s.out, "Thumbnail:       %s\n", thumb)
	fmt.Fprintf(s.out, "JPEG:            quality %d, rotation %d\n", s.params.JPEGQuality(), s.params.JPEGRotation())
}

// completer offers command names and, for get/set/unset, the committed keys.
func (s *Shell) completer() readline.AutoCompleter {
	keys := readline.PcItemDynamic(func(string) []string {
		if s.params == nil {
			return nil
		}
		return s.params.Canonical().Keys()
	})
	streams := make([]readline.PrefixCompleterInterface, 0, int(params.StreamVideo)+1)
	for st := params.StreamDefault; st <= params.StreamVideo; st++ {
		streams = append(streams, readline.PcItem(st.String()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("get", keys),
		readline.PcItem("set", keys),
		readline.PcItem("unset", keys),
		readline.PcItem("draft"),
		readline.PcItem("update"),
		readline.PcItem("commit"),
		readline.PcItem("apply"),
		readline.PcItem("flatten"),
		readline.PcItem("caps"),
		readline.PcItem("query"),
		readline.PcItem("histogram", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("facedetect", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("stream", streams...),
		readline.PcItem("touch", readline.PcItem("af"), readline.PcItem("aec")),
		readline.PcItem("status"),
		readline.PcItem("quit"),
	)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Package feed reads raw Cytomat register responses from a line-oriented
// stream and forwards the decoded values to a Sink.
//
// Each line holds a register kind followed by its raw token(s):
//
//	overview C0
//	warning 0C
//	error FF
//	sensor 0044
//	action 07 ok
//	action_type 03
//	swap 1
//	gate 0
//	processor 1
//	incubation temperature 37.0 36.8
//
// Blank lines and lines starting with '#' are skipped.
package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cytomat_exporter/internal/registers"
	"cytomat_exporter/internal/types"
)

// Line kinds.
const (
	KindOverview   = "overview"
	KindWarning    = "warning"
	KindError      = "error"
	KindSensor     = "sensor"
	KindAction     = "action"
	KindActionType = "action_type"
	KindSwap       = "swap"
	KindGate       = "gate"
	KindProcessor  = "processor"
	KindIncubation = "incubation"
)

// ErrSyntax is returned for a line that does not have the shape of its kind.
var ErrSyntax = errors.New("feed syntax error")

// Sink receives decoded register values.
type Sink interface {
	ObserveStatus(registers.DecodedStatus)
	ObserveSensors(registers.SensorState)
	ObserveAction(registers.ActionStep, types.ActionOutcome)
	ObserveActionType(registers.ActionType)
	ObserveSwapStation(registers.SwapStationPosition)
	ObserveGateLoad(registers.GateLoadStatus)
	ObserveProcessorLoad(registers.ProcessorLoadStatus)
	ObserveIncubation(channel string, r types.IncubationReading)
	ObserveDecodeError(registers.Family, error)
}

// Reader decodes feed lines. Warning and error codes attach to the most
// recent overview status, so a Reader is not safe for concurrent use.
type Reader struct {
	sink   Sink
	logger *slog.Logger

	status    registers.DecodedStatus
	hasStatus bool
}

// NewReader creates a Reader that forwards to sink.
func NewReader(sink Sink, logger *slog.Logger) *Reader {
	return &Reader{sink: sink, logger: logger}
}

// Run reads lines from r until EOF or ctx is done. Decode failures are
// reported to the sink and do not stop the loop; only read errors do.
//
// Reads happen on a separate goroutine. When ctx ends while that goroutine is
// blocked in a Read (e.g. on stdin), Run returns but the goroutine stays
// blocked until r yields data, EOF or an error. Close r to release it.
func (f *Reader) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					if err != nil {
						return fmt.Errorf("read feed: %w", err)
					}
				default:
				}
				f.logger.Info("Feed ended", "lines", n)
				return nil
			}
			n++
			if err := f.HandleLine(line); err != nil {
				f.logger.Warn("Skipping feed line", "line", n, "error", err)
			}
		}
	}
}

// HandleLine decodes one feed line. Unknown codes and malformed tokens are
// forwarded to the sink as decode errors and also returned.
func (f *Reader) HandleLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	kind, args := strings.ToLower(fields[0]), fields[1:]

	switch kind {
	case KindOverview:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := registers.ParseOverview(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyOverview, err)
		}
		f.status, f.hasStatus = s, true
		f.sink.ObserveStatus(s)

	case KindWarning:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := f.status.WithWarning(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyWarning, err)
		}
		f.attach(s)

	case KindError:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := f.status.WithError(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyError, err)
		}
		f.attach(s)

	case KindSensor:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := registers.ParseSensorRegister(args[0])
		if err != nil {
			return f.decodeError(registers.FamilySensorBit, err)
		}
		f.sink.ObserveSensors(s)

	case KindAction:
		if err := wantArgs(kind, args, 2); err != nil {
			return err
		}
		step, err := registers.DecodeActionStep(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyActionStep, err)
		}
		outcome, err := registers.ParseActionOutcome(args[1])
		if err != nil {
			return f.decodeError(registers.FamilyActionStep, err)
		}
		f.sink.ObserveAction(step, outcome)

	case KindActionType:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		t, err := registers.DecodeActionType(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyActionType, err)
		}
		f.sink.ObserveActionType(t)

	case KindSwap:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		p, err := registers.ParseSwapStationPosition(args[0])
		if err != nil {
			return f.decodeError(registers.FamilySwapStationPosition, err)
		}
		f.sink.ObserveSwapStation(p)

	case KindGate:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := registers.ParseGateLoadStatus(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyGateLoadStatus, err)
		}
		f.sink.ObserveGateLoad(s)

	case KindProcessor:
		if err := wantArgs(kind, args, 1); err != nil {
			return err
		}
		s, err := registers.ParseProcessorLoadStatus(args[0])
		if err != nil {
			return f.decodeError(registers.FamilyProcessorLoadStatus, err)
		}
		f.sink.ObserveProcessorLoad(s)

	case KindIncubation:
		if err := wantArgs(kind, args, 3); err != nil {
			return err
		}
		r, err := parseReading(args[1], args[2])
		if err != nil {
			return f.decodeError(registers.FamilyIncubation, err)
		}
		f.sink.ObserveIncubation(strings.ToLower(args[0]), r)

	default:
		return fmt.Errorf("%w: unknown kind %q", ErrSyntax, kind)
	}

	return nil
}

// attach publishes a status that gained a warning or error code. Codes read
// before any overview line are kept but not published on their own.
func (f *Reader) attach(s registers.DecodedStatus) {
	f.status = s
	if f.hasStatus {
		f.sink.ObserveStatus(s)
		return
	}
	f.logger.Debug("Register code read before overview status", "status", s.String())
}

func (f *Reader) decodeError(family registers.Family, err error) error {
	f.sink.ObserveDecodeError(family, err)
	return err
}

func wantArgs(kind string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, kind, n, len(args))
	}
	return nil
}

func parseReading(nominal, actual string) (types.IncubationReading, error) {
	n, err := strconv.ParseFloat(nominal, 64)
	if err != nil {
		return types.IncubationReading{}, fmt.Errorf("%w: nominal value %q", ErrSyntax, nominal)
	}
	a, err := strconv.ParseFloat(actual, 64)
	if err != nil {
		return types.IncubationReading{}, fmt.Errorf("%w: actual value %q", ErrSyntax, actual)
	}
	return types.IncubationReading{Nominal: n, Actual: a}, nil
}

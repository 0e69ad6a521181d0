package simulation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"google.golang.org/protobuf/encoding/protodelim"
)

// Recorder appends snapshots to a stream as size-delimited protobuf
// records, the format read back by ReadRecording.
type Recorder struct {
	w       *bufio.Writer
	closer  io.Closer
	records int
}

// NewRecorder writes to w. Close flushes but does not close w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: bufio.NewWriter(w)}
}

// CreateRecorder truncates or creates the file at path.
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

func (r *Recorder) Record(snap *pb.FlockSnapshot) error {
	if _, err := protodelim.MarshalTo(r.w, snap); err != nil {
		return fmt.Errorf("failed to record snapshot %d: %w", r.records, err)
	}
	r.records++
	return nil
}

// Records returns the number of snapshots written so far.
func (r *Recorder) Records() int { return r.records }

func (r *Recorder) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	return err
}

// ReadRecording reads every snapshot of a recording, in order.
func ReadRecording(rd io.Reader) ([]*pb.FlockSnapshot, error) {
	br := bufio.NewReader(rd)
	var snaps []*pb.FlockSnapshot
	for {
		snap := &pb.FlockSnapshot{}
		err := protodelim.UnmarshalFrom(br, snap)
		if errors.Is(err, io.EOF) {
			return snaps, nil
		}
		if err != nil {
			return snaps, fmt.Errorf("failed to read snapshot %d: %w", len(snaps), err)
		}
		snaps = append(snaps, snap)
	}
}

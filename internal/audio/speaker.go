package audio

import (
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// speakerBuffer is the device buffer length. Pause and stop latency is bounded by it.
const speakerBuffer = 100 * time.Millisecond

// Speaker plays streams on the default output device through beep's speaker.
// The device is initialised lazily at the sample rate of the first started
// track; later tracks are resampled to it.
type Speaker struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	ready      bool
}

// NewSpeaker returns an uninitialised Speaker.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Open decodes the headers of path. Nothing is audible until Start.
func (s *Speaker) Open(path string) (Stream, error) {
	decoder, format, f, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return &speakerStream{
		speaker: s,
		file:    f,
		decoder: decoder,
		format:  format,
		level:   1,
		done:    make(chan struct{}),
	}, nil
}

func (s *Speaker) init(rate beep.SampleRate) (beep.SampleRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return s.sampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return 0, errors.Wrap(err, "init speaker")
	}
	s.sampleRate = rate
	s.ready = true
	return rate, nil
}

// speakerStream is the handle for one track on the speaker.
type speakerStream struct {
	speaker *Speaker
	file    *os.File
	decoder beep.StreamSeekCloser
	format  beep.Format

	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64

	started  bool
	closed   bool
	done     chan struct{}
	doneOnce sync.Once
}

func (st *speakerStream) Start() error {
	if st.closed {
		return errors.New("stream closed")
	}
	if st.started {
		return nil
	}

	rate, err := st.speaker.init(st.format.SampleRate)
	if err != nil {
		return err
	}

	var source beep.Streamer = st.decoder
	if st.format.SampleRate != rate {
		source = beep.Resample(4, st.format.SampleRate, rate, st.decoder)
	}
	st.ctrl = &beep.Ctrl{Streamer: source}
	st.volume = &effects.Volume{
		Streamer: st.ctrl,
		Base:     2,
		Volume:   levelToVolume(st.level),
		Silent:   st.level <= 0,
	}
	st.started = true

	speaker.Play(beep.Seq(st.volume, beep.Callback(st.finish)))
	return nil
}

func (st *speakerStream) finish() {
	st.doneOnce.Do(func() { close(st.done) })
}

func (st *speakerStream) Pause()  { st.setPaused(true) }
func (st *speakerStream) Resume() { st.setPaused(false) }

func (st *speakerStream) setPaused(paused bool) {
	if st.ctrl == nil || st.closed {
		return
	}
	speaker.Lock()
	st.ctrl.Paused = paused
	speaker.Unlock()
}

func (st *speakerStream) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	if st.started {
		// One stream is live at a time, so clearing the mixer only drops ours.
		speaker.Clear()
	}
	err := st.decoder.Close()
	// Decoders may already have closed the file.
	_ = st.file.Close()
	return err
}

func (st *speakerStream) Position() time.Duration {
	if st.closed {
		return 0
	}
	speaker.Lock()
	pos := st.decoder.Position()
	speaker.Unlock()
	return st.format.SampleRate.D(pos)
}

func (st *speakerStream) Duration() time.Duration {
	return st.format.SampleRate.D(st.decoder.Len())
}

func (st *speakerStream) Seek(to time.Duration) error {
	if st.closed {
		return errors.New("stream closed")
	}
	pos := min(max(st.format.SampleRate.N(to), 0), st.decoder.Len())

	speaker.Lock()
	defer speaker.Unlock()
	return st.decoder.Seek(pos)
}

func (st *speakerStream) SetVolume(level float64) {
	st.level = clampLevel(level)
	if st.volume == nil {
		return
	}
	speaker.Lock()
	st.volume.Volume = levelToVolume(st.level)
	st.volume.Silent = st.level <= 0
	speaker.Unlock()
}

func (st *speakerStream) Done() <-chan struct{} { return st.done }

func (st *speakerStream) Err() error { return st.decoder.Err() }

// Verify Speaker implements Output at compile time.
var _ Output = (*Speaker)(nil)

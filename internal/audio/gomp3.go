package audio

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// bytesPerFrame is one stereo 16-bit sample pair.
const bytesPerFrame = 4

// mp3Decoder adapts go-mp3 to beep.StreamSeekCloser.
type mp3Decoder struct {
	decoder *mp3.Decoder
	closer  io.Closer
	buf     []byte
	err     error
}

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	decoder, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if decoder.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(decoder.SampleRate()),
		NumChannels: 2, // go-mp3 always decodes to stereo
		Precision:   2,
	}
	return &mp3Decoder{decoder: decoder, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (d *mp3Decoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}

	want := len(samples) * bytesPerFrame
	if len(d.buf) < want {
		d.buf = make([]byte, want)
	}

	read, err := io.ReadFull(d.decoder, d.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = err
		return 0, false
	}

	frames := read / bytesPerFrame
	if frames == 0 {
		return 0, false
	}
	for i := range frames {
		off := i * bytesPerFrame
		left := int16(binary.LittleEndian.Uint16(d.buf[off:]))    //nolint:gosec // PCM sample
		right := int16(binary.LittleEndian.Uint16(d.buf[off+2:])) //nolint:gosec // PCM sample
		samples[i][0] = float64(left) / 32768
		samples[i][1] = float64(right) / 32768
	}
	return frames, true
}

func (d *mp3Decoder) Err() error { return d.err }

func (d *mp3Decoder) Len() int {
	return int(max(d.decoder.SampleCount(), 0))
}

func (d *mp3Decoder) Position() int {
	return int(d.decoder.SamplePosition())
}

func (d *mp3Decoder) Seek(p int) error {
	p = min(max(p, 0), d.Len())
	if err := d.decoder.SeekToSample(int64(p)); err != nil {
		return err
	}
	d.err = nil
	return nil
}

func (d *mp3Decoder) Close() error {
	return d.closer.Close()
}

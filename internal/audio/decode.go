package audio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// decodeFile opens path and returns a decoder positioned at the first sample.
// The file is closed on every error path; on success it is owned by the caller.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, beep.Format{}, nil, errors.Wrapf(ErrUnsupported, "%q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ExtMP3:
		streamer, format, err = decodeGoMP3(f)
	case ExtFLAC:
		// Some taggers prepend ID3v2 to FLAC files, which the decoder rejects.
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case ExtWAV:
		streamer, format, err = wav.Decode(f)
	case ExtOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	if format.SampleRate <= 0 {
		streamer.Close()
		f.Close()
		return nil, beep.Format{}, nil, errors.Newf("decode %s: invalid sample rate", filepath.Base(path))
	}

	return streamer, format, f, nil
}

// ProbeDuration decodes the headers of path and returns its length.
func ProbeDuration(path string) (time.Duration, error) {
	streamer, format, f, err := decodeFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// skipID3v2 moves r past an ID3v2 tag if one starts the file, otherwise
// rewinds to the start.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Tag size is a syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

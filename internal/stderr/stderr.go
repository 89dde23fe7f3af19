//go:build !windows

// Package stderr captures output written straight to file descriptor 2 by the
// audio backend (ALSA through the speaker's C driver), which would otherwise
// corrupt the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const lineBuffer = 100

// Capture redirects fd 2 into a pipe until Stop.
type Capture struct {
	// Lines receives each captured non-empty line. Lines are dropped when
	// nobody reads.
	Lines <-chan string

	lines    chan string
	orig     int
	r, w     *os.File
	log      *zap.Logger
	finished chan struct{}
}

// Start begins capturing. Call it before the speaker is initialised. On
// error the program can continue; output just reaches the terminal.
func Start(log *zap.Logger) (*Capture, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "create pipe")
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "dup stderr")
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		_ = unix.Close(orig)
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "redirect stderr")
	}

	c := &Capture{
		lines:    make(chan string, lineBuffer),
		orig:     orig,
		r:        r,
		w:        w,
		log:      log,
		finished: make(chan struct{}),
	}
	c.Lines = c.lines
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.finished)
	defer close(c.lines)

	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.log.Warn("stderr", zap.String("line", line))
		select {
		case c.lines <- line:
		default:
		}
	}
}

// Stop restores the original stderr and waits for the reader to drain.
func (c *Capture) Stop() {
	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)
	c.w.Close()
	<-c.finished
	c.r.Close()
}

// Package video pipes RGB frames into ffmpeg.
package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/OniDaito/crabseal/internal/colorizer"
	cfg "github.com/OniDaito/crabseal/internal/config"
	"github.com/OniDaito/crabseal/internal/logger"
	p "github.com/OniDaito/crabseal/internal/progress"
)

// ErrEncode wraps any failure of the encoder child process.
var ErrEncode = errors.New("video encoding failed")

// Write encodes the pixel buffer as a video at path, overwriting any
// existing file. The buffer must be frames x height x width x 3.
func Write(ctx context.Context, path string, px *colorizer.Pixels) error {
	log := logger.Log.WithField("scope", "video")

	if len(px.Shape) != 4 || px.Shape[3] != 3 {
		return fmt.Errorf("%w: need frames x height x width x 3, got shape %v", ErrEncode, px.Shape)
	}
	frames, height, width := px.Shape[0], px.Shape[1], px.Shape[2]

	args := []string{
		"-y",
		"-v", "error",
		"-f", "rawvideo",
		"-pixel_format", cfg.VideoPixFmtIn,
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.Itoa(cfg.VideoFPS),
		"-i", "pipe:0",
		"-c:v", cfg.VideoCodec,
		"-pix_fmt", cfg.VideoPixFmtOut,
		path,
	}
	log.Debugf("Running ffmpeg command: %s %s\n", cfg.FFmpegBin, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, cfg.FFmpegBin, args...)
	var ffmpegErr bytes.Buffer
	cmd.Stderr = &ffmpegErr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	frameSize := height * width * 3
	p.Reset(frames, "Writing frames... ")
	for i := 0; i < frames; i++ {
		if _, err := stdin.Write(px.Pix[i*frameSize : (i+1)*frameSize]); err != nil {
			stdin.Close()
			cmd.Wait()
			return encodeErr(err, &ffmpegErr)
		}
		p.Add(1)
	}
	if err := stdin.Close(); err != nil {
		cmd.Wait()
		return encodeErr(err, &ffmpegErr)
	}

	// setup progress bar async, otherwise it wont animate
	p.Spinner("Encoding video... ")
	done := make(chan bool)
	go func(done <-chan bool) {
		ticker := time.NewTicker(time.Millisecond * 300)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Add(1) // spin
			case <-done:
				return
			}
		}
	}(done)

	err = cmd.Wait()
	done <- true
	p.Finish()
	if err != nil {
		return encodeErr(err, &ffmpegErr)
	}
	return nil
}

// encodeErr folds the child's stderr into the error when present.
func encodeErr(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return fmt.Errorf("%w: %v: %s", ErrEncode, err, msg)
}

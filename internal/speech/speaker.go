// Package speech is a fire-and-forget wrapper over a platform text-to-speech
// command. A new utterance always pre-empts the previous one; there is no
// queueing.
package speech

import (
	"context"
	"os/exec"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// Speaker announces text aloud.
type Speaker interface {
	// Speak cancels any in-flight utterance and synthesizes text at the
	// given rate (1 = normal speed).
	Speak(text string, rate float64)

	// Stop cancels an in-flight utterance; safe to call when idle.
	Stop()
}

// baseWPM is the words-per-minute a rate of 1 maps to (espeak's default).
const baseWPM = 175

// ExecSpeaker shells out to an espeak-style TTS command. Pitch, volume and
// voice are fixed; only the rate varies.
type ExecSpeaker struct {
	command string
	log     logging.Logger

	mu      sync.Mutex
	cur     *exec.Cmd
	probed  bool
	granted bool

	// test seams
	lookPath func(string) (string, error)
	newCmd   func(text string, rate float64) *exec.Cmd
}

func NewExecSpeaker(command string, log logging.Logger) *ExecSpeaker {
	s := &ExecSpeaker{
		command:  command,
		log:      log,
		lookPath: exec.LookPath,
	}
	s.newCmd = func(text string, rate float64) *exec.Cmd {
		return exec.Command(s.command, speakArgs(text, rate)...)
	}
	return s
}

func speakArgs(text string, rate float64) []string {
	if rate <= 0 {
		rate = 1
	}
	wpm := int(baseWPM * rate)
	return []string{
		"-s", strconv.Itoa(wpm),
		"-p", "50",
		"-a", "100",
		"-v", "en-us",
		text,
	}
}

// supported probes for the TTS command once and caches the answer.
func (s *ExecSpeaker) supported() bool {
	if s.probed {
		return s.granted
	}
	s.probed = true

	if s.command == "" {
		return false
	}
	if _, err := s.lookPath(s.command); err != nil {
		s.log.Warn(context.Background(), "text-to-speech not supported on this system",
			"command", s.command)
		return false
	}
	s.granted = true
	return true
}

func (s *ExecSpeaker) Speak(text string, rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.supported() {
		return
	}

	s.cancelLocked()

	cmd := s.newCmd(text, rate)
	if err := cmd.Start(); err != nil {
		s.log.Warn(context.Background(), "failed to start speech synthesis", "error", err)
		return
	}
	s.cur = cmd

	// reap the process and drop the handle once the utterance finishes
	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.cur == cmd {
			s.cur = nil
		}
		s.mu.Unlock()
	}()
}

func (s *ExecSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *ExecSpeaker) cancelLocked() {
	if s.cur != nil && s.cur.Process != nil {
		_ = s.cur.Process.Kill()
	}
	s.cur = nil
}

// NopSpeaker stays silent. Used when TTS is disabled and in tests.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string, float64) {}
func (NopSpeaker) Stop()                 {}

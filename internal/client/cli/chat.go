package cli

import (
	"context"
	"os"
)

// Chat runs a short conversation loop with the scripted assistant. An empty
// line ends the conversation. When AI tips are disabled the command says so
// and returns. Replies are spoken aloud when TTS is on.
func (a *App) Chat(ctx context.Context) error {
	if !a.settings.Current().AITipsEnabled {
		printlnFn("AI tips are disabled. Enable them in 'settings' first.")
		return nil
	}

	printlnFn("Chat with the assistant (empty line to finish).")
	for {
		input, err := getSimpleText(a.reader, "You:", os.Stdout)
		if err != nil {
			return err
		}
		reply := a.assistant.Reply(input)
		if reply == "" {
			return nil
		}
		printlnFn("Assistant:", reply)
		if a.settings.Current().TTSEnabled {
			a.speaker.Speak(reply, 1)
		}
	}
}

// Say announces the current daily summary out loud (and only out loud).
func (a *App) Say(ctx context.Context) error {
	msg := a.summary.BuildMessage()
	printlnFn(msg)
	a.speaker.Speak(msg, 1)
	return nil
}

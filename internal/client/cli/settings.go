package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
)

// TerminalDarkMode flips the terminal between light and dark rendition using
// ANSI escapes. It stands in for a themed UI; on terminals that ignore the
// codes it is harmless.
type TerminalDarkMode struct {
	out io.Writer
}

func (t *TerminalDarkMode) ApplyDarkMode(enabled bool) {
	if enabled {
		fmt.Fprint(t.out, "\x1b[40m\x1b[37m")
	} else {
		fmt.Fprint(t.out, "\x1b[0m")
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Settings prints the current toggles and lets the user flip one.
func (a *App) Settings(ctx context.Context) error {
	cur := a.settings.Current()
	printlnFn("1. dark mode:            " + onOff(cur.DarkMode))
	printlnFn("2. text-to-speech:       " + onOff(cur.TTSEnabled))
	printlnFn("3. ai tips:              " + onOff(cur.AITipsEnabled))
	printlnFn("4. email notifications:  " + onOff(cur.EmailNotifications))
	printlnFn("5. sms notifications:    " + onOff(cur.SMSNotifications))
	printlnFn("6. browser notifications:" + onOff(cur.BrowserNotifications))

	choice, err := getSimpleText(a.reader, "Number to toggle (empty to go back)", os.Stdout)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}

	patch := models.SettingsPatch{}
	switch choice {
	case "1":
		v := !cur.DarkMode
		patch.DarkMode = &v
	case "2":
		v := !cur.TTSEnabled
		patch.TTSEnabled = &v
	case "3":
		v := !cur.AITipsEnabled
		patch.AITipsEnabled = &v
	case "4":
		v := !cur.EmailNotifications
		patch.EmailNotifications = &v
	case "5":
		v := !cur.SMSNotifications
		patch.SMSNotifications = &v
	case "6":
		v := !cur.BrowserNotifications
		patch.BrowserNotifications = &v
	default:
		printlnFn("Unknown option:", choice)
		return nil
	}

	if err := a.settings.Update(ctx, patch); err != nil {
		return err
	}
	printlnFn("Saved.")
	return nil
}

// DarkMode flips dark mode without going through the settings menu.
func (a *App) DarkMode(ctx context.Context) error {
	if err := a.settings.ToggleDarkMode(ctx); err != nil {
		return err
	}
	printlnFn("Dark mode:", onOff(a.settings.Current().DarkMode))
	return nil
}

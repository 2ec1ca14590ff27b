package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jmorganca/suspendline/readline"
	"github.com/jmorganca/suspendline/suspend"
)

type lineEditor interface {
	ReadLine(prompt *readline.Prompt) (suspend.Result, error)
}

func generateInteractive(editor lineEditor, stdout io.Writer) error {
	prompt := &readline.Prompt{
		Prompt:      "> ",
		AltPrompt:   "... ",
		Placeholder: `Type a line (Ctrl+Z to suspend, "exit" to quit)`,
	}

	for {
		res, err := editor.ReadLine(prompt)
		if err != nil {
			// the caller reports err; editor and suspend failures both end the session
			slog.Debug("ending session", "error", err)
			return err
		}

		switch res.Outcome {
		case suspend.OutcomeSuccess:
			fmt.Fprintf(stdout, "We processed: %s\n", res.Line)
			if strings.TrimSpace(res.Line) == "exit" {
				fmt.Fprintln(stdout, "Exiting...")
				return nil
			}
		case suspend.OutcomeAborted:
			fmt.Fprintln(stdout, "\nAborted!")
			return nil
		case suspend.OutcomeSuspended:
			continue
		}
	}
}

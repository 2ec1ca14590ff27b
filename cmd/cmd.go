package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmorganca/suspendline/envconfig"
	"github.com/jmorganca/suspendline/logutil"
	"github.com/jmorganca/suspendline/readline"
	"github.com/jmorganca/suspendline/suspend"
	"github.com/jmorganca/suspendline/version"
)

func RunHandler(cmd *cobra.Command, args []string) error {
	noHistory, err := cmd.Flags().GetBool("nohistory")
	if err != nil {
		return err
	}

	if fd := os.Stdin.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fmt.Fprintln(os.Stderr, "warning: stdin is not a terminal; Ctrl+Z handling is unavailable")
	}

	editor, err := suspend.New(suspend.Config{
		HistoryFile:  envconfig.HistoryFile,
		HistoryLimit: envconfig.HistoryLimit,
		NoHistory:    noHistory || envconfig.NoHistory,
	})
	if err != nil {
		return err
	}

	return generateInteractive(editor, os.Stdout)
}

type keyBinding struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// effectiveBindings lists the bindings the editor runs with, naming the
// remapped suspend key by what it does.
func effectiveBindings() []keyBinding {
	keymap := readline.DefaultEmacsKeymap()
	suspend.RemapSuspendKey(keymap, suspend.Marker)

	var bindings []keyBinding
	for _, b := range keymap.Bindings() {
		action := b.Action.Kind.String()
		if b.Action.Kind == readline.ActionSubmitText && b.Action.Text == suspend.Marker {
			action = "suspend-process"
		}
		bindings = append(bindings, keyBinding{Key: b.Key.String(), Action: action})
	}
	return bindings
}

func KeysHandler(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	bindings := effectiveBindings()

	switch format {
	case "table":
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(bindings); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, expected table or yaml", format)
	}

	var data [][]string
	for _, b := range bindings {
		data = append(data, []string{b.Key, b.Action})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"KEY", "ACTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "suspendline",
		Short:   "Interactive line reader with Ctrl+Z job control",
		Long:    "Reads lines interactively and echoes them back. Ctrl+Z suspends the process, \"exit\" quits.",
		Args:    cobra.NoArgs,
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// main reports the error once through cobra.CheckErr
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			logutil.Install(os.Stderr, envconfig.LogLevel())
		},
		RunE: RunHandler,
	}

	rootCmd.Flags().Bool("nohistory", false, "Do not preserve readline history")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List key bindings",
		Args:  cobra.NoArgs,
		RunE:  KeysHandler,
	}
	keysCmd.Flags().StringP("format", "f", "table", "Output format (table, yaml)")

	envVars := envconfig.AsMap()
	var sb strings.Builder
	sb.WriteString("Environment Variables:\n")
	for _, name := range []string{"SUSPENDLINE_DEBUG", "SUSPENDLINE_NOHISTORY", "SUSPENDLINE_HISTORY", "SUSPENDLINE_HISTORY_LIMIT"} {
		ev := envVars[name]
		fmt.Fprintf(&sb, "      %-28s %s\n", ev.Name, ev.Description)
	}
	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + "\n" + sb.String())

	rootCmd.AddCommand(keysCmd)

	return rootCmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/appgroup/internal/logger"
	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/commands/render"
	"github.com/lvim-tech/appgroup/pkg/config"
	"github.com/lvim-tech/appgroup/pkg/dialog"
	"github.com/lvim-tech/appgroup/pkg/groups"
	"github.com/lvim-tech/appgroup/pkg/launcher"
	"github.com/lvim-tech/appgroup/pkg/menu"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configPath string
	groupsPath string
	logLevel   string
}

// newRootCmd builds the command tree. Without arguments, or with an
// argument that is not an action, the menu is printed.
func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "appgroup",
		Short: "Launch groups of applications from the menu bar",
		Long: `appgroup is an xbar/SwiftBar plugin. Run without arguments it prints
a menu of application groups; the menu items run it again with an action
to launch, create or delete a group.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// The host shows stdout as menu lines; usage text would only get in the way
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, opts, render.Name, nil)
		},
	}
	root.SetVersionTemplate(`{{printf "appgroup version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/appgroup/config.toml)")
	flags.StringVar(&opts.groupsPath, "groups", "", "groups file (overrides groups_file from the config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	for _, c := range commands.List() {
		root.AddCommand(newActionCmd(c, opts))
	}
	root.AddCommand(newInitCmd(opts), newVersionCmd())

	return root
}

func newActionCmd(c commands.Command, opts *rootOptions) *cobra.Command {
	use := c.Name
	for _, arg := range c.Args {
		use += " <" + arg + ">"
	}

	name := c.Name
	return &cobra.Command{
		Use:    use,
		Short:  c.Description,
		Hidden: c.Hidden,
		Args:   cobra.ExactArgs(len(c.Args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, name, args)
		},
	}
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return nil
			}

			path, err := config.InitUserConfig(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the default config instead of writing it")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "appgroup version %s\n", cmd.Root().Version)
		},
	}
}

// newDialog opens the dialog backend called name
var newDialog = dialog.New

// runAction loads everything fresh and runs one registered command
func runAction(cmd *cobra.Command, opts *rootOptions, name string, args []string) error {
	c := commands.Find(name)
	if c == nil {
		return fmt.Errorf("unknown action %q", name)
	}

	ctx, err := newContext(cmd, opts)
	if err != nil {
		return err
	}

	ctx.Log.Debug().Str("action", name).Strs("args", args).Msg("dispatch")
	return c.Run(ctx, args)
}

func newContext(cmd *cobra.Command, opts *rootOptions) (*commands.Context, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logger.New(cmd.ErrOrStderr(), logger.ParseLevel(level))
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	set, err := cfg.LabelSet()
	if err != nil {
		return nil, fmt.Errorf("invalid labels: %w", err)
	}

	groupsFile := cfg.GroupsFile
	if opts.groupsPath != "" {
		groupsFile = opts.groupsPath
	}

	dialogName := cfg.Dialog
	return &commands.Context{
		Config:   cfg,
		Labels:   set,
		Store:    groups.NewStore(groupsFile),
		Launcher: launcher.New(cfg.LaunchCommand(), cfg.Launch.Args, log),
		Menu:     menu.New(set, executablePath()),
		Out:      cmd.OutOrStdout(),
		Log:      log,
		OpenDialog: func() (dialog.Dialog, error) {
			return newDialog(dialogName)
		},
	}, nil
}

// executablePath is what menu items run; symlinks are resolved so the
// plugin keeps working when linked into the host's plugin directory
func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return strings.TrimSpace(exe)
}

package cli

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todoster/internal/config"
	"todoster/internal/paths"
	"todoster/internal/store"
	"todoster/internal/task"
	"todoster/internal/timeparse"
)

type App struct {
	Config     *config.Config
	ConfigPath string
	StorePath  string
	Location   *time.Location
}

// Now returns the current time in the app's configured location.
// Always use this instead of caching time at startup.
func (a *App) Now() time.Time {
	return time.Now().In(a.Location)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todoster",
		Short: "File-backed to-do list with repeating tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return runList(app)
		},
	}
	cmd.PersistentFlags().String("file", "", "Path to the task store (defaults to ~/.config/todoster/todos.json)")
	cmd.PersistentFlags().String("config", "", "Path to config.json (defaults to ~/.config/todoster/config.json)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newCompleteCmd())
	cmd.AddCommand(newUndoCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newCommandsCmd())
	cmd.AddCommand(newTUICmd())

	return cmd
}

func initApp(cmd *cobra.Command) (*App, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = paths.ConfigPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, err
	}
	loc, err := timeparse.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	storePath, _ := cmd.Flags().GetString("file")
	if storePath == "" {
		storePath, err = paths.StorePath(cfg.StoreFile)
		if err != nil {
			return nil, err
		}
	}
	log.Debug("app initialized", "config", cfgPath, "store", storePath, "timezone", loc.String())
	return &App{
		Config:     cfg,
		ConfigPath: cfgPath,
		StorePath:  storePath,
		Location:   loc,
	}, nil
}

// LoadList reads the store and auto-resets due repeating tasks before any
// command logic sees the list. Reset state only reaches disk when the
// command itself saves.
func (a *App) LoadList() (*task.List, error) {
	list, err := store.Load(a.StorePath)
	if err != nil {
		return nil, err
	}
	if reset := list.AutoReset(a.Now()); reset > 0 {
		log.Debug("auto-reset repeating tasks", "count", reset)
	}
	log.Debug("store loaded", "tasks", len(list.Items))
	return list, nil
}

func (a *App) SaveList(list *task.List) error {
	return store.Save(a.StorePath, list)
}

package main

import (
	"io"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/config"
	"github.com/alexisbeaulieu97/pokebrowse/internal/logger"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokebrowse/internal/storage"
	"github.com/alexisbeaulieu97/pokebrowse/internal/theme"
)

// appContext bundles the services one command invocation needs.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func (f *rootFlags) resolvedConfigPath() string {
	if f.configPath != "" {
		return f.configPath
	}
	return config.DefaultPath()
}

// loadConfig loads the configuration named by --config.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.resolvedConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Fix the config file or run 'pokebrowse config init --force' to reset it.")
	}
	return cfg, nil
}

// newAppContext loads configuration and builds a session logger writing to w.
func newAppContext(flags *rootFlags, w io.Writer) (*appContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return buildAppContext(cfg, flags, w)
}

func buildAppContext(cfg *config.Config, flags *rootFlags, w io.Writer) (*appContext, error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        w,
		Fields:        map[string]any{"session": uuid.New().String()},
	})
	if err != nil {
		return nil, newCommandError("create logger", "log.level "+level, err, "Use one of trace, debug, info, warn, error.")
	}

	return &appContext{cfg: cfg, log: log}, nil
}

// client builds a PokeAPI client from configuration.
func (a *appContext) client() *pokeapi.Client {
	return pokeapi.NewClient(a.cfg.API.BaseURL,
		pokeapi.WithTimeout(a.cfg.HTTP.Timeout),
		pokeapi.WithUserAgent(a.cfg.API.UserAgent),
		pokeapi.WithLogger(a.log.Component("pokeapi")),
	)
}

// loader builds a catalog loader on top of client.
func (a *appContext) loader(opts ...catalog.LoaderOption) *catalog.Loader {
	opts = append([]catalog.LoaderOption{catalog.WithLogger(a.log.Component("catalog"))}, opts...)
	return catalog.NewLoader(a.client(), opts...)
}

// openThemes opens the preference store and wraps it in a theme store. The
// returned close func is always safe to call. When the store cannot be opened
// the theme store keeps working in memory.
func (a *appContext) openThemes(apply theme.Applier) (*theme.Store, func(), error) {
	log := a.log.Component("theme")

	st, err := storage.Open(a.cfg.StorePath())
	if err != nil {
		return theme.New(nil, apply, log), func() {}, err
	}

	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			a.log.Warn(cerr, "closing preference store")
		}
	}
	return theme.New(st, apply, log), closeFn, nil
}

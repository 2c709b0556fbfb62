// Package cli wires configuration, adapters and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/domain/build"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/flatten"
	"github.com/bnema/clonecfg/internal/domain/relationship"
	"github.com/bnema/clonecfg/internal/domain/repository"
	"github.com/bnema/clonecfg/internal/infrastructure/config"
	"github.com/bnema/clonecfg/internal/infrastructure/jsoncodec"
	"github.com/bnema/clonecfg/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/clonecfg/internal/infrastructure/sink"
	"github.com/bnema/clonecfg/internal/infrastructure/source"
	"github.com/bnema/clonecfg/internal/logging"
)

// Options are the global flags that shape App construction.
type Options struct {
	ConfigDir string
	LogLevel  string // overrides logging.level when set
	NoHistory bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Tables    *entity.Tables

	Analyzer *relationship.Analyzer
	Encoder  *jsoncodec.Encoder
	History  repository.SaveHistoryRepository

	EditUC       *usecase.EditSettingUseCase
	FlattenUC    *usecase.FlattenConfigUseCase
	DescribeUC   *usecase.DescribeSessionUseCase
	ListSavesUC  *usecase.ListSavesUseCase
	PruneSavesUC *usecase.PruneSavesUseCase

	db        *sqlite.LazyDB
	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads the configuration and builds every shared dependency.
// The history database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigDir != "" {
		managerOpts = append(managerOpts, config.WithConfigDir(opts.ConfigDir))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	ctx, logCloser, err := newLoggingContext(cfg, opts.LogLevel)
	if err != nil {
		return nil, err
	}

	tables, err := config.LoadTables(cfg.Tables.File)
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}
	analyzer, err := relationship.NewAnalyzer(tables)
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}
	serializer, err := flatten.NewSerializer(tables)
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}
	encoder := jsoncodec.NewEncoder()

	a := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		Tables:     tables,
		Analyzer:   analyzer,
		Encoder:    encoder,
		EditUC:     usecase.NewEditSettingUseCase(),
		FlattenUC:  usecase.NewFlattenConfigUseCase(serializer, encoder),
		DescribeUC: usecase.NewDescribeSessionUseCase(tables),
		ctx:        ctx,
		logCloser:  logCloser,
	}

	if cfg.Database.Enabled && !opts.NoHistory {
		a.db = sqlite.NewLazyDB(cfg.Database.Path)
		a.History = sqlite.NewLazySaveHistoryRepository(a.db)
		a.ListSavesUC = usecase.NewListSavesUseCase(a.History)
		a.PruneSavesUC = usecase.NewPruneSavesUseCase(a.History)
	}

	logging.FromContext(ctx).Debug().
		Str("config", mgr.GetConfigFile()).
		Bool("history", a.History != nil).
		Msg("app initialized")
	return a, nil
}

func newLoggingContext(cfg *config.Config, levelOverride string) (context.Context, io.Closer, error) {
	level := cfg.Logging.Level
	if levelOverride != "" {
		level = levelOverride
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	if !cfg.Logging.EnableFileLog {
		return logging.WithContext(context.Background(), logging.New(logCfg)), nil, nil
	}
	runID := logging.NewRunID()

	logger, closer, err := logging.NewWithFile(logCfg, logging.RotatorConfig{
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.WithContext(context.Background(), logging.WithRun(logger, runID)), closer, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext replaces the base context, keeping its logger. Used to attach
// signal cancellation.
func (a *App) WithContext(ctx context.Context) {
	a.ctx = logging.WithContext(ctx, *logging.FromContext(a.ctx))
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	closeQuietly(a.logCloser)
	return err
}

// Source picks where to load from: an explicit path, then source.url, then source.path.
func (a *App) Source(path string) (port.ConfigSource, error) {
	switch {
	case path != "":
		return source.NewFileSource(path), nil
	case a.Config.Source.URL != "":
		return source.NewHTTPSource(
			a.Config.Source.URL,
			source.WithHeaders(a.Config.Source.Headers),
			source.WithTimeout(time.Duration(a.Config.Source.TimeoutSeconds)*time.Second),
		), nil
	case a.Config.Source.Path != "":
		return source.NewFileSource(a.Config.Source.Path), nil
	default:
		return nil, fmt.Errorf("no input: pass a file or set source.path or source.url in %s", a.Manager.GetConfigFile())
	}
}

// Sink returns the configured save destination. outDir overrides output.dir.
func (a *App) Sink(outDir string) port.ConfigSink {
	if outDir != "" {
		return sink.NewFileSink(outDir)
	}
	return sink.Select(a.ctx, a.Config.Output.BridgeCommand, a.Config.Output.Dir)
}

// LoadSession loads src into a new edit session.
func (a *App) LoadSession(ctx context.Context, src port.ConfigSource, packageName string) (*usecase.LoadConfigOutput, error) {
	if packageName == "" {
		packageName = a.Config.Output.PackageName
	}
	uc := usecase.NewLoadConfigUseCase(src, a.Analyzer, a.Tables)
	return uc.Execute(ctx, usecase.LoadConfigInput{
		PackageName: packageName,
		SplitCount:  a.Config.Output.SplitCount,
	})
}

// SaveUseCase builds a save use case writing to dst.
func (a *App) SaveUseCase(dst port.ConfigSink) *usecase.SaveConfigUseCase {
	return usecase.NewSaveConfigUseCase(a.FlattenUC, dst, a.History)
}

// ApplyEdits parses and applies "category.key=<json>" assignments in order.
func (a *App) ApplyEdits(ctx context.Context, session *entity.EditSession, assignments []string) error {
	for _, raw := range assignments {
		edit, err := ParseEdit(raw)
		if err != nil {
			return err
		}
		if _, err := a.EditUC.Execute(ctx, usecase.EditSettingInput{
			Session:  session,
			Category: edit.Category,
			Key:      edit.Key,
			Value:    edit.Value,
		}); err != nil {
			return err
		}
	}
	return nil
}

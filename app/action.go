package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/anuloma/internal/audio"
	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/osutil"
	"github.com/ayoisaiah/anuloma/internal/pathutil"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
	"github.com/ayoisaiah/anuloma/internal/ui"
	"github.com/ayoisaiah/anuloma/report"
	"github.com/ayoisaiah/anuloma/stats"
	"github.com/ayoisaiah/anuloma/store"
)

const (
	envNoColor        = "NO_COLOR"
	envAnulomaNoColor = "ANULOMA_NO_COLOR"
	envDebug          = "ANULOMA_DEBUG"
)

var logFile io.Closer

// loadConfig layers the config file, the environment and the command-line
// flags, in that order.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithEnv(),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Visual.ColorTheme == config.ThemeDark

	return cfg, nil
}

// loadFileConfig reads only the config file. It is used by the commands that
// write settings back so that temporary overrides are not persisted.
func loadFileConfig() (*config.Config, error) {
	return config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
}

func openTracker(user string) (*progress.Tracker, store.DB, error) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	tracker, err := progress.New(db, user)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return tracker, db, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// defaultAction runs a practice session with the configured cycle and rounds.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	rec, err := practise(ctx.Context, cfg, db)
	if err != nil {
		return err
	}

	if rec.Outcome != models.Finished {
		return nil
	}

	if err := runSessionCmd(cfg.System.Cmd); err != nil {
		pterm.Error.Printfln("unable to run the session command: %v", err)
	}

	return nil
}

// setupAction creates the practitioner's profile.
func setupAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tracker, db, err := openTracker(cfg.System.User)
	if err != nil {
		return err
	}

	defer db.Close()

	if tracker.HasProfile() && !ctx.Bool("yes") &&
		!confirm(os.Stdout, os.Stdin, "A profile already exists and will be replaced") {
		return nil
	}

	opts := setupOptions{
		HeroName:    ctx.String("name"),
		Character:   models.Character(ctx.String("character")),
		NatureTrack: cfg.Music.NatureTrack,
	}

	if opts.HeroName == "" {
		tracks, err := audio.NatureTracks(pathutil.AssetsDir())
		if err != nil {
			slog.Warn("nature tracks unavailable", slog.Any("error", err))
		}

		if err := promptSetup(tracks, &opts); err != nil {
			return err
		}
	}

	p, err := tracker.CreateProfile(opts.HeroName, opts.Character)
	if err != nil {
		return err
	}

	if opts.NatureTrack != cfg.Music.NatureTrack {
		fileCfg, err := loadFileConfig()
		if err != nil {
			return err
		}

		if err := setSetting(fileCfg, "music.nature_track", opts.NatureTrack); err != nil {
			return err
		}
	}

	report.Welcome(p)

	return nil
}

// profileAction prints the profile, its totals and achievements.
func profileAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tracker, db, err := openTracker(cfg.System.User)
	if err != nil {
		return err
	}

	defer db.Close()

	p := tracker.Profile()
	if p == nil {
		return errNoProfile
	}

	if ctx.Bool("json") {
		return writeJSON(os.Stdout, newProfileView(p))
	}

	printProfile(os.Stdout, p)

	return nil
}

// resetProfileAction deletes the profile and the practice history.
func resetProfileAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tracker, db, err := openTracker(cfg.System.User)
	if err != nil {
		return err
	}

	defer db.Close()

	return resetProfile(tracker, os.Stdout, os.Stdin, ctx.Bool("yes"))
}

// mapAction prints the practice path with the locations unlocked so far.
func mapAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tracker, db, err := openTracker(cfg.System.User)
	if err != nil {
		return err
	}

	defer db.Close()

	return printMap(os.Stdout, tracker.Unlocked)
}

// cyclesAction prints the cycle catalog and session lengths.
func cyclesAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	printCycles(os.Stdout, cfg.Practice.Rounds, cfg.Practice.CycleIndex)

	return nil
}

// statsRange resolves the reporting period from the stats flags. An explicit
// --since or --until takes precedence over --period.
func statsRange(
	since, until, period string,
	now time.Time,
) (start, end time.Time, err error) {
	p := timeutil.Period(period)

	offset, ok := timeutil.Range[p]
	if !ok {
		return start, end, errInvalidPeriod.Fmt(period)
	}

	end = timeutil.RoundToEnd(now)

	if p != timeutil.PeriodAllTime {
		start = timeutil.RoundToStart(now.AddDate(0, 0, offset))
	}

	if since != "" {
		start, err = timeutil.FromStr(since)
		if err != nil {
			return start, end, errParsingDate.Fmt(since).Wrap(err)
		}
	}

	if until != "" {
		end, err = timeutil.FromStr(until)
		if err != nil {
			return start, end, errParsingDate.Fmt(until).Wrap(err)
		}
	}

	if end.Before(start) {
		return start, end, errInvalidDateRange
	}

	return start, end, nil
}

// statsAction reports the practice history of the selected period.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	start, end, err := statsRange(
		ctx.String("since"),
		ctx.String("until"),
		ctx.String("period"),
		time.Now(),
	)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Show(db, &stats.Options{
		StartTime: start,
		EndTime:   end,
		Stdout:    os.Stdout,
		User:      cfg.System.User,
		JSON:      ctx.Bool("json"),
		List:      ctx.Bool("list"),
	})
}

func showSettingsAction(ctx *cli.Context) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return writeJSON(os.Stdout, cfg.AppSettings)
	}

	printSettings(os.Stdout, cfg)

	return nil
}

func setSettingAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errSettingArgs
	}

	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	key, value := ctx.Args().Get(0), ctx.Args().Get(1)

	if err := setSetting(cfg, key, value); err != nil {
		return err
	}

	pterm.Success.Printfln("%s = %v", key, cfg.Settings()[key])

	return nil
}

func resetSettingsAction(ctx *cli.Context) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") &&
		!confirm(os.Stdout, os.Stdin, "Every preference will be restored to its default") {
		return nil
	}

	if err := resetSettings(cfg); err != nil {
		return err
	}

	pterm.Success.Println("settings restored")

	return nil
}

// editSettingsAction opens the config file in the user's default text editor.
func editSettingsAction(_ *cli.Context) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	return editConfig(cfg.Path)
}

func debugEnabled(ctx *cli.Context) bool {
	if ctx.Bool("debug") {
		return true
	}

	on, _ := strconv.ParseBool(os.Getenv(envDebug))

	return on
}

// initPaths resolves the application directories and makes sure the
// database and log directories exist.
func initPaths(dataDir string) error {
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
			return errInitPaths.Wrap(err)
		}

		pathutil.InitializeAt(dataDir)
	} else if err := pathutil.Initialize(); err != nil {
		return errInitPaths.Wrap(err)
	}

	for _, dir := range []string{
		filepath.Dir(pathutil.DBFilePath()),
		filepath.Dir(pathutil.LogFilePath()),
	} {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return errInitPaths.Wrap(err)
		}
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if ANULOMA_NO_COLOR is set
	if _, exists := os.LookupEnv(envAnulomaNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := initPaths(ctx.String("data-dir")); err != nil {
		return err
	}

	logFile = setupLogger(pathutil.LogFilePath(), debugEnabled(ctx))

	slog.Debug(
		"starting anuloma",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting anuloma")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}

// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envSuffix = "ANULOMA_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
	assetsDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = defaultPaths()

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// InitializeAt points every path at dir instead of the XDG locations. It is
// used by tests and by the --data-dir flag.
func InitializeAt(dir string) {
	p := defaultPaths()
	p.applyEnvironmentOverrides()

	p.configFilePath = filepath.Join(dir, p.configFileName)
	p.dbFilePath = filepath.Join(dir, p.dbFileName)
	p.logFilePath = filepath.Join(dir, "log", p.logFileName)
	p.assetsDir = filepath.Join(dir, "assets")

	paths = p
}

func defaultPaths() *Paths {
	return &Paths{
		configDir:      "anuloma",
		configFileName: "config.yml",
		dbFileName:     "anuloma.db",
		logFileName:    "anuloma.log",
	}
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// AssetsDir is the directory that holds the ambience, nature and narration
// recordings.
func AssetsDir() string {
	return Must().assetsDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envSuffix))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("anuloma_%s.db", env)
		p.logFileName = fmt.Sprintf("anuloma_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.assetsDir = filepath.Join(dataDir, "assets")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

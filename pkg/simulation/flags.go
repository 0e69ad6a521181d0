package simulation

import "flag"

// Flags are the command line options shared by the shells. Flags given
// explicitly override the config file.
type Flags struct {
	fs         *flag.FlagSet
	Population int
	ConfigPath string
	Seed       uint64
	RecordPath string
	LogLevel   string
}

// BindFlags registers the options on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.IntVar(&f.Population, "n", DefaultConfig().Population, "number of birds")
	fs.StringVar(&f.ConfigPath, "config", "", "JSON or TOML configuration file")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.StringVar(&f.RecordPath, "record", "", "record every snapshot to this file")
	fs.StringVar(&f.LogLevel, "log", "", "log level: debug, info, warn or error")
	return f
}

// Config loads the config file, if any, and applies the flags that were set.
// Call it after fs.Parse.
func (f *Flags) Config() (*Config, error) {
	cfg := DefaultConfig()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = LoadConfig(f.ConfigPath); err != nil {
			return nil, err
		}
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.Population = f.Population
		case "seed":
			cfg.Seed = f.Seed
		case "record":
			cfg.RecordPath = f.RecordPath
		case "log":
			cfg.LogLevel = f.LogLevel
		}
	})
	return cfg, nil
}

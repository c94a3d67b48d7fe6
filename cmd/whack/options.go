package main

import (
	"flag"
	"io"
)

// defaultDBPath is where the high score is kept unless -db says otherwise
const defaultDBPath = "data/whack.db"

// options are the command-line settings of the binary
type options struct {
	DBPath string // Empty keeps the high score in memory only
	Seed   int64  // 0 seeds from the clock
	Debug  bool
	Mute   bool
}

// parseOptions parses command-line arguments, without the program name
func parseOptions(args []string, usage io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("whack", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&opts.DBPath, "db", defaultDBPath, "SQLite file for the high score, empty for memory only")
	fs.Int64Var(&opts.Seed, "seed", 0, "Random seed for mole placement, 0 for time based")
	fs.BoolVar(&opts.Debug, "debug", false, "Write debug log to logs/whack.log")
	fs.BoolVar(&opts.Mute, "mute", false, "Start with sound effects muted")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

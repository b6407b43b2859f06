package main

import (
	"flag"
	"fmt"
	"io"
)

// AppFlags holds the parsed command line
type AppFlags struct {
	TextOutput    string
	JSONOutput    string
	HTMLOutput    string
	ParquetOutput string
	ConfigFile    string
	LogLevel      string
	HistoryLimit  int
	Files         []string
}

// ParseFlags parses args (without the program name). Usage and parse errors
// are written to output.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("pdfdiff", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: pdfdiff [flags] FILE_A FILE_B")
		fmt.Fprintln(fs.Output(), "       pdfdiff -history N")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Compares two documents (.pdf, .docx, .odt) paragraph by paragraph and page image counts.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	textOutput := fs.String("output", "", "Path to write the text report to (it is always printed to stdout)")
	textOutputAlias := fs.String("o", "", "Alias for -output")

	jsonOutput := fs.String("json", "", "Path to write the JSON report to")
	jsonOutputAlias := fs.String("j", "", "Alias for -json")

	htmlOutput := fs.String("html", "", "Path to write the HTML report to")
	parquetOutput := fs.String("parquet", "", "Path to write the Parquet export of text differences to")

	configFile := fs.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := fs.String("c", "", "Alias for -config")

	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error (overrides config file if set)")
	historyLimit := fs.Int("history", 0, "Print the N most recent comparison runs from the history database and exit")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		TextOutput:    firstNonEmpty(*textOutput, *textOutputAlias),
		JSONOutput:    firstNonEmpty(*jsonOutput, *jsonOutputAlias),
		HTMLOutput:    *htmlOutput,
		ParquetOutput: *parquetOutput,
		ConfigFile:    firstNonEmpty(*configFile, *configFileAlias),
		LogLevel:      *logLevel,
		HistoryLimit:  *historyLimit,
		Files:         fs.Args(),
	}

	if flags.HistoryLimit < 0 {
		fmt.Fprintln(output, "-history must not be negative")
		fs.Usage()
		return flags, errUsage
	}
	if flags.HistoryLimit > 0 && len(flags.Files) > 0 {
		fmt.Fprintln(output, "-history does not take file arguments")
		fs.Usage()
		return flags, errUsage
	}
	if flags.HistoryLimit == 0 && len(flags.Files) != 2 {
		fmt.Fprintf(output, "expected 2 files, got %d\n", len(flags.Files))
		fs.Usage()
		return flags, errUsage
	}

	return flags, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/imarsman/strptime"
	"github.com/imarsman/strptime/pkg/localtime"
	"github.com/imarsman/strptime/pkg/tzname"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type option struct {
	Format    string       `description:"specify the strptime template, e.g. %Y-%m-%d %H:%M:%S %z" long:"format" short:"f"`
	Output    outputFormat `description:"specify the output format (text/json/yaml)" long:"output" short:"o" default:"text"`
	Location  string       `description:"specify the IANA zone used for %s and %Z. if not specified, the local zone is used" long:"location" short:"l"`
	CacheSize int          `description:"specify the number of %s conversions to cache" long:"cache-size" default:"64"`
	LogLevel  logLevel     `description:"specify the log level (debug/info/warn/error)" long:"log-level" default:"warn"`
	LogFormat logFormat    `description:"specify the log format (console/json)" long:"log-format" default:"console"`
	Version   bool         `description:"print version" long:"version" short:"v"`
}

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

var (
	version  string
	revision string
)

func main() {
	os.Exit(int(run()))
}

func run() exitCode {
	args, opt, err := parseOpt()
	if err != nil {
		flagsErr, ok := err.(*flags.Error)
		if !ok {
			fmt.Fprintf(os.Stderr, "[strptime] unknown parsed option error: %[1]T %[1]v\n", err)
			return exitError
		}
		if flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitError
	}
	rejected, err := runParse(args, opt, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if rejected > 0 {
		return exitError
	}
	return exitOK
}

func parseOpt() ([]string, option, error) {
	var opt option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Usage = "[OPTIONS] [VALUE...]"
	args, err := parser.Parse()
	return args, opt, err
}

// runParse parse every value in args, or every line of in when there are none,
// and write a record for each one that matches. It returns the number of values
// rejected.
func runParse(args []string, opt option, in io.Reader, out io.Writer) (int, error) {
	if opt.Version {
		fmt.Fprintf(out, "version: %s (%s)\n", version, revision)
		return 0, nil
	}
	if opt.Format == "" {
		return 0, errors.New("the required flag --format was not specified")
	}

	logger, err := newLogger(opt.LogLevel, opt.LogFormat)
	if err != nil {
		return 0, err
	}
	defer logger.Sync() // nolint: errcheck

	location := time.Local
	if opt.Location != "" {
		location, err = time.LoadLocation(opt.Location)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to load location %s", opt.Location)
		}
	}
	converter, err := localtime.New(location, opt.CacheSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create localtime cache")
	}
	zones := tzname.FromLocation(location, time.Now().In(location).Year())
	names := zones.Names()
	logger.Debug("zone names",
		zap.String("location", location.String()),
		zap.Strings("names", names[:]),
		zap.Int64("offset", zones.StdOffset()),
	)

	p := strptime.New(
		strptime.WithLocaltime(converter),
		strptime.WithZoneTable(zones),
	)
	w, err := newRecordWriter(opt.Output, out)
	if err != nil {
		return 0, err
	}

	rejected := 0
	handle := func(line int, value string) error {
		r, err := parseRecord(p, value, opt.Format, location)
		if err != nil {
			rejected++
			logger.Warn("rejected", zap.Int("line", line), zap.String("value", value), zap.Error(err))
			return nil
		}
		if r.Consumed < len(value) {
			logger.Info("partial match", zap.Int("line", line), zap.String("rest", value[r.Consumed:]))
		}
		return w.write(r)
	}

	if len(args) > 0 {
		for i, value := range args {
			if err := handle(i+1, value); err != nil {
				return rejected, err
			}
		}
		return rejected, nil
	}

	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		value := strings.TrimRight(scanner.Text(), "\r")
		if value == "" {
			continue
		}
		if err := handle(line, value); err != nil {
			return rejected, err
		}
	}
	if err := scanner.Err(); err != nil {
		return rejected, errors.Wrap(err, "failed to read input")
	}
	logger.Debug("done", zap.Int("rejected", rejected), zap.Int("cached", converter.Len()))

	return rejected, nil
}

type logLevel string

const (
	logLevelDebug logLevel = "debug"
	logLevelInfo  logLevel = "info"
	logLevelWarn  logLevel = "warn"
	logLevelError logLevel = "error"
)

type logFormat string

const (
	logFormatConsole logFormat = "console"
	logFormatJSON    logFormat = "json"
)

// newLogger a logger writing to stderr at level in format
func newLogger(level logLevel, format logFormat) (*zap.Logger, error) {
	config := zap.Config{
		Development:       false,
		DisableStacktrace: true,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	switch level {
	case logLevelDebug:
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case logLevelInfo:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case logLevelWarn:
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case logLevelError:
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, errors.Errorf("unexpected log level %s", level)
	}

	switch format {
	case logFormatConsole:
		config.Encoding = "console"
	case logFormatJSON:
		config.Encoding = "json"
	default:
		return nil, errors.Errorf("unexpected log format %s", format)
	}

	return config.Build()
}

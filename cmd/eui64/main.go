package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

var (
	version = "dev"
	date    = "unknown"

	mode           Mode
	macs           *[]string
	ipv6           *bool
	prefix         *string
	configFilePath *string
	outputPath     *string
	logLevel       *string
	slogLevel      *slog.LevelVar = new(slog.LevelVar)
)

// Print program usage
func printUsage(cmd *ff.Command) {
	fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Command(cmd))
	os.Exit(1)
}

// Print program version
func printVersion() {
	fmt.Printf("eui64 v%s built on %s\n", version, date)
	os.Exit(0)
}

func parseFlags(args []string) {
	rootFlags := ff.NewFlagSet("eui64")
	displayVersion := rootFlags.BoolLong("version", "Print version")
	logLevel = rootFlags.StringEnumLong(
		"log-level",
		"Log level: debug, info, warn, error",
		"info",
		"debug",
		"error",
		"warn",
	)
	macs = rootFlags.StringSetLong("mac", "MAC address to process, repeatable")
	rootCommand := &ff.Command{
		Name:  "eui64",
		Usage: "eui64 [FLAGS] <SUBCOMMAND> ...",
		Flags: rootFlags,
	}

	validateFlags := ff.NewFlagSet("validate").SetParent(rootFlags)
	validateCommand := &ff.Command{
		Name:  "validate",
		Usage: "eui64 validate --mac <MAC> ...",
		Flags: validateFlags,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, validateCommand)

	splitFlags := ff.NewFlagSet("split").SetParent(rootFlags)
	splitCommand := &ff.Command{
		Name:  "split",
		Usage: "eui64 split --mac <MAC> ...",
		Flags: splitFlags,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, splitCommand)

	convertFlags := ff.NewFlagSet("convert").SetParent(rootFlags)
	ipv6 = convertFlags.BoolLong(
		"ipv6",
		"Flip the universal/local bit to get the modified EUI-64 used by IPv6",
	)
	convertCommand := &ff.Command{
		Name:  "convert",
		Usage: "eui64 convert [FLAGS] --mac <MAC> ...",
		Flags: convertFlags,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, convertCommand)

	linkLocalFlags := ff.NewFlagSet("link-local").SetParent(rootFlags)
	prefix = linkLocalFlags.StringLong(
		"prefix",
		"",
		"IPv6 prefix of /64 or shorter to also build a SLAAC address in",
	)
	linkLocalCommand := &ff.Command{
		Name:  "link-local",
		Usage: "eui64 link-local [FLAGS] --mac <MAC> ...",
		Flags: linkLocalFlags,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, linkLocalCommand)

	batchFlags := ff.NewFlagSet("batch").SetParent(rootFlags)
	configFilePath = batchFlags.StringLong("config", "hosts.yml", "Path to hosts file")
	outputPath = batchFlags.StringLong("output", "", "Write results as CSV to this file")
	batchCommand := &ff.Command{
		Name:  "batch",
		Usage: "eui64 batch [FLAGS]",
		Flags: batchFlags,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, batchCommand)

	err := rootCommand.Parse(args,
		ff.WithEnvVarPrefix("EUI64"),
	)
	if err != nil {
		printUsage(rootCommand)
	}

	if *displayVersion {
		printVersion()
	}

	if selected := validateCommand.GetSelected(); selected != nil {
		mode = ModeValidate
	}
	if selected := splitCommand.GetSelected(); selected != nil {
		mode = ModeSplit
	}
	if selected := convertCommand.GetSelected(); selected != nil {
		mode = ModeConvert
	}
	if selected := linkLocalCommand.GetSelected(); selected != nil {
		mode = ModeLinkLocal
	}
	if selected := batchCommand.GetSelected(); selected != nil {
		mode = ModeBatch
	}

	if mode == ModeUndefined {
		printUsage(rootCommand)
	}

	if mode != ModeBatch && len(*macs) == 0 {
		fmt.Fprintf(os.Stderr, "No MAC addresses specified\n")
		printUsage(rootCommand)
	}

	switch *logLevel {
	case "debug":
		slogLevel.Set(slog.LevelDebug)
	case "info":
		slogLevel.Set(slog.LevelInfo)
	case "warn":
		slogLevel.Set(slog.LevelWarn)
	case "error":
		slogLevel.Set(slog.LevelError)
	}

	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel,
		}),
	)
	slog.SetDefault(logger)
}

func main() {
	parseFlags(os.Args[1:])

	switch mode {
	case ModeValidate:
		slog.Debug("Validating MAC addresses", "count", len(*macs))
		printTable(validateTable(*macs))
	case ModeSplit:
		slog.Debug("Splitting MAC addresses", "count", len(*macs))
		printTable(splitTable(*macs))
	case ModeConvert:
		slog.Debug("Converting MAC addresses", "count", len(*macs), "ipv6", *ipv6)
		printTable(convertTable(*macs, *ipv6))
	case ModeLinkLocal:
		t, err := linkLocalTable(*macs, *prefix)
		if err != nil {
			slog.Error("Failed to build link-local addresses", "error", err.Error())
			os.Exit(1)
		}
		printTable(t)
	case ModeBatch:
		config, err := loadConfig(*configFilePath)
		if err != nil {
			slog.Error("Failed to load hosts file", "error", err.Error())
			os.Exit(1)
		}

		slog.Info(
			"Converting hosts",
			"file",
			*configFilePath,
			"hosts",
			len(config.Hosts),
			"ipv6",
			config.Ipv6,
		)

		t, err := batchTable(config)
		if err != nil {
			slog.Error("Failed to convert hosts", "error", err.Error())
			os.Exit(1)
		}

		if *outputPath == "" {
			printTable(t)
			return
		}

		if err := writeCsv(t, *outputPath); err != nil {
			slog.Error("Failed to write results", "error", err.Error())
			os.Exit(1)
		}
		slog.Info("Wrote results", "file", *outputPath)
	}
}

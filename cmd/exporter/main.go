package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-kit/log/level"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/promlog"
	"github.com/prometheus/common/version"
	"github.com/prometheus/exporter-toolkit/web"
)

// Print program usage
func printUsage(fs ff.Flags) {
	fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
	os.Exit(1)
}

// Print program version
func printVersion() {
	fmt.Printf("eui64_exporter %v %v\n", version.Info(), version.BuildContext())
	os.Exit(0)
}

func landingPage(metricsPath string, convertPath string) []byte {
	return []byte(`<html>
<head><title>EUI-64 exporter</title></head>
<body>
<h1>EUI-64 exporter</h1>
<p><a href='` + metricsPath + `'>Metrics</a></p>
<p><a href='` + convertPath + `?mac=aa:bb:cc:dd:ee:ff&ipv6=true'>Convert</a></p>
<h2>Build</h2>
<pre>` + version.Info() + ` ` + version.BuildContext() + `</pre>
</body>
</html>`)
}

func main() {
	fs := ff.NewFlagSet("eui64_exporter")
	displayVersion := fs.BoolLong("version", "Print version")
	listenAddr := fs.StringSetLong(
		"web.listen-address",
		"Addresses to serve the /convert endpoint, metrics and landing page on. Repeatable for multiple addresses. (default: :9813)",
	)
	metricsPath := fs.StringLong(
		"web.telemetry-path",
		"/metrics",
		"Path under which to expose conversion and build metrics.",
	)
	convertPath := fs.StringLong(
		"web.convert-path",
		"/convert",
		"Path under which to serve MAC to EUI-64 conversions.",
	)
	webConfigFile := fs.StringLong(
		"web.config.file",
		"",
		"Path to configuration file that can enable TLS or authentication. See: https://github.com/prometheus/exporter-toolkit/blob/master/docs/web-configuration.md",
	)
	logLevel := fs.StringEnumLong(
		"log.level",
		"Only log messages with the given severity or above.",
		promlog.LevelFlagOptions...,
	)
	logFormat := fs.StringEnumLong(
		"log.format",
		"Output format of log messages.",
		promlog.FormatFlagOptions...,
	)

	err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("EUI64_EXPORTER"),
	)

	if err != nil {
		printUsage(fs)
	}

	if *displayVersion {
		printVersion()
	}

	promlogConfig := &promlog.Config{
		Level:  &promlog.AllowedLevel{},
		Format: &promlog.AllowedFormat{},
	}
	if err := promlogConfig.Level.Set(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting log level: %v\n", err)
	}
	if err := promlogConfig.Format.Set(*logFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting log format: %v\n", err)
	}
	logger := promlog.New(promlogConfig)

	if len(*listenAddr) == 0 {
		// Set default value
		listenAddr = &[]string{":9813"}
	}

	webConfig := web.FlagConfig{
		WebListenAddresses: listenAddr,
		WebConfigFile:      webConfigFile,
	}

	// nolint:errcheck
	level.Info(logger).Log("msg", "Starting eui64_exporter", "version", version.Info())
	// nolint:errcheck
	level.Info(logger).Log("build_context", version.BuildContext())

	versionCollector := versioncollector.NewCollector("eui64")
	prometheus.MustRegister(versionCollector)

	metrics := newConversionMetrics()
	prometheus.MustRegister(metrics.conversionsTotal)

	http.Handle(*metricsPath, promhttp.Handler())
	http.Handle(*convertPath, &convertHandler{
		logger:  logger,
		metrics: metrics,
	})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write(landingPage(*metricsPath, *convertPath)); err != nil {
			// nolint:errcheck
			level.Error(logger).Log("error", err)
		}
	})

	srv := &http.Server{}
	if err := web.ListenAndServe(srv, &webConfig, logger); err != nil {
		// nolint:errcheck
		level.Error(logger).Log("msg", "Error starting HTTP server", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"log/slog"
	"os"
	"slices"

	"github.com/adaricorp/mac-eui64/eui64"

	"golang.org/x/exp/maps"

	"github.com/danjacques/gofslock/fslock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"gopkg.in/yaml.v2"
)

func loadConfig(path string) (YamlConfig, error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		return YamlConfig{}, errors.Wrapf(err, "Couldn't open hosts file %s", path)
	}

	config := YamlConfig{}
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return YamlConfig{}, errors.Wrapf(err, "Couldn't parse hosts file %s", path)
	}

	if len(config.Hosts) == 0 {
		return YamlConfig{}, errors.Errorf("No hosts defined in %s", path)
	}

	return config, nil
}

func batchTable(config YamlConfig) (table.Writer, error) {
	p, err := parsePrefix(config.Prefix)
	if err != nil {
		return nil, err
	}

	title := "EUI-64"
	if config.Ipv6 {
		title = "Modified EUI-64"
	}

	header := table.Row{"Host", "MAC", title, "Link-local"}
	if p.IsValid() {
		header = append(header, "Address")
	}
	t := newTable("Hosts", header)

	// Rows are ordered by host name
	names := maps.Keys(config.Hosts)
	slices.Sort(names)

	invalidHosts := 0
	for _, name := range names {
		addr := config.Hosts[name]

		result, ok := eui64.Describe(addr)
		if !ok {
			slog.Warn("Skipping host with invalid MAC address", "host", name, "mac", addr)
			invalidHosts++
			t.AppendRow(table.Row{name, addr, invalid})
			continue
		}

		row := table.Row{name, result.Mac, result.Selected(config.Ipv6), result.LinkLocal}
		if p.IsValid() {
			ip, _ := eui64.Address(p, addr)
			row = append(row, ip.String())
		}
		t.AppendRow(row)
	}

	if invalidHosts > 0 {
		slog.Warn("Some hosts were not converted", "invalid", invalidHosts, "total", len(names))
	}

	return t, nil
}

// Write the table as CSV while holding <path>.lock
func writeCsv(t table.Writer, path string) error {
	lockPath := path + ".lock"
	lock, err := fslock.Lock(lockPath)
	if err != nil {
		return errors.Wrapf(
			err,
			"Error acquiring exclusive lock %s, is another batch writing %s?",
			lockPath,
			path,
		)
	}
	// nolint:errcheck
	defer lock.Unlock()

	if err := os.WriteFile(path, []byte(t.RenderCSV()+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, "Couldn't write %s", path)
	}

	return nil
}

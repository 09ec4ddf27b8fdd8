package main

import (
	"log/slog"
	"net/netip"
	"os"

	"github.com/adaricorp/mac-eui64/eui64"
	"github.com/adaricorp/mac-eui64/mac"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

const invalid = "invalid"

func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(header)
	t.SetStyle(table.StyleLight)

	return t
}

func printTable(t table.Writer) {
	t.SetOutputMirror(os.Stdout)
	t.Render()
}

// Parse an optional SLAAC prefix, an empty string yields the zero prefix
func parsePrefix(s string) (netip.Prefix, error) {
	if s == "" {
		return netip.Prefix{}, nil
	}

	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, errors.Wrapf(err, "Can't parse prefix %s", s)
	}

	if !p.Addr().Is6() || p.Bits() > 64 {
		return netip.Prefix{}, errors.Errorf(
			"Prefix %s must be an IPv6 prefix of /64 or shorter",
			p,
		)
	}

	return p.Masked(), nil
}

func validateTable(macs []string) table.Writer {
	t := newTable("MAC validation", table.Row{"MAC", "Valid"})
	for _, addr := range macs {
		t.AppendRow(table.Row{addr, mac.IsValid(addr)})
	}

	return t
}

func splitTable(macs []string) table.Writer {
	t := newTable(
		"MAC octets",
		table.Row{"MAC", "Octet", "Octet", "Octet", "Octet", "Octet", "Octet"},
	)
	for _, addr := range macs {
		octets, ok := mac.Split(addr)
		if !ok {
			slog.Warn("Invalid MAC address", "mac", addr)
			t.AppendRow(table.Row{addr, invalid})
			continue
		}

		row := table.Row{addr}
		for _, octet := range octets {
			row = append(row, octet)
		}
		t.AppendRow(row)
	}

	return t
}

func convertTable(macs []string, ipv6 bool) table.Writer {
	title := "EUI-64"
	if ipv6 {
		title = "Modified EUI-64"
	}

	t := newTable(title, table.Row{"MAC", "EUI-64", "IPv6 format"})
	for _, addr := range macs {
		eui, ok := eui64.Convert(addr, ipv6)
		if !ok {
			slog.Warn("Invalid MAC address", "mac", addr)
			t.AppendRow(table.Row{addr, invalid, ""})
			continue
		}
		t.AppendRow(table.Row{addr, eui, eui64.Ipv6Format(eui)})
	}

	return t
}

func linkLocalTable(macs []string, prefixString string) (table.Writer, error) {
	p, err := parsePrefix(prefixString)
	if err != nil {
		return nil, err
	}

	header := table.Row{"MAC", "Modified EUI-64", "Link-local"}
	if p.IsValid() {
		header = append(header, "Address")
	}

	t := newTable("IPv6 link-local addresses", header)
	for _, addr := range macs {
		result, ok := eui64.Describe(addr)
		if !ok {
			slog.Warn("Invalid MAC address", "mac", addr)
			t.AppendRow(table.Row{addr, invalid})
			continue
		}

		row := table.Row{addr, result.ModifiedEui64, result.LinkLocal}
		if p.IsValid() {
			ip, _ := eui64.Address(p, addr)
			row = append(row, ip.String())
		}
		t.AppendRow(row)
	}

	return t, nil
}

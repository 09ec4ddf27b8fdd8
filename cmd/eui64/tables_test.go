package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTable(t *testing.T) {
	csv := validateTable([]string{"aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee"}).RenderCSV()

	assert.Contains(t, csv, "aa:bb:cc:dd:ee:ff,true")
	assert.Contains(t, csv, "aa:bb:cc:dd:ee,false")
}

func TestSplitTable(t *testing.T) {
	csv := splitTable([]string{"01-23-45-56-78-9A", "01_23_45_56_78_9a"}).RenderCSV()

	assert.Contains(t, csv, "01-23-45-56-78-9A,01,23,45,56,78,9A")
	assert.Contains(t, csv, "01_23_45_56_78_9a,invalid")
}

func TestConvertTable(t *testing.T) {
	macs := []string{"aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:GG"}

	standard := convertTable(macs, false).RenderCSV()
	assert.Contains(t, standard, "aa:bb:cc:dd:ee:ff,aa:bb:cc:ff:fe:dd:ee:ff,aabb:ccff:fedd:eeff")
	assert.Contains(t, standard, "AA:BB:CC:DD:EE:GG,invalid")

	modified := convertTable(macs, true).RenderCSV()
	assert.Contains(t, modified, "aa:bb:cc:dd:ee:ff,a8:bb:cc:ff:fe:dd:ee:ff,a8bb:ccff:fedd:eeff")
}

func TestLinkLocalTable(t *testing.T) {
	tbl, err := linkLocalTable([]string{"00:12:7f:eb:6b:40"}, "")
	require.NoError(t, err)
	assert.Contains(t, tbl.RenderCSV(), "00:12:7f:eb:6b:40,02:12:7f:ff:fe:eb:6b:40,fe80::0212:7fff:feeb:6b40")

	tbl, err = linkLocalTable([]string{"00:12:7f:eb:6b:40"}, "2001:db8::1/64")
	require.NoError(t, err)
	assert.Contains(t, tbl.RenderCSV(), "fe80::0212:7fff:feeb:6b40,2001:db8::212:7fff:feeb:6b40")

	_, err = linkLocalTable([]string{"00:12:7f:eb:6b:40"}, "2001:db8::/65")
	assert.ErrorContains(t, err, "must be an IPv6 prefix of /64 or shorter")
}

func TestParsePrefix(t *testing.T) {
	p, err := parsePrefix("")
	require.NoError(t, err)
	assert.False(t, p.IsValid())

	p, err = parsePrefix("2001:db8:0:1:ffff::/64")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8:0:1::/64", p.String())

	_, err = parsePrefix("2001:db8::")
	assert.ErrorContains(t, err, "Can't parse prefix")
}

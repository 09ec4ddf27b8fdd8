package eui64

import "github.com/adaricorp/mac-eui64/mac"

type Result struct {
	Mac                 string `json:"mac"`
	Eui64               string `json:"eui64"`
	ModifiedEui64       string `json:"modified_eui64"`
	LinkLocal           string `json:"link_local"`
	LocallyAdministered bool   `json:"locally_administered"`
}

// Describe collects both EUI-64 variants of addr. The link-local address is
// built from the modified EUI-64.
func Describe(addr string) (Result, bool) {
	hw, err := mac.Parse(addr)
	if err != nil {
		return Result{}, false
	}

	standard, _ := FromHardwareAddr(hw, false)
	modified, _ := FromHardwareAddr(hw, true)

	return Result{
		Mac:                 hw.String(),
		Eui64:               standard.String(),
		ModifiedEui64:       modified.String(),
		LinkLocal:           LinkLocal(modified.String()),
		LocallyAdministered: mac.IsLocallyAdministered(hw),
	}, true
}

// Selected returns the EUI-64 variant for the requested mode.
func (r Result) Selected(ipv6 bool) string {
	if ipv6 {
		return r.ModifiedEui64
	}
	return r.Eui64
}

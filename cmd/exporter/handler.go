package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adaricorp/mac-eui64/eui64"
	"github.com/adaricorp/mac-eui64/mac"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Describe's result plus the variant selected with ipv6
type convertResponse struct {
	eui64.Result
	Ipv6              bool   `json:"ipv6"`
	SelectedEui64     string `json:"selected_eui64"`
	Ipv6Format        string `json:"ipv6_format"`
	SelectedLinkLocal string `json:"selected_link_local"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Serves GET /convert?mac=<MAC>&ipv6=<bool>
type convertHandler struct {
	logger  log.Logger
	metrics *conversionMetrics
}

func (h *convertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, http.StatusMethodNotAllowed, errors.Errorf("Method %s not allowed", r.Method))
		return
	}

	query := r.URL.Query()
	addr := query.Get("mac")

	ipv6 := false
	if v := query.Get("ipv6"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.Wrapf(err, "Invalid ipv6 parameter %q", v))
			return
		}
		ipv6 = parsed
	}

	result, ok := eui64.Describe(addr)
	h.metrics.observe(ipv6, ok)
	if !ok {
		h.writeError(w, http.StatusBadRequest, errors.Wrapf(mac.ErrInvalidMac, "%q", addr))
		return
	}

	eui := result.Selected(ipv6)

	// nolint:errcheck
	level.Debug(h.logger).Log("msg", "Converted MAC address", "mac", addr, "ipv6", ipv6, "eui64", eui)

	h.writeJSON(w, http.StatusOK, convertResponse{
		Result:            result,
		Ipv6:              ipv6,
		SelectedEui64:     eui,
		Ipv6Format:        eui64.Ipv6Format(eui),
		SelectedLinkLocal: eui64.LinkLocal(eui),
	})
}

func (h *convertHandler) writeError(w http.ResponseWriter, status int, err error) {
	// nolint:errcheck
	level.Debug(h.logger).Log("msg", "Rejected conversion request", "err", err)

	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *convertHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// nolint:errcheck
		level.Error(h.logger).Log("msg", "Error writing response", "err", err)
	}
}

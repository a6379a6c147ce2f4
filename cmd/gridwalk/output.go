package main

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgrid/grid"
)

// printJSON outputs v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseCoordinate reads "c0,c1,..." into components.
func parseCoordinate(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// addressFailure reports err on the structured log when it is a lookup failure
// and returns it unchanged.
func (o *RootOptions) addressFailure(err error) error {
	var ae *grid.AddressError
	if errors.As(err, &ae) {
		o.log().Error("lookup failed", "addr", ae)
	}

	return err
}

package main

import (
	"io"

	"github.com/Pranav210905/fin/internal/seed"
	"gopkg.in/yaml.v3"
)

func writeSeed(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seed.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/saronic-technologies/socketcan-go/can"
)

// config describes the optional filter file:
//
//	filters:
//	  - id: 0x123
//	    mask: 0x7FF
//	  - id: 0x1ABCDEFF
//	    extended: true
//	err_mask: 0x1FFFFFFF
type config struct {
	Filters []filterConf `yaml:"filters"`
	ErrMask uint32       `yaml:"err_mask"`
}

type filterConf struct {
	ID       uint32 `yaml:"id"`
	Mask     uint32 `yaml:"mask"`
	Extended bool   `yaml:"extended"`
	Invert   bool   `yaml:"invert"`
}

// loadConfig loads the filter configuration file at path.
func loadConfig(path string) (config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read configuration file %s: %w", path, err)
	}

	var conf config

	if err = yaml.Unmarshal(contents, &conf); err != nil {
		return config{}, fmt.Errorf("unmarshal configuration contents: %w", err)
	}

	return conf, nil
}

// kernelFilters converts the configured entries to kernel acceptance
// filters. A zero mask defaults to the full mask of the entry's format.
func (c config) kernelFilters() []can.Filter {
	filters := make([]can.Filter, 0, len(c.Filters))

	for _, fc := range c.Filters {
		mask := fc.Mask
		if mask == 0 {
			if fc.Extended {
				mask = can.EFFMask
			} else {
				mask = can.SFFMask
			}
		}
		id := fc.ID
		if fc.Invert {
			id |= can.InvFilter
		}
		filters = append(filters, can.Filter{ID: id, Mask: mask})
	}

	return filters
}

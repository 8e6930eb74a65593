// Package config loads the key set for a dissection Descriptor and the
// driver Flags from a small JSON document, so a deployment can pick
// which keys it cares about without a recompile.
package config

import (
	"fmt"

	jsp "github.com/buger/jsonparser"
	"github.com/spf13/cast"

	"github.com/flowdissect/flowdissect/dissect"
	fjson "github.com/flowdissect/flowdissect/json"
)

// Config is the parsed, caller-facing result: the key ids to register
// (Descriptor builds the Descriptor from them) plus the driver Flags to
// pass to every Dissect call.
type Config struct {
	Keys  []dissect.KeyId
	Flags dissect.Flags
}

var flagNames = map[string]dissect.Flags{
	"PARSE_1ST_FRAG":     dissect.PARSE_1ST_FRAG,
	"STOP_AT_L3":         dissect.STOP_AT_L3,
	"STOP_AT_FLOW_LABEL": dissect.STOP_AT_FLOW_LABEL,
	"STOP_AT_ENCAP":      dissect.STOP_AT_ENCAP,
}

// Load parses a JSON document of the shape:
//
//	{"keys": ["PORTS", "ICMP", "VLAN"], "flags": ["PARSE_1ST_FRAG"]}
//
// Both "keys" and "flags" tolerate a bit of looseness: a single string
// instead of an array, or (for "flags") a bare integer bitmask instead
// of names -- decodeStringList accepts either string shape, and
// cast.ToUint8 narrows the bitmask.
func Load(data []byte) (Config, error) {
	var cfg Config

	keysVal, keysType, _, err := jsp.Get(data, "keys")
	switch {
	case err == jsp.KeyPathNotFoundError:
		// no "keys": caller only wants CONTROL/BASIC.
	case err != nil:
		return cfg, fmt.Errorf("config: reading \"keys\": %w", err)
	default:
		names, err := decodeStringList(keysVal, keysType)
		if err != nil {
			return cfg, fmt.Errorf("config: decoding \"keys\": %w", err)
		}
		for _, name := range names {
			k, err := dissect.KeyIdString(name)
			if err != nil {
				return cfg, fmt.Errorf("config: key %q: %w", name, err)
			}
			cfg.Keys = append(cfg.Keys, k)
		}
	}

	flagsVal, flagsType, _, err := jsp.Get(data, "flags")
	switch {
	case err == jsp.KeyPathNotFoundError:
	case err != nil:
		return cfg, fmt.Errorf("config: reading \"flags\": %w", err)
	case flagsType == jsp.Number:
		n, err := jsp.ParseInt(flagsVal)
		if err != nil {
			return cfg, fmt.Errorf("config: decoding \"flags\" bitmask: %w", err)
		}
		cfg.Flags = dissect.Flags(cast.ToUint8(n))
	default:
		names, err := decodeStringList(flagsVal, flagsType)
		if err != nil {
			return cfg, fmt.Errorf("config: decoding \"flags\": %w", err)
		}
		for _, name := range names {
			f, ok := flagNames[name]
			if !ok {
				return cfg, fmt.Errorf("config: unknown flag %q", name)
			}
			cfg.Flags |= f
		}
	}

	return cfg, nil
}

// Descriptor builds the Descriptor this Config describes.
func (c Config) Descriptor() (*dissect.Descriptor, error) {
	return dissect.NewDescriptor(dissect.DefaultKeys(c.Keys...))
}

func decodeStringList(val []byte, typ jsp.ValueType) ([]string, error) {
	if typ == jsp.String {
		return []string{fjson.SQ(val)}, nil
	}

	var out []string
	err := fjson.ArrayEach(val, func(v []byte) error {
		out = append(out, fjson.SQ(v))
		return nil
	})
	return out, err
}

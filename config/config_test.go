package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowdissect/flowdissect/dissect"
)

func TestLoad_KeysAndFlags(t *testing.T) {
	data := []byte(`{"keys": ["PORTS", "ICMP", "VLAN"], "flags": ["PARSE_1ST_FRAG"]}`)

	cfg, err := Load(data)
	require.NoError(t, err)
	require.ElementsMatch(t, []dissect.KeyId{dissect.KEY_PORTS, dissect.KEY_ICMP, dissect.KEY_VLAN}, cfg.Keys)
	require.Equal(t, dissect.PARSE_1ST_FRAG, cfg.Flags)
}

func TestLoad_FlagsAsBitmask(t *testing.T) {
	data := []byte(`{"flags": 3}`)

	cfg, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, dissect.PARSE_1ST_FRAG|dissect.STOP_AT_L3, cfg.Flags)
}

func TestLoad_SingleStringKey(t *testing.T) {
	data := []byte(`{"keys": "PORTS"}`)

	cfg, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, []dissect.KeyId{dissect.KEY_PORTS}, cfg.Keys)
}

func TestLoad_NoKeysOrFlags(t *testing.T) {
	cfg, err := Load([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, cfg.Keys)
	require.Zero(t, cfg.Flags)
}

func TestLoad_UnknownKeyName(t *testing.T) {
	_, err := Load([]byte(`{"keys": ["NOT_A_KEY"]}`))
	require.Error(t, err)
}

func TestLoad_UnknownFlagName(t *testing.T) {
	_, err := Load([]byte(`{"flags": ["NOT_A_FLAG"]}`))
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{"keys": [`))
	require.Error(t, err)
}

func TestConfig_Descriptor(t *testing.T) {
	cfg := Config{Keys: []dissect.KeyId{dissect.KEY_PORTS}}
	desc, err := cfg.Descriptor()
	require.NoError(t, err)
	require.True(t, desc.Uses(dissect.KEY_PORTS))
	require.True(t, desc.Uses(dissect.KEY_CONTROL))
	require.False(t, desc.Uses(dissect.KEY_VLAN))
}

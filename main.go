/*
 * a basic example for flowdissect usage: reads length-prefixed raw
 * Ethernet frames from stdin, dissects each one, and prints its flow
 * hash plus the RX queue it would have steered to.
 */
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/flowdissect/flowdissect/config"
	"github.com/flowdissect/flowdissect/dissect"
	"github.com/flowdissect/flowdissect/flowhash"
	"github.com/flowdissect/flowdissect/steer"
)

var (
	opt_config = flag.String("config", "", "JSON config file selecting keys/flags (default: a practical subset)")
	opt_queues = flag.Uint("queues", 8, "number of simulated RX queues")
	opt_quiet  = flag.Bool("quiet", false, "do not print a line per frame")
)

func main() {
	flag.Parse()

	cfg := defaultConfig()
	if *opt_config != "" {
		data, err := os.ReadFile(*opt_config)
		if err != nil {
			log.Fatal().Err(err).Str("file", *opt_config).Msg("could not read config")
		}
		cfg, err = config.Load(data)
		if err != nil {
			log.Fatal().Err(err).Msg("could not parse config")
		}
	}

	desc, err := cfg.Descriptor()
	if err != nil {
		log.Fatal().Err(err).Msg("could not build descriptor")
	}

	st := steer.New(uint32(*opt_queues))
	st.Logger = &log.Logger

	n, err := dissectStream(os.Stdin, desc, cfg.Flags, st)
	if err != nil && err != io.EOF {
		log.Fatal().Err(err).Msg("stream ended early")
	}

	fmt.Fprintf(os.Stderr, "dissected %d frames across %d queues\n", n, *opt_queues)
	for q := uint32(0); q < uint32(*opt_queues); q++ {
		fmt.Fprintf(os.Stderr, "  queue %d: %d\n", q, st.Count(q))
	}
}

// defaultConfig is used when -config is not given: a practical subset
// covering the common L3/L4 identification fields.
func defaultConfig() config.Config {
	return config.Config{
		Keys: []dissect.KeyId{
			dissect.KEY_IPV4_ADDRS,
			dissect.KEY_IPV6_ADDRS,
			dissect.KEY_PORTS,
			dissect.KEY_ICMP,
			dissect.KEY_IP,
			dissect.KEY_VLAN,
		},
	}
}

// dissectStream reads 4-byte-length-prefixed Ethernet frames from r
// until EOF, dissecting and steering each one.
func dissectStream(r io.Reader, desc *dissect.Descriptor, flags dissect.Flags, st *steer.Steerer) (int, error) {
	var lenbuf [4]byte
	var n int

	for {
		if _, err := io.ReadFull(r, lenbuf[:]); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}

		flen := binary.BigEndian.Uint32(lenbuf[:])
		frame := make([]byte, flen)
		if _, err := io.ReadFull(r, frame); err != nil {
			return n, err
		}

		proto, ok := etherType(frame)
		if !ok {
			n++
			continue
		}

		var fk dissect.FlowKeys
		ok = dissect.Dissect(desc, &fk, frame, proto, 14, uint16(len(frame)), flags)
		hash := flowhash.FromKeys(&fk)
		queue, _ := st.Queue(frame, proto, 14, uint16(len(frame)))

		n++
		if !*opt_quiet {
			printFrame(n, ok, hash, queue, &fk)
		}
	}
}

// etherType reads the EtherType field of an untagged Ethernet frame
// (bytes 12-13, right after the two MAC addresses).
func etherType(frame []byte) (uint16, bool) {
	if len(frame) < 14 {
		return 0, false
	}
	return binary.BigEndian.Uint16(frame[12:14]), true
}

func printFrame(n int, ok bool, hash uint32, queue uint32, fk *dissect.FlowKeys) {
	fmt.Printf("#%d ok=%v hash=%08x queue=%d nproto=%04x ipproto=%d\n",
		n, ok, hash, queue, fk.Basic.NProto, fk.Basic.IPProto)
}

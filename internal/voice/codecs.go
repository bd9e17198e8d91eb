package voice

import (
	"fmt"
	"strconv"
	"strings"
)

// Codec is an audio codec the device may advertise.
type Codec struct {
	Name        string
	PayloadType uint8
	ClockRate   int
	Channels    int
}

var (
	CodecOpus = Codec{Name: "opus", PayloadType: 111, ClockRate: 48000, Channels: 2}
	CodecPCMU = Codec{Name: "PCMU", PayloadType: 0, ClockRate: 8000, Channels: 1}
	CodecPCMA = Codec{Name: "PCMA", PayloadType: 8, ClockRate: 8000, Channels: 1}
	// G.722 is signalled with an 8000 clock rate per RFC 3551.
	CodecG722 = Codec{Name: "G722", PayloadType: 9, ClockRate: 8000, Channels: 1}
)

var knownCodecs = map[string]Codec{
	"opus": CodecOpus,
	"pcmu": CodecPCMU,
	"pcma": CodecPCMA,
	"g722": CodecG722,
}

// String renders the codec as name/rate[/channels], the form used in SDP
// rtpmap lines and baresip audio_codecs.
func (c Codec) String() string {
	s := c.Name + "/" + strconv.Itoa(c.ClockRate)
	if c.Channels > 1 {
		s += "/" + strconv.Itoa(c.Channels)
	}
	return s
}

// ParseCodecPreferences resolves codec names, most preferred first.
// Names are case-insensitive; duplicates keep their first position.
func ParseCodecPreferences(names []string) ([]Codec, error) {
	codecs := make([]Codec, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		codec, ok := knownCodecs[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
		}
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		codecs = append(codecs, codec)
	}

	if len(codecs) == 0 {
		return nil, ErrNoCodecs
	}

	return codecs, nil
}

// CodecList joins codecs with commas, e.g. "opus/48000/2,PCMU/8000".
func CodecList(codecs []Codec) string {
	parts := make([]string, len(codecs))
	for i, c := range codecs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

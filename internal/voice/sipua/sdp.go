package sipua

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-dialer/internal/voice"
)

// buildSDPOffer renders an audio-only offer whose format list follows the
// codec preference order.
func buildSDPOffer(host string, rtpPort int, codecs []voice.Codec, sessionID int64) []byte {
	formats := make([]string, len(codecs))
	for i, c := range codecs {
		formats[i] = strconv.Itoa(int(c.PayloadType))
	}

	var b strings.Builder
	b.WriteString("v=0\r\n")
	fmt.Fprintf(&b, "o=- %d %d IN IP4 %s\r\n", sessionID, sessionID, host)
	b.WriteString("s=go-dialer\r\n")
	fmt.Fprintf(&b, "c=IN IP4 %s\r\n", host)
	b.WriteString("t=0 0\r\n")
	fmt.Fprintf(&b, "m=audio %d RTP/AVP %s\r\n", rtpPort, strings.Join(formats, " "))
	for _, c := range codecs {
		fmt.Fprintf(&b, "a=rtpmap:%d %s\r\n", c.PayloadType, c.String())
	}
	b.WriteString("a=ptime:20\r\n")
	b.WriteString("a=sendrecv\r\n")

	return []byte(b.String())
}

// destinationURI turns a dialed string into a SIP URI. Bare numbers are
// placed in domain.
func destinationURI(to, domain string) string {
	switch {
	case strings.HasPrefix(to, "sip:"), strings.HasPrefix(to, "sips:"):
		return to
	case strings.Contains(to, "@"):
		return "sip:" + to
	default:
		return "sip:" + to + "@" + domain
	}
}

// Package probe answers the single question the pipeline asks before
// running a network-bound strategy: is the remote endpoint reachable
// right now.
package probe

import (
	"net"
	"net/url"
	"time"
)

const dialTimeout = 2 * time.Second

// DialProbe checks reachability by opening a TCP connection to one host.
type DialProbe struct {
	address string
	timeout time.Duration
}

// NewDialProbe builds a probe against the host of the given endpoint URL.
// Missing ports default from the scheme.
func NewDialProbe(endpoint string) *DialProbe {
	address := "1.1.1.1:443"
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		host := u.Host
		if u.Port() == "" {
			switch u.Scheme {
			case "http":
				host = net.JoinHostPort(u.Hostname(), "80")
			default:
				host = net.JoinHostPort(u.Hostname(), "443")
			}
		}
		address = host
	}
	return &DialProbe{address: address, timeout: dialTimeout}
}

func (p *DialProbe) IsAvailable() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Always reports a fixed availability. Used in tests and by the CLI's
// offline flag.
type Always bool

func (a Always) IsAvailable() bool { return bool(a) }

package device

import (
	"net"
	"strconv"
	"strings"
)

// DefaultPort is the TCP port the plug listens on. It is appended to
// any address string that does not carry its own port.
const DefaultPort = "9999"

// Address is the normalized network location of a plug. Normalization
// happens once at construction; the value is immutable afterwards.
type Address struct {
	Host string
	Port string
}

// ParseAddress normalizes a host[:port] string. A missing port gets
// DefaultPort; a missing host is an error, as is a non-numeric or
// out-of-range port. IPv6 literals must be bracketed when a port is
// given ("[fe80::1]:9999").
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, NewMissingAddressError("plug host address is not provided")
	}

	host, port := s, DefaultPort
	if strings.Contains(s, ":") {
		if h, p, err := net.SplitHostPort(s); err == nil {
			host, port = h, p
		} else if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			// Bracketed IPv6 literal without a port
			host = s[1 : len(s)-1]
		} else {
			return Address{}, NewAddressParseError("failed to parse plug address "+strconv.Quote(s), err)
		}
	}

	if host == "" {
		return Address{}, NewMissingAddressError("plug host address is not provided")
	}
	if port == "" {
		return Address{}, NewMissingAddressError("plug network port is not provided")
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return Address{}, NewAddressParseError("invalid plug port "+strconv.Quote(port), nil)
	}

	return Address{Host: host, Port: port}, nil
}

// String returns the dialable host:port form of the address.
func (a Address) String() string {
	return net.JoinHostPort(a.Host, a.Port)
}

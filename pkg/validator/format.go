package validator

import (
	"fmt"
	"maps"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Format names a well-known string format.
type Format string

const (
	FormatEmail        Format = "email"
	FormatURL          Format = "url"
	FormatUUID         Format = "uuid"
	FormatIP           Format = "ip"
	FormatIPv4         Format = "ipv4"
	FormatIPv6         Format = "ipv6"
	FormatMAC          Format = "mac"
	FormatPhone        Format = "phone"
	FormatHostname     Format = "hostname"
	FormatSlug         Format = "slug"
	FormatAlpha        Format = "alpha"
	FormatAlphanumeric Format = "alphanumeric"
	FormatDigits       Format = "digits"
	FormatHex          Format = "hex"
	FormatBase64       Format = "base64"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
	hexRegex          = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	base64Regex       = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

var formats = map[Format]func(string) bool{
	FormatEmail: isEmail,
	FormatURL:   isURL,
	FormatUUID: func(s string) bool {
		// uuid.Parse also takes URN and braced forms; only the canonical one is a format match.
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	},
	FormatIP: func(s string) bool { return net.ParseIP(s) != nil },
	FormatIPv4: func(s string) bool {
		ip := net.ParseIP(s)
		return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
	},
	FormatIPv6: func(s string) bool {
		return net.ParseIP(s) != nil && strings.Contains(s, ":")
	},
	FormatMAC: func(s string) bool {
		_, err := net.ParseMAC(s)
		return err == nil
	},
	FormatPhone: func(s string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	},
	FormatHostname:     isHostname,
	FormatSlug:         slugRegex.MatchString,
	FormatAlpha:        alphaRegex.MatchString,
	FormatAlphanumeric: alphanumericRegex.MatchString,
	FormatDigits:       digitsRegex.MatchString,
	FormatHex:          hexRegex.MatchString,
	FormatBase64: func(s string) bool {
		return s != "" && len(s)%4 == 0 && base64Regex.MatchString(s)
	},
}

// Formats lists the supported format names in sorted order.
func Formats() []Format {
	return slices.Sorted(maps.Keys(formats))
}

// FormatCheck accepts strings in a named format such as "email" or "uuid".
type FormatCheck struct {
	format Format
	match  func(string) bool
}

// NewFormat builds a format check. Unknown names are configuration errors.
func NewFormat(name string) (*FormatCheck, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: format check needs a format name", ErrMissingParameter)
	}
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	match, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidParameter, name)
	}
	return &FormatCheck{format: f, match: match}, nil
}

// MatchFormat is NewFormat for the Format constants. It panics on an
// unknown format.
func MatchFormat(f Format) *FormatCheck {
	c, err := NewFormat(string(f))
	if err != nil {
		panic(err)
	}
	return c
}

// Format returns the format name.
func (c *FormatCheck) Format() Format { return c.format }

func (c *FormatCheck) String() string { return "format(" + string(c.format) + ")" }

func (c *FormatCheck) Check(value any) error {
	s, ok := value.(string)
	if !ok {
		return &TypeMismatchError{Expected: string(TagString), Actual: typeName(value)}
	}
	if strings.TrimSpace(s) == "" || !c.match(s) {
		return &FormatMismatchError{Format: c.format, Actual: s}
	}
	return nil
}

func (c *FormatCheck) requires() category { return catString }

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// isHostname accepts dotted names of at most 253 bytes with labels of 1 to
// 63 letters, digits or inner hyphens and an alphabetic top-level label.
func isHostname(s string) bool {
	if len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for i, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !isASCIILetter(r) && !(r >= '0' && r <= '9') && r != '-' {
				return false
			}
		}
		if i == len(labels)-1 {
			if len(label) < 2 {
				return false
			}
			for _, r := range label {
				if !isASCIILetter(r) {
					return false
				}
			}
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

package imaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Offset is a position along one axis given either as a pixel count or as a
// string token such as "center". Each operation resolves tokens with its own
// table; see Crop and Watermark.
//
// In JSON an Offset is a number (pixels) or a string (token).
type Offset struct {
	px      int
	token   string
	isToken bool
}

// Pixels returns an integer offset.
func Pixels(n int) Offset {
	return Offset{px: n}
}

// Token returns a string offset. Strings that are not one of the resolving
// operation's symbolic names are read as an integer prefix, so "12px" is 12
// and "abc" is 0.
func Token(s string) Offset {
	return Offset{token: s, isToken: true}
}

// IsToken reports whether the offset was given as a string.
func (o Offset) IsToken() bool {
	return o.isToken
}

func (o Offset) String() string {
	if o.isToken {
		return strconv.Quote(o.token)
	}
	return strconv.Itoa(o.px)
}

// MarshalJSON implements json.Marshaler.
func (o Offset) MarshalJSON() ([]byte, error) {
	if o.isToken {
		return json.Marshal(o.token)
	}
	return json.Marshal(o.px)
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to Pixels(0).
func (o *Offset) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = Pixels(0)
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Token(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("offset must be a number or a string: %w", err)
	}
	*o = Pixels(int(f))
	return nil
}

// resolve turns the offset into a pixel position. Tokens found in edges map
// to their value, other tokens are parsed as integers, and pixel offsets are
// passed through fromPixels.
func (o Offset) resolve(edges map[string]int, fromPixels func(int) int) int {
	if !o.isToken {
		return fromPixels(o.px)
	}
	if v, ok := edges[o.token]; ok {
		return v
	}
	return parseIntPrefix(o.token)
}

// parseIntPrefix reads an optional sign and the leading digits of s,
// skipping leading whitespace. It returns 0 when there are no digits.
func parseIntPrefix(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow
		if s[0] == '-' {
			return -int(^uint(0)>>1) - 1
		}
		return int(^uint(0) >> 1)
	}
	return n
}

func identity(n int) int { return n }

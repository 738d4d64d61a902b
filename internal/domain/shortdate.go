package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const shortDateAlphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"~`!@#$%^&*()-_=+[{]}\\|;:'\",<.>"

// ShortDateEpoch is the origin of short date codes.
var ShortDateEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ShortDateCodec converts between times and the compact codes printed on
// goods: a base-Scale number of Unit steps since ShortDateEpoch.
type ShortDateCodec struct {
	Scale int
	Unit  time.Duration
}

// ManufacturedDateCodec decodes the manufactured date of order items.
var ManufacturedDateCodec = ShortDateCodec{Scale: 92, Unit: time.Hour}

var errShortDateOverflow = errors.New("short date overflows")

func (c ShortDateCodec) alphabet() string {
	scale := min(c.Scale, len(shortDateAlphabet))
	return shortDateAlphabet[:scale]
}

// Decode parses code. Unknown characters and overflowing values are errors.
func (c ShortDateCodec) Decode(code string) (time.Time, error) {
	if code == "" {
		return time.Time{}, errors.New("empty short date")
	}
	chars := c.alphabet()
	scale := int64(len(chars))
	maxSteps := int64(math.MaxInt64 / int64(c.Unit))

	var steps int64
	for _, r := range code {
		digit := strings.IndexRune(chars, r)
		if digit < 0 {
			return time.Time{}, fmt.Errorf("short date %q: invalid character %q", code, r)
		}
		if steps > (maxSteps-int64(digit))/scale {
			return time.Time{}, fmt.Errorf("short date %q: %w", code, errShortDateOverflow)
		}
		steps = steps*scale + int64(digit)
	}
	return ShortDateEpoch.Add(time.Duration(steps) * c.Unit), nil
}

// Encode formats t, truncated to the codec unit. Times before the epoch
// encode as "0".
func (c ShortDateCodec) Encode(t time.Time) string {
	chars := c.alphabet()
	scale := int64(len(chars))
	steps := int64(t.Sub(ShortDateEpoch) / c.Unit)
	if steps <= 0 {
		return chars[:1]
	}

	var buf []byte
	for steps > 0 {
		buf = append(buf, chars[steps%scale])
		steps /= scale
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

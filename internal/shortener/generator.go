package shortener

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jaevor/go-nanoid"
)

// CodeGenerator generates short codes.
type CodeGenerator func() string

// Generator names accepted by NewGenerator.
const (
	GeneratorBase36 = "base36"
	GeneratorNanoid = "nanoid"
)

var ErrUnknownGenerator = errors.New("unknown slug generator")

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// legacyOffset is where the slug starts inside the "0.xxxx" rendering.
	legacyOffset = 6
)

// NewGenerator builds the generator registered under name.
// length only applies to the nanoid generator.
func NewGenerator(name string, length int) (CodeGenerator, error) {
	switch name {
	case "", GeneratorBase36:
		return Base36(rand.Float64), nil
	case GeneratorNanoid:
		return Nanoid(length)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Base36 renders a random fraction as "0.<digits>" in base 36 and keeps everything
// after the sixth character. The result is neither collision checked nor guaranteed
// to be non-empty.
func Base36(random func() float64) CodeGenerator {
	return func() string {
		rendered := formatFraction36(random())
		if len(rendered) <= legacyOffset {
			return ""
		}

		return rendered[legacyOffset:]
	}
}

// formatFraction36 renders f in [0, 1) in base 36 with the shortest digit string
// that still identifies f, rounding the last digit half to even. This is the
// rendering browsers use for Number.prototype.toString(36).
func formatFraction36(f float64) string {
	integer := math.Floor(f)
	fraction := f - integer

	// Digits below half the gap to the next double carry no information.
	delta := math.Max(0.5*(math.Nextafter(f, math.Inf(1))-f), math.SmallestNonzeroFloat64)

	var digits []int

	for fraction >= delta {
		fraction *= 36
		delta *= 36

		d := int(fraction)
		digits = append(digits, d)
		fraction -= float64(d)

		if fraction > 0.5 || (fraction == 0.5 && d&1 == 1) {
			if fraction+delta > 1 {
				digits, integer = roundUp36(digits, integer)

				break
			}
		}
	}

	var b strings.Builder

	b.WriteString(strconv.FormatInt(int64(integer), 10))

	if len(digits) > 0 {
		b.WriteByte('.')

		for _, d := range digits {
			b.WriteByte(base36Alphabet[d])
		}
	}

	return b.String()
}

// roundUp36 adds one unit in the last place, dropping digits that overflow and
// carrying into the integer part when every digit does.
func roundUp36(digits []int, integer float64) ([]int, float64) {
	for len(digits) > 0 {
		last := digits[len(digits)-1]
		digits = digits[:len(digits)-1]

		if last+1 < 36 {
			return append(digits, last+1), integer
		}
	}

	return digits, integer + 1
}

// Nanoid returns a fixed-length generator over the nanoid URL-safe alphabet.
func Nanoid(length int) (CodeGenerator, error) {
	gen, err := nanoid.Standard(length)
	if err != nil {
		return nil, fmt.Errorf("nanoid generator: %w", err)
	}

	return gen, nil
}

// Compose joins the display domain and the slug.
func Compose(baseDomain, slug string) string {
	return baseDomain + slug
}

package isbn

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// Entropy supplies uniformly distributed decimal digits.
type Entropy interface {
	// Digit returns a value in [0,9].
	Digit() (int, error)
}

// EntropyFunc adapts a function to Entropy.
type EntropyFunc func() (int, error)

// Digit calls f.
func (f EntropyFunc) Digit() (int, error) { return f() }

// Entropy source names accepted by ParseEntropy.
const (
	EntropySystem = "system"
	EntropySecure = "secure"
	EntropyPseudo = "pseudo"
)

// EntropyNames lists the names ParseEntropy accepts.
var EntropyNames = []string{EntropySystem, EntropySecure, EntropyPseudo}

// ParseEntropy returns the source registered under name. seed is only used
// by the pseudo source.
func ParseEntropy(name string, seed uint64) (Entropy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EntropySystem:
		return SystemEntropy(), nil
	case EntropySecure:
		return SecureEntropy(), nil
	case EntropyPseudo:
		return NewPseudoEntropy(seed), nil
	}
	return nil, errs.ValidateOption("entropy source", name, EntropyNames)
}

type systemEntropy struct{}

// SystemEntropy draws from the runtime-seeded math/rand/v2 generator.
func SystemEntropy() Entropy { return systemEntropy{} }

func (systemEntropy) Digit() (int, error) { return rand.IntN(10), nil }

type pseudoEntropy struct {
	rng *rand.Rand
}

// NewPseudoEntropy returns a deterministic PCG source; equal seeds yield
// equal digit sequences. Not safe for concurrent use.
func NewPseudoEntropy(seed uint64) Entropy {
	return &pseudoEntropy{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (p *pseudoEntropy) Digit() (int, error) { return p.rng.IntN(10), nil }

// maxRejects bounds consecutive out-of-range bytes from a reader source.
const maxRejects = 64

type readerEntropy struct {
	r io.Reader
}

// NewReaderEntropy turns a byte stream into digits by rejection sampling:
// bytes >= 250 are discarded so each digit is equally likely.
func NewReaderEntropy(r io.Reader) Entropy {
	return &readerEntropy{r: r}
}

// SecureEntropy reads from crypto/rand.
func SecureEntropy() Entropy {
	return NewReaderEntropy(crand.Reader)
}

func (e *readerEntropy) Digit() (int, error) {
	var b [1]byte
	for range maxRejects {
		if _, err := io.ReadFull(e.r, b[:]); err != nil {
			return 0, err
		}
		if b[0] < 250 {
			return int(b[0] % 10), nil
		}
	}
	return 0, fmt.Errorf("%d consecutive bytes out of range", maxRejects)
}

// draw reads n digits from src.
func draw(src Entropy, n int) (Digits, error) {
	b := make([]byte, n)
	for i := range b {
		d, err := src.Digit()
		if err != nil {
			return "", errs.Wrap(errs.ErrCodeEntropyUnavailable, err, "random source unavailable")
		}
		if d < 0 || d > 9 {
			return "", errs.New(errs.ErrCodeEntropyUnavailable, "random source returned %d, want a digit", d)
		}
		b[i] = byte('0' + d)
	}
	return Digits(b), nil
}

// Generate returns a random, valid, hyphenated ISBN-10.
func Generate(src Entropy) (string, error) {
	d, err := draw(src, 9)
	if err != nil {
		return "", err
	}
	full, v := complete(d, Isbn10Partial)
	return hyphenate(v, full), nil
}

// Prefixes valid for Generate13.
var Prefixes13 = []string{"978", "979"}

// Generate13 returns a random, valid, hyphenated ISBN-13 starting with
// prefix ("978" when empty).
func Generate13(src Entropy, prefix string) (string, error) {
	if prefix == "" {
		prefix = "978"
	}
	if err := errs.ValidateOption("ISBN-13 prefix", prefix, Prefixes13); err != nil {
		return "", err
	}
	d, err := draw(src, 9)
	if err != nil {
		return "", err
	}
	full, v := complete(Digits(strings.TrimSpace(prefix))+d, Isbn13Partial)
	return hyphenate(v, full), nil
}

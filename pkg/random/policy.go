// Package random provides the uniform draws used to build passphrases. Every
// draw is backed by a single cryptographically secure entropy source; there is
// no fallback to math/rand.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrRandomSourceUnavailable is returned when the entropy source can't be
	// read from. Callers must treat it as fatal.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")

	// ErrNotEnoughElements is returned when asked to sample more distinct
	// elements than a population holds.
	ErrNotEnoughElements = errors.New("not enough unique elements to sample from")

	// ErrInvalidBound is returned for non-positive upper bounds and negative
	// sample sizes.
	ErrInvalidBound = errors.New("invalid bound")
)

// Policy draws uniform values from an entropy source. It's safe for concurrent
// use as long as the underlying reader is; crypto/rand.Reader is.
type Policy struct {
	src io.Reader
}

// New returns a Policy reading entropy from src. Tests can pass a failing
// reader to exercise ErrRandomSourceUnavailable.
func New(src io.Reader) *Policy {
	return &Policy{src: src}
}

// Default returns a Policy backed by crypto/rand.
func Default() *Policy {
	return New(rand.Reader)
}

// Intn returns a uniform integer in [0, maxExclusive).
func (p *Policy) Intn(maxExclusive int) (int, error) {
	if maxExclusive <= 0 {
		return 0, fmt.Errorf("%w: upper bound must be positive, got: %d",
			ErrInvalidBound, maxExclusive)
	}

	n, err := rand.Int(p.src, big.NewInt(int64(maxExclusive)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	return int(n.Int64()), nil
}

// Bool returns true or false with equal probability.
func (p *Policy) Bool() (bool, error) {
	n, err := p.Intn(2)
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// Indices returns k distinct integers drawn uniformly from [0, n). It runs a
// partial Fisher-Yates shuffle over a sparse view of [0, n), so it only costs
// O(k) no matter how large n is.
func (p *Policy) Indices(n, k int) ([]int, error) {
	if k < 0 || n < 0 {
		return nil, fmt.Errorf("%w: can't take %d of %d", ErrInvalidBound, k, n)
	}
	if k > n {
		return nil, fmt.Errorf("%w: asked for %d, have %d",
			ErrNotEnoughElements, k, n)
	}

	// swapped records positions whose value differs from their index.
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	res := make([]int, k)
	for i := 0; i < k; i++ {
		j, err := p.Intn(n - i)
		if err != nil {
			return nil, err
		}
		j += i

		res[i] = at(j)
		swapped[j] = at(i)
	}

	return res, nil
}

// Choose returns k distinct elements of population, uniformly distributed over
// all k-subsets. population is not modified. If k is larger than population it
// returns ErrNotEnoughElements, which the passphrase package exposes as
// ErrInsufficientVocabulary.
func (p *Policy) Choose(population []string, k int) ([]string, error) {
	indices, err := p.Indices(len(population), k)
	if err != nil {
		return nil, err
	}

	res := make([]string, len(indices))
	for i, idx := range indices {
		res[i] = population[idx]
	}

	return res, nil
}

package ident

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
	"sync"
)

const (
	// RawLength is the number of random bytes behind every generated ID (232 bits).
	RawLength = 29

	checksumLength = 4
	groupLength    = 5
)

var ErrMalformedID = errors.New("malformed id")

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ID is an opaque record identifier in grouped base32 text form.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

type Generator interface {
	Generate() ID
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) Generate() ID {
	raw := make([]byte, RawLength)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("ident: read random bytes: %v", err))
	}
	return FromBytes(raw)
}

// SequenceGenerator yields deterministic IDs. Tests only.
type SequenceGenerator struct {
	mu   sync.Mutex
	next uint64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) Generate() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	raw := make([]byte, RawLength)
	binary.BigEndian.PutUint64(raw[RawLength-8:], g.next)
	return FromBytes(raw)
}

// FromBytes encodes raw as checksum-prefixed, dash-grouped lower-case base32.
func FromBytes(raw []byte) ID {
	buf := make([]byte, checksumLength+len(raw))
	binary.BigEndian.PutUint32(buf, crc32.ChecksumIEEE(raw))
	copy(buf[checksumLength:], raw)

	enc := strings.ToLower(encoding.EncodeToString(buf))

	var b strings.Builder
	b.Grow(len(enc) + len(enc)/groupLength)
	for i := 0; i < len(enc); i += groupLength {
		if i > 0 {
			b.WriteByte('-')
		}
		end := min(i+groupLength, len(enc))
		b.WriteString(enc[i:end])
	}
	return ID(b.String())
}

func Parse(s string) (ID, error) {
	if s == "" {
		return "", ErrMalformedID
	}
	compact := strings.ReplaceAll(s, "-", "")
	buf, err := encoding.DecodeString(strings.ToUpper(compact))
	if err != nil || len(buf) <= checksumLength {
		return "", ErrMalformedID
	}

	raw := buf[checksumLength:]
	if binary.BigEndian.Uint32(buf[:checksumLength]) != crc32.ChecksumIEEE(raw) {
		return "", ErrMalformedID
	}

	id := FromBytes(raw)
	if string(id) != s {
		return "", ErrMalformedID
	}
	return id, nil
}

func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ident: parse %q: %v", s, err))
	}
	return id
}

func ParseAll(ss []string) ([]ID, error) {
	ids := make([]ID, 0, len(ss))
	for _, s := range ss {
		id, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

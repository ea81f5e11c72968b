package keys

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DevPhrase is the publicly known mnemonic used when a secret URI has no
// phrase of its own, so "//Alice" means DevPhrase + "//Alice".
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

const chainCodeLen = 32

// junction is one derivation step of a secret URI path.
type junction struct {
	hard      bool
	chainCode [chainCodeLen]byte
}

// secretURI is the parsed form of `<phrase>(//hard|/soft)*(///password)?`.
type secretURI struct {
	phrase   string
	path     []junction
	password string
}

func parseSecretURI(suri string) (secretURI, error) {
	var res secretURI

	rest := suri
	if i := strings.Index(rest, "///"); i >= 0 {
		res.password = rest[i+3:]
		rest = rest[:i]
	}

	phraseEnd := strings.IndexByte(rest, '/')
	if phraseEnd < 0 {
		phraseEnd = len(rest)
	}
	res.phrase = rest[:phraseEnd]
	for _, r := range res.phrase {
		if !isPhraseRune(r) {
			return secretURI{}, fmt.Errorf("%w: unexpected character %q in phrase", ErrInvalidSeed, r)
		}
	}
	if strings.TrimSpace(res.phrase) == "" {
		res.phrase = DevPhrase
	}

	path := rest[phraseEnd:]
	for len(path) > 0 {
		// path always starts with '/' here
		hard := strings.HasPrefix(path, "//")
		if hard {
			path = path[2:]
		} else {
			path = path[1:]
		}
		end := strings.IndexByte(path, '/')
		if end < 0 {
			end = len(path)
		}
		name := path[:end]
		if name == "" {
			return secretURI{}, fmt.Errorf("%w: empty derivation junction", ErrInvalidSeed)
		}
		res.path = append(res.path, newJunction(name, hard))
		path = path[end:]
	}
	return res, nil
}

func isPhraseRune(r rune) bool {
	return r == ' ' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// newJunction builds the chain code of a junction: numeric names encode as
// little-endian u64, anything else as length-prefixed bytes. Encodings
// longer than the chain code are hashed.
func newJunction(name string, hard bool) junction {
	var enc []byte
	if n, err := strconv.ParseUint(name, 10, 64); err == nil {
		enc = make([]byte, 8)
		binary.LittleEndian.PutUint64(enc, n)
	} else {
		enc = scaleBytes([]byte(name))
	}

	j := junction{hard: hard}
	if len(enc) > chainCodeLen {
		j.chainCode = blake2b.Sum256(enc)
	} else {
		copy(j.chainCode[:], enc)
	}
	return j
}

// scaleBytes prefixes b with its SCALE compact length.
func scaleBytes(b []byte) []byte {
	n := len(b)
	var prefix []byte
	switch {
	case n < 1<<6:
		prefix = []byte{byte(n << 2)}
	case n < 1<<14:
		prefix = make([]byte, 2)
		binary.LittleEndian.PutUint16(prefix, uint16(n<<2|0x01))
	default:
		prefix = make([]byte, 4)
		binary.LittleEndian.PutUint32(prefix, uint32(n<<2|0x02))
	}
	return append(prefix, b...)
}

// hardDerive maps a 32-byte secret through one hard junction:
// blake2b-256(SCALE(tag) ‖ secret ‖ chaincode).
func hardDerive(tag string, secret [32]byte, cc [chainCodeLen]byte) [32]byte {
	buf := scaleBytes([]byte(tag))
	buf = append(buf, secret[:]...)
	buf = append(buf, cc[:]...)
	return blake2b.Sum256(buf)
}

package driver

import (
	"crypto/sha256"
	"strings"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// combineDigest: H(content || part1 || part2 ...). Порядок частей фиксирован.
func combineDigest(content Digest, parts ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey связывает содержимое файла с настройками, влияющими на разбор.
func cacheKey(content Digest, opts Options) Digest {
	verbatim := "verbatim"
	if opts.NoVerbatim {
		verbatim = "no-verbatim"
	}
	return combineDigest(content, strings.Join(opts.NameElements, ","), verbatim)
}

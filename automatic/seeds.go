package automatic

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"lukechampine.com/frand"
)

const seedFileHeader = "# reversi autoplay seeds: one per game, base64 (URL-safe, unpadded)"

// GenerateSeeds creates n random 32-byte seeds. Saving them lets a batch of
// games be replayed exactly.
func GenerateSeeds(n int) ([][32]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot generate %d seeds", n)
	}
	seeds := make([][32]byte, n)
	for i := range seeds {
		seeds[i] = frand.Entropy256()
	}
	return seeds, nil
}

// WriteSeeds writes one encoded seed per line after a comment header.
func WriteSeeds(w io.Writer, seeds [][32]byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, seedFileHeader)
	for _, seed := range seeds {
		fmt.Fprintln(bw, base64.RawURLEncoding.EncodeToString(seed[:]))
	}
	return bw.Flush()
}

// ReadSeeds parses the WriteSeeds format. Blank lines and lines starting
// with # are skipped.
func ReadSeeds(r io.Reader) ([][32]byte, error) {
	var seeds [][32]byte
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("line %d: seed is %d bytes, want 32", lineNum, len(decoded))
		}
		seeds = append(seeds, [32]byte(decoded))
	}
	return seeds, scanner.Err()
}

// SaveSeeds writes seeds to path.
func SaveSeeds(seeds [][32]byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSeeds(f, seeds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSeeds reads seeds from path.
func LoadSeeds(path string) ([][32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeeds(f)
}

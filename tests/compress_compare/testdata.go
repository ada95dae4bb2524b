package compresscompare

import (
	"fmt"
	"math/rand"

	"github.com/teepark/mummy"
)

// PayloadConfig configures a generated mummy payload.
type PayloadConfig struct {
	Name   string
	Seed   int64
	Encode func(*rand.Rand, *mummy.Buffer) error
}

// DefaultPayloads returns the payload shapes used across the size and speed
// comparisons: a homogeneous numeric list, a string table with heavy
// repetition, and a mixed tree closer to real traffic.
func DefaultPayloads() []PayloadConfig {
	return []PayloadConfig{
		{
			Name: "numeric-list",
			Seed: 1,
			Encode: func(rng *rand.Rand, buf *mummy.Buffer) error {
				const n = 2000
				if err := buf.OpenList(n); err != nil {
					return err
				}
				for range n {
					// Clustered values keep the payload compressible.
					if err := buf.FeedInt(int64(rng.Intn(64))); err != nil {
						return err
					}
				}

				return nil
			},
		},
		{
			Name: "string-table",
			Seed: 2,
			Encode: func(rng *rand.Rand, buf *mummy.Buffer) error {
				names := []string{
					"cpu.usage", "memory.usage", "disk.read", "disk.write",
					"net.rx", "net.tx", "load.one", "load.five",
				}
				const n = 500
				if err := buf.OpenHash(n); err != nil {
					return err
				}
				for i := range n {
					key := fmt.Sprintf("%s.%d", names[rng.Intn(len(names))], i%10)
					if err := buf.FeedUTF8(key); err != nil {
						return err
					}
					if err := buf.FeedFloat(float64(rng.Intn(100)) / 4); err != nil {
						return err
					}
				}

				return nil
			},
		},
		{
			Name: "mixed-tree",
			Seed: 3,
			Encode: func(rng *rand.Rand, buf *mummy.Buffer) error {
				const n = 200
				if err := buf.OpenList(n); err != nil {
					return err
				}
				for i := range n {
					if err := buf.OpenTuple(4); err != nil {
						return err
					}
					if err := buf.FeedInt(int64(i)); err != nil {
						return err
					}
					if err := buf.FeedUTF8("sample-record"); err != nil {
						return err
					}
					if err := buf.FeedDate(uint16(2020+rng.Intn(5)), uint8(1+rng.Intn(12)), uint8(1+rng.Intn(28))); err != nil {
						return err
					}
					if err := buf.FeedDecimal(rng.Intn(2) == 1, int16(-2), []byte{
						byte(rng.Intn(10)), byte(rng.Intn(10)), byte(rng.Intn(10)), byte(rng.Intn(10)),
					}); err != nil {
						return err
					}
				}

				return nil
			},
		},
	}
}

// GenerateBuffer encodes one payload shape into a fresh owned Buffer.
// The caller releases it.
func GenerateBuffer(cfg PayloadConfig) (*mummy.Buffer, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	buf := mummy.NewBuffer(0)

	if err := cfg.Encode(rng, buf); err != nil {
		buf.Release()

		return nil, err
	}

	return buf, nil
}

// GeneratePayload encodes one payload shape and returns detached wire bytes.
func GeneratePayload(cfg PayloadConfig) ([]byte, error) {
	buf, err := GenerateBuffer(cfg)
	if err != nil {
		return nil, err
	}
	defer buf.Release()

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

package cli

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ksuid"
)

// vector is one line of interop test data. The payload is upper-case hex.
type vector struct {
	Timestamp int64  `json:"timestamp"`
	Payload   string `json:"payload"`
	KSUID     string `json:"ksuid"`
}

func newVectorsCommand(cfg *Config, genOpts []ksuid.Option) *cobra.Command {
	var (
		count  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Emit interop test vectors as JSON lines",
		Long: `Emit one JSON object per line with a Unix timestamp, a random payload and
the resulting standard ksuid. Timestamps are evenly spaced over the whole
representable range, from the epoch to the epoch plus 2^32-1 seconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.Join(ErrInvalidConfig, fmt.Errorf("count must be positive, got %d", count))
			}
			ctx, log := commandLogger(cmd, *cfg)

			gen := ksuid.NewGenerator[ksuid.Seconds](genOpts...)
			var err error
			if output == "" || output == "-" {
				err = writeVectors(cmd.OutOrStdout(), gen, count)
			} else {
				err = writeVectorsFile(output, gen, count)
			}
			if err != nil {
				return err
			}

			log.InfoContext(ctx, "wrote vectors", slog.Int("count", count), slog.String("output", output))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "number of vectors")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func writeVectors(w io.Writer, gen *ksuid.Generator[ksuid.Seconds], count int) error {
	enc := json.NewEncoder(w)
	for _, stamp := range linSpace(ksuid.Epoch, ksuid.Epoch+math.MaxUint32, int64(count)) {
		id, err := gen.NewWithTime(time.Unix(stamp, 0))
		if err != nil {
			return err
		}

		if err := enc.Encode(vector{
			Timestamp: stamp,
			Payload:   strings.ToUpper(hex.EncodeToString(id.Payload())),
			KSUID:     id.String(),
		}); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}
	return nil
}

// writeVectorsFile writes vectors to path, creating or truncating it.
func writeVectorsFile(path string, gen *ksuid.Generator[ksuid.Seconds], count int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	if err := writeVectors(f, gen, count); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}
	return nil
}

// linSpace returns num evenly spaced values over [start, stop], always
// ending exactly at stop.
func linSpace(start, stop, num int64) []int64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []int64{start}
	}

	step := (stop - start) / (num - 1)
	res := make([]int64, num)
	for i := range num {
		res[i] = start + i*step
	}
	res[num-1] = stop
	return res
}

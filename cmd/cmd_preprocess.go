package cmd

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"math/rand"
	"os"

	// Register the standard decoders for the convenience path.
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"

	"github.com/imagepipe/imagepipe/dataset"
	"github.com/imagepipe/imagepipe/envconfig"
	"github.com/imagepipe/imagepipe/imageproc"
)

// newDatasetsCmd lists the registered preprocessing pipelines.
func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List registered preprocessing pipelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range dataset.Names() {
				e, _ := dataset.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %dx%dx%d\n",
					name, e.OutputShape[0], e.OutputShape[1], e.OutputShape[2])
			}
			return nil
		},
	}
}

// newPreprocessCmd runs a registered pipeline over one or more image
// files and reports per-image statistics, optionally writing the raw
// float32 tensors out.
func newPreprocessCmd() *cobra.Command {
	var (
		datasetName string
		training    bool
		seed        int64
		output      string
	)

	cmd := &cobra.Command{
		Use:   "preprocess IMAGE...",
		Short: "Run the preprocessing pipeline over image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := dataset.Get(datasetName)
			if !ok {
				return fmt.Errorf("no preprocessing registered for %q", datasetName)
			}

			mode := imageproc.Evaluation
			if training {
				mode = imageproc.Training
			}

			if !cmd.Flags().Changed("seed") {
				seed = envconfig.Seed()
			}
			if output == "" {
				output = envconfig.Output()
			}

			rng := rand.New(rand.NewSource(seed))

			var out *os.File
			if output != "" {
				var err error
				out, err = os.Create(output)
				if err != nil {
					return err
				}
				defer out.Close()
			}

			for _, path := range args {
				t, err := loadTensor(path)
				if err != nil {
					return err
				}

				processed, err := entry.Preprocess(t, mode, rng)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				printStats(cmd, path, processed)

				if out != nil {
					if err := binary.Write(out, binary.LittleEndian, processed.Data); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetName, "dataset", "imagenet2012", "Registered pipeline to apply")
	cmd.Flags().BoolVar(&training, "training", false, "Use the stochastic training transform")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the training transform")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write raw little-endian float32 tensors to this file")

	return cmd
}

func loadTensor(path string) (imageproc.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return imageproc.Tensor{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return imageproc.Tensor{}, fmt.Errorf("%s: decode: %w", path, err)
	}

	return imageproc.FromImage(img), nil
}

func printStats(cmd *cobra.Command, path string, t imageproc.Tensor) {
	sums := make([]float64, t.Channels)
	minV := float32(math.Inf(1))
	maxV := float32(math.Inf(-1))

	for i, v := range t.Data {
		sums[i%t.Channels] += float64(v)
		minV = min(minV, v)
		maxV = max(maxV, v)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: shape %dx%dx%d range [%.3f, %.3f] channel means [",
		path, t.Height, t.Width, t.Channels, minV, maxV)
	for c, sum := range sums {
		if c > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.3f", sum/float64(t.Height*t.Width))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "]")
}

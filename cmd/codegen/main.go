package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/pushparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate heterogeneous zip helpers for frp",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of signals to generate Zip helpers for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "frp/zip_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for frp started !")
	defer func() {
		log.Printf("Codegen for frp finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		return fmt.Errorf("count must be at least 2, got %d", count)
	}

	src, err := format.Source([]byte(templates.ZipGen(count)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}

	out := cmd.String(outputKey)
	if err := os.WriteFile(out, src, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %s with helpers for 2..%d signals", out, count)
	return nil
}

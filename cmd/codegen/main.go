package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/pulseparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "arity"
	outputKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed multilink/derived arity wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest dependency arity to generate",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file",
				Value: "pulse/multilink_gen.go",
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
	log.Printf("Codegen for pulse arities started")
	defer func() {
		log.Printf("Codegen for pulse arities finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.MultilinkGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}

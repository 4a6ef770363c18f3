// The frontsim command runs an instruction program through the issue
// pipeline and prints the entries that reached the reservation station.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/frontsim/config"
	"github.com/sarchlab/frontsim/driver"
	"github.com/sarchlab/frontsim/front"
)

var (
	configPath string
	tracePath  string
	capacity   int
)

var rootCmd = &cobra.Command{
	Use:   "frontsim <program.yaml>",
	Short: "Run an instruction program through the issue pipeline",
	Args:  cobra.ExactArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"pipeline configuration yaml file")
	rootCmd.Flags().StringVar(&tracePath, "trace", "",
		"write a json trace to this file")
	rootCmd.Flags().IntVar(&capacity, "capacity", 64,
		"reorder buffer capacity")
}

func setupTrace() error {
	if tracePath == "" {
		return nil
	}

	f, err := os.Create(tracePath)
	if err != nil {
		return err
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: front.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := setupTrace(); err != nil {
		return err
	}

	program, err := config.LoadProgram(args[0])
	if err != nil {
		return err
	}

	builder := config.PipelineBuilder{}.
		WithEngine(sim.NewSerialEngine()).
		WithCapacity(capacity)
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		builder = builder.WithConfig(cfg)
	}
	pipeline := builder.Build("FrontEnd")

	calls := make([]*driver.Call, 0, len(program))
	for _, req := range program {
		call, err := pipeline.Driver.SubmitDecode(driver.DecodeParams{
			Funct: &req.Funct,
			XS1:   &req.XS1,
			XS2:   &req.XS2,
		})
		if err != nil {
			return err
		}
		calls = append(calls, call)
	}

	if err := pipeline.Driver.Run(); err != nil {
		return err
	}

	printDispatchTable(pipeline.RS.Dispatched())

	rejected := 0
	for _, call := range calls {
		if call.Err != nil {
			rejected++
		}
	}
	if rejected > 0 {
		fmt.Printf("%d submissions rejected while the decoder was blocked\n",
			rejected)
	}
	if pipeline.Decoder.Blocked() {
		fmt.Println("decoder is blocked waiting for reorder buffer capacity")
	}

	return nil
}

func printDispatchTable(entries []front.Entry) {
	t := table.NewWriter()
	t.SetTitle("Dispatched Entries")
	t.AppendHeader(table.Row{"RobID", "Funct", "XS1", "XS2", "Domain"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			e.RobID,
			e.Funct,
			fmt.Sprintf("%#x", e.XS1),
			fmt.Sprintf("%#x", e.XS2),
			e.Domain.Name(),
		})
	}

	fmt.Println(t.Render())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

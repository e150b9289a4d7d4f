package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/converter"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/provider"
	"github.com/Lutefd/currency-widget/internal/widget"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type dependencies struct {
	loadEnv     func(...string) error
	loadConfig  func() (commons.Config, error)
	newProvider func(config commons.Config) provider.RateProvider
	stdout      io.Writer
}

var defaultDeps = dependencies{
	loadEnv:    godotenv.Load,
	loadConfig: commons.LoadConfig,
	newProvider: func(config commons.Config) provider.RateProvider {
		return provider.NewExchangeRateAPIClient(
			config.APIKey,
			provider.WithBaseURL(config.APIBaseURL),
			provider.WithTimeout(config.RateFetchTimeout),
		)
	},
	stdout: os.Stdout,
}

func main() {
	if err := run(context.Background(), os.Args[1:], defaultDeps); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, deps dependencies) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	from := fs.String("from", string(widget.DefaultSource), "source currency")
	to := fs.String("to", string(widget.DefaultTarget), "target currency")
	amount := fs.Float64("amount", 0, "amount to convert")
	swap := fs.Bool("swap", false, "swap source and target before converting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// .env is optional for the CLI
	_ = deps.loadEnv()

	config, err := deps.loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := logger.Initialize(config.LogLevel); err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}

	source, err := model.ParseCurrency(*from)
	if err != nil {
		return err
	}
	target, err := model.ParseCurrency(*to)
	if err != nil {
		return err
	}

	w := widget.New(uuid.New().String(), deps.newProvider(config))
	if err := w.SetSource(source); err != nil {
		return err
	}
	if err := w.SetTarget(target); err != nil {
		return err
	}
	w.SetAmount(amount)

	if err := w.Mount(ctx); err != nil {
		logger.Errorf("failed to mount widget: %v", err)
		fmt.Fprintln(deps.stdout, w.Error())
		return nil
	}

	if *swap {
		err = w.Swap()
	} else {
		err = w.Convert()
	}
	if err != nil && !errors.Is(err, model.ErrConvertDisabled) {
		return err
	}

	source, target = w.Pair()
	fmt.Fprintf(deps.stdout, "%s %s = %s %s\n", inputAmount(w.Amount()), source, w.Result(), target)
	return nil
}

func inputAmount(amount *float64) string {
	if amount == nil {
		return converter.FormatAmount(0)
	}
	return converter.FormatAmount(*amount)
}

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/andreymlv/linkedlist/internal/configuration"
	"github.com/andreymlv/linkedlist/internal/demo"
	"github.com/andreymlv/linkedlist/internal/logger"
)

const envPrefix = "LISTDEMO"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, output io.Writer) error {
	flagSet := configuration.NewUnsortedFlagSet("listdemo", flag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	flagSet.Int("demo.length", demo.DefaultConfig.Length, "number of random values each list is filled with")
	flagSet.Int("demo.removals", demo.DefaultConfig.Removals, "number of random elements removed from each list")
	flagSet.Int("demo.maxValue", demo.DefaultConfig.MaxValue, "exclusive upper bound of the random values")
	flagSet.Int("demo.sliceBound", demo.DefaultConfig.SliceBound, "exclusive upper bound of the copied window")
	flagSet.Uint64("demo.seed", demo.DefaultConfig.Seed, "seed of the random source (0 = time based)")
	flagSet.String("demo.variant", demo.DefaultConfig.Variant, "lists to exercise: doubly, singly or both")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "log encoding: console or json")

	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	config := configuration.New()
	if *configFile != "" {
		if err := config.LoadFile(*configFile); err != nil {
			return err
		}
	}
	if err := config.LoadFlagSet(flagSet); err != nil {
		return ierrors.Wrap(err, "unable to load flags")
	}
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return ierrors.Wrap(err, "unable to load environment variables")
	}

	container, err := newContainer(config, output)
	if err != nil {
		return err
	}

	return container.Invoke(func(listDemo *demo.Demo, log *logger.Logger) error {
		defer func() { _ = log.Sync() }()

		log.Debugw("starting demo", "config", config.All())

		return listDemo.Run()
	})
}

func newContainer(config *configuration.Configuration, output io.Writer) (*dig.Container, error) {
	container := dig.New()

	for _, constructor := range []interface{}{
		func() *configuration.Configuration { return config },
		func() io.Writer { return output },
		logger.NewRootLoggerFromConfiguration,
		func(config *configuration.Configuration) (demo.Config, error) {
			cfg := demo.DefaultConfig
			if err := config.Unmarshal("demo", &cfg); err != nil {
				return cfg, ierrors.Wrap(err, "unable to unmarshal demo config")
			}

			return cfg, nil
		},
		func(cfg demo.Config) *rand.Rand { return demo.NewRandom(cfg.Seed) },
		demo.New,
	} {
		if err := container.Provide(constructor); err != nil {
			return nil, ierrors.Wrap(err, "unable to provide constructor")
		}
	}

	return container, nil
}

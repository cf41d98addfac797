package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/GiantZOC/ISO-7064/config"
	"github.com/GiantZOC/ISO-7064/internal/core/domain"
	"github.com/GiantZOC/ISO-7064/internal/core/services/batch"
	"github.com/GiantZOC/ISO-7064/internal/core/services/checkdigit"
	"github.com/GiantZOC/ISO-7064/pkg/errors"
	"github.com/GiantZOC/ISO-7064/pkg/logger"
)

var log *zap.SugaredLogger

// checkerFlags are shared by the calculate and verify commands.
func checkerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "system",
			Aliases: []string{"s"},
			Usage:   "System designation, e.g. \"MOD 97-10\" (overrides --charset and --double)",
		},
		&cli.StringFlag{
			Name:    "charset",
			Aliases: []string{"c"},
			Usage:   "Character set: numeric, numeric-check, hexadecimal, alphabetic, alphanumeric, alphanumeric-check, or the literal characters",
			Value:   "numeric",
		},
		&cli.BoolFlag{
			Name:    "double",
			Aliases: []string{"d"},
			Usage:   "Compute two check characters (pure systems only)",
		},
	}
}

// resolveCharacterSet maps a named set onto its alphabet. Anything not
// recognised as a name is taken as the literal character set.
func resolveCharacterSet(name string) domain.Alphabet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return domain.Numeric
	case "numeric-check":
		return domain.NumericCheck
	case "hexadecimal", "hex":
		return domain.Hexadecimal
	case "alphabetic", "alpha":
		return domain.Alphabetic
	case "alphanumeric":
		return domain.Alphanumeric
	case "alphanumeric-check":
		return domain.AlphanumericCheck
	}
	return domain.Alphabet(strings.ToUpper(name))
}

// newChecker builds a checker from the command's flags. An explicit
// --system wins over --charset and --double.
func newChecker(c *cli.Context) (*checkdigit.Checker, error) {
	if system := c.String("system"); system != "" {
		designation, ok := domain.ParseDesignation(system)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, system)
		}
		return checkdigit.NewCheckerForDesignation(designation)
	}
	return checkdigit.NewChecker(resolveCharacterSet(c.String("charset")), c.Bool("double"))
}

func calculateCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: iso7064 calculate <value>")
	}

	checker, err := newChecker(c)
	if err != nil {
		return err
	}

	full, err := checker.Calculate(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(full)
	return nil
}

func verifyCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: iso7064 verify <value>")
	}

	checker, err := newChecker(c)
	if err != nil {
		return err
	}

	if !checker.Verify(c.Args().First()) {
		fmt.Println("invalid")
		return cli.Exit("", 1)
	}

	fmt.Println("valid")
	return nil
}

// loadConfigWithOverrides loads the batch configuration and applies CLI
// flag overrides on top of it. Overridden values the batch service does
// not validate itself are checked here.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if system := c.String("system"); system != "" {
		if _, ok := domain.ParseDesignation(system); !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrUnknownDesignation, system)
		}
		cfg.Batch.System = system
	}
	if operation := c.String("operation"); operation != "" {
		cfg.Batch.Operation = operation
	}
	if c.IsSet("concurrency") {
		cfg.Batch.Concurrency = c.Int("concurrency")
	}
	if c.IsSet("chunk-size") {
		cfg.Batch.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("max-failures") {
		cfg.Batch.MaxFailures = c.Int("max-failures")
	}
	if report := c.String("report"); report != "" {
		cfg.Batch.Report = report
	}

	return cfg, nil
}

func batchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: iso7064 batch <input>")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	processor, err := batch.New(cfg.BatchOptions(), log)
	if err != nil {
		return err
	}
	defer processor.Close()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := processor.ProcessFile(ctx, c.Args().First(), c.String("output"))
	if err != nil {
		return err
	}

	if cfg.Batch.Report != "" {
		if err := processor.WriteReport(report, cfg.Batch.Report); err != nil {
			return err
		}
	}

	fmt.Printf("%s %s: %d values, %d valid, %d invalid in %s\n",
		report.Designation, report.Operation, report.Total, report.Valid, report.Invalid, report.Elapsed)

	if report.Operation == domain.OperationVerify && report.Invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func systemsCommand(c *cli.Context) error {
	for _, designation := range domain.Designations() {
		charset := designation.CharacterSet()
		params, err := checkdigit.Resolve(charset.Size(), designation.DoubleDigit())
		if err != nil {
			return err
		}

		checks := 1
		if designation.DoubleDigit() {
			checks = 2
		}
		fmt.Printf("%-12s radix %-3d modulus %-5d checks %d  %s\n",
			designation, params.Radix, params.Modulus, checks, charset)
	}
	return nil
}

func main() {
	log = logger.New("iso7064")
	defer log.Sync()

	app := &cli.App{
		Name:                   "iso7064",
		Usage:                  "Calculate and verify ISO 7064 check digits",
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "calculate",
				Aliases:   []string{"calc"},
				Usage:     "Append the check digits to a value",
				ArgsUsage: "<value>",
				Flags:     checkerFlags(),
				Action:    calculateCommand,
			},
			{
				Name:      "verify",
				Aliases:   []string{"check"},
				Usage:     "Verify a value's trailing check digits",
				ArgsUsage: "<value>",
				Flags:     checkerFlags(),
				Action:    verifyCommand,
			},
			{
				Name:      "batch",
				Usage:     "Process a file of identifiers, one per line",
				ArgsUsage: "<input>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file path",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file for calculated values, \".zst\" compresses",
					},
					&cli.StringFlag{
						Name:    "report",
						Aliases: []string{"r"},
						Usage:   "Write a JSON run report to this path",
					},
					&cli.StringFlag{
						Name:    "system",
						Aliases: []string{"s"},
						Usage:   "System designation override",
					},
					&cli.StringFlag{
						Name:  "operation",
						Usage: "verify or calculate",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Parallel chunk workers, 0 = CPU count",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Identifiers per worker chunk",
					},
					&cli.IntFlag{
						Name:  "max-failures",
						Usage: "Failure details kept in the report",
					},
				},
				Action: batchCommand,
			},
			{
				Name:    "systems",
				Aliases: []string{"ls"},
				Usage:   "List the supported check digit systems",
				Action:  systemsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if errors.IsValidationError(err) {
			validation := errors.AsValidationError(err)
			log.Infow("command failed", "field", validation.Field, "value", validation.Value, "error", validation.Err)
		} else {
			log.Infow("command failed", "error", err)
		}
		os.Exit(1)
	}
}

// Package commands wires the CLI surface. Each command resolves its flags
// to explicit engine parameters, runs exactly one transform through the
// logging wrapper, and prints the report figures. No engine logic lives
// here.
package commands

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-snapshot/internal/config"
	"github.com/carson-networks/budget-snapshot/internal/filter"
	"github.com/carson-networks/budget-snapshot/internal/logging"
	"github.com/carson-networks/budget-snapshot/internal/obfuscate"
	"github.com/carson-networks/budget-snapshot/internal/report"
	"github.com/carson-networks/budget-snapshot/internal/snapshot"
	"github.com/carson-networks/budget-snapshot/internal/store"
)

// NewApp builds the budget-snapshot CLI.
func NewApp(log *logrus.Logger, cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "budget-snapshot",
		Usage: "filter or anonymize a budget snapshot export",
		Commands: []*cli.Command{
			newFilterCommand(log, cfg),
			newTrimCommand(log, cfg),
			newObfuscateCommand(log),
			newStatsCommand(log),
		},
	}
}

func newFilterCommand(log *logrus.Logger, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "drop history before a start date, synthesizing balance-forward entries",
		Flags: []cli.Flag{
			inputFlag(),
			outputFlag(),
			&cli.StringFlag{Name: "start", Aliases: []string{"s"}, Usage: "window start in YYYY-MM-DD format", Required: true},
			&cli.StringFlag{Name: "keep", Aliases: []string{"k"}, Usage: "comma-separated account names kept whole regardless of date"},
			&cli.BoolFlag{Name: "drop-empty", Usage: "drop accounts left with no transactions (trim always does this; filter only on request)"},
			&cli.StringFlag{Name: "review-prefix", Usage: "memo prefix for retained unapproved transactions; empty disables tagging", Value: cfg.ReviewPrefix},
		},
		Action: func(c *cli.Context) error {
			start, err := snapshot.ParseDate(c.String("start"))
			if err != nil {
				return err
			}
			params := filter.Params{
				Direction:         filter.TrimBefore,
				Boundary:          start,
				KeepAccounts:      splitNames(c.String("keep")),
				DropEmptyAccounts: c.Bool("drop-empty"),
				SyntheticPayee:    cfg.SyntheticPayee,
				InflowCategory:    cfg.InflowCategory,
				ReviewPrefix:      c.String("review-prefix"),
			}
			return runFilter(c, log, "Filter", params)
		},
	}
}

func newTrimCommand(log *logrus.Logger, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "trim",
		Usage: "drop history after an end date; accounts left empty are removed",
		Flags: []cli.Flag{
			inputFlag(),
			outputFlag(),
			&cli.StringFlag{Name: "end", Aliases: []string{"e"}, Usage: "window end in YYYY-MM-DD format", Required: true},
			&cli.StringFlag{Name: "drop", Aliases: []string{"d"}, Usage: "comma-separated account names to drop entirely"},
		},
		Action: func(c *cli.Context) error {
			end, err := snapshot.ParseDate(c.String("end"))
			if err != nil {
				return err
			}
			params := filter.Params{
				Direction:      filter.TrimAfter,
				Boundary:       end,
				DropAccounts:   splitNames(c.String("drop")),
				SyntheticPayee: cfg.SyntheticPayee,
				InflowCategory: cfg.InflowCategory,
			}
			return runFilter(c, log, "Trim", params)
		},
	}
}

func runFilter(c *cli.Context, log *logrus.Logger, name string, params filter.Params) error {
	return logging.TransformWrapper(name, log, func(logData *logging.LogData) error {
		doc, err := store.Load(c.String("input"))
		if err != nil {
			return err
		}
		budget := &doc.Data.Budget
		before := report.Summarize(budget)
		ix := snapshot.NewIndex(budget)

		filtered, res, err := filter.Apply(budget, params)
		if err != nil {
			return err
		}

		doc.Data.Budget = *filtered
		if err := store.Save(c.String("output"), doc); err != nil {
			return err
		}

		after := report.Summarize(filtered)
		logData.AddData("accounts", after.Accounts)
		logData.AddData("transactions", after.Transactions)
		logData.AddData("transactions_removed", res.RemovedTransactions)
		logData.AddData("synthesized", res.Synthesized)
		logData.AddData("tagged", res.Tagged)

		printCounts(before, after)
		for accountID, amount := range res.RemovedAmounts {
			account := ix.Accounts[accountID]
			fmt.Printf("%s: removed net %s\n", account.Name, report.Milliunits(amount))
		}
		return nil
	})
}

func newObfuscateCommand(log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "obfuscate",
		Usage: "anonymize names, notes, memos and amounts, preserving structure",
		Flags: []cli.Flag{
			inputFlag(),
			outputFlag(),
			&cli.Uint64Flag{Name: "seed", Usage: "random seed; 0 seeds from the OS entropy pool"},
		},
		Action: func(c *cli.Context) error {
			return logging.TransformWrapper("Obfuscate", log, func(logData *logging.LogData) error {
				doc, err := store.Load(c.String("input"))
				if err != nil {
					return err
				}
				budget := &doc.Data.Budget
				before := report.Summarize(budget)

				src := obfuscate.NewSecureSource()
				if seed := c.Uint64("seed"); seed != 0 {
					src = obfuscate.NewSeededSource(seed)
				}

				anonymized, err := obfuscate.Apply(budget, src)
				if err != nil {
					return err
				}

				doc.Data.Budget = *anonymized
				if err := store.Save(c.String("output"), doc); err != nil {
					return err
				}

				after := report.Summarize(anonymized)
				logData.AddData("transactions", after.Transactions)
				printCounts(before, after)
				return nil
			})
		},
	}
}

func newStatsCommand(log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "print entity counts and per-account statistics",
		Flags: []cli.Flag{
			inputFlag(),
			&cli.BoolFlag{Name: "dump", Usage: "deep-dump the computed summary"},
		},
		Action: func(c *cli.Context) error {
			doc, err := store.Load(c.String("input"))
			if err != nil {
				return err
			}
			budget := &doc.Data.Budget

			summary := report.Summarize(budget)
			stats := report.AccountStats(budget)
			if c.Bool("dump") {
				spew.Dump(summary, stats)
				return nil
			}

			fmt.Printf("months %s..%s\n", summary.FirstMonth, summary.LastMonth)
			fmt.Printf("accounts=%d payees=%d categories=%d months=%d transactions=%d subtransactions=%d\n",
				summary.Accounts, summary.Payees, summary.Categories,
				summary.Months, summary.Transactions, summary.Subtransactions)
			for _, stat := range stats {
				fmt.Printf("%s: %d transactions, latest %s\n", stat.Name, stat.Transactions, stat.Latest)
			}
			return nil
		},
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "snapshot JSON to read", Required: true}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "snapshot JSON to write", Required: true}
}

func splitNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func printCounts(before, after report.Summary) {
	fmt.Printf("accounts %d -> %d\n", before.Accounts, after.Accounts)
	fmt.Printf("payees %d -> %d\n", before.Payees, after.Payees)
	fmt.Printf("months %d -> %d\n", before.Months, after.Months)
	fmt.Printf("transactions %d -> %d\n", before.Transactions, after.Transactions)
	fmt.Printf("subtransactions %d -> %d\n", before.Subtransactions, after.Subtransactions)
}

// Interactive polymer flooding economic calculator.
//
// Prompts for the horizon and financial assumptions (keeping defaults on
// empty or invalid input), compares every catalog polymer by NPV, and
// optionally dumps per-year ledgers and renders cash-flow charts to PNG.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
	"polymer_economics/pkg/core/projection"
	"polymer_economics/pkg/core/valuation"
	"polymer_economics/pkg/plot"
)

func main() {
	godotenv.Load()

	scenarioPath := flag.String("scenario", os.Getenv("POLYCALC_SCENARIO"), "YAML/HJSON scenario file with starting assumptions")
	plotDir := flag.String("plot-dir", ".", "directory for rendered chart PNGs")
	flag.Parse()

	cfg := config.Default()
	if *scenarioPath != "" {
		loaded, err := config.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		cfg = loaded
		fmt.Printf("[CONFIG] Loaded scenario defaults from %s\n", *scenarioPath)
	}

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Interactive Polymer Flooding Economic Calculator ===")

	cfg.Years = promptYears(in, cfg.Years)
	warnLongHorizon(cfg.Years)

	cfg.TaxRate = askKeepOrChange(in, "Current tax (%)", cfg.TaxRate*100) / 100
	cfg.DiscountRate = askKeepOrChange(in, "Current discount rate (%)", cfg.DiscountRate*100) / 100
	cfg.BaseRevenue = askKeepOrChange(in, "Current year-1 revenue ($)", cfg.BaseRevenue)
	cfg.RevenueGrowth = askKeepOrChange(in, "Current yearly revenue growth (%)", cfg.RevenueGrowth*100) / 100
	cfg.OpexYear1 = askKeepOrChange(in, "Current year-1 OPEX ($)", cfg.OpexYear1)
	cfg.OpexGrowthLong = askKeepOrChange(in, "Current long-term OPEX growth (%)", cfg.OpexGrowthLong*100) / 100

	engine := valuation.NewEngine(catalog.Default())
	report, err := engine.Compare(cfg)
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}

	printSummary(report)
	detailLoop(in, report)

	if askYesNo(in, "\nDo you want to plot absolute cash flows? (y/n): ") {
		fmt.Println("[note] Graph is based on assumed revenue/OPEX growth and single-year polymer purchase.")
		fmt.Printf("[note] Values after %d years are more uncertain.\n", projection.FlatOpexYears)
		renderChart(filepath.Join(*plotDir, "cashflows.png"), func(f *os.File) error {
			return plot.RenderCashflows(f, report)
		})
	}

	if askYesNo(in, "\nDo you want to plot cash-flow difference (vs HPAM)? (y/n): ") {
		if _, err := report.Result(catalog.BaselineKey); err != nil {
			fmt.Println("Base polymer (HPAM) not found, skipping delta plot.")
		} else {
			fmt.Println("[note] Delta plot shows difference vs HPAM under the same assumptions.")
			fmt.Println("[note] Small deviations in later years may be caused by synthetic OPEX growth.")
			renderChart(filepath.Join(*plotDir, "cashflow_delta.png"), func(f *os.File) error {
				return plot.RenderDeltas(f, report, catalog.BaselineKey)
			})
		}
	}

	fmt.Println("\nDone.")
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptYears(in *bufio.Scanner, def int) int {
	fmt.Printf("Select calculation period in years (%d-%d), default %d: ", config.MinYears, config.MaxYears, def)
	ans := readLine(in)
	if ans == "" {
		return def
	}
	years, err := strconv.Atoi(ans)
	if err != nil {
		return def
	}
	return config.ClampYears(years)
}

func warnLongHorizon(years int) {
	if years > projection.FlatOpexYears {
		fmt.Printf("\n[warning] You selected a period > %d years.\n", projection.FlatOpexYears)
		fmt.Printf("          After %d years calculations are predictive and may be less accurate.\n\n", projection.FlatOpexYears)
	}
}

// askKeepOrChange shows the current value and offers to replace it. Bad
// numeric input keeps the prior value.
func askKeepOrChange(in *bufio.Scanner, label string, current float64) float64 {
	fmt.Printf("%s is %s. Do you want to change it? (y/n/+): ", label, strconv.FormatFloat(current, 'f', -1, 64))
	ans := strings.ToLower(readLine(in))
	if ans != "y" && ans != "yes" && ans != "+" {
		return current
	}
	fmt.Print("Enter new value: ")
	newVal, err := strconv.ParseFloat(readLine(in), 64)
	if err != nil {
		fmt.Println("Invalid number, keeping old value.")
		return current
	}
	return newVal
}

func askYesNo(in *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	ans := strings.ToLower(readLine(in))
	return ans == "y" || ans == "yes"
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func printSummary(report *valuation.ComparisonReport) {
	fmt.Println("\n=== SUMMARY TABLE ===")
	fmt.Printf("%-45s %18s %18s\n", "Polymer", "NPV,$", "Sum CF,$")
	for _, row := range report.Summary() {
		fmt.Printf("%-45s %18s %18s\n", row.Name, money(row.NPV), money(row.SumCF))
	}

	best, _ := report.Result(report.BestKey)
	fmt.Printf("\nBest method by NPV: %s -> %s $\n", best.Name, money(best.NPV))
}

func detailLoop(in *bufio.Scanner, report *valuation.ComparisonReport) {
	choices := make([]string, 0, len(report.Keys))
	for i, key := range report.Keys {
		choices = append(choices, fmt.Sprintf("%d-%s", i+1, strings.ToUpper(key)))
	}
	prompt := fmt.Sprintf("\nShow detailed cash-flow (%s) or 'n': ", strings.Join(choices, " / "))

	for {
		fmt.Print(prompt)
		ans := strings.ToLower(readLine(in))
		if ans == "" || ans == "n" || ans == "no" {
			return
		}

		key := ans
		if idx, err := strconv.Atoi(ans); err == nil && idx >= 1 && idx <= len(report.Keys) {
			key = report.Keys[idx-1]
		}

		res, err := report.Result(key)
		if err != nil {
			fmt.Printf("Unknown key. Valid options: %s.\n", strings.Join(report.Keys, ", "))
			continue
		}

		fmt.Printf("\n--- Detailed cash-flow for %s ---\n", res.Name)
		printDetailed(res.Rows)
	}
}

func printDetailed(rows []valuation.YearRecord) {
	fmt.Printf("%4s | %12s | %12s | %12s | %9s | %13s | %12s | %12s | %12s\n",
		"Year", "Revenue", "OPEX", "Polymer exp", "Equip", "Taxable inc", "Tax", "Net profit", "Cash flow")
	fmt.Println(strings.Repeat("-", 120))
	for _, r := range rows {
		fmt.Printf("%4d | %12s | %12s | %12s | %9s | %13s | %12s | %12s | %12s\n",
			r.Year,
			money(r.Revenue),
			money(r.Opex),
			money(r.PolymerExpense),
			money(r.Equipment),
			money(r.TaxableIncome),
			money(r.Tax),
			money(r.NetProfit),
			money(r.CashFlow))
	}
}

func renderChart(path string, render func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Cannot create %s, skipping plot: %v\n", path, err)
		return
	}
	defer f.Close()

	if err := render(f); err != nil {
		fmt.Printf("Chart rendering failed, skipping plot: %v\n", err)
		return
	}
	fmt.Printf("Chart written to %s\n", path)
}

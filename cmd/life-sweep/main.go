package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/sims/life"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10).Align(lipgloss.Right)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type job struct {
	cfg life.Config
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per board")
	seeds := flag.Int("seeds", 8, "random seeds to try per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	patterns := flag.String("patterns", strings.Join(core.SeederNames(), ","), "comma separated patterns to sweep")
	top := flag.Int("top", 10, "rows to show in the summary")
	var overrides kvList
	flag.Var(&overrides, "set", "board override in key=value form, e.g. w=64 (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", o)
			continue
		}
		kv[parts[0]] = parts[1]
	}
	base := life.FromMap(kv)
	if _, ok := kv["w"]; !ok {
		base.Width = 64
	}
	if _, ok := kv["h"]; !ok {
		base.Height = 64
	}

	var jobs []job
	for _, name := range strings.Split(*patterns, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		n := 1
		if name == life.PatternRandom {
			n = *seeds
		}
		for i := 0; i < n; i++ {
			cfg := base
			cfg.Pattern = name
			cfg.Seed = base.Seed + int64(i)
			if err := cfg.Validate(); err != nil {
				log.Fatalf("invalid sweep entry: %v", err)
			}
			jobs = append(jobs, job{cfg: cfg})
		}
	}

	fmt.Printf("Sweeping %d boards (%dx%d, %d workers, %d steps)\n", len(jobs), base.Width, base.Height, *workers, *steps)

	queue := make(chan job)
	results := make(chan life.RunResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				res, err := life.Simulate(j.cfg, *steps)
				if err != nil {
					log.Printf("%s/%d: %v", j.cfg.Pattern, j.cfg.Seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	start := time.Now()
	var all []life.RunResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)
	if len(all) == 0 {
		log.Fatal("no boards simulated")
	}

	sort.Slice(all, func(i, j int) bool { return lifetime(all[i]) > lifetime(all[j]) })

	fmt.Println(renderTable(all, *top, elapsed))
	best := all[0]
	fmt.Println(renderGraph(best))
}

// lifetime ranks a run: boards that never settle outrank every settled one.
func lifetime(r life.RunResult) int {
	if !r.Settled() {
		return r.StepsSimulated + 1
	}
	return r.SettledAt
}

func renderTable(all []life.RunResult, top int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Longest-lived boards (elapsed %s)", elapsed.Round(time.Millisecond))))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("pattern"),
		cellStyle.Render("seed"),
		cellStyle.Render("settled"),
		cellStyle.Render("period"),
		cellStyle.Render("peak"),
		cellStyle.Render("final"),
	))
	b.WriteString("\n")
	for i := 0; i < len(all) && i < top; i++ {
		r := all[i]
		settled, period := "never", "-"
		if r.Settled() {
			settled = fmt.Sprint(r.SettledAt)
			period = fmt.Sprint(r.Period)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(r.Config.Pattern),
			cellStyle.Render(fmt.Sprint(r.Config.Seed)),
			cellStyle.Render(settled),
			cellStyle.Render(period),
			cellStyle.Render(fmt.Sprint(r.PeakPopulation)),
			cellStyle.Render(fmt.Sprint(r.Population[len(r.Population)-1])),
		)
		if i == 0 {
			row = bestStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}

func renderGraph(r life.RunResult) string {
	series := make([]float64, len(r.Population))
	for i, p := range r.Population {
		series[i] = float64(p)
	}
	if len(series) < 2 {
		series = append(series, series...)
	}
	caption := fmt.Sprintf("population: %s seed %d", r.Config.Pattern, r.Config.Seed)
	chart := asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(caption))
	return graphStyle.Render(chart)
}

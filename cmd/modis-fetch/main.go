package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tklug26/modis-fetch/internal/config"
	"github.com/tklug26/modis-fetch/internal/fetch"
	"github.com/tklug26/modis-fetch/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	product := flag.String("product", "", "MODIS product code, e.g. MOD09A1")
	year := flag.Int("year", 0, "4-digit acquisition year")
	start := flag.Int("start", 0, "first day-of-year (1-366)")
	end := flag.Int("end", 0, "last day-of-year, inclusive")
	hGrid := flag.Int("hgrid", 0, "horizontal tile index")
	vGrid := flag.Int("vgrid", 0, "vertical tile index")
	counterpart := flag.Bool("counterpart", false, "also fetch the counterpart-platform product")
	host := flag.String("host", "", "archive FTP host")
	collection := flag.String("collection", "", "archive collection segment")
	out := flag.String("out", "", "local output directory")
	timeout := flag.Duration("timeout", 0, "FTP dial timeout")
	flag.Parse()

	fmt.Printf("modis-fetch v%s\n", version)

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Explicitly set flags win over file and environment values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "product":
			settings.Product = *product
		case "year":
			settings.Year = *year
		case "start":
			settings.StartDay = *start
		case "end":
			settings.EndDay = *end
		case "hgrid":
			settings.HGrid = *hGrid
		case "vgrid":
			settings.VGrid = *vGrid
		case "counterpart":
			settings.Counterpart = *counterpart
		case "host":
			settings.Host = *host
		case "collection":
			settings.Collection = *collection
		case "out":
			settings.OutputDir = *out
		case "timeout":
			settings.DialTimeout = *timeout
		}
	})

	if err := settings.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := platform.CreateDirectoryIfNotExists(settings.OutputDir); err != nil {
		log.Fatalf("output dir %s: %v", settings.OutputDir, err)
	}

	svc := fetch.NewService(settings.Host, settings.Collection, settings.OutputDir, settings.DialTimeout)
	batch := fetch.NewBatch(svc, settings.Counterpart)

	summary, runErr := batch.Run(settings.Product, settings.Year,
		settings.StartDay, settings.EndDay, settings.HGrid, settings.VGrid)

	for _, name := range summary.Downloaded {
		fmt.Println(name)
	}
	elapsed := summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond)
	fmt.Printf("downloaded %d file(s), %d failure(s) in %s\n",
		len(summary.Downloaded), summary.Failures, elapsed)
	if runErr != nil {
		log.Printf("failures:\n%v", runErr)
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"magewell-cli/internal/client"
	"magewell-cli/pkg/models"
)

var (
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	server *http.Server
	api    *client.MagewellClient
}

func (p *program) Start(s service.Service) error {
	// Start should not block.
	go p.run()
	return nil
}

func (p *program) run() {
	log.Println("Attempting initial login...")
	if !p.api.Login() {
		// exit so the service manager restarts us
		log.Printf("Fatal: Initial login to %s failed", p.api.Address())
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(&SwitcherCollector{Client: p.api})

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Magewell Exporter listening on %s", addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	return nil
}

// --- COLLECTOR ---

// SwitcherCollector scrapes one device per Prometheus collection.
// The mutex serializes scrapes since the session is not concurrency safe.
type SwitcherCollector struct {
	Client *client.MagewellClient
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"magewell_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"magewell_scrape_duration_seconds", "Time taken to scrape the device.", nil, nil,
	)
	channelInfoDesc = prometheus.NewDesc(
		"magewell_channel_info", "Currently selected channel.", []string{"name", "ndi"}, nil,
	)
	sourceCountDesc = prometheus.NewDesc(
		"magewell_ndi_sources_total", "Number of NDI sources visible to the device.", nil, nil,
	)
	sourceInfoDesc = prometheus.NewDesc(
		"magewell_ndi_source_info", "NDI source visible to the device.", []string{"name", "ip"}, nil,
	)
)

func (c *SwitcherCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- channelInfoDesc
	ch <- sourceCountDesc
	ch <- sourceInfoDesc
}

func (c *SwitcherCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	if channel, ok := c.fetchChannelWithRetry(); ok {
		ch <- prometheus.MustNewConstMetric(channelInfoDesc, prometheus.GaugeValue, 1,
			channel.Name, strconv.FormatBool(channel.IsNDI))
	} else {
		success = 0.0
		log.Printf("Error scraping current channel from %s", c.Client.Address())
	}

	if sources, ok := c.fetchSourcesWithRetry(); ok {
		ch <- prometheus.MustNewConstMetric(sourceCountDesc, prometheus.GaugeValue, float64(len(sources)))

		// identical label sets would fail the whole gather
		seen := make(map[models.Source]bool)
		for _, src := range sources {
			if seen[src] {
				continue
			}
			seen[src] = true
			ch <- prometheus.MustNewConstMetric(sourceInfoDesc, prometheus.GaugeValue, 1, src.Name, src.IPAddress)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping NDI sources from %s", c.Client.Address())
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- RETRY HELPERS ---
// The device may drop the login between scrapes, so a failure gets one
// fresh login and a second attempt.
func (c *SwitcherCollector) fetchChannelWithRetry() (models.Channel, bool) {
	if res, ok := c.Client.GetCurrentChannel(); ok {
		return res, true
	}
	if c.Client.Login() {
		return c.Client.GetCurrentChannel()
	}
	return models.Channel{}, false
}

func (c *SwitcherCollector) fetchSourcesWithRetry() ([]models.Source, bool) {
	if res, ok := c.Client.GetSources(); ok {
		return res, true
	}
	if c.Client.Login() {
		return c.Client.GetSources()
	}
	return nil, false
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes the switcher state
as Prometheus metrics. Can be installed as a system service.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		api, dev, err := newClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		svcConfig := &service.Config{
			Name:        "magewell-exporter",
			DisplayName: "Magewell Prometheus Exporter",
			Description: "Exposes Magewell Pro Convert state to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--ip", dev.IP,
				"--username", dev.Username,
				"--password", dev.Password,
				"--port", expPort,
			},
		}

		prg := &program{api: api}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		if serviceAction != "" {
			if err := service.Control(s, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Blocking. Reached when the service manager starts the binary or when run by hand.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			_ = logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expPort, "port", "9101", "Port to listen on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}

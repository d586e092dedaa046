package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobfeed/app/client"
	"github.com/umputun/jobfeed/app/conditions"
	"github.com/umputun/jobfeed/app/config"
	"github.com/umputun/jobfeed/app/notify"
	"github.com/umputun/jobfeed/app/scraper"
	"github.com/umputun/jobfeed/app/store"
	"github.com/umputun/jobfeed/app/tui"
	"github.com/umputun/jobfeed/app/ui"
	"github.com/umputun/jobfeed/app/web"
)

var opts struct {
	Listen     string  `short:"l" long:"listen" env:"JOBFEED_LISTEN" default:"127.0.0.1:8080" description:"api server listen address"`
	DB         string  `long:"db" env:"JOBFEED_DB" default:"jobfeed.db" description:"sqlite database file"`
	Profile    string  `short:"p" long:"profile" env:"JOBFEED_PROFILE" description:"scrape profile (yaml), built-in defaults if empty"`
	AuthHash   string  `long:"auth-hash" env:"JOBFEED_AUTH_HASH" description:"bcrypt hash of api password, auth disabled if empty"`
	ScrapeRate float64 `long:"scrape-rate" env:"JOBFEED_SCRAPE_RATE" default:"1" description:"allowed scrape triggers per second"`
	Dbg        bool    `long:"dbg" env:"JOBFEED_DEBUG" description:"debug mode"`

	Scrape struct {
		Schedule    bool          `long:"schedule" env:"SCHEDULE" description:"enable scheduled scrapes"`
		Concurrency int           `long:"concurrency" env:"CONCURRENCY" default:"4" description:"max sources fetched at once"`
		Timeout     time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"per request timeout"`
		Jitter      time.Duration `long:"jitter" env:"JITTER" default:"0s" description:"max random delay before scheduled scrape"`
		CPUSample   time.Duration `long:"cpu-sample" env:"CPU_SAMPLE" default:"1s" description:"cpu sampling interval for conditions"`
	} `group:"scrape" namespace:"scrape" env-namespace:"JOBFEED_SCRAPE"`

	Repeater struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to repeat failed fetch"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"1s" description:"initial duration"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"2" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"repeater" namespace:"repeater" env-namespace:"JOBFEED_REPEATER"`

	Notify struct {
		WebhookURLs []string      `long:"webhook" env:"WEBHOOK" env-delim:"," description:"webhook url(s) for scrape summaries"`
		Headers     []string      `long:"header" env:"HEADER" env-delim:"," description:"webhook header, header:value"`
		Timeout     time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"webhook timeout"`
		OnlyNew     bool          `long:"only-new" env:"ONLY_NEW" description:"notify only if new jobs found"`
		Template    string        `long:"template" env:"TEMPLATE" description:"message template file"`
	} `group:"notify" namespace:"notify" env-namespace:"JOBFEED_NOTIFY"`

	Client struct {
		Enabled             bool          `long:"enabled" env:"ENABLED" description:"run terminal client instead of server"`
		Server              string        `long:"server" env:"SERVER" default:"http://127.0.0.1:8080" description:"api server url"`
		Password            string        `long:"password" env:"PASSWORD" description:"api password"`
		Timeout             time.Duration `long:"timeout" env:"TIMEOUT" default:"15s" description:"api request timeout"`
		ReportUnsaveFailure bool          `long:"report-unsave" env:"REPORT_UNSAVE" description:"show error toast on failed unsave"`
	} `group:"client" namespace:"client" env-namespace:"JOBFEED_CLIENT"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobfeed.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in MB"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max age of rotated files in days"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated files"`
	} `group:"log" namespace:"log" env-namespace:"JOBFEED_LOG"`
}

var revision = "unknown"

func main() {
	_ = godotenv.Load() // optional .env in working directory

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	if !opts.Client.Enabled {
		fmt.Printf("jobfeed %s\n", revision)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM

	run := runServer
	if opts.Client.Enabled {
		run = runClient
	}
	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// runServer starts api server with optional scheduled scrapes, blocks until ctx is canceled
func runServer(ctx context.Context) error {
	cfg, err := loadProfile(opts.Profile)
	if err != nil {
		return err
	}
	st, err := store.NewSQLiteStore(opts.DB)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	runner := makeRunner(cfg, st)
	srv, err := web.New(web.Config{Store: st, Scraper: runner, Version: revision, PasswordHash: opts.AuthHash,
		ScrapeRate: opts.ScrapeRate})
	if err != nil {
		return fmt.Errorf("failed to make web server: %w", err)
	}

	if opts.Scrape.Schedule {
		sched := &scraper.Scheduler{
			Cron:             cron.New(),
			Runner:           runner,
			Spec:             cfg.Schedule,
			Conditions:       cfg.Conditions,
			ConditionChecker: conditions.NewChecker(opts.Scrape.CPUSample),
			Jitter:           opts.Scrape.Jitter,
		}
		go func() {
			if err := sched.Do(ctx); err != nil {
				log.Printf("[ERROR] scheduler failed, %v", err)
			}
		}()
	}

	return srv.Run(ctx, opts.Listen)
}

// runClient starts terminal client, blocks until user quits
func runClient(ctx context.Context) error {
	cl := client.New(opts.Client.Server, opts.Client.Timeout)
	if opts.Client.Password != "" {
		cl.User, cl.Password = "jobfeed", opts.Client.Password
	}
	log.Printf("[INFO] terminal client for %s", opts.Client.Server)
	return tui.Run(ctx, cl, ui.Options{ReportUnsaveFailure: opts.Client.ReportUnsaveFailure})
}

// loadProfile reads scrape profile, defaults if fname is empty
func loadProfile(fname string) (*config.Config, error) {
	if fname == "" {
		log.Printf("[INFO] no profile, using defaults")
		return config.Default(), nil
	}
	cfg, err := config.Load(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", fname, err)
	}
	log.Printf("[INFO] profile %s loaded, sources: %v", fname, cfg.ActiveSources())
	return cfg, nil
}

func makeRunner(cfg *config.Config, st scraper.Store) *scraper.Runner {
	rptr := repeater.New(&strategy.Backoff{Repeats: opts.Repeater.Attempts, Duration: opts.Repeater.Duration,
		Factor: opts.Repeater.Factor, Jitter: opts.Repeater.Jitter})
	h := &scraper.HTTPClient{Client: &http.Client{}, Repeater: rptr, Timeout: opts.Scrape.Timeout}

	res := &scraper.Runner{
		Store:         st,
		Sources:       scraper.NewSources(cfg, h),
		Terms:         cfg.SearchTerms,
		Concurrency:   opts.Scrape.Concurrency,
		NotifyTimeout: opts.Notify.Timeout,
	}
	if n := makeNotifier(); n != nil {
		res.Notifier = n
	}
	return res
}

func makeNotifier() *notify.Service {
	return notify.NewService(notify.Params{
		WebhookURLs: opts.Notify.WebhookURLs,
		Headers:     opts.Notify.Headers,
		Timeout:     opts.Notify.Timeout,
		OnlyNew:     opts.Notify.OnlyNew,
		Template:    opts.Notify.Template,
	})
}

// setupLogs configures lgr and returns the log destination. Client mode logs to file only,
// the terminal belongs to the ui.
func setupLogs() io.Writer {
	var out io.Writer = os.Stdout
	switch {
	case opts.Log.Enabled:
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	case opts.Client.Enabled:
		out = io.Discard
	}

	logOpts := []log.Option{log.Msec, log.LevelBraces, log.Out(out), log.Err(out)}
	if opts.Dbg {
		logOpts = append(logOpts, log.Debug, log.CallerFile, log.CallerFunc)
	}
	log.Setup(logOpts...)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGINT and SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGTERM)
}
